package transport

import (
	"context"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpggio/impact/internal/domain/record"
	"github.com/rpggio/impact/internal/export"
)

// RecordService defines the record operations served over HTTP.
type RecordService interface {
	Get(ctx context.Context, id string) (*record.Record, error)
	Query(ctx context.Context, q record.Query) ([]record.Record, error)
}

// ExportLogger records completed downloads.
type ExportLogger interface {
	LogExport(ctx context.Context, format string, count int)
}

// Config wires the HTTP surface.
type Config struct {
	Records RecordService
	Exports ExportLogger
	// MCP is mounted at /mcp when set.
	MCP    http.Handler
	Logger *slog.Logger
}

// Server wires HTTP handlers.
type Server struct {
	records RecordService
	exports ExportLogger
	logger  *slog.Logger
}

// NewServer creates an HTTP server router with middleware.
func NewServer(cfg Config) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	srv := &Server{records: cfg.Records, exports: cfg.Exports, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))

	r.Get("/health", srv.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/records", srv.handleRecords)
		r.Get("/records/{id}", srv.handleRecord)
		r.Get("/records/{id}/pdf", srv.handleRecordPDF)
		r.Get("/kpis", srv.handleKPIs)
		r.Get("/export/{format}", srv.handleExport)
	})

	if cfg.MCP != nil {
		r.Handle("/mcp", cfg.MCP)
		r.Handle("/mcp/*", cfg.MCP)
	}

	return r
}

// RecordsResponse is the body of GET /api/records.
type RecordsResponse struct {
	Records []record.Record `json:"records"`
	Total   int             `json:"total"`
	KPIs    record.KPIs     `json:"kpis"`
}

// KPIsResponse is the body of GET /api/kpis.
type KPIsResponse struct {
	KPIs    record.KPIs `json:"kpis"`
	Records int         `json:"records"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	view, err := s.records.Query(r.Context(), QueryFromRequest(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := RecordsResponse{
		Records: view,
		Total:   len(view),
		KPIs:    record.ComputeKPIs(view),
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit >= 0 && limit < len(view) {
		resp.Records = view[:limit]
	}
	if resp.Records == nil {
		resp.Records = []record.Record{}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	rec, err := s.records.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleKPIs(w http.ResponseWriter, r *http.Request) {
	view, err := s.records.Query(r.Context(), QueryFromRequest(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, KPIsResponse{KPIs: record.ComputeKPIs(view), Records: len(view)})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	view, err := s.records.Query(r.Context(), QueryFromRequest(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	doc, err := export.Render(format, view)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logExport(r.Context(), format, len(view))
	writeDocument(w, doc)
}

func (s *Server) handleRecordPDF(w http.ResponseWriter, r *http.Request) {
	rec, err := s.records.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	doc, err := export.RenderRecordPDF(*rec)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logExport(r.Context(), export.FormatPDF, 1)
	writeDocument(w, doc)
}

func (s *Server) logExport(ctx context.Context, format export.Format, count int) {
	if s.exports != nil {
		s.exports.LogExport(ctx, string(format), count)
	}
}

// QueryFromRequest reads search, sort and filters from URL query parameters.
func QueryFromRequest(r *http.Request) record.Query {
	q := r.URL.Query()
	return record.Query{
		Search: q.Get("q"),
		Sort:   record.ParseSortMode(q.Get("sort")),
		Filters: record.Filters{
			Category: q.Get("category"),
			Status:   q.Get("status"),
			Tech:     q.Get("tech"),
			DateFrom: q.Get("from"),
			DateTo:   q.Get("to"),
			MinHours: q.Get("min_hours"),
			MinUsers: q.Get("min_users"),
			MinSteps: q.Get("min_steps"),
		},
	}
}

func writeDocument(w http.ResponseWriter, doc *export.Document) {
	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Data)
}
