package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/impact/internal/domain/activity"
	"github.com/rpggio/impact/internal/domain/record"
	"github.com/rpggio/impact/internal/export"
)

// Handler implements the MCP tools on top of the domain services.
type Handler struct {
	records  RecordService
	activity ActivityService
	logger   *slog.Logger
}

// NewHandler creates a new MCP handler.
func NewHandler(services Services, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		records:  services.Records,
		activity: services.Activity,
		logger:   logger,
	}
}

func (h *Handler) QueryRecords(ctx context.Context, _ *sdkmcp.CallToolRequest, in QueryRecordsParams) (*sdkmcp.CallToolResult, any, error) {
	view, err := h.records.Query(ctx, queryFrom(in.Search, in.Sort, in.Filters))
	if err != nil {
		return h.fail("query_records", err)
	}

	resp := QueryRecordsResponse{
		Records: make([]RecordSummary, 0, len(view)),
		Total:   len(view),
		KPIs:    record.ComputeKPIs(view),
	}
	for i, r := range view {
		if in.Limit > 0 && i >= in.Limit {
			break
		}
		resp.Records = append(resp.Records, toSummary(r))
	}
	return jsonResult(resp)
}

func (h *Handler) GetRecord(ctx context.Context, _ *sdkmcp.CallToolRequest, in RecordIDParams) (*sdkmcp.CallToolResult, any, error) {
	rec, err := h.records.Get(ctx, in.ID)
	if err != nil {
		return h.fail("get_record", err)
	}
	return jsonResult(rec)
}

func (h *Handler) SaveRecord(ctx context.Context, _ *sdkmcp.CallToolRequest, in SaveRecordParams) (*sdkmcp.CallToolResult, any, error) {
	rec, err := h.records.SaveForm(ctx, record.SaveFormRequest{
		ID:       in.ID,
		Form:     in.Form,
		Impact:   in.Impact,
		Evidence: in.Evidence,
		Feedback: in.Feedback,
	})
	if err != nil {
		return h.fail("save_record", err)
	}
	return jsonResult(rec)
}

func (h *Handler) DeleteRecord(ctx context.Context, _ *sdkmcp.CallToolRequest, in RecordIDParams) (*sdkmcp.CallToolResult, any, error) {
	if err := h.records.Delete(ctx, in.ID); err != nil {
		return h.fail("delete_record", err)
	}
	return jsonResult(DeleteResponse{ID: in.ID, Deleted: true})
}

func (h *Handler) DuplicateRecord(ctx context.Context, _ *sdkmcp.CallToolRequest, in RecordIDParams) (*sdkmcp.CallToolResult, any, error) {
	rec, err := h.records.Duplicate(ctx, in.ID)
	if err != nil {
		return h.fail("duplicate_record", err)
	}
	return jsonResult(rec)
}

func (h *Handler) ToggleStar(ctx context.Context, _ *sdkmcp.CallToolRequest, in RecordIDParams) (*sdkmcp.CallToolResult, any, error) {
	rec, err := h.records.ToggleStar(ctx, in.ID)
	if err != nil {
		return h.fail("toggle_star", err)
	}
	return jsonResult(toSummary(*rec))
}

func (h *Handler) ComputeKPIs(ctx context.Context, _ *sdkmcp.CallToolRequest, in QueryRecordsParams) (*sdkmcp.CallToolResult, any, error) {
	view, err := h.records.Query(ctx, queryFrom(in.Search, in.Sort, in.Filters))
	if err != nil {
		return h.fail("compute_kpis", err)
	}
	return jsonResult(KPIsResponse{KPIs: record.ComputeKPIs(view), Records: len(view)})
}

func (h *Handler) SuggestBullet(_ context.Context, _ *sdkmcp.CallToolRequest, in SuggestBulletParams) (*sdkmcp.CallToolResult, any, error) {
	return jsonResult(BulletResponse{Bullet: record.SynthesizeBullet(in.Form, in.Impact)})
}

func (h *Handler) AppraisalSummary(ctx context.Context, _ *sdkmcp.CallToolRequest, _ EmptyParams) (*sdkmcp.CallToolResult, any, error) {
	summary, err := h.records.AppraisalSummary(ctx)
	if err != nil {
		return h.fail("appraisal_summary", err)
	}
	return jsonResult(SummaryResponse{Summary: summary, Count: strings.Count(summary, "\n") + 1})
}

func (h *Handler) ExportRecords(ctx context.Context, _ *sdkmcp.CallToolRequest, in ExportParams) (*sdkmcp.CallToolResult, any, error) {
	format, err := export.ParseFormat(in.Format)
	if err != nil {
		return h.fail("export_records", err)
	}

	var (
		doc   *export.Document
		count int
	)
	if in.ID != "" {
		if format != export.FormatPDF {
			return h.fail("export_records", &APIError{
				Code:         "INVALID_INPUT",
				Message:      "single record export is only available as pdf",
				RecoveryHint: "Use format pdf, or filter the view instead of passing id",
			})
		}
		rec, err := h.records.Get(ctx, in.ID)
		if err != nil {
			return h.fail("export_records", err)
		}
		if doc, err = export.RenderRecordPDF(*rec); err != nil {
			return h.fail("export_records", err)
		}
		count = 1
	} else {
		view, err := h.records.Query(ctx, queryFrom(in.Search, in.Sort, in.Filters))
		if err != nil {
			return h.fail("export_records", err)
		}
		if doc, err = export.Render(format, view); err != nil {
			return h.fail("export_records", err)
		}
		count = len(view)
	}

	if h.activity != nil {
		h.activity.LogExport(ctx, string(format), count)
	}

	if format == export.FormatPDF {
		return &sdkmcp.CallToolResult{
			Content: []sdkmcp.Content{
				&sdkmcp.TextContent{Text: fmt.Sprintf("Exported %d record(s) to %s (%d bytes)", count, doc.Filename, len(doc.Data))},
				&sdkmcp.EmbeddedResource{Resource: &sdkmcp.ResourceContents{
					URI:      "impact://exports/" + doc.Filename,
					MIMEType: doc.ContentType,
					Blob:     doc.Data,
				}},
			},
		}, nil, nil
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(doc.Data)}},
	}, nil, nil
}

func (h *Handler) GetRecentActivity(ctx context.Context, _ *sdkmcp.CallToolRequest, in RecentActivityParams) (*sdkmcp.CallToolResult, any, error) {
	if h.activity == nil {
		return h.fail("get_recent_activity", errors.New("activity log not configured"))
	}
	opts := activity.ListActivityOptions{Limit: in.Limit}
	if in.RecordID != "" {
		opts.RecordID = &in.RecordID
	}
	if in.Type != "" {
		typ := activity.ActivityType(in.Type)
		opts.ActivityType = &typ
	}
	entries, err := h.activity.GetRecentActivity(ctx, opts)
	if err != nil {
		return h.fail("get_recent_activity", err)
	}
	return jsonResult(ActivityResponse{Entries: entries})
}

// fail reports err to the client as a tool error carrying an APIError body.
func (h *Handler) fail(tool string, err error) (*sdkmcp.CallToolResult, any, error) {
	apiErr := MapError(err)
	if apiErr.Code == "INTERNAL" {
		h.logger.Error("tool failed", "tool", tool, "error", err)
	} else {
		h.logger.Debug("tool rejected", "tool", tool, "code", apiErr.Code, "error", err)
	}
	data, _ := json.Marshal(apiErr)
	return &sdkmcp.CallToolResult{
		IsError: true,
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}, nil, nil
}

func jsonResult(v any) (*sdkmcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("encoding result: %w", err)
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}, nil, nil
}
