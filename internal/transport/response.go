package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpggio/impact/internal/domain/record"
	"github.com/rpggio/impact/internal/export"
)

// ErrorBody is the JSON body of every failed request.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failure.
type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, record.ErrRecordNotFound):
		return http.StatusNotFound, "RECORD_NOT_FOUND"
	case errors.Is(err, record.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, export.ErrUnknownFormat):
		return http.StatusNotFound, "UNKNOWN_FORMAT"
	case errors.Is(err, export.ErrEmptyView):
		return http.StatusUnprocessableEntity, "EMPTY_VIEW"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		message = "internal error"
	}
	writeJSON(w, status, ErrorBody{Error: ErrorDetail{
		Code:      code,
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
	}})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
