package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/impact/internal/domain/record"
	"github.com/rpggio/impact/internal/export"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Unknown errors become
// INTERNAL with the original message.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.Is(err, record.ErrRecordNotFound):
		return &APIError{Code: "RECORD_NOT_FOUND", Message: "record not found", RecoveryHint: "Call query_records to find valid IDs"}
	case errors.Is(err, record.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "Fix the named field and retry"}
	case errors.Is(err, record.ErrNoStarred):
		return &APIError{Code: "NO_STARRED_RECORDS", Message: "no records are starred", RecoveryHint: "Star records with toggle_star first"}
	case errors.Is(err, export.ErrEmptyView):
		return &APIError{Code: "EMPTY_VIEW", Message: "no records match; nothing to export", RecoveryHint: "Loosen the search or filters"}
	case errors.Is(err, export.ErrUnknownFormat):
		return &APIError{Code: "UNKNOWN_FORMAT", Message: err.Error(), RecoveryHint: "Use csv, markdown or pdf"}
	default:
		return &APIError{Code: "INTERNAL", Message: err.Error()}
	}
}
