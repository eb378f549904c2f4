package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultListLimit caps GetRecentActivity when no limit is given.
const DefaultListLimit = 50

// Service handles activity log operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new activity service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// LogActivity logs an activity entry with the current timestamp if missing.
func (s *Service) LogActivity(ctx context.Context, entry *ActivityEntry) error {
	if entry == nil || entry.ActivityType == "" {
		return ErrInvalidInput
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if err := s.repo.Log(ctx, entry); err != nil {
		return fmt.Errorf("logging activity: %w", err)
	}
	return nil
}

// LogExport records that a view of records was exported in the given format.
// Failures are logged and otherwise ignored; an export never fails because
// its audit entry could not be written.
func (s *Service) LogExport(ctx context.Context, format string, count int) {
	err := s.LogActivity(ctx, &ActivityEntry{
		ActivityType: TypeRecordsExported,
		Summary:      fmt.Sprintf("exported %d records as %s", count, format),
		Details:      fmt.Sprintf(`{"format":%q,"count":%d}`, format, count),
	})
	if err != nil {
		s.logger.Warn("failed to log export", "format", format, "error", err)
	}
}

// GetRecentActivity lists activity entries with filtering, newest first.
func (s *Service) GetRecentActivity(ctx context.Context, opts ListActivityOptions) ([]ActivityEntry, error) {
	if opts.Limit <= 0 {
		opts.Limit = DefaultListLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	entries, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}
	return entries, nil
}
