package record

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/impact/internal/domain/activity"
	"github.com/rpggio/impact/internal/repository"
)

const copySuffix = " (copy)"

// Service handles record business logic.
type Service struct {
	records    RecordRepository
	activities ActivityRepository
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates a new record service. activities may be nil.
func NewService(records RecordRepository, activities ActivityRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		records:    records,
		activities: activities,
		logger:     logger,
		now:        time.Now,
	}
}

// SaveFormRequest describes a save from editor state. An empty ID creates a
// new record.
type SaveFormRequest struct {
	ID       string          `json:"id,omitempty" yaml:"id"`
	Form     FormValues      `json:"form" yaml:"form"`
	Impact   []ImpactRow     `json:"impact,omitempty" yaml:"impact"`
	Evidence []EvidenceItem  `json:"evidence,omitempty" yaml:"evidence"`
	Feedback []FeedbackEntry `json:"feedback,omitempty" yaml:"feedback"`
}

// Save upserts a full record by ID. A record without an ID, or with an ID
// the store does not know, is created; otherwise the stored record is
// replaced, keeping its CreatedAt. UpdatedAt is always refreshed.
func (s *Service) Save(ctx context.Context, rec Record) (*Record, error) {
	if err := Validate(rec); err != nil {
		return nil, err
	}
	normalize(&rec)

	var existing *Record
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	} else {
		current, err := s.records.Get(ctx, rec.ID)
		switch {
		case err == nil:
			existing = current
		case errors.Is(err, repository.ErrNotFound):
		default:
			return nil, fmt.Errorf("loading record: %w", err)
		}
	}

	now := s.now()
	rec.UpdatedAt = now
	if existing != nil {
		if !existing.CreatedAt.IsZero() {
			rec.CreatedAt = existing.CreatedAt
		}
		if err := s.records.Update(ctx, &rec); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrRecordNotFound
			}
			return nil, fmt.Errorf("updating record: %w", err)
		}
		s.logActivity(ctx, activity.TypeRecordUpdated, rec.ID, fmt.Sprintf("updated record %q", rec.ProjectName))
		return &rec, nil
	}

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	if err := s.records.Create(ctx, &rec); err != nil {
		return nil, fmt.Errorf("creating record: %w", err)
	}
	s.logActivity(ctx, activity.TypeRecordCreated, rec.ID, fmt.Sprintf("created record %q", rec.ProjectName))
	return &rec, nil
}

// SaveForm builds a record from editor state and saves it.
func (s *Service) SaveForm(ctx context.Context, req SaveFormRequest) (*Record, error) {
	if err := ValidateForm(req.Form); err != nil {
		return nil, err
	}

	var existing *Record
	if req.ID != "" {
		current, err := s.Get(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		existing = current
	}

	rec := BuildFromForm(req.Form, req.Impact, req.Evidence, req.Feedback, existing, s.now())
	return s.Save(ctx, rec)
}

// Get returns a record by ID.
func (s *Service) Get(ctx context.Context, id string) (*Record, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	rec, err := s.records.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("getting record: %w", err)
	}
	return rec, nil
}

// List returns every record in store order.
func (s *Service) List(ctx context.Context) ([]Record, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	return records, nil
}

// Delete removes a record.
func (s *Service) Delete(ctx context.Context, id string) error {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.records.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("deleting record: %w", err)
	}
	s.logActivity(ctx, activity.TypeRecordDeleted, id, fmt.Sprintf("deleted record %q", rec.ProjectName))
	return nil
}

// Duplicate stores a copy of a record under a new ID. The copy's name gets a
// " (copy)" suffix, it is unstarred and it lands at the front of the store.
func (s *Service) Duplicate(ctx context.Context, id string) (*Record, error) {
	src, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	dup := clone(*src)
	dup.ID = uuid.NewString()
	dup.ProjectName = src.ProjectName + copySuffix
	dup.Starred = false
	dup.CreatedAt = now
	dup.UpdatedAt = now

	if err := s.records.Create(ctx, &dup); err != nil {
		return nil, fmt.Errorf("creating duplicate: %w", err)
	}
	s.logActivity(ctx, activity.TypeRecordDuplicated, dup.ID, fmt.Sprintf("duplicated record %s", src.ID))
	return &dup, nil
}

// ToggleStar flips the starred flag of a record. UpdatedAt is left alone so
// starring does not reorder the Latest view.
func (s *Service) ToggleStar(ctx context.Context, id string) (*Record, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	rec.Starred = !rec.Starred
	if err := s.records.Update(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("updating record: %w", err)
	}

	typ, verb := activity.TypeRecordUnstarred, "unstarred"
	if rec.Starred {
		typ, verb = activity.TypeRecordStarred, "starred"
	}
	s.logActivity(ctx, typ, rec.ID, fmt.Sprintf("%s record %q", verb, rec.ProjectName))
	return rec, nil
}

// Query returns the filtered and sorted view of the store.
func (s *Service) Query(ctx context.Context, q Query) ([]Record, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return q.Run(records), nil
}

// KPIs aggregates the view selected by q.
func (s *Service) KPIs(ctx context.Context, q Query) (KPIs, error) {
	view, err := s.Query(ctx, q)
	if err != nil {
		return KPIs{}, err
	}
	return ComputeKPIs(view), nil
}

// AppraisalSummary joins the bullet text of every starred record, in store
// order, one per line.
func (s *Service) AppraisalSummary(ctx context.Context) (string, error) {
	records, err := s.List(ctx)
	if err != nil {
		return "", err
	}
	var lines []string
	for _, r := range records {
		if r.Starred {
			lines = append(lines, r.BulletText())
		}
	}
	if len(lines) == 0 {
		return "", ErrNoStarred
	}
	return strings.Join(lines, "\n"), nil
}

// SeedSamples stores the sample records when the store is empty and reports
// how many were added.
func (s *Service) SeedSamples(ctx context.Context) (int, error) {
	records, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(records) > 0 {
		return 0, nil
	}

	samples := SampleRecords()
	// Inserted oldest first so the store lists them in sample order.
	for i := len(samples) - 1; i >= 0; i-- {
		if err := s.records.Create(ctx, &samples[i]); err != nil {
			return 0, fmt.Errorf("seeding sample %s: %w", samples[i].ID, err)
		}
	}
	s.logActivity(ctx, activity.TypeSamplesSeeded, "", fmt.Sprintf("seeded %d sample records", len(samples)))
	s.logger.Info("seeded sample records", "count", len(samples))
	return len(samples), nil
}

func (s *Service) logActivity(ctx context.Context, typ activity.ActivityType, recordID, summary string) {
	if s.activities == nil {
		return
	}
	entry := &activity.ActivityEntry{
		ActivityType: typ,
		Summary:      summary,
		CreatedAt:    s.now(),
	}
	if recordID != "" {
		entry.RecordID = &recordID
	}
	if err := s.activities.Log(ctx, entry); err != nil {
		s.logger.Warn("failed to log activity", "type", typ, "record_id", recordID, "error", err)
	}
}

func normalize(rec *Record) {
	rec.Team = nonNil(rec.Team)
	rec.Contribution.Responsibilities = nonNil(rec.Contribution.Responsibilities)
	rec.Tech.Languages = nonNil(rec.Tech.Languages)
	rec.Tech.Frameworks = nonNil(rec.Tech.Frameworks)
	rec.Tech.Infrastructure = nonNil(rec.Tech.Infrastructure)
	rec.Impact = nonNil(rec.Impact)
	rec.AIValueAdd.Features = nonNil(rec.AIValueAdd.Features)
	rec.Evidence = nonNil(rec.Evidence)
	rec.Feedback = nonNil(rec.Feedback)
}

func clone(r Record) Record {
	r.Team = slices.Clone(r.Team)
	r.Contribution.Responsibilities = slices.Clone(r.Contribution.Responsibilities)
	r.Tech.Languages = slices.Clone(r.Tech.Languages)
	r.Tech.Frameworks = slices.Clone(r.Tech.Frameworks)
	r.Tech.Infrastructure = slices.Clone(r.Tech.Infrastructure)
	r.Impact = slices.Clone(r.Impact)
	r.AIValueAdd.Features = slices.Clone(r.AIValueAdd.Features)
	r.Evidence = slices.Clone(r.Evidence)
	r.Feedback = slices.Clone(r.Feedback)
	r.HoursSavedPerMonth = clonePtr(r.HoursSavedPerMonth)
	r.UsersImpacted = clonePtr(r.UsersImpacted)
	r.BugsFixed = clonePtr(r.BugsFixed)
	r.ManualStepsEliminated = clonePtr(r.ManualStepsEliminated)
	normalize(&r)
	return r
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
