package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rpggio/impact/internal/domain/record"
	"github.com/rpggio/impact/internal/repository"
)

const recordColumns = `
	id, project_name, category, status, team, start_date, end_date,
	problem_what, problem_why, contribution_summary, responsibilities,
	tech, impact, hours_saved_per_month, users_impacted, bugs_fixed,
	manual_steps_eliminated, ai_features, ai_outcome, before_text, after_text,
	evidence, feedback, final_bullet, starred, created_at, updated_at`

// RecordRepository implements record.RecordRepository for SQLite
type RecordRepository struct {
	db *DB
}

// NewRecordRepository creates a new RecordRepository
func NewRecordRepository(db *DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Create inserts a record at the front of the store order
func (r *RecordRepository) Create(ctx context.Context, rec *record.Record) error {
	row, err := encodeRecord(rec)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO records (
			position, id, project_name, category, status, team, start_date, end_date,
			problem_what, problem_why, contribution_summary, responsibilities,
			tech, impact, hours_saved_per_month, users_impacted, bugs_fixed,
			manual_steps_eliminated, ai_features, ai_outcome, before_text, after_text,
			evidence, feedback, final_bullet, starred, created_at, updated_at
		)
		SELECT COALESCE(MAX(position), 0) + 1,
			?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?
		FROM records
	`

	if _, err := r.db.ExecContext(ctx, query, row.args()...); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// Get retrieves a record by ID
func (r *RecordRepository) Get(ctx context.Context, id string) (*record.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE id = ?`

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return rec, nil
}

// Update replaces every field of a stored record. Store order is unchanged.
func (r *RecordRepository) Update(ctx context.Context, rec *record.Record) error {
	row, err := encodeRecord(rec)
	if err != nil {
		return err
	}

	query := `
		UPDATE records SET
			project_name = ?, category = ?, status = ?, team = ?, start_date = ?, end_date = ?,
			problem_what = ?, problem_why = ?, contribution_summary = ?, responsibilities = ?,
			tech = ?, impact = ?, hours_saved_per_month = ?, users_impacted = ?, bugs_fixed = ?,
			manual_steps_eliminated = ?, ai_features = ?, ai_outcome = ?, before_text = ?, after_text = ?,
			evidence = ?, feedback = ?, final_bullet = ?, starred = ?, created_at = ?, updated_at = ?
		WHERE id = ?
	`

	args := append(row.args()[1:], rec.ID)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}
	return requireAffected(result)
}

// Delete removes a record
func (r *RecordRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return requireAffected(result)
}

// List returns every record, newest-inserted first
func (r *RecordRepository) List(ctx context.Context) ([]record.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records ORDER BY position DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer rows.Close()

	records := []record.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating record rows: %w", err)
	}
	return records, nil
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// recordRow is a record flattened to column values, in recordColumns order.
type recordRow struct {
	id, projectName, category, status, team, startDate, endDate    string
	problemWhat, problemWhy, contributionSummary, responsibilities string
	tech, impact                                                   string
	hours, users, bugs, steps                                      *float64
	aiFeatures, aiOutcome, beforeText, afterText                   string
	evidence, feedback, finalBullet                                string
	starred                                                        bool
	createdAt, updatedAt                                           string
}

func (row recordRow) args() []any {
	return []any{
		row.id, row.projectName, row.category, row.status, row.team, row.startDate, row.endDate,
		row.problemWhat, row.problemWhy, row.contributionSummary, row.responsibilities,
		row.tech, row.impact, row.hours, row.users, row.bugs,
		row.steps, row.aiFeatures, row.aiOutcome, row.beforeText, row.afterText,
		row.evidence, row.feedback, row.finalBullet, row.starred, row.createdAt, row.updatedAt,
	}
}

func encodeRecord(rec *record.Record) (recordRow, error) {
	row := recordRow{
		id:                  rec.ID,
		projectName:         rec.ProjectName,
		category:            string(rec.Category),
		status:              string(rec.Status),
		startDate:           rec.StartDate,
		endDate:             rec.EndDate,
		problemWhat:         rec.Problem.What,
		problemWhy:          rec.Problem.Why,
		contributionSummary: rec.Contribution.Summary,
		hours:               rec.HoursSavedPerMonth,
		users:               rec.UsersImpacted,
		bugs:                rec.BugsFixed,
		steps:               rec.ManualStepsEliminated,
		aiOutcome:           rec.AIValueAdd.Outcome,
		beforeText:          rec.BeforeText,
		afterText:           rec.AfterText,
		finalBullet:         rec.FinalBullet,
		starred:             rec.Starred,
		createdAt:           formatTime(rec.CreatedAt),
		updatedAt:           formatTime(rec.UpdatedAt),
	}

	fields := []struct {
		dst *string
		src any
	}{
		{&row.team, nonNil(rec.Team)},
		{&row.responsibilities, nonNil(rec.Contribution.Responsibilities)},
		{&row.tech, rec.Tech},
		{&row.impact, nonNil(rec.Impact)},
		{&row.aiFeatures, nonNil(rec.AIValueAdd.Features)},
		{&row.evidence, nonNil(rec.Evidence)},
		{&row.feedback, nonNil(rec.Feedback)},
	}
	for _, f := range fields {
		data, err := json.Marshal(f.src)
		if err != nil {
			return recordRow{}, fmt.Errorf("failed to encode record %s: %w", rec.ID, err)
		}
		*f.dst = string(data)
	}
	return row, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(s rowScanner) (*record.Record, error) {
	var (
		row                       recordRow
		hours, users, bugs, steps sql.NullFloat64
	)
	err := s.Scan(
		&row.id, &row.projectName, &row.category, &row.status, &row.team, &row.startDate, &row.endDate,
		&row.problemWhat, &row.problemWhy, &row.contributionSummary, &row.responsibilities,
		&row.tech, &row.impact, &hours, &users, &bugs,
		&steps, &row.aiFeatures, &row.aiOutcome, &row.beforeText, &row.afterText,
		&row.evidence, &row.feedback, &row.finalBullet, &row.starred, &row.createdAt, &row.updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rec := &record.Record{
		ID:                    row.id,
		ProjectName:           row.projectName,
		Category:              record.Category(row.category),
		Status:                record.Status(row.status),
		StartDate:             row.startDate,
		EndDate:               row.endDate,
		Problem:               record.Problem{What: row.problemWhat, Why: row.problemWhy},
		Contribution:          record.Contribution{Summary: row.contributionSummary},
		HoursSavedPerMonth:    nullFloat(hours),
		UsersImpacted:         nullFloat(users),
		BugsFixed:             nullFloat(bugs),
		ManualStepsEliminated: nullFloat(steps),
		AIValueAdd:            record.AIValueAdd{Outcome: row.aiOutcome},
		BeforeText:            row.beforeText,
		AfterText:             row.afterText,
		FinalBullet:           row.finalBullet,
		Starred:               row.starred,
	}

	fields := []struct {
		src string
		dst any
	}{
		{row.team, &rec.Team},
		{row.responsibilities, &rec.Contribution.Responsibilities},
		{row.tech, &rec.Tech},
		{row.impact, &rec.Impact},
		{row.aiFeatures, &rec.AIValueAdd.Features},
		{row.evidence, &rec.Evidence},
		{row.feedback, &rec.Feedback},
	}
	for _, f := range fields {
		if err := json.Unmarshal([]byte(f.src), f.dst); err != nil {
			return nil, fmt.Errorf("failed to decode record %s: %w", row.id, err)
		}
	}
	rec.Tech.Languages = nonNil(rec.Tech.Languages)
	rec.Tech.Frameworks = nonNil(rec.Tech.Frameworks)
	rec.Tech.Infrastructure = nonNil(rec.Tech.Infrastructure)

	if rec.CreatedAt, err = parseTime(row.createdAt); err != nil {
		return nil, err
	}
	if rec.UpdatedAt, err = parseTime(row.updatedAt); err != nil {
		return nil, err
	}
	return rec, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
