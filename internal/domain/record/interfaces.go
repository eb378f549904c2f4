package record

import (
	"context"

	"github.com/rpggio/impact/internal/domain/activity"
)

// RecordRepository provides persistence for records. List returns records in
// store order, newest-inserted first.
type RecordRepository interface {
	Create(ctx context.Context, rec *Record) error
	Get(ctx context.Context, id string) (*Record, error)
	Update(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Record, error)
}

// ActivityRepository logs record activities.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.ActivityEntry) error
}
