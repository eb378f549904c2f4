package activity

import "time"

// ActivityType represents the type of activity event
type ActivityType string

const (
	TypeRecordCreated    ActivityType = "record_created"
	TypeRecordUpdated    ActivityType = "record_updated"
	TypeRecordDeleted    ActivityType = "record_deleted"
	TypeRecordDuplicated ActivityType = "record_duplicated"
	TypeRecordStarred    ActivityType = "record_starred"
	TypeRecordUnstarred  ActivityType = "record_unstarred"
	TypeRecordsExported  ActivityType = "records_exported"
	TypeSamplesSeeded    ActivityType = "samples_seeded"
)

// ActivityEntry represents an event in the activity log
type ActivityEntry struct {
	ID           int64        `json:"id"`
	RecordID     *string      `json:"record_id,omitempty"`
	ActivityType ActivityType `json:"type"`
	Summary      string       `json:"summary"`
	Details      string       `json:"details,omitempty"` // JSON string
	CreatedAt    time.Time    `json:"created_at"`
}
