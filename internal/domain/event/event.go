package event

import (
	"database/sql"
	"time"
)

// Event represents a scheduled café event. Notification code treats it as an
// immutable snapshot; this slice never writes event records.
type Event struct {
	ID               int64
	Title            string
	EventDate        time.Time // date-only granularity
	StartTime        sql.NullString
	EndTime          sql.NullString
	Location         sql.NullString
	ParticipantCount int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
