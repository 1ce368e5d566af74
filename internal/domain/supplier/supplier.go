package supplier

import (
	"database/sql"
	"time"
)

// Supplier represents a supplier eligible to be assigned to events and to
// receive notifications about them.
type Supplier struct {
	ID               int64
	Name             string
	Phone            sql.NullString // optional; messaging channel address
	Email            sql.NullString // optional; email channel address
	PushSubscription sql.NullString // optional; JSON-encoded browser push subscription
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
