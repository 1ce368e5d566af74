package event

import (
	"context"
	"time"
)

// Repository defines the operations for retrieving Event entities.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Event, error)
	// ListByDate returns events whose date falls on the given day
	// (time-of-day of the argument is ignored).
	ListByDate(ctx context.Context, day time.Time) ([]*Event, error)
}
