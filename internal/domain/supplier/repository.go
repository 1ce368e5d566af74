package supplier

import (
	"context"
)

// Repository defines the operations for retrieving Supplier entities.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Supplier, error)
	ListActive(ctx context.Context) ([]*Supplier, error)
	// ListByEvent returns the suppliers assigned to the given event.
	ListByEvent(ctx context.Context, eventID int64) ([]*Supplier, error)
}
