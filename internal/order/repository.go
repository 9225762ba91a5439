package order

import (
	"context"
	"time"
)

// Repository defines all database operations for orders.
//
// Implementations prune records older than 30 days on their own
// schedule; callers must work correctly on whatever subset remains.
type Repository interface {

	// GetAll returns orders, most recent first.
	GetAll(ctx context.Context) ([]Order, error)

	// GetByID returns a single order.
	GetByID(ctx context.Context, id string) (*Order, error)

	// GetByDateRange returns orders created within [from, to],
	// most recent first.
	GetByDateRange(ctx context.Context, from, to time.Time) ([]Order, error)

	// Create persists a new order and assigns its per-day number in
	// one atomic step: the counter resets to 1 on the first order of
	// a new calendar day, increments otherwise, and a failed insert
	// never consumes a number. day is the ISO date string of the
	// current local day.
	Create(ctx context.Context, o *Order, day string) (int, error)

	// UpdateStatus sets the fulfillment status.
	UpdateStatus(ctx context.Context, id string, status Status) error
}
