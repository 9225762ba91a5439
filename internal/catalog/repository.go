package catalog

import "context"

// Repository defines all database operations for the menu catalog.
type Repository interface {

	// List returns the full catalog ordered by name.
	List(ctx context.Context) ([]MenuItem, error)

	// GetByID returns a single catalog entry.
	GetByID(ctx context.Context, id string) (*MenuItem, error)

	// Upsert creates or replaces a catalog entry.
	Upsert(ctx context.Context, item *MenuItem) error

	// Delete removes a catalog entry.
	Delete(ctx context.Context, id string) error

	// Count reports how many entries exist (used for first-run seeding).
	Count(ctx context.Context) (int, error)
}
