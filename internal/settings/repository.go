package settings

import "context"

// Repository persists the single store-settings row.
type Repository interface {
	Get(ctx context.Context) (*StoreSettings, error)
	Save(ctx context.Context, s *StoreSettings) error
}
