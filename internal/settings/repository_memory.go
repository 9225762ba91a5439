package settings

import "context"

type InMemoryRepository struct {
	settings *StoreSettings
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Get(ctx context.Context) (*StoreSettings, error) {
	if r.settings == nil {
		d := Defaults()
		return &d, nil
	}
	cp := *r.settings
	return &cp, nil
}

func (r *InMemoryRepository) Save(ctx context.Context, s *StoreSettings) error {
	cp := *s
	r.settings = &cp
	return nil
}
