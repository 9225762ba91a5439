package catalog

import (
	"context"
	"sort"
)

type InMemoryRepository struct {
	items map[string]MenuItem
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items: make(map[string]MenuItem),
	}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]MenuItem, error) {
	items := make([]MenuItem, 0, len(r.items))
	for _, m := range r.items {
		items = append(items, m)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*MenuItem, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &m, nil
}

func (r *InMemoryRepository) Upsert(ctx context.Context, item *MenuItem) error {
	r.items[item.ID] = *item
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *InMemoryRepository) Count(ctx context.Context) (int, error) {
	return len(r.items), nil
}
