package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Seed Default Pricelist (FIRST RUN ONLY)
// --------------------------------------------------
func (s *Service) SeedDefaultMenu(ctx context.Context) (int, error) {

	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	for i := range DefaultMenu {
		item := DefaultMenu[i]
		if err := s.repo.Upsert(ctx, &item); err != nil {
			return 0, err
		}
	}

	return len(DefaultMenu), nil
}

// --------------------------------------------------
// List Menu
// --------------------------------------------------
func (s *Service) ListMenu(ctx context.Context, availableOnly bool) ([]MenuItem, error) {

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if !availableOnly {
		return items, nil
	}

	filtered := make([]MenuItem, 0, len(items))
	for _, m := range items {
		if m.Available {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

// --------------------------------------------------
// Get Item
// --------------------------------------------------
func (s *Service) GetItem(ctx context.Context, id string) (*MenuItem, error) {
	if id == "" {
		return nil, errors.New("missing item id")
	}
	return s.repo.GetByID(ctx, id)
}

// --------------------------------------------------
// Save Item (CREATE OR EDIT)
// --------------------------------------------------
func (s *Service) SaveItem(ctx context.Context, item *MenuItem) error {

	if item.Name == "" {
		return errors.New("missing item name")
	}
	if !IsValidCategory(item.Category) {
		return errors.New("unknown category")
	}
	if item.PriceR < 0 {
		return errors.New("negative price")
	}

	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	// Large price is meaningless without the size option.
	if !item.HasSizeOption {
		item.PriceL = nil
	}

	return s.repo.Upsert(ctx, item)
}

// --------------------------------------------------
// Delete Item
// --------------------------------------------------
func (s *Service) DeleteItem(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("missing item id")
	}
	return s.repo.Delete(ctx, id)
}

// --------------------------------------------------
// Generic Add-Ons (category = "Add Ons", available only)
// --------------------------------------------------
func (s *Service) ListAddOns(ctx context.Context) ([]AddOn, error) {

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	var addOns []AddOn
	for _, m := range items {
		if m.Category != CategoryAddOns || !m.Available {
			continue
		}
		addOns = append(addOns, AddOn{
			ID:    m.ID,
			Name:  m.Name,
			Price: m.PriceR,
		})
	}
	return addOns, nil
}
