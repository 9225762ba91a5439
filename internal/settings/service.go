package settings

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (*StoreSettings, error) {
	return s.repo.Get(ctx)
}

func (s *Service) Save(ctx context.Context, settings *StoreSettings) error {
	if settings.StoreName == "" {
		return errors.New("missing store name")
	}
	return s.repo.Save(ctx, settings)
}
