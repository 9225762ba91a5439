package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"oceanbrew/internal/catalog"
	"oceanbrew/internal/pricing"
)

var (
	ErrEmptyCart    = errors.New("order has no lines")
	ErrInvalidState = errors.New("invalid status transition")
	ErrUnknownItem  = errors.New("unknown menu item")
)

// Catalog is the slice of the catalog service order intake needs.
type Catalog interface {
	GetItem(ctx context.Context, id string) (*catalog.MenuItem, error)
	ListAddOns(ctx context.Context) ([]catalog.AddOn, error)
}

// CartLine is one order-entry selection before pricing.
type CartLine struct {
	MenuItemID string            `json:"menuItemId"`
	Selection  pricing.Selection `json:"selection"`
}

type Service struct {
	repo    Repository
	catalog Catalog
	now     func() time.Time
}

func NewService(repo Repository, cat Catalog) *Service {
	return &Service{
		repo:    repo,
		catalog: cat,
		now:     time.Now,
	}
}

// --------------------------------------------------
// Create Order (PRICE + NUMBER + PERSIST)
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, cart []CartLine) (*Order, error) {

	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	addOns, err := s.catalog.ListAddOns(ctx)
	if err != nil {
		return nil, err
	}

	lines := make([]pricing.OrderLine, 0, len(cart))
	for _, cl := range cart {
		item, err := s.catalog.GetItem(ctx, cl.MenuItemID)
		if err != nil {
			if errors.Is(err, catalog.ErrItemNotFound) {
				return nil, ErrUnknownItem
			}
			return nil, err
		}

		line, err := pricing.PriceLine(*item, cl.Selection, addOns)
		if err != nil {
			return nil, err
		}
		line.ID = uuid.New().String()
		lines = append(lines, *line)
	}

	totals := pricing.Aggregate(lines)

	now := s.now()
	o := &Order{
		ID:        uuid.New().String(),
		Items:     lines,
		Subtotal:  totals.Subtotal,
		Discount:  totals.Discount,
		Total:     totals.Total,
		CreatedAt: now,
		Status:    StatusPending,
	}

	number, err := s.repo.Create(ctx, o, now.Local().Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	o.OrderNumber = number

	return o, nil
}

// --------------------------------------------------
// Queries
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	if id == "" {
		return nil, errors.New("missing order id")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Order, error) {
	return s.repo.GetAll(ctx)
}

// ListPending is the barista fulfillment queue.
func (s *Service) ListPending(ctx context.Context) ([]Order, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]Order, 0, len(all))
	for _, o := range all {
		if o.Status == StatusPending {
			pending = append(pending, o)
		}
	}
	return pending, nil
}

// ListToday returns orders created on the current local day.
func (s *Service) ListToday(ctx context.Context) ([]Order, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now().Local().Format("2006-01-02")
	orders := make([]Order, 0, len(all))
	for _, o := range all {
		if o.Day() == today {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (s *Service) ListRange(ctx context.Context, from, to time.Time) ([]Order, error) {
	return s.repo.GetByDateRange(ctx, from, to)
}

// --------------------------------------------------
// Mark Done (ONE-WAY TRANSITION)
// --------------------------------------------------
func (s *Service) MarkDone(ctx context.Context, id string) error {

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if o.Status != StatusPending {
		return ErrInvalidState
	}

	return s.repo.UpdateStatus(ctx, id, StatusDone)
}
