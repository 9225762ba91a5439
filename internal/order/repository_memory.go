package order

import (
	"context"
	"errors"
	"sort"
	"time"
)

type InMemoryRepository struct {
	orders     map[string]*Order
	counterDay string
	counter    int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		orders: make(map[string]*Order),
	}
}

func (r *InMemoryRepository) GetAll(ctx context.Context) ([]Order, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	orders := make([]Order, 0, len(r.orders))
	for _, o := range r.orders {
		if o.CreatedAt.Before(cutoff) {
			delete(r.orders, o.ID)
			continue
		}
		orders = append(orders, *o)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *InMemoryRepository) GetByDateRange(ctx context.Context, from, to time.Time) ([]Order, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var orders []Order
	for _, o := range all {
		if o.CreatedAt.Before(from) || o.CreatedAt.After(to) {
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, o *Order, day string) (int, error) {
	// Reject before touching the counter: a failed insert must not
	// consume a number.
	if _, ok := r.orders[o.ID]; ok {
		return 0, errors.New("order id already exists")
	}

	if r.counterDay != day {
		r.counterDay = day
		r.counter = 1
	} else {
		r.counter++
	}

	cp := *o
	cp.OrderNumber = r.counter
	r.orders[o.ID] = &cp
	return r.counter, nil
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	o, ok := r.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	o.Status = status
	return nil
}
