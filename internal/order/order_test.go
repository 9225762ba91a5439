package order

import (
	"context"
	"math"
	"testing"
	"time"

	"oceanbrew/internal/catalog"
	"oceanbrew/internal/pricing"
)

// --------------------------------------------------
// Mock Catalog
// --------------------------------------------------

type mockCatalog struct {
	items  map[string]catalog.MenuItem
	addOns []catalog.AddOn
}

func newMockCatalog() *mockCatalog {
	large := 95.0
	return &mockCatalog{
		items: map[string]catalog.MenuItem{
			"cl-5": {
				ID: "cl-5", Name: "Matcha", Category: catalog.CategoryClassic,
				PriceR: 75, PriceL: &large, Available: true, HasSizeOption: true,
			},
			"es-1": {
				ID: "es-1", Name: "Americano", Category: catalog.CategoryEspresso,
				PriceR: 130, Available: true,
			},
		},
		addOns: []catalog.AddOn{
			{ID: "ao-2", Name: "Nata de Coco", Price: 10},
		},
	}
}

func (m *mockCatalog) GetItem(ctx context.Context, id string) (*catalog.MenuItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, catalog.ErrItemNotFound
	}
	return &item, nil
}

func (m *mockCatalog) ListAddOns(ctx context.Context) ([]catalog.AddOn, error) {
	return m.addOns, nil
}

func newTestService() (*Service, *InMemoryRepository) {
	repo := NewInMemoryRepository()
	return NewService(repo, newMockCatalog()), repo
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestCreate_TotalsBalance(t *testing.T) {
	service, _ := newTestService()

	o, err := service.Create(context.Background(), []CartLine{
		{
			MenuItemID: "cl-5",
			Selection: pricing.Selection{
				Size:     pricing.SizeLarge,
				AddOnIDs: []string{"ao-2"},
				Discount: &pricing.Discount{Type: pricing.DiscountPercent, Value: 10},
				Quantity: 2,
			},
		},
		{
			MenuItemID: "es-1",
			Selection:  pricing.Selection{Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.Subtotal != 340 {
		t.Errorf("expected subtotal 340, got %v", o.Subtotal)
	}
	if o.Discount != 21 {
		t.Errorf("expected discount 21, got %v", o.Discount)
	}
	if math.Abs(o.Total-(o.Subtotal-o.Discount)) > 1e-9 {
		t.Errorf("total %v must equal subtotal - discount", o.Total)
	}
	if o.Status != StatusPending {
		t.Errorf("expected status pending, got %s", o.Status)
	}
}

func TestCreate_EmptyCartRejected(t *testing.T) {
	service, _ := newTestService()

	if _, err := service.Create(context.Background(), nil); err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCreate_UnknownItemRejected(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Create(context.Background(), []CartLine{
		{MenuItemID: "nope", Selection: pricing.Selection{Quantity: 1}},
	})
	if err != ErrUnknownItem {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
}

func TestOrderNumbering_SameDayIncrements(t *testing.T) {
	service, _ := newTestService()

	cart := []CartLine{{MenuItemID: "es-1", Selection: pricing.Selection{Quantity: 1}}}

	for want := 1; want <= 3; want++ {
		o, err := service.Create(context.Background(), cart)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.OrderNumber != want {
			t.Errorf("expected order number %d, got %d", want, o.OrderNumber)
		}
	}
}

func TestOrderNumbering_ResetsOnNewDay(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	for want := 1; want <= 4; want++ {
		n, err := repo.Create(ctx, &Order{ID: "d1-" + string(rune('0'+want))}, "2026-02-10")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != want {
			t.Errorf("day one: expected %d, got %d", want, n)
		}
	}

	n, err := repo.Create(ctx, &Order{ID: "d2-1"}, "2026-02-11")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("new day must reset the counter to 1, got %d", n)
	}
}

func TestOrderNumbering_FailedCreateLeavesNoGap(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	n, err := repo.Create(ctx, &Order{ID: "a"}, "2026-02-10")
	if err != nil || n != 1 {
		t.Fatalf("expected first number 1, got %d (%v)", n, err)
	}

	if _, err := repo.Create(ctx, &Order{ID: "a"}, "2026-02-10"); err == nil {
		t.Fatal("expected duplicate id to be rejected")
	}

	n, err = repo.Create(ctx, &Order{ID: "b"}, "2026-02-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("failed create must not consume a number, got %d", n)
	}
}

func TestMarkDone_OneWayTransition(t *testing.T) {
	service, _ := newTestService()

	o, err := service.Create(context.Background(), []CartLine{
		{MenuItemID: "es-1", Selection: pricing.Selection{Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.MarkDone(context.Background(), o.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := service.Get(context.Background(), o.ID)
	if got.Status != StatusDone {
		t.Fatalf("expected done, got %s", got.Status)
	}

	if err := service.MarkDone(context.Background(), o.ID); err != ErrInvalidState {
		t.Fatalf("expected ErrInvalidState on second transition, got %v", err)
	}
}

func TestListPending_FiltersQueue(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	cart := []CartLine{{MenuItemID: "es-1", Selection: pricing.Selection{Quantity: 1}}}

	first, _ := service.Create(ctx, cart)
	service.Create(ctx, cart)

	if err := service.MarkDone(ctx, first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pending, err := service.ListPending(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending order, got %d", len(pending))
	}
	if pending[0].Status != StatusPending {
		t.Errorf("expected pending status in queue")
	}
}

func TestListToday_ScopesToCurrentDay(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, newMockCatalog())
	ctx := context.Background()

	yesterday := &Order{
		ID:        "old",
		CreatedAt: time.Now().AddDate(0, 0, -1),
		Status:    StatusPending,
	}
	if _, err := repo.Create(ctx, yesterday, yesterday.Day()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	o, err := service.Create(ctx, []CartLine{
		{MenuItemID: "es-1", Selection: pricing.Selection{Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	today, err := service.ListToday(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(today) != 1 || today[0].ID != o.ID {
		t.Fatalf("expected only today's order, got %d", len(today))
	}
}
