package order

import (
	"time"

	"oceanbrew/internal/pricing"
)

// Status is the fulfillment state. The only legal transition is
// pending → done.
type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
)

// Order is a finalized, numbered collection of lines with aggregate
// totals. OrderNumber is scoped to the local calendar day.
type Order struct {
	ID          string              `json:"id"`
	OrderNumber int                 `json:"orderNumber"`
	Items       []pricing.OrderLine `json:"items"`
	Subtotal    float64             `json:"subtotal"`
	Discount    float64             `json:"discount"`
	Total       float64             `json:"total"`
	CreatedAt   time.Time           `json:"createdAt"`
	Status      Status              `json:"status"`
}

// Day returns the order's local calendar day as an ISO date string.
func (o Order) Day() string {
	return o.CreatedAt.Local().Format("2006-01-02")
}
