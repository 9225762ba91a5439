package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"oceanbrew/internal/order"
)

var ErrBadDateRange = errors.New("invalid date range")

// Orders is the slice of the order store reporting reads from.
// Reads are always fresh: summaries are recomputed from whatever
// subset the store returns.
type Orders interface {
	GetAll(ctx context.Context) ([]order.Order, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]order.Order, error)
}

// Archiver stores a copy of an export artifact. Optional.
type Archiver interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

type Service struct {
	orders   Orders
	archiver Archiver
	now      func() time.Time
}

// NewService wires the aggregator. archiver may be nil.
func NewService(orders Orders, archiver Archiver) *Service {
	return &Service{
		orders:   orders,
		archiver: archiver,
		now:      time.Now,
	}
}

// Summary is the full reports view.
type Summary struct {
	ByDay      []DayTotal      `json:"byDay"`
	ByMonth    []MonthTotal    `json:"byMonth"`
	Months     MonthComparison `json:"months"`
	ByItem     []ItemSales     `json:"byItem"`
	ByCategory []CategoryTotal `json:"byCategory"`
	OrderCount int             `json:"orderCount"`
}

// Dashboard is the day-scoped home view.
type Dashboard struct {
	OrderCount   int        `json:"orderCount"`
	PendingCount int        `json:"pendingCount"`
	DoneSales    float64    `json:"doneSales"`
	BestSeller   *ItemSales `json:"bestSeller"`
}

// --------------------------------------------------
// Reports (whatever the store retains, typically 30 days)
// --------------------------------------------------
func (s *Service) BuildSummary(ctx context.Context) (*Summary, error) {

	orders, err := s.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		ByDay:      SalesByDay(orders),
		ByMonth:    SalesByMonth(orders),
		Months:     CompareMonths(orders, s.now()),
		ByItem:     SalesByItem(orders),
		ByCategory: SalesByCategory(orders),
		OrderCount: len(orders),
	}, nil
}

// --------------------------------------------------
// Dashboard (caller passes today's orders)
// --------------------------------------------------
func (s *Service) BuildDashboard(orders []order.Order) *Dashboard {

	pending := 0
	for _, o := range orders {
		if o.Status == order.StatusPending {
			pending++
		}
	}

	return &Dashboard{
		OrderCount:   len(orders),
		PendingCount: pending,
		DoneSales:    DoneTotal(orders),
		BestSeller:   BestSeller(orders),
	}
}

// --------------------------------------------------
// Export (date range inclusive by calendar day)
// --------------------------------------------------

// Export renders a date-bounded export. format is "csv" or "json".
func (s *Service) Export(ctx context.Context, fromDay, toDay, format string) (filename string, body []byte, err error) {

	from, err := time.ParseInLocation("2006-01-02", fromDay, time.Local)
	if err != nil {
		return "", nil, ErrBadDateRange
	}
	to, err := time.ParseInLocation("2006-01-02", toDay, time.Local)
	if err != nil {
		return "", nil, ErrBadDateRange
	}
	if to.Before(from) {
		return "", nil, ErrBadDateRange
	}

	// Both endpoint days are included.
	end := to.AddDate(0, 0, 1).Add(-time.Nanosecond)

	orders, err := s.orders.GetByDateRange(ctx, from, end)
	if err != nil {
		return "", nil, err
	}

	switch format {
	case "json":
		body, err = OrdersToJSON(orders)
	case "csv":
		body, err = OrdersToCSV(orders)
	default:
		return "", nil, fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return "", nil, err
	}

	filename = ExportFilename(from, to, format)

	s.archive(ctx, filename, body, format)

	return filename, body, nil
}

// archive uploads a copy of the export when object storage is
// configured. Failures are logged, never surfaced: the download
// itself must not depend on the archive.
func (s *Service) archive(ctx context.Context, filename string, body []byte, format string) {

	if s.archiver == nil {
		return
	}

	contentType := "text/csv; charset=utf-8"
	if format == "json" {
		contentType = "application/json"
	}

	key := "exports/" + filename
	if _, err := s.archiver.Put(ctx, key, body, contentType); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("export archive failed")
		return
	}

	logrus.WithField("key", key).Info("export archived")
}
