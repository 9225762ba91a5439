package report

import (
	"sort"
	"time"

	"oceanbrew/internal/order"
)

// All aggregations are pure reductions over the given orders: no
// hidden filtering beyond what the caller already applied, no
// assumption of sorted input, and aggregating twice yields the
// same result.

// DayTotal is one row of the sales-by-day summary.
type DayTotal struct {
	Day   string  `json:"day"`
	Total float64 `json:"total"`
}

// MonthTotal is one row of the sales-by-month summary.
type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// ItemSales sums quantity and revenue for one menu item across
// all lines that reference it.
type ItemSales struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Revenue    float64 `json:"revenue"`
}

// CategoryTotal sums line totals for one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// SalesByDay groups order totals by the ISO calendar day of creation,
// most recent day first.
func SalesByDay(orders []order.Order) []DayTotal {

	byDay := make(map[string]float64)
	for _, o := range orders {
		byDay[o.Day()] += o.Total
	}

	days := make([]DayTotal, 0, len(byDay))
	for day, total := range byDay {
		days = append(days, DayTotal{Day: day, Total: total})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Day > days[j].Day
	})
	return days
}

// SalesByMonth groups order totals by year-month, most recent first.
func SalesByMonth(orders []order.Order) []MonthTotal {

	byMonth := make(map[string]float64)
	for _, o := range orders {
		byMonth[o.CreatedAt.Local().Format("2006-01")] += o.Total
	}

	months := make([]MonthTotal, 0, len(byMonth))
	for month, total := range byMonth {
		months = append(months, MonthTotal{Month: month, Total: total})
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month > months[j].Month
	})
	return months
}

// MonthComparison is the current-versus-previous month summary for
// the reports header.
type MonthComparison struct {
	CurrentMonth  float64 `json:"currentMonth"`
	PreviousMonth float64 `json:"previousMonth"`
	ChangePercent float64 `json:"changePercent"`
}

// CompareMonths keys the monthly totals on the given local date.
// The percent change is 0 when the previous month had no sales.
func CompareMonths(orders []order.Order, now time.Time) MonthComparison {

	local := now.Local()
	current := local.Format("2006-01")

	// Step back from the first of the month: AddDate on a month-end
	// date (e.g. Mar 31) normalizes forward and lands in the current
	// month again.
	firstOfMonth := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, time.Local)
	previous := firstOfMonth.AddDate(0, -1, 0).Format("2006-01")

	var cmp MonthComparison
	for _, m := range SalesByMonth(orders) {
		switch m.Month {
		case current:
			cmp.CurrentMonth = m.Total
		case previous:
			cmp.PreviousMonth = m.Total
		}
	}

	if cmp.PreviousMonth > 0 {
		cmp.ChangePercent = (cmp.CurrentMonth - cmp.PreviousMonth) / cmp.PreviousMonth * 100
	}
	return cmp
}

// SalesByItem sums quantity and revenue per menu item across all
// lines of all orders, highest revenue first.
func SalesByItem(orders []order.Order) []ItemSales {

	byItem := make(map[string]*ItemSales)
	for _, o := range orders {
		for _, l := range o.Items {
			s, ok := byItem[l.MenuItemID]
			if !ok {
				s = &ItemSales{MenuItemID: l.MenuItemID, Name: l.Name}
				byItem[l.MenuItemID] = s
			}
			s.Quantity += l.Quantity
			s.Revenue += l.LineTotal
		}
	}

	items := make([]ItemSales, 0, len(byItem))
	for _, s := range byItem {
		items = append(items, *s)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Revenue > items[j].Revenue
	})
	return items
}

// SalesByCategory sums line totals per category, highest first.
func SalesByCategory(orders []order.Order) []CategoryTotal {

	byCat := make(map[string]float64)
	for _, o := range orders {
		for _, l := range o.Items {
			byCat[string(l.Category)] += l.LineTotal
		}
	}

	cats := make([]CategoryTotal, 0, len(byCat))
	for cat, total := range byCat {
		cats = append(cats, CategoryTotal{Category: cat, Total: total})
	}
	sort.Slice(cats, func(i, j int) bool {
		return cats[i].Total > cats[j].Total
	})
	return cats
}

// BestSeller returns the item with the highest summed quantity
// (not revenue), or nil for an empty input.
func BestSeller(orders []order.Order) *ItemSales {

	var best *ItemSales
	for _, s := range SalesByItem(orders) {
		s := s
		if best == nil || s.Quantity > best.Quantity {
			best = &s
		}
	}
	return best
}

// DoneTotal sums the totals of completed orders (dashboard figure).
func DoneTotal(orders []order.Order) float64 {

	var total float64
	for _, o := range orders {
		if o.Status == order.StatusDone {
			total += o.Total
		}
	}
	return total
}
