package pricing

// Totals are the order-level aggregates over a sequence of lines.
// Total always equals Subtotal - Discount: the discount is recomputed
// per line from its stored spec rather than read back from LineTotal,
// so rounding never compounds.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// Aggregate computes order-level totals from an ordered line sequence.
func Aggregate(lines []OrderLine) Totals {

	var t Totals
	for _, l := range lines {
		t.Subtotal += l.Subtotal()
		t.Discount += l.DiscountAmount()
		t.Total += l.LineTotal
	}
	return t
}
