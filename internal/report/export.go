package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"oceanbrew/internal/order"
	"oceanbrew/internal/pricing"
)

// utf8BOM prefixes CSV exports so spreadsheet apps pick up UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeaders = []string{
	"Order #",
	"Date",
	"Time",
	"Status",
	"Items",
	"Subtotal (₱)",
	"Discount (₱)",
	"Total (₱)",
}

// OrdersToCSV renders one row per order. Field quoting/escaping is
// RFC 4180 via encoding/csv.
func OrdersToCSV(orders []order.Order) ([]byte, error) {

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeaders); err != nil {
		return nil, err
	}

	for _, o := range orders {
		created := o.CreatedAt.Local()
		row := []string{
			fmt.Sprintf("%d", o.OrderNumber),
			created.Format("01/02/2006"),
			created.Format("3:04:05 PM"),
			string(o.Status),
			summarizeLines(o.Items),
			fmt.Sprintf("%.2f", o.Subtotal),
			fmt.Sprintf("%.2f", o.Discount),
			fmt.Sprintf("%.2f", o.Total),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// OrdersToJSON is the lossless structural dump.
func OrdersToJSON(orders []order.Order) ([]byte, error) {
	return json.MarshalIndent(orders, "", "  ")
}

// ExportFilename names an export after its bounding date range,
// e.g. orders_20260210_to_20260212.csv.
func ExportFilename(from, to time.Time, ext string) string {
	return fmt.Sprintf(
		"orders_%s_to_%s.%s",
		from.Local().Format("20060102"),
		to.Local().Format("20060102"),
		ext,
	)
}

// summarizeLines is the human-readable one-cell order summary:
// "2x Matcha (L | 50% sugar | Less Ice) +Nata de Coco; 1x Americano (R | Cold)".
func summarizeLines(lines []pricing.OrderLine) string {

	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, summarizeLine(l))
	}
	return strings.Join(parts, "; ")
}

func summarizeLine(l pricing.OrderLine) string {

	tags := l.Customization.Tags()

	s := fmt.Sprintf("%dx %s", l.Quantity, l.Name)
	if len(tags) > 0 {
		s += fmt.Sprintf(" (%s)", strings.Join(tags, " | "))
	}
	if names := l.Customization.AddOnNames(); names != "" {
		s += " +" + names
	}
	return s
}
