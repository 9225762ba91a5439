package receipt

import (
	"fmt"
	"strings"

	"oceanbrew/internal/order"
	"oceanbrew/internal/settings"
)

// width is the column count of the thermal paper.
const width = 32

var (
	doubleRule = strings.Repeat("=", width)
	singleRule = strings.Repeat("-", width)
)

// Format renders the fixed-width plain-text receipt for an order.
func Format(o *order.Order, s *settings.StoreSettings) string {

	var b strings.Builder

	// Header
	fmt.Fprintf(&b, "%s\n", s.StoreName)
	fmt.Fprintf(&b, "%s\n", doubleRule)
	if s.StoreAddress != "" {
		fmt.Fprintf(&b, "%s\n", s.StoreAddress)
	}
	if s.StorePhone != "" {
		fmt.Fprintf(&b, "Tel: %s\n", s.StorePhone)
	}
	if s.StoreEmail != "" {
		fmt.Fprintf(&b, "%s\n", s.StoreEmail)
	}
	fmt.Fprintf(&b, "%s\n\n", doubleRule)

	// Order info
	fmt.Fprintf(&b, "Order #: %d\n", o.OrderNumber)
	fmt.Fprintf(&b, "Date: %s\n", o.CreatedAt.Local().Format("1/2/2006, 3:04:05 PM"))
	fmt.Fprintf(&b, "%s\n", singleRule)

	// Items
	fmt.Fprintf(&b, "QTY  ITEM                    AMT\n")
	fmt.Fprintf(&b, "%s\n", singleRule)

	for _, item := range o.Items {
		// Truncate by runes so a multibyte name never splits mid-character.
		name := item.Name
		if r := []rune(name); len(r) > 20 {
			name = string(r[:20])
		}
		fmt.Fprintf(&b, "%2d   %-20s ₱%.2f\n", item.Quantity, name, item.LineTotal)

		if tags := item.Customization.Tags(); len(tags) > 0 {
			fmt.Fprintf(&b, "     %s\n", strings.Join(tags, " | "))
		}
		if names := item.Customization.AddOnNames(); names != "" {
			fmt.Fprintf(&b, "     +%s\n", names)
		}
	}

	// Totals
	fmt.Fprintf(&b, "%s\n", singleRule)
	fmt.Fprintf(&b, "Subtotal:               ₱%.2f\n", o.Subtotal)
	if o.Discount > 0 {
		fmt.Fprintf(&b, "Discount:              -₱%.2f\n", o.Discount)
	}
	fmt.Fprintf(&b, "TOTAL:                 ₱%.2f\n", o.Total)
	fmt.Fprintf(&b, "%s\n\n", doubleRule)

	// WiFi block
	if s.WifiSSID != "" && s.WifiPassword != "" {
		fmt.Fprintf(&b, "WiFi: %s\n", s.WifiSSID)
		fmt.Fprintf(&b, "Pass: %s\n\n", s.WifiPassword)
	}

	// Footer
	footer := s.ReceiptFooter
	if footer == "" {
		footer = "Thank you for visiting!"
	}
	fmt.Fprintf(&b, "%s\n", footer)
	fmt.Fprintf(&b, "Visit us again!\n\n\n")

	return b.String()
}
