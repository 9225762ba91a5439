package pricing

import (
	"errors"
	"fmt"

	"oceanbrew/internal/catalog"
)

var (
	ErrItemUnavailable = errors.New("menu item is not available")
	ErrUnknownAddOn    = errors.New("unknown add-on")
	ErrBadSugarLevel   = errors.New("invalid sugar level")
	ErrBadIceLevel     = errors.New("invalid ice level")
)

// Selection is the raw customization input collected at order entry,
// before normalization against the item's kind.
type Selection struct {
	Size        Size         `json:"size"`
	Temperature *Temperature `json:"temperature,omitempty"`
	Sugar       *SugarLevel  `json:"sugar,omitempty"`
	Ice         *IceLevel    `json:"ice,omitempty"`
	AddOnIDs    []string     `json:"addOnIds"`
	Discount    *Discount    `json:"discount,omitempty"`
	Quantity    int          `json:"quantity"`
}

// OrderLine is one configured, quantity-priced entry in an order.
type OrderLine struct {
	ID            string           `json:"id"`
	MenuItemID    string           `json:"menuItemId"`
	Name          string           `json:"name"`
	Category      catalog.Category `json:"category"`
	BasePrice     float64          `json:"basePrice"`
	Customization Customization    `json:"customization"`
	Quantity      int              `json:"quantity"`
	LineTotal     float64          `json:"lineTotal"`
}

// Subtotal is the pre-discount amount of the line.
func (l OrderLine) Subtotal() float64 {
	return (l.BasePrice + l.Customization.AddOnsTotal()) * float64(l.Quantity)
}

// DiscountAmount recomputes the line's discount from its stored
// spec and pre-discount subtotal, never from LineTotal.
func (l OrderLine) DiscountAmount() float64 {
	amt := l.Customization.Discount.AmountOn(l.Subtotal())
	if sub := l.Subtotal(); amt > sub {
		return sub
	}
	return amt
}

// PriceLine turns a menu item plus a selection into a priced line.
// addOnCatalog is the generic add-on list; espresso drinks resolve
// against their own fixed catalog instead.
func PriceLine(item catalog.MenuItem, sel Selection, addOnCatalog []catalog.AddOn) (*OrderLine, error) {

	if !item.Available {
		return nil, ErrItemUnavailable
	}

	cust, err := normalize(item.Kind(), sel, addOnCatalog)
	if err != nil {
		return nil, err
	}

	// No zero- or negative-quantity lines are representable.
	qty := sel.Quantity
	if qty < 1 {
		qty = 1
	}

	base := basePrice(item, cust.Size)
	subtotal := (base + cust.AddOnsTotal()) * float64(qty)

	discountAmt := cust.Discount.AmountOn(subtotal)
	lineTotal := subtotal - discountAmt
	if lineTotal < 0 {
		lineTotal = 0
	}

	return &OrderLine{
		MenuItemID:    item.ID,
		Name:          item.Name,
		Category:      item.Category,
		BasePrice:     base,
		Customization: cust,
		Quantity:      qty,
		LineTotal:     lineTotal,
	}, nil
}

// basePrice selects the per-size price. A requested large size with
// no large price defined silently falls back to the regular price.
func basePrice(item catalog.MenuItem, size Size) float64 {
	if size == SizeLarge && item.HasSizeOption && item.PriceL != nil {
		return *item.PriceL
	}
	return item.PriceR
}

// normalize maps a raw selection onto the fields valid for the item
// kind, dropping everything else even when populated upstream.
func normalize(kind catalog.ItemKind, sel Selection, addOnCatalog []catalog.AddOn) (Customization, error) {

	cust := Customization{
		Size:   sel.Size,
		AddOns: []LineAddOn{},
	}
	if cust.Size != SizeLarge {
		cust.Size = SizeRegular
	}

	// Zero or negative discount values mean no discount.
	if sel.Discount != nil {
		cust.Discount = NewDiscount(sel.Discount.Type, sel.Discount.Value)
	}

	switch kind {
	case catalog.KindEspresso:
		temp := Hot
		if sel.Temperature != nil {
			temp = *sel.Temperature
		}
		if temp != Hot && temp != Cold {
			return Customization{}, fmt.Errorf("invalid temperature %q", temp)
		}
		cust.Temperature = &temp
		cust.Ice = NormalIce

		addOns, err := resolveAddOns(sel.AddOnIDs, catalog.EspressoAddOns)
		if err != nil {
			return Customization{}, err
		}
		cust.AddOns = addOns

	case catalog.KindPlainDrink:
		sugar := Sugar100
		if sel.Sugar != nil {
			sugar = *sel.Sugar
		}
		if !sugarLevels[sugar] {
			return Customization{}, ErrBadSugarLevel
		}
		cust.Sugar = &sugar

		cust.Ice = NormalIce
		if sel.Ice != nil {
			if !iceLevels[*sel.Ice] {
				return Customization{}, ErrBadIceLevel
			}
			cust.Ice = *sel.Ice
		}

		addOns, err := resolveAddOns(sel.AddOnIDs, addOnCatalog)
		if err != nil {
			return Customization{}, err
		}
		cust.AddOns = addOns

	case catalog.KindNonDrink:
		// Non-drink categories never carry sugar/ice/add-ons.
	}

	return cust, nil
}

// resolveAddOns maps selected IDs onto the given catalog, deduplicated.
func resolveAddOns(ids []string, from []catalog.AddOn) ([]LineAddOn, error) {

	byID := make(map[string]catalog.AddOn, len(from))
	for _, a := range from {
		byID[a.ID] = a
	}

	seen := make(map[string]bool, len(ids))
	addOns := []LineAddOn{}

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		a, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAddOn, id)
		}
		addOns = append(addOns, LineAddOn{ID: a.ID, Name: a.Name, Price: a.Price})
	}

	return addOns, nil
}
