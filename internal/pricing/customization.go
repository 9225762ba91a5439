package pricing

import "strings"

// Size of a drink. Large only takes effect when the item defines
// a large price.
type Size string

const (
	SizeRegular Size = "R"
	SizeLarge   Size = "L"
)

// SugarLevel is one of five fixed percentages.
type SugarLevel string

const (
	Sugar0   SugarLevel = "0%"
	Sugar25  SugarLevel = "25%"
	Sugar50  SugarLevel = "50%"
	Sugar75  SugarLevel = "75%"
	Sugar100 SugarLevel = "100%"
)

var sugarLevels = map[SugarLevel]bool{
	Sugar0: true, Sugar25: true, Sugar50: true, Sugar75: true, Sugar100: true,
}

// IceLevel is one of three fixed levels.
type IceLevel string

const (
	NoIce     IceLevel = "No Ice"
	LessIce   IceLevel = "Less Ice"
	NormalIce IceLevel = "Normal Ice"
)

var iceLevels = map[IceLevel]bool{
	NoIce: true, LessIce: true, NormalIce: true,
}

// Temperature applies to espresso drinks only.
type Temperature string

const (
	Hot  Temperature = "Hot"
	Cold Temperature = "Cold"
)

// DiscountType selects how a discount value is applied.
type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

// Discount is a per-line price reduction. Absence (nil) is the
// canonical form of "no discount"; a zero or negative value never
// becomes a Discount.
type Discount struct {
	Type  DiscountType `json:"type"`
	Value float64      `json:"value"`
}

// NewDiscount normalizes a raw discount input. Values <= 0 mean
// no discount and return nil.
func NewDiscount(t DiscountType, value float64) *Discount {
	if value <= 0 {
		return nil
	}
	if t != DiscountPercent && t != DiscountFixed {
		return nil
	}
	return &Discount{Type: t, Value: value}
}

// AmountOn computes the discount amount against a pre-discount
// subtotal. Never negative.
func (d *Discount) AmountOn(subtotal float64) float64 {
	if d == nil {
		return 0
	}
	var amt float64
	if d.Type == DiscountPercent {
		amt = subtotal * d.Value / 100
	} else {
		amt = d.Value
	}
	if amt < 0 {
		return 0
	}
	return amt
}

// LineAddOn is an add-on selection resolved to its catalog entry,
// so the line keeps the price it was sold at.
type LineAddOn struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Customization is the normalized set of modifiers on a line.
// Which fields are present depends on the item kind: espresso
// carries Temperature and no Sugar with Ice forced to Normal Ice;
// plain drinks carry Sugar and Ice; non-drinks carry none of them.
type Customization struct {
	Size        Size         `json:"size"`
	Temperature *Temperature `json:"temperature,omitempty"`
	Sugar       *SugarLevel  `json:"sugar,omitempty"`
	Ice         IceLevel     `json:"ice,omitempty"`
	AddOns      []LineAddOn  `json:"addOns"`
	Discount    *Discount    `json:"discount,omitempty"`
}

// AddOnsTotal sums the prices of the selected add-ons.
func (c Customization) AddOnsTotal() float64 {
	var total float64
	for _, a := range c.AddOns {
		total += a.Price
	}
	return total
}

// Tags renders the modifier tags shown on receipts and exports:
// size, temperature, sugar when not 100%, ice when not Normal Ice.
func (c Customization) Tags() []string {
	var tags []string
	if c.Size != "" {
		tags = append(tags, string(c.Size))
	}
	if c.Temperature != nil {
		tags = append(tags, string(*c.Temperature))
	}
	if c.Sugar != nil && *c.Sugar != Sugar100 {
		tags = append(tags, string(*c.Sugar)+" sugar")
	}
	if c.Ice != "" && c.Ice != NormalIce {
		tags = append(tags, string(c.Ice))
	}
	return tags
}

// AddOnNames joins the selected add-on names for display.
func (c Customization) AddOnNames() string {
	if len(c.AddOns) == 0 {
		return ""
	}
	names := make([]string, len(c.AddOns))
	for i, a := range c.AddOns {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}
