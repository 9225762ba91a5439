package pricing

import (
	"math"
	"testing"

	"oceanbrew/internal/catalog"
)

const epsilon = 1e-9

func largePrice(p float64) *float64 { return &p }

var genericAddOns = []catalog.AddOn{
	{ID: "ao-1", Name: "Rock Salt and Cheese", Price: 35},
	{ID: "ao-2", Name: "Nata de Coco", Price: 10},
	{ID: "ao-3", Name: "Crushed Oreos", Price: 10},
}

var matcha = catalog.MenuItem{
	ID:            "cl-5",
	Name:          "Matcha",
	Category:      catalog.CategoryClassic,
	PriceR:        75,
	PriceL:        largePrice(95),
	Available:     true,
	HasSizeOption: true,
}

var americano = catalog.MenuItem{
	ID:        "es-1",
	Name:      "Americano",
	Category:  catalog.CategoryEspresso,
	PriceR:    130,
	Available: true,
}

func sugar(s SugarLevel) *SugarLevel  { return &s }
func ice(i IceLevel) *IceLevel        { return &i }
func temp(t Temperature) *Temperature { return &t }

// --------------------------------------------------
// SPEC SCENARIOS
// --------------------------------------------------

func TestPriceLine_MatchaLargeWithAddOnAndPercentDiscount(t *testing.T) {
	line, err := PriceLine(matcha, Selection{
		Size:     SizeLarge,
		Sugar:    sugar(Sugar50),
		Ice:      ice(LessIce),
		AddOnIDs: []string{"ao-2"},
		Discount: &Discount{Type: DiscountPercent, Value: 10},
		Quantity: 2,
	}, genericAddOns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if line.BasePrice != 95 {
		t.Errorf("expected large base price 95, got %v", line.BasePrice)
	}
	if got := line.Subtotal(); got != 210 {
		t.Errorf("expected subtotal 210, got %v", got)
	}
	if got := line.DiscountAmount(); got != 21 {
		t.Errorf("expected discount 21, got %v", got)
	}
	if line.LineTotal != 189 {
		t.Errorf("expected line total 189, got %v", line.LineTotal)
	}
}

func TestPriceLine_AmericanoColdWithEspressoShot(t *testing.T) {
	line, err := PriceLine(americano, Selection{
		Temperature: temp(Cold),
		AddOnIDs:    []string{"es-addon-4"},
		Quantity:    1,
	}, genericAddOns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if line.LineTotal != 185 {
		t.Errorf("expected line total 185, got %v", line.LineTotal)
	}
	if line.Customization.Sugar != nil {
		t.Errorf("espresso line must not carry a sugar field")
	}
	if line.Customization.Ice != NormalIce {
		t.Errorf("espresso ice must be %q, got %q", NormalIce, line.Customization.Ice)
	}
	if line.Customization.Temperature == nil || *line.Customization.Temperature != Cold {
		t.Errorf("expected Cold temperature")
	}
}

// --------------------------------------------------
// BASE PRICE SELECTION
// --------------------------------------------------

func TestPriceLine_LargeFallsBackWithoutLargePrice(t *testing.T) {
	item := catalog.MenuItem{
		ID:        "cs-1",
		Name:      "Blue Eclipse",
		Category:  catalog.CategoryCreamSoda,
		PriceR:    130,
		Available: true,
	}

	line, err := PriceLine(item, Selection{Size: SizeLarge, Quantity: 1}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.BasePrice != 130 {
		t.Errorf("expected silent fallback to regular price, got %v", line.BasePrice)
	}
}

func TestPriceLine_LargePriceIgnoredWithoutSizeOption(t *testing.T) {
	item := matcha
	item.HasSizeOption = false

	line, err := PriceLine(item, Selection{Size: SizeLarge, Quantity: 1}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.BasePrice != 75 {
		t.Errorf("large price must be ignored when the size option is off, got %v", line.BasePrice)
	}
}

// --------------------------------------------------
// DISCOUNT CLAMPING & NORMALIZATION
// --------------------------------------------------

func TestPriceLine_NoDiscountIsPlainProduct(t *testing.T) {
	line, err := PriceLine(matcha, Selection{
		Size:     SizeRegular,
		AddOnIDs: []string{"ao-1", "ao-2"},
		Quantity: 3,
	}, genericAddOns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := (75.0 + 35 + 10) * 3
	if math.Abs(line.LineTotal-want) > epsilon {
		t.Errorf("expected %v, got %v", want, line.LineTotal)
	}
}

func TestPriceLine_PercentDiscountBounds(t *testing.T) {
	for _, pct := range []float64{0, 25, 50, 100} {
		line, err := PriceLine(matcha, Selection{
			Size:     SizeRegular,
			Discount: &Discount{Type: DiscountPercent, Value: pct},
			Quantity: 1,
		}, genericAddOns)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := 75 * (1 - pct/100)
		if math.Abs(line.LineTotal-want) > epsilon {
			t.Errorf("pct=%v: expected %v, got %v", pct, want, line.LineTotal)
		}
	}
}

func TestPriceLine_FixedDiscountClampsAtZero(t *testing.T) {
	line, err := PriceLine(matcha, Selection{
		Size:     SizeRegular,
		Discount: &Discount{Type: DiscountFixed, Value: 500},
		Quantity: 1,
	}, genericAddOns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.LineTotal != 0 {
		t.Errorf("expected clamp to zero, got %v", line.LineTotal)
	}
}

func TestPriceLine_ZeroDiscountBecomesAbsent(t *testing.T) {
	line, err := PriceLine(matcha, Selection{
		Size:     SizeRegular,
		Discount: &Discount{Type: DiscountPercent, Value: 0},
		Quantity: 1,
	}, genericAddOns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.Customization.Discount != nil {
		t.Errorf("zero-value discount must normalize to absence")
	}
}

// --------------------------------------------------
// QUANTITY & ADD-ONS
// --------------------------------------------------

func TestPriceLine_QuantityClampsToOne(t *testing.T) {
	for _, q := range []int{0, -3} {
		line, err := PriceLine(matcha, Selection{Size: SizeRegular, Quantity: q}, genericAddOns)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if line.Quantity != 1 {
			t.Errorf("quantity %d must clamp to 1, got %d", q, line.Quantity)
		}
	}
}

func TestPriceLine_AddOnsDeduplicated(t *testing.T) {
	line, err := PriceLine(matcha, Selection{
		Size:     SizeRegular,
		AddOnIDs: []string{"ao-2", "ao-2", "ao-3"},
		Quantity: 1,
	}, genericAddOns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(line.Customization.AddOns) != 2 {
		t.Fatalf("expected 2 deduplicated add-ons, got %d", len(line.Customization.AddOns))
	}
	if line.LineTotal != 95 {
		t.Errorf("expected 95, got %v", line.LineTotal)
	}
}

func TestPriceLine_UnknownAddOnRejected(t *testing.T) {
	_, err := PriceLine(matcha, Selection{
		Size:     SizeRegular,
		AddOnIDs: []string{"nope"},
		Quantity: 1,
	}, genericAddOns)
	if err == nil {
		t.Fatal("expected error for unknown add-on id")
	}
}

func TestPriceLine_EspressoAddOnsUseEspressoCatalog(t *testing.T) {
	// A generic add-on id must not resolve on an espresso line.
	_, err := PriceLine(americano, Selection{
		AddOnIDs: []string{"ao-1"},
		Quantity: 1,
	}, genericAddOns)
	if err == nil {
		t.Fatal("expected generic add-on to be rejected for espresso")
	}
}

// --------------------------------------------------
// CATEGORY RULES
// --------------------------------------------------

func TestPriceLine_NonDrinkDropsCustomization(t *testing.T) {
	item := catalog.MenuItem{
		ID:        "ap-5",
		Name:      "Nachos",
		Category:  catalog.CategoryAppetizers,
		PriceR:    100,
		Available: true,
	}

	line, err := PriceLine(item, Selection{
		Size:     SizeRegular,
		Sugar:    sugar(Sugar25),
		Ice:      ice(NoIce),
		AddOnIDs: []string{"ao-1"},
		Quantity: 1,
	}, genericAddOns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := line.Customization
	if c.Sugar != nil || c.Temperature != nil || len(c.AddOns) != 0 || c.Ice != "" {
		t.Errorf("non-drink customization must be empty, got %+v", c)
	}
	if line.LineTotal != 100 {
		t.Errorf("expected 100, got %v", line.LineTotal)
	}
}

func TestPriceLine_EspressoIceForcedToNormal(t *testing.T) {
	line, err := PriceLine(americano, Selection{
		Ice:      ice(NoIce),
		Quantity: 1,
	}, genericAddOns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.Customization.Ice != NormalIce {
		t.Errorf("espresso ice must be forced to %q, got %q", NormalIce, line.Customization.Ice)
	}
}

func TestPriceLine_UnavailableItemRejected(t *testing.T) {
	item := matcha
	item.Available = false

	if _, err := PriceLine(item, Selection{Quantity: 1}, genericAddOns); err == nil {
		t.Fatal("expected error for unavailable item")
	}
}

// --------------------------------------------------
// ORDER AGGREGATION
// --------------------------------------------------

func TestAggregate_TotalsBalance(t *testing.T) {
	lines := []OrderLine{}

	l1, _ := PriceLine(matcha, Selection{
		Size:     SizeLarge,
		AddOnIDs: []string{"ao-2"},
		Discount: &Discount{Type: DiscountPercent, Value: 10},
		Quantity: 2,
	}, genericAddOns)
	l2, _ := PriceLine(americano, Selection{
		AddOnIDs: []string{"es-addon-4"},
		Quantity: 1,
	}, genericAddOns)
	l3, _ := PriceLine(matcha, Selection{
		Size:     SizeRegular,
		Discount: &Discount{Type: DiscountFixed, Value: 500},
		Quantity: 1,
	}, genericAddOns)
	lines = append(lines, *l1, *l2, *l3)

	tot := Aggregate(lines)

	if math.Abs(tot.Total-(tot.Subtotal-tot.Discount)) > epsilon {
		t.Errorf("total %v != subtotal %v - discount %v", tot.Total, tot.Subtotal, tot.Discount)
	}

	var sum float64
	for _, l := range lines {
		sum += l.LineTotal
	}
	if math.Abs(tot.Total-sum) > epsilon {
		t.Errorf("total %v != sum of line totals %v", tot.Total, sum)
	}
}

func TestAggregate_Empty(t *testing.T) {
	tot := Aggregate(nil)
	if tot.Subtotal != 0 || tot.Discount != 0 || tot.Total != 0 {
		t.Errorf("empty aggregation must be all zero, got %+v", tot)
	}
}
