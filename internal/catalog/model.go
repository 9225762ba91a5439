package catalog

// Category is the fixed set of shop categories.
type Category string

const (
	CategoryAddOns            Category = "Add Ons"
	CategoryAppetizers        Category = "Appetizers"
	CategoryBarakoCoffee      Category = "Barako Coffee"
	CategoryCheesecake        Category = "Cheesecake"
	CategoryClassic           Category = "Classic"
	CategoryCreamSoda         Category = "Cream Soda"
	CategoryEspresso          Category = "Espresso"
	CategoryIcedTea           Category = "Iced Tea"
	CategoryIslandPop         Category = "Island Pop"
	CategoryRefreshers        Category = "Refreshers"
	CategoryRockSaltAndCheese Category = "Rock Salt and Cheese"
	CategoryMerchandise       Category = "Merchandise"
	CategorySupplies          Category = "Supplies"
)

// Categories in menu display order.
var Categories = []Category{
	CategoryAddOns,
	CategoryAppetizers,
	CategoryBarakoCoffee,
	CategoryCheesecake,
	CategoryClassic,
	CategoryCreamSoda,
	CategoryEspresso,
	CategoryIcedTea,
	CategoryIslandPop,
	CategoryRefreshers,
	CategoryRockSaltAndCheese,
	CategoryMerchandise,
	CategorySupplies,
}

// IsValidCategory reports whether c is one of the known categories.
func IsValidCategory(c Category) bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// ItemKind is the customization variant an item belongs to,
// resolved once from its category.
type ItemKind int

const (
	// KindPlainDrink carries sugar, ice and the generic add-on catalog.
	KindPlainDrink ItemKind = iota
	// KindEspresso carries temperature and its own add-on catalog;
	// no sugar, ice fixed to Normal Ice.
	KindEspresso
	// KindNonDrink carries no drink customization at all.
	KindNonDrink
)

// nonDrinkCategories never carry sugar/ice/add-on customization.
var nonDrinkCategories = map[Category]bool{
	CategoryAddOns:      true,
	CategoryAppetizers:  true,
	CategoryCheesecake:  true,
	CategoryMerchandise: true,
	CategorySupplies:    true,
}

// KindOf resolves the customization variant for a category.
func KindOf(c Category) ItemKind {
	switch {
	case c == CategoryEspresso:
		return KindEspresso
	case nonDrinkCategories[c]:
		return KindNonDrink
	default:
		return KindPlainDrink
	}
}

// MenuItem is a catalog entry.
// PriceL is only meaningful when HasSizeOption is true.
type MenuItem struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	PriceR        float64  `json:"priceR"`
	PriceL        *float64 `json:"priceL"`
	Available     bool     `json:"available"`
	HasSizeOption bool     `json:"hasSizeOption"`
}

// Kind returns the item's customization variant.
func (m MenuItem) Kind() ItemKind {
	return KindOf(m.Category)
}

// AddOn is a priced extra attachable to a drink line.
type AddOn struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// EspressoAddOns is the fixed add-on catalog for espresso drinks.
// Distinct from the generic "Add Ons" category and priced differently.
var EspressoAddOns = []AddOn{
	{ID: "es-addon-1", Name: "Whipped Cream", Price: 25},
	{ID: "es-addon-2", Name: "Extra Syrup", Price: 25},
	{ID: "es-addon-3", Name: "Extra Sauce", Price: 25},
	{ID: "es-addon-4", Name: "Espresso Shot", Price: 55},
	{ID: "es-addon-5", Name: "Cold Foam", Price: 30},
}
