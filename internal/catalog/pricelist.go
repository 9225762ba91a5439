package catalog

func price(p float64) *float64 { return &p }

// DefaultMenu is the Ocean Brew launch pricelist, seeded into the
// database when the catalog is empty.
// PriceR is the regular (or only) price, PriceL the large price.
var DefaultMenu = []MenuItem{
	// ── Add Ons ──
	{ID: "ao-1", Name: "Rock Salt and Cheese", Category: CategoryAddOns, PriceR: 35, Available: true},
	{ID: "ao-2", Name: "Nata de Coco", Category: CategoryAddOns, PriceR: 10, Available: true},
	{ID: "ao-3", Name: "Crushed Oreos", Category: CategoryAddOns, PriceR: 10, Available: true},
	{ID: "ao-4", Name: "Cheesecake", Category: CategoryAddOns, PriceR: 55, Available: true},
	{ID: "ao-5", Name: "Black Pearls", Category: CategoryAddOns, PriceR: 10, Available: true},

	// ── Appetizers ──
	{ID: "ap-1", Name: "Hotdog Roll (1)", Category: CategoryAppetizers, PriceR: 30, Available: true},
	{ID: "ap-2", Name: "Hotdog Rolls (3)", Category: CategoryAppetizers, PriceR: 90, Available: true},
	{ID: "ap-3", Name: "Hotdog Rolls (6)", Category: CategoryAppetizers, PriceR: 180, Available: true},
	{ID: "ap-4", Name: "Hotdog Rolls (1 Dozen)", Category: CategoryAppetizers, PriceR: 360, Available: true},
	{ID: "ap-5", Name: "Nachos", Category: CategoryAppetizers, PriceR: 100, Available: true},
	{ID: "ap-6", Name: "Quesadillas", Category: CategoryAppetizers, PriceR: 75, Available: true},

	// ── Barako Coffee ──
	{ID: "bc-1", Name: "Iced Coffee Latte", Category: CategoryBarakoCoffee, PriceR: 75, PriceL: price(95), Available: true, HasSizeOption: true},
	{ID: "bc-2", Name: "Cold Brew", Category: CategoryBarakoCoffee, PriceR: 65, PriceL: price(85), Available: true, HasSizeOption: true},
	{ID: "bc-3", Name: "Brewed Coffee", Category: CategoryBarakoCoffee, PriceR: 65, Available: true},

	// ── Cheesecake ──
	{ID: "ck-1", Name: "Wintermelon CC", Category: CategoryCheesecake, PriceR: 130, PriceL: price(150), Available: true, HasSizeOption: true},
	{ID: "ck-2", Name: "Taro CC", Category: CategoryCheesecake, PriceR: 130, PriceL: price(150), Available: true, HasSizeOption: true},
	{ID: "ck-3", Name: "Oreo CC", Category: CategoryCheesecake, PriceR: 130, PriceL: price(150), Available: true, HasSizeOption: true},
	{ID: "ck-4", Name: "Okinawa CC", Category: CategoryCheesecake, PriceR: 130, PriceL: price(150), Available: true, HasSizeOption: true},
	{ID: "ck-5", Name: "Matcha CC", Category: CategoryCheesecake, PriceR: 130, PriceL: price(150), Available: true, HasSizeOption: true},
	{ID: "ck-6", Name: "Hokkaido CC", Category: CategoryCheesecake, PriceR: 130, PriceL: price(150), Available: true, HasSizeOption: true},
	{ID: "ck-7", Name: "Dark Choco CC", Category: CategoryCheesecake, PriceR: 130, PriceL: price(150), Available: true, HasSizeOption: true},

	// ── Classic ──
	{ID: "cl-1", Name: "Wintermelon", Category: CategoryClassic, PriceR: 75, PriceL: price(95), Available: true, HasSizeOption: true},
	{ID: "cl-2", Name: "Taro", Category: CategoryClassic, PriceR: 75, PriceL: price(95), Available: true, HasSizeOption: true},
	{ID: "cl-3", Name: "Oreo", Category: CategoryClassic, PriceR: 75, PriceL: price(95), Available: true, HasSizeOption: true},
	{ID: "cl-4", Name: "Okinawa", Category: CategoryClassic, PriceR: 75, PriceL: price(95), Available: true, HasSizeOption: true},
	{ID: "cl-5", Name: "Matcha", Category: CategoryClassic, PriceR: 75, PriceL: price(95), Available: true, HasSizeOption: true},
	{ID: "cl-6", Name: "Hokkaido", Category: CategoryClassic, PriceR: 75, PriceL: price(95), Available: true, HasSizeOption: true},
	{ID: "cl-7", Name: "Dark Choco", Category: CategoryClassic, PriceR: 75, PriceL: price(95), Available: true, HasSizeOption: true},

	// ── Cream Soda ──
	{ID: "cs-1", Name: "Blue Eclipse", Category: CategoryCreamSoda, PriceR: 130, Available: true},
	{ID: "cs-2", Name: "Red Bloom", Category: CategoryCreamSoda, PriceR: 130, Available: true},

	// ── Espresso ──
	{ID: "es-1", Name: "Americano", Category: CategoryEspresso, PriceR: 130, Available: true},
	{ID: "es-2", Name: "Cappuccino", Category: CategoryEspresso, PriceR: 130, Available: true},
	{ID: "es-3", Name: "Caramel Machiatto", Category: CategoryEspresso, PriceR: 170, Available: true},
	{ID: "es-4", Name: "French Vanilla", Category: CategoryEspresso, PriceR: 170, Available: true},
	{ID: "es-5", Name: "Mocha", Category: CategoryEspresso, PriceR: 170, Available: true},
	{ID: "es-6", Name: "Sea Salt Latte", Category: CategoryEspresso, PriceR: 150, Available: true},
	{ID: "es-7", Name: "Spanish Latte", Category: CategoryEspresso, PriceR: 150, Available: true},
	{ID: "es-8", Name: "White Chocolate Mocha", Category: CategoryEspresso, PriceR: 170, Available: true},

	// ── Iced Tea ──
	{ID: "it-1", Name: "Yuzu Calamansi Iced Tea", Category: CategoryIcedTea, PriceR: 110, Available: true},

	// ── Island Pop ──
	{ID: "ip-1", Name: "Daku", Category: CategoryIslandPop, PriceR: 110, Available: true},
	{ID: "ip-2", Name: "Guyam", Category: CategoryIslandPop, PriceR: 110, Available: true},
	{ID: "ip-3", Name: "Naked Island", Category: CategoryIslandPop, PriceR: 110, Available: true},

	// ── Refreshers ──
	{ID: "rf-1", Name: "Lychee", Category: CategoryRefreshers, PriceR: 60, PriceL: price(80), Available: true, HasSizeOption: true},
	{ID: "rf-2", Name: "Passion Fruit", Category: CategoryRefreshers, PriceR: 60, PriceL: price(80), Available: true, HasSizeOption: true},
	{ID: "rf-3", Name: "Strawberry", Category: CategoryRefreshers, PriceR: 60, PriceL: price(80), Available: true, HasSizeOption: true},

	// ── Rock Salt and Cheese ──
	{ID: "rs-1", Name: "Wintermelon RSC", Category: CategoryRockSaltAndCheese, PriceR: 110, PriceL: price(130), Available: true, HasSizeOption: true},
	{ID: "rs-2", Name: "Taro RSC", Category: CategoryRockSaltAndCheese, PriceR: 110, PriceL: price(130), Available: true, HasSizeOption: true},
	{ID: "rs-3", Name: "Oreo RSC", Category: CategoryRockSaltAndCheese, PriceR: 110, PriceL: price(130), Available: true, HasSizeOption: true},
	{ID: "rs-4", Name: "Okinawa RSC", Category: CategoryRockSaltAndCheese, PriceR: 110, PriceL: price(130), Available: true, HasSizeOption: true},
	{ID: "rs-5", Name: "Matcha RSC", Category: CategoryRockSaltAndCheese, PriceR: 110, PriceL: price(130), Available: true, HasSizeOption: true},
	{ID: "rs-6", Name: "Hokkaido RSC", Category: CategoryRockSaltAndCheese, PriceR: 110, PriceL: price(130), Available: true, HasSizeOption: true},
	{ID: "rs-7", Name: "Dark Choco RSC", Category: CategoryRockSaltAndCheese, PriceR: 110, PriceL: price(130), Available: true, HasSizeOption: true},

	// ── Merchandise ──
	{ID: "mc-1", Name: "Ocean Brew Tshirt (White)", Category: CategoryMerchandise, PriceR: 650, Available: true},
	{ID: "mc-2", Name: "Ocean Brew Tshirt (Black)", Category: CategoryMerchandise, PriceR: 650, Available: true},
	{ID: "mc-3", Name: "Ocean Brew Fisherman's Hat (White)", Category: CategoryMerchandise, PriceR: 350, Available: true},
	{ID: "mc-4", Name: "Ocean Brew Fisherman's Hat (Black)", Category: CategoryMerchandise, PriceR: 350, Available: true},
	{ID: "mc-5", Name: "Ocean Brew Bucket Hat (White)", Category: CategoryMerchandise, PriceR: 350, Available: true},
	{ID: "mc-6", Name: "Ocean Brew Bucket Hat (Black)", Category: CategoryMerchandise, PriceR: 350, Available: true},
	{ID: "mc-7", Name: "Ocean Brew Mug (White)", Category: CategoryMerchandise, PriceR: 150, Available: true},
	{ID: "mc-8", Name: "Ocean Brew Mug (Black)", Category: CategoryMerchandise, PriceR: 150, Available: true},
	{ID: "mc-9", Name: "Ocean Brew Umbrella (White)", Category: CategoryMerchandise, PriceR: 350, Available: true},
	{ID: "mc-10", Name: "Ocean Brew Umbrella (Black)", Category: CategoryMerchandise, PriceR: 350, Available: true},

	// ── Supplies ──
	{ID: "sp-1", Name: "Dabba Cup", Category: CategorySupplies, PriceR: 20, Available: true},
	{ID: "sp-2", Name: "Dabba Cup (Ice)", Category: CategorySupplies, PriceR: 35, Available: true},
	{ID: "sp-3", Name: "Loyalty Card", Category: CategorySupplies, PriceR: 20, Available: true},
}
