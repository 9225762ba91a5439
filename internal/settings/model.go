package settings

// StoreSettings is the single-row shop identity used on receipts.
type StoreSettings struct {
	StoreName     string `json:"storeName"`
	StoreAddress  string `json:"storeAddress"`
	StorePhone    string `json:"storePhone"`
	StoreEmail    string `json:"storeEmail"`
	WifiSSID      string `json:"wifiSSID"`
	WifiPassword  string `json:"wifiPassword"`
	ReceiptFooter string `json:"receiptFooter"`
}

// Defaults returned before the shop has saved anything.
func Defaults() StoreSettings {
	return StoreSettings{
		StoreName:     "Ocean Brew",
		ReceiptFooter: "Thank you for visiting!",
	}
}
