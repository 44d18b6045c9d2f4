package entity

// ReceiptHeader holds the restaurant identity printed at the top of a receipt.
type ReceiptHeader struct {
	RestaurantName string `json:"restaurant_name"`
	Address        string `json:"address,omitempty"`
	Phone          string `json:"phone,omitempty"`
	GSTIN          string `json:"gstin,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable guest bill.
// It is NOT a database entity; it is composed from a persisted Billing row
// (or a preview snapshot) at render time and never mutated afterwards, so
// rendering it repeatedly for preview, print and PDF export yields
// byte-identical output.
type Receipt struct {
	Header       ReceiptHeader `json:"header"`
	BillNo       string        `json:"bill_no"`
	Date         string        `json:"date"`
	GuestName    string        `json:"guest_name"`
	GuestPhone   string        `json:"guest_phone,omitempty"`
	RoomNumber   string        `json:"room_number"`
	CheckinDate  string        `json:"checkin_date"`
	CheckoutDate string        `json:"checkout_date"`
	DaysStayed   int           `json:"days_stayed"`
	Items        []ReceiptItem `json:"items"`

	SubTotal      float64 `json:"sub_total"`
	Discount      float64 `json:"discount"`
	ServiceCharge float64 `json:"service_charge"`
	// CGST and SGST are equal halves of the tax amount; both zero when the
	// restaurant's tax rate is unset.
	CGST     float64 `json:"cgst"`
	SGST     float64 `json:"sgst"`
	NetTotal float64 `json:"net_total"`

	PaymentMethod string `json:"payment_method,omitempty"`
	Currency      string `json:"currency"`
	FooterNote    string `json:"footer_note,omitempty"`
}
