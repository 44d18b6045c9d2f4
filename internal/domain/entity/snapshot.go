package entity

import "encoding/json"

// BillSnapshot is the calculator's result: the fully itemized total for a
// checkout at a point in time. It is a value object recomputed fresh on every
// input change and only persisted (as a Billing row) once the operator
// confirms the checkout. All amounts in paise.
type BillSnapshot struct {
	DaysStayed        int   `json:"days_stayed"`
	RoomRate          int64 `json:"-"`
	RoomCharges       int64 `json:"-"`
	FoodOrdersTotal   int64 `json:"-"`
	POSOrdersTotal    int64 `json:"-"`
	AdditionalTotal   int64 `json:"-"`
	Subtotal          int64 `json:"-"`
	ManualDiscount    int64 `json:"-"`
	PromotionDiscount int64 `json:"-"`
	TotalDiscount     int64 `json:"-"`
	ServiceCharge     int64 `json:"-"`
	TaxAmount         int64 `json:"-"`
	GrandTotal        int64 `json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (s BillSnapshot) MarshalJSON() ([]byte, error) {
	type Alias BillSnapshot
	return json.Marshal(&struct {
		Alias
		RoomRate          float64 `json:"room_rate"`
		RoomCharges       float64 `json:"room_charges"`
		FoodOrdersTotal   float64 `json:"food_orders_total"`
		POSOrdersTotal    float64 `json:"pos_orders_total"`
		AdditionalTotal   float64 `json:"additional_total"`
		Subtotal          float64 `json:"subtotal_before_discount"`
		ManualDiscount    float64 `json:"manual_discount"`
		PromotionDiscount float64 `json:"promotion_discount"`
		TotalDiscount     float64 `json:"total_discount"`
		ServiceCharge     float64 `json:"service_charge"`
		TaxAmount         float64 `json:"tax_amount"`
		GrandTotal        float64 `json:"grand_total"`
	}{
		Alias:             Alias(s),
		RoomRate:          float64(s.RoomRate) / 100,
		RoomCharges:       float64(s.RoomCharges) / 100,
		FoodOrdersTotal:   float64(s.FoodOrdersTotal) / 100,
		POSOrdersTotal:    float64(s.POSOrdersTotal) / 100,
		AdditionalTotal:   float64(s.AdditionalTotal) / 100,
		Subtotal:          float64(s.Subtotal) / 100,
		ManualDiscount:    float64(s.ManualDiscount) / 100,
		PromotionDiscount: float64(s.PromotionDiscount) / 100,
		TotalDiscount:     float64(s.TotalDiscount) / 100,
		ServiceCharge:     float64(s.ServiceCharge) / 100,
		TaxAmount:         float64(s.TaxAmount) / 100,
		GrandTotal:        float64(s.GrandTotal) / 100,
	})
}
