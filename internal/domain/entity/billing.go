package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/enum"
	"gorm.io/gorm"
)

// Billing is the persisted checkout record. Once written it is the single
// source of truth for receipt rendering; the formatter reads these figures
// verbatim and never re-derives them from the underlying orders.
type Billing struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	RoomID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"room_id"`
	ReservationID uuid.UUID      `gorm:"type:uuid;not null;index" json:"reservation_id"`
	BillNo        string         `gorm:"size:50;unique;not null" json:"bill_no"`
	GuestName     string         `gorm:"size:255;not null" json:"guest_name"`
	GuestPhone    string         `gorm:"size:50" json:"guest_phone,omitempty"`
	CheckinAt     time.Time      `gorm:"not null" json:"checkin_at"`
	CheckoutAt    time.Time      `gorm:"not null" json:"checkout_at"`
	DaysStayed    int            `gorm:"not null" json:"days_stayed"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// All monetary fields stored in paise, excluded from JSON
	RoomRate          int64 `gorm:"not null" json:"-"`
	RoomCharges       int64 `gorm:"not null" json:"-"`
	FoodOrdersTotal   int64 `gorm:"default:0" json:"-"`
	POSOrdersTotal    int64 `gorm:"default:0" json:"-"`
	AdditionalTotal   int64 `gorm:"default:0" json:"-"`
	Subtotal          int64 `gorm:"not null" json:"-"`
	ManualDiscount    int64 `gorm:"default:0" json:"-"`
	PromotionDiscount int64 `gorm:"default:0" json:"-"`
	TotalDiscount     int64 `gorm:"default:0" json:"-"`
	ServiceCharge     int64 `gorm:"default:0" json:"-"`
	TaxAmount         int64 `gorm:"default:0" json:"-"`
	GrandTotal        int64 `gorm:"not null" json:"-"`

	DiscountType         enum.DiscountType  `gorm:"default:0" json:"discount_type"`
	DiscountValue        float64            `gorm:"default:0" json:"discount_value"`
	PromotionCode        string             `gorm:"size:50" json:"promotion_code,omitempty"`
	ServiceChargePercent float64            `gorm:"default:0" json:"service_charge_percent"`
	TaxRatePercent       float64            `gorm:"default:0" json:"tax_rate_percent"`
	PaymentMethod        string             `gorm:"size:50" json:"payment_method"`
	PaymentStatus        enum.PaymentStatus `gorm:"size:50;default:'Paid'" json:"payment_status"`
	CheckedOutBy         uuid.UUID          `gorm:"type:uuid" json:"checked_out_by"`

	// Relationships
	Charges []AdditionalCharge `gorm:"foreignKey:BillingID" json:"charges,omitempty"`
	Room    Room               `gorm:"foreignKey:RoomID" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (b Billing) MarshalJSON() ([]byte, error) {
	type Alias Billing
	return json.Marshal(&struct {
		Alias
		RoomRate          float64 `json:"room_rate"`
		RoomCharges       float64 `json:"room_charges"`
		FoodOrdersTotal   float64 `json:"food_orders_total"`
		POSOrdersTotal    float64 `json:"pos_orders_total"`
		AdditionalTotal   float64 `json:"additional_total"`
		Subtotal          float64 `json:"subtotal"`
		ManualDiscount    float64 `json:"manual_discount"`
		PromotionDiscount float64 `json:"promotion_discount"`
		TotalDiscount     float64 `json:"total_discount"`
		ServiceCharge     float64 `json:"service_charge"`
		TaxAmount         float64 `json:"tax_amount"`
		GrandTotal        float64 `json:"grand_total"`
	}{
		Alias:             Alias(b),
		RoomRate:          float64(b.RoomRate) / 100,
		RoomCharges:       float64(b.RoomCharges) / 100,
		FoodOrdersTotal:   float64(b.FoodOrdersTotal) / 100,
		POSOrdersTotal:    float64(b.POSOrdersTotal) / 100,
		AdditionalTotal:   float64(b.AdditionalTotal) / 100,
		Subtotal:          float64(b.Subtotal) / 100,
		ManualDiscount:    float64(b.ManualDiscount) / 100,
		PromotionDiscount: float64(b.PromotionDiscount) / 100,
		TotalDiscount:     float64(b.TotalDiscount) / 100,
		ServiceCharge:     float64(b.ServiceCharge) / 100,
		TaxAmount:         float64(b.TaxAmount) / 100,
		GrandTotal:        float64(b.GrandTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new billing record
func (b *Billing) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Billing model
func (Billing) TableName() string {
	return "billings"
}

// AdditionalCharge is an operator-entered ad-hoc charge on a bill
// (minibar, laundry, damages). Validated at entry: non-empty name, amount > 0.
// Immutable once attached to a billing record.
type AdditionalCharge struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BillingID uuid.UUID `gorm:"type:uuid;not null;index" json:"billing_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Amount    int64     `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (c AdditionalCharge) MarshalJSON() ([]byte, error) {
	type Alias AdditionalCharge
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(c),
		Amount: float64(c.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new charge
func (c *AdditionalCharge) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AdditionalCharge model
func (AdditionalCharge) TableName() string {
	return "additional_charges"
}
