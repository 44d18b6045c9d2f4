package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/enum"
	"gorm.io/gorm"
)

// POSOrder is a restaurant point-of-sale order. Orders left with the
// "Pending - Room Charge" payment status are folded into the reservation's
// room bill at checkout and marked Paid.
type POSOrder struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID  uuid.UUID          `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	ReservationID *uuid.UUID         `gorm:"type:uuid;index" json:"reservation_id,omitempty"`
	OrderNo       string             `gorm:"size:50;not null" json:"order_no"`
	Total         int64              `gorm:"default:0" json:"-"` // Stored in paise, excluded from JSON
	PaymentStatus enum.PaymentStatus `gorm:"size:50;default:'Pending'" json:"payment_status"`
	BillingID     *uuid.UUID         `gorm:"type:uuid;index" json:"billing_id,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (o POSOrder) MarshalJSON() ([]byte, error) {
	type Alias POSOrder
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(o),
		Total: float64(o.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new POS order
func (o *POSOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the POSOrder model
func (POSOrder) TableName() string {
	return "pos_orders"
}
