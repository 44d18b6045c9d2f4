package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/enum"
	"gorm.io/gorm"
)

// FoodOrder is a room-service order. Delivered orders for the guest's room
// are folded into the room bill at checkout; BillingID marks them as billed.
type FoodOrder struct {
	ID            uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID  uuid.UUID            `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	RoomID        uuid.UUID            `gorm:"type:uuid;not null;index" json:"room_id"`
	ReservationID *uuid.UUID           `gorm:"type:uuid;index" json:"reservation_id,omitempty"`
	Status        enum.FoodOrderStatus `gorm:"size:20;default:'pending'" json:"status"`
	Total         int64                `gorm:"default:0" json:"-"` // Stored in paise, excluded from JSON
	BillingID     *uuid.UUID           `gorm:"type:uuid;index" json:"billing_id,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	DeletedAt     gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	Items []FoodOrderItem `gorm:"foreignKey:FoodOrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (o FoodOrder) MarshalJSON() ([]byte, error) {
	type Alias FoodOrder
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(o),
		Total: float64(o.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new food order
func (o *FoodOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FoodOrder model
func (FoodOrder) TableName() string {
	return "food_orders"
}

// FoodOrderItem is a line item in a room-service order
type FoodOrderItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FoodOrderID uuid.UUID `gorm:"type:uuid;not null;index" json:"food_order_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	UnitPrice   int64     `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	Total       int64     `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	CreatedAt   time.Time `json:"created_at"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (i FoodOrderItem) MarshalJSON() ([]byte, error) {
	type Alias FoodOrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(i),
		UnitPrice: float64(i.UnitPrice) / 100,
		Total:     float64(i.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new food order item
func (i *FoodOrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FoodOrderItem model
func (FoodOrderItem) TableName() string {
	return "food_order_items"
}
