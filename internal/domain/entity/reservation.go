package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reservation statuses
const (
	ReservationStatusActive     = "active"
	ReservationStatusCheckedOut = "checked_out"
	ReservationStatusCancelled  = "cancelled"
)

// Reservation is a guest's stay in a room, from check-in to check-out
type Reservation struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID uuid.UUID      `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	RoomID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"room_id"`
	GuestName    string         `gorm:"size:255;not null" json:"guest_name"`
	GuestPhone   string         `gorm:"size:50" json:"guest_phone,omitempty"`
	GuestEmail   string         `gorm:"size:255" json:"guest_email,omitempty"`
	CheckinAt    time.Time      `gorm:"not null" json:"checkin_at"`
	CheckoutAt   *time.Time     `json:"checkout_at,omitempty"`
	Status       string         `gorm:"size:20;default:'active'" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// BeforeCreate generates a UUID before creating a new reservation
func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Reservation model
func (Reservation) TableName() string {
	return "reservations"
}
