package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/enum"
	"gorm.io/gorm"
)

// Room represents a hotel room
type Room struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	Number       string          `gorm:"size:20;not null;index" json:"number"`
	Type         string          `gorm:"size:50" json:"type,omitempty"`
	DailyRate    int64           `gorm:"not null" json:"-"` // Stored in paise, excluded from JSON
	Status       enum.RoomStatus `gorm:"default:0" json:"status"`
	// Version guards the occupied->available checkout transition with
	// optimistic concurrency; two concurrent checkouts cannot both win.
	Version   int64          `gorm:"default:0" json:"version"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (r Room) MarshalJSON() ([]byte, error) {
	type Alias Room
	return json.Marshal(&struct {
		Alias
		DailyRate float64 `json:"daily_rate"`
	}{
		Alias:     Alias(r),
		DailyRate: float64(r.DailyRate) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new room
func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Room model
func (Room) TableName() string {
	return "rooms"
}
