package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IdempotencyKey stores a processed request key with its response so that a
// retried checkout confirmation replays the original outcome instead of
// creating a second bill.
type IdempotencyKey struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Key          string    `gorm:"size:255;not null;index:idx_idem_key_user,unique" json:"key"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_idem_key_user,unique" json:"user_id"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index" json:"restaurant_id"`
	Endpoint     string    `gorm:"size:255" json:"endpoint"`
	ResponseCode int       `json:"response_code"`
	ResponseBody string    `gorm:"type:text" json:"-"`
	ExpiresAt    time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsExpired reports whether the key is past its TTL
func (k *IdempotencyKey) IsExpired() bool {
	return time.Now().After(k.ExpiresAt)
}

// BeforeCreate generates a UUID before creating a new key
func (k *IdempotencyKey) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the IdempotencyKey model
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}
