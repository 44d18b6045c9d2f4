package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Promotion is a named, time-bounded discount rule identified by a short
// code. Promotions are administered outside this service and read here only;
// exactly one of DiscountPercent/DiscountAmount is expected to be set.
type Promotion struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	Code            string         `gorm:"size:50;not null;uniqueIndex:idx_promotions_code" json:"code"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Description     string         `gorm:"type:text" json:"description,omitempty"`
	DiscountPercent *float64       `json:"discount_percentage,omitempty"`
	DiscountAmount  *int64         `json:"-"` // Stored in paise, excluded from JSON
	StartDate       time.Time      `gorm:"not null" json:"start_date"`
	EndDate         time.Time      `gorm:"not null" json:"end_date"`
	IsActive        bool           `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (p Promotion) MarshalJSON() ([]byte, error) {
	type Alias Promotion
	aux := &struct {
		Alias
		DiscountAmount *float64 `json:"discount_amount,omitempty"`
	}{Alias: Alias(p)}
	if p.DiscountAmount != nil {
		amount := float64(*p.DiscountAmount) / 100
		aux.DiscountAmount = &amount
	}
	return json.Marshal(aux)
}

// WithinWindow reports whether t falls inside the promotion's validity
// window. Both boundary dates are inclusive.
func (p *Promotion) WithinWindow(t time.Time) bool {
	day := t.Truncate(24 * time.Hour)
	start := p.StartDate.Truncate(24 * time.Hour)
	end := p.EndDate.Truncate(24 * time.Hour)
	return !day.Before(start) && !day.After(end)
}

// BeforeCreate generates a UUID before creating a new promotion
func (p *Promotion) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Promotion model
func (Promotion) TableName() string {
	return "promotions"
}

// PromotionUsage is the best-effort audit row written after a successful
// checkout that redeemed a promotion. Writing it never blocks or fails a
// checkout.
type PromotionUsage struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID   uuid.UUID `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	PromotionID    uuid.UUID `gorm:"type:uuid;not null;index" json:"promotion_id"`
	BillingID      uuid.UUID `gorm:"type:uuid;not null;index" json:"billing_id"`
	GuestName      string    `gorm:"size:255" json:"guest_name"`
	GuestPhone     string    `gorm:"size:50" json:"guest_phone,omitempty"`
	OrderTotal     int64     `gorm:"not null" json:"-"` // Stored in paise
	DiscountAmount int64     `gorm:"not null" json:"-"` // Stored in paise
	CreatedAt      time.Time `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new usage row
func (u *PromotionUsage) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PromotionUsage model
func (PromotionUsage) TableName() string {
	return "promotion_usages"
}
