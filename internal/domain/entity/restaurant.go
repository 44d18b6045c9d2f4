package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Restaurant is the property identity printed on every receipt plus the
// billing settings the checkout screen reads (service charge, tax rate).
// All other entities are scoped to a restaurant.
type Restaurant struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Address   string         `gorm:"size:500" json:"address,omitempty"`
	Phone     string         `gorm:"size:50" json:"phone,omitempty"`
	Email     string         `gorm:"size:255" json:"email,omitempty"`
	GSTIN     string         `gorm:"size:50" json:"gstin,omitempty"`
	Currency  string         `gorm:"size:10;default:'INR'" json:"currency"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Billing settings
	ServiceChargeEnabled bool    `gorm:"default:false" json:"service_charge_enabled"`
	ServiceChargePercent float64 `gorm:"default:0" json:"service_charge_percent"`
	// TaxRatePercent is the combined GST rate; receipts split it into equal
	// CGST/SGST halves. Zero means no tax line is shown.
	TaxRatePercent float64 `gorm:"default:0" json:"tax_rate_percent"`
}

// BeforeCreate generates a UUID before creating a new restaurant
func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Restaurant model
func (Restaurant) TableName() string {
	return "restaurants"
}
