package request

// ChargeRequest is one operator-entered ad-hoc charge. Amount is in rupees.
type ChargeRequest struct {
	Name   string  `json:"name" binding:"required,max=255"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// CheckoutPreviewRequest represents a checkout preview request
type CheckoutPreviewRequest struct {
	RoomID            string          `json:"room_id" binding:"required,uuid"`
	AdditionalCharges []ChargeRequest `json:"additional_charges"`
	// DiscountType: 0 none, 1 percentage, 2 fixed amount
	DiscountType  int     `json:"discount_type" binding:"min=0,max=2"`
	DiscountValue float64 `json:"discount_value" binding:"min=0"`
	PromotionCode string  `json:"promotion_code"`
}

// CheckoutConfirmRequest represents a checkout confirmation request
type CheckoutConfirmRequest struct {
	CheckoutPreviewRequest
	PaymentMethod string `json:"payment_method" binding:"required,oneof=cash card upi"`
}

// ValidatePromotionRequest represents a promotion validation request.
// OrderSubtotal is in rupees as shown on the checkout screen.
type ValidatePromotionRequest struct {
	Code          string  `json:"code"`
	OrderSubtotal float64 `json:"order_subtotal" binding:"min=0"`
}

// EmailReceiptRequest represents a receipt email request
type EmailReceiptRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CheckInRequest represents a front-desk check-in request
type CheckInRequest struct {
	RoomID     string `json:"room_id" binding:"required,uuid"`
	GuestName  string `json:"guest_name" binding:"required,max=255"`
	GuestPhone string `json:"guest_phone" binding:"max=50"`
	GuestEmail string `json:"guest_email" binding:"omitempty,email"`
}

// UpdateSettingsRequest represents a billing settings update
type UpdateSettingsRequest struct {
	ServiceChargeEnabled *bool    `json:"service_charge_enabled"`
	ServiceChargePercent *float64 `json:"service_charge_percent" binding:"omitempty,min=0,max=50"`
	TaxRatePercent       *float64 `json:"tax_rate_percent" binding:"omitempty,min=0,max=100"`
	Address              *string  `json:"address"`
	Phone                *string  `json:"phone"`
	GSTIN                *string  `json:"gstin"`
}
