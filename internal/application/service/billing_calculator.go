package service

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/enum"
)

// CheckoutInput carries everything the calculator needs to price a stay.
// All monetary figures are in paise except DiscountValue, which is the
// operator-entered number: a percentage for percentage discounts, a rupee
// amount for fixed ones.
type CheckoutInput struct {
	CheckinAt  time.Time
	CheckoutAt time.Time
	RoomRate   int64

	FoodOrdersTotal int64
	POSOrdersTotal  int64
	AdditionalTotal int64

	DiscountType  enum.DiscountType
	DiscountValue float64
	Promotion     *entity.Promotion

	ServiceChargeEnabled bool
	ServiceChargePercent float64
	TaxRatePercent       float64
}

// BillingCalculator derives a BillSnapshot from checkout inputs. It is
// stateless; every call recomputes the full breakdown and never mutates
// its input.
type BillingCalculator struct{}

// NewBillingCalculator creates a new billing calculator
func NewBillingCalculator() *BillingCalculator {
	return &BillingCalculator{}
}

// DaysStayed converts a stay interval to billable days. Any part of a
// 24-hour block counts as a full day, and a same-day (or clock-skewed)
// stay still bills one day.
func DaysStayed(checkin, checkout time.Time) int {
	hours := checkout.Sub(checkin).Hours()
	days := int(math.Ceil(hours / 24))
	if days < 1 {
		return 1
	}
	return days
}

// Compute derives the itemized totals in a fixed order: room charges,
// order totals, subtotal, discounts, service charge, tax, grand total.
// The combined discount is clamped to the subtotal so the grand total
// can never go negative.
func (c *BillingCalculator) Compute(in *CheckoutInput) *entity.BillSnapshot {
	days := DaysStayed(in.CheckinAt, in.CheckoutAt)
	roomCharges := in.RoomRate * int64(days)

	subtotal := roomCharges + in.FoodOrdersTotal + in.POSOrdersTotal + in.AdditionalTotal

	manualDiscount := c.manualDiscount(in, subtotal)
	promotionDiscount := c.promotionDiscount(in.Promotion, subtotal)

	totalDiscount := manualDiscount + promotionDiscount
	if totalDiscount > subtotal {
		totalDiscount = subtotal
	}

	discounted := subtotal - totalDiscount

	var serviceCharge int64
	if in.ServiceChargeEnabled && in.ServiceChargePercent > 0 {
		serviceCharge = percentOf(discounted, in.ServiceChargePercent)
	}

	var taxAmount int64
	if in.TaxRatePercent > 0 {
		taxAmount = percentOf(discounted+serviceCharge, in.TaxRatePercent)
	}

	return &entity.BillSnapshot{
		DaysStayed:        days,
		RoomRate:          in.RoomRate,
		RoomCharges:       roomCharges,
		FoodOrdersTotal:   in.FoodOrdersTotal,
		POSOrdersTotal:    in.POSOrdersTotal,
		AdditionalTotal:   in.AdditionalTotal,
		Subtotal:          subtotal,
		ManualDiscount:    manualDiscount,
		PromotionDiscount: promotionDiscount,
		TotalDiscount:     totalDiscount,
		ServiceCharge:     serviceCharge,
		TaxAmount:         taxAmount,
		GrandTotal:        discounted + serviceCharge + taxAmount,
	}
}

func (c *BillingCalculator) manualDiscount(in *CheckoutInput, subtotal int64) int64 {
	if in.DiscountValue <= 0 {
		return 0
	}
	var amount int64
	switch in.DiscountType {
	case enum.DiscountTypePercentage:
		amount = percentOf(subtotal, in.DiscountValue)
	case enum.DiscountTypeFixed:
		amount = RupeesToPaise(in.DiscountValue)
	default:
		return 0
	}
	if amount > subtotal {
		amount = subtotal
	}
	return amount
}

// promotionDiscount always derives the discount from the promotion's own
// percentage/amount fields; any figure a validator computed upstream is
// ignored so that a single authority prices the bill.
func (c *BillingCalculator) promotionDiscount(p *entity.Promotion, subtotal int64) int64 {
	if p == nil {
		return 0
	}
	var amount int64
	switch {
	case p.DiscountPercent != nil && *p.DiscountPercent > 0:
		amount = percentOf(subtotal, *p.DiscountPercent)
	case p.DiscountAmount != nil && *p.DiscountAmount > 0:
		amount = *p.DiscountAmount
	default:
		return 0
	}
	if amount > subtotal {
		amount = subtotal
	}
	return amount
}

// percentOf computes pct% of a paise amount, rounded half-up to a whole
// paise.
func percentOf(amount int64, pct float64) int64 {
	return decimal.NewFromInt(amount).
		Mul(decimal.NewFromFloat(pct)).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

// RupeesToPaise converts a screen-entered rupee amount to whole paise,
// rounding half away from zero so 19.99 becomes 1999, never 1998.
func RupeesToPaise(rupees float64) int64 {
	return decimal.NewFromFloat(rupees).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}
