package service

import (
	"testing"
	"time"

	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/enum"
)

func stayInput(days int) *CheckoutInput {
	checkin := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return &CheckoutInput{
		CheckinAt:  checkin,
		CheckoutAt: checkin.Add(time.Duration(days) * 24 * time.Hour),
		RoomRate:   200000, // Rs 2000/day
	}
}

func TestDaysStayedNeverBelowOne(t *testing.T) {
	checkin := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		checkout time.Time
		want     int
	}{
		{"same instant", checkin, 1},
		{"same day", checkin.Add(6 * time.Hour), 1},
		{"checkout before checkin", checkin.Add(-2 * time.Hour), 1},
		{"exactly one day", checkin.Add(24 * time.Hour), 1},
		{"a day and an hour", checkin.Add(25 * time.Hour), 2},
		{"three days", checkin.Add(72 * time.Hour), 3},
	}
	for _, tc := range cases {
		if got := DaysStayed(checkin, tc.checkout); got != tc.want {
			t.Fatalf("%s: got %d days, want %d", tc.name, got, tc.want)
		}
	}
}

func TestComputeDiscountFreeSumsAllCharges(t *testing.T) {
	calc := NewBillingCalculator()

	in := stayInput(3)
	in.FoodOrdersTotal = 50000
	in.POSOrdersTotal = 32500
	in.AdditionalTotal = 7500

	snap := calc.Compute(in)

	if snap.RoomCharges != 600000 {
		t.Fatalf("room charges = %d, want 600000", snap.RoomCharges)
	}
	wantSubtotal := snap.RoomCharges + in.FoodOrdersTotal + in.POSOrdersTotal + in.AdditionalTotal
	if snap.Subtotal != wantSubtotal {
		t.Fatalf("subtotal = %d, want %d", snap.Subtotal, wantSubtotal)
	}
	if snap.GrandTotal != wantSubtotal {
		t.Fatalf("grand total = %d, want %d with no discounts or surcharges", snap.GrandTotal, wantSubtotal)
	}
}

func TestComputeThreeDayStayScenario(t *testing.T) {
	calc := NewBillingCalculator()

	// Rs 2000/day for 3 days plus Rs 500 of food orders
	in := stayInput(3)
	in.FoodOrdersTotal = 50000

	snap := calc.Compute(in)

	if snap.RoomCharges != 600000 {
		t.Fatalf("room charges = %d, want 600000", snap.RoomCharges)
	}
	if snap.Subtotal != 650000 {
		t.Fatalf("subtotal = %d, want 650000", snap.Subtotal)
	}
	if snap.GrandTotal != 650000 {
		t.Fatalf("grand total = %d, want 650000", snap.GrandTotal)
	}
}

func TestComputeStacksManualAndPromotionDiscounts(t *testing.T) {
	calc := NewBillingCalculator()

	flat := int64(20000) // Rs 200 off
	in := stayInput(3)
	in.FoodOrdersTotal = 50000
	in.DiscountType = enum.DiscountTypePercentage
	in.DiscountValue = 10
	in.Promotion = &entity.Promotion{DiscountAmount: &flat}

	snap := calc.Compute(in)

	if snap.ManualDiscount != 65000 {
		t.Fatalf("manual discount = %d, want 65000", snap.ManualDiscount)
	}
	if snap.PromotionDiscount != 20000 {
		t.Fatalf("promotion discount = %d, want 20000", snap.PromotionDiscount)
	}
	if snap.TotalDiscount != snap.ManualDiscount+snap.PromotionDiscount {
		t.Fatalf("total discount = %d, want additive %d", snap.TotalDiscount, snap.ManualDiscount+snap.PromotionDiscount)
	}
	if snap.GrandTotal != 565000 {
		t.Fatalf("grand total = %d, want 565000", snap.GrandTotal)
	}
}

func TestComputeRemovingPromotionRestoresTotal(t *testing.T) {
	calc := NewBillingCalculator()

	in := stayInput(2)
	in.FoodOrdersTotal = 42000
	before := calc.Compute(in)

	pct := 15.0
	in.Promotion = &entity.Promotion{DiscountPercent: &pct}
	withPromo := calc.Compute(in)
	if withPromo.GrandTotal >= before.GrandTotal {
		t.Fatalf("promotion did not reduce total: %d -> %d", before.GrandTotal, withPromo.GrandTotal)
	}

	in.Promotion = nil
	after := calc.Compute(in)
	if after.GrandTotal != before.GrandTotal {
		t.Fatalf("grand total after removal = %d, want %d", after.GrandTotal, before.GrandTotal)
	}
}

func TestComputeServiceChargeOnPostDiscountAmount(t *testing.T) {
	calc := NewBillingCalculator()

	// Rs 1000 subtotal, Rs 100 fixed discount, 10% service charge
	in := &CheckoutInput{
		CheckinAt:            time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		CheckoutAt:           time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC),
		RoomRate:             100000,
		DiscountType:         enum.DiscountTypeFixed,
		DiscountValue:        100,
		ServiceChargeEnabled: true,
		ServiceChargePercent: 10,
	}

	snap := calc.Compute(in)

	if snap.Subtotal != 100000 {
		t.Fatalf("subtotal = %d, want 100000", snap.Subtotal)
	}
	if snap.TotalDiscount != 10000 {
		t.Fatalf("total discount = %d, want 10000", snap.TotalDiscount)
	}
	if snap.ServiceCharge != 9000 {
		t.Fatalf("service charge = %d, want 9000 (10%% of the discounted amount)", snap.ServiceCharge)
	}
	if snap.GrandTotal != 99000 {
		t.Fatalf("grand total = %d, want 99000", snap.GrandTotal)
	}
}

func TestComputeServiceChargeDisabled(t *testing.T) {
	calc := NewBillingCalculator()

	in := stayInput(1)
	in.ServiceChargeEnabled = false
	in.ServiceChargePercent = 10

	if snap := calc.Compute(in); snap.ServiceCharge != 0 {
		t.Fatalf("service charge = %d, want 0 when disabled", snap.ServiceCharge)
	}
}

func TestComputeTaxOnDiscountedAmountPlusServiceCharge(t *testing.T) {
	calc := NewBillingCalculator()

	in := &CheckoutInput{
		CheckinAt:            time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		CheckoutAt:           time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC),
		RoomRate:             100000,
		DiscountType:         enum.DiscountTypeFixed,
		DiscountValue:        100,
		ServiceChargeEnabled: true,
		ServiceChargePercent: 10,
		TaxRatePercent:       5,
	}

	snap := calc.Compute(in)

	// 5% of (100000 - 10000 + 9000)
	if snap.TaxAmount != 4950 {
		t.Fatalf("tax = %d, want 4950", snap.TaxAmount)
	}
	if snap.GrandTotal != 103950 {
		t.Fatalf("grand total = %d, want 103950", snap.GrandTotal)
	}
}

func TestComputeOversizedFixedDiscountClampsToSubtotal(t *testing.T) {
	calc := NewBillingCalculator()

	// Rs 10000 discount against a Rs 6500 bill
	in := stayInput(3)
	in.FoodOrdersTotal = 50000
	in.DiscountType = enum.DiscountTypeFixed
	in.DiscountValue = 10000

	snap := calc.Compute(in)

	if snap.TotalDiscount != snap.Subtotal {
		t.Fatalf("total discount = %d, want clamped to subtotal %d", snap.TotalDiscount, snap.Subtotal)
	}
	if snap.GrandTotal != 0 {
		t.Fatalf("grand total = %d, want 0", snap.GrandTotal)
	}
	if snap.GrandTotal < 0 {
		t.Fatal("grand total must never be negative")
	}
}

func TestComputeIgnoresValidatorFigures(t *testing.T) {
	calc := NewBillingCalculator()

	// Only the promotion's own percentage matters; a stale upstream figure
	// has no channel into the calculator.
	pct := 10.0
	in := stayInput(3)
	in.FoodOrdersTotal = 50000
	in.Promotion = &entity.Promotion{DiscountPercent: &pct}

	snap := calc.Compute(in)
	if snap.PromotionDiscount != 65000 {
		t.Fatalf("promotion discount = %d, want locally derived 65000", snap.PromotionDiscount)
	}
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	calc := NewBillingCalculator()

	in := stayInput(2)
	in.FoodOrdersTotal = 12345
	copyIn := *in

	_ = calc.Compute(in)
	_ = calc.Compute(in)

	if *in != copyIn {
		t.Fatalf("input mutated: %+v != %+v", *in, copyIn)
	}
}
