package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/enum"
	domainRepo "github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/repository"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/pkg/apperror"
)

type fakeRoomRepo struct {
	room    *entity.Room
	casFail bool
}

func (r *fakeRoomRepo) Create(context.Context, *entity.Room) error { return nil }
func (r *fakeRoomRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	if r.room != nil && r.room.ID == id {
		return r.room, nil
	}
	return nil, nil
}
func (r *fakeRoomRepo) GetByNumber(context.Context, string) (*entity.Room, error) { return nil, nil }
func (r *fakeRoomRepo) List(context.Context, *enum.RoomStatus) ([]entity.Room, error) {
	return nil, nil
}
func (r *fakeRoomRepo) UpdateStatus(context.Context, uuid.UUID, enum.RoomStatus, int64) (bool, error) {
	return !r.casFail, nil
}

type fakeReservationRepo struct {
	reservation *entity.Reservation
}

func (r *fakeReservationRepo) Create(context.Context, *entity.Reservation) error { return nil }
func (r *fakeReservationRepo) GetByID(context.Context, uuid.UUID) (*entity.Reservation, error) {
	return r.reservation, nil
}
func (r *fakeReservationRepo) GetActiveByRoom(context.Context, uuid.UUID) (*entity.Reservation, error) {
	return r.reservation, nil
}
func (r *fakeReservationRepo) List(context.Context, string) ([]entity.Reservation, error) {
	return nil, nil
}

type fakeFoodOrderRepo struct {
	orders []entity.FoodOrder
}

func (r *fakeFoodOrderRepo) Create(context.Context, *entity.FoodOrder) error { return nil }
func (r *fakeFoodOrderRepo) GetByID(context.Context, uuid.UUID) (*entity.FoodOrder, error) {
	return nil, nil
}
func (r *fakeFoodOrderRepo) ListBillableByRoom(context.Context, uuid.UUID) ([]entity.FoodOrder, error) {
	return r.orders, nil
}
func (r *fakeFoodOrderRepo) ListByBilling(context.Context, uuid.UUID) ([]entity.FoodOrder, error) {
	return r.orders, nil
}

type fakePOSOrderRepo struct {
	orders []entity.POSOrder
}

func (r *fakePOSOrderRepo) Create(context.Context, *entity.POSOrder) error { return nil }
func (r *fakePOSOrderRepo) ListPendingRoomCharge(context.Context, uuid.UUID) ([]entity.POSOrder, error) {
	return r.orders, nil
}

type fakeBillingRepo struct {
	confirmErr error
	lastWrite  *domainRepo.CheckoutWrite
}

func (r *fakeBillingRepo) ConfirmCheckout(_ context.Context, write *domainRepo.CheckoutWrite) error {
	if r.confirmErr != nil {
		return r.confirmErr
	}
	r.lastWrite = write
	return nil
}
func (r *fakeBillingRepo) GetByID(context.Context, uuid.UUID) (*entity.Billing, error) {
	return nil, nil
}
func (r *fakeBillingRepo) GetByBillNo(context.Context, string) (*entity.Billing, error) {
	return nil, nil
}
func (r *fakeBillingRepo) List(context.Context, *domainRepo.BillingFilterParams) ([]entity.Billing, int64, error) {
	return nil, 0, nil
}

type fakeRestaurantRepo struct {
	restaurant *entity.Restaurant
}

func (r *fakeRestaurantRepo) GetByID(context.Context, uuid.UUID) (*entity.Restaurant, error) {
	return r.restaurant, nil
}
func (r *fakeRestaurantRepo) Get(context.Context) (*entity.Restaurant, error) {
	return r.restaurant, nil
}
func (r *fakeRestaurantRepo) Update(context.Context, *entity.Restaurant) error { return nil }

type checkoutFixture struct {
	svc         *CheckoutService
	room        *entity.Room
	reservation *entity.Reservation
	billingRepo *fakeBillingRepo
	promoRepo   *fakePromotionRepo
}

func newCheckoutFixture(promos ...*entity.Promotion) *checkoutFixture {
	restaurantID := uuid.New()
	room := &entity.Room{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Number:       "101",
		DailyRate:    200000,
		Status:       enum.RoomStatusOccupied,
		Version:      4,
	}
	reservation := &entity.Reservation{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		RoomID:       room.ID,
		GuestName:    "Asha Verma",
		GuestPhone:   "9000000000",
		CheckinAt:    time.Now().Add(-49 * time.Hour), // 3 billable days
		Status:       entity.ReservationStatusActive,
	}
	promoRepo := newFakePromotionRepo(promos...)
	billingRepo := &fakeBillingRepo{}

	svc := NewCheckoutService(
		&fakeRoomRepo{room: room},
		&fakeReservationRepo{reservation: reservation},
		&fakeFoodOrderRepo{orders: []entity.FoodOrder{
			{ID: uuid.New(), Total: 30000},
			{ID: uuid.New(), Total: 20000},
		}},
		&fakePOSOrderRepo{orders: []entity.POSOrder{
			{ID: uuid.New(), Total: 15000, PaymentStatus: enum.PaymentStatusPendingRoomCharge},
		}},
		billingRepo,
		promoRepo,
		&fakeRestaurantRepo{restaurant: &entity.Restaurant{
			ID:             restaurantID,
			Name:           "Harbor View",
			TaxRatePercent: 0,
		}},
		NewPromotionService(promoRepo, nil),
	)
	return &checkoutFixture{
		svc:         svc,
		room:        room,
		reservation: reservation,
		billingRepo: billingRepo,
		promoRepo:   promoRepo,
	}
}

func TestPreviewPricesOpenCharges(t *testing.T) {
	f := newCheckoutFixture()

	preview, err := f.svc.Preview(context.Background(), &CheckoutParams{RoomID: f.room.ID})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}

	snap := preview.Snapshot
	if snap.DaysStayed != 3 {
		t.Fatalf("days stayed = %d, want 3", snap.DaysStayed)
	}
	if snap.RoomCharges != 600000 {
		t.Fatalf("room charges = %d, want 600000", snap.RoomCharges)
	}
	if snap.FoodOrdersTotal != 50000 {
		t.Fatalf("food total = %d, want 50000", snap.FoodOrdersTotal)
	}
	if snap.POSOrdersTotal != 15000 {
		t.Fatalf("pos total = %d, want 15000", snap.POSOrdersTotal)
	}
	if snap.GrandTotal != 665000 {
		t.Fatalf("grand total = %d, want 665000", snap.GrandTotal)
	}
	if f.billingRepo.lastWrite != nil {
		t.Fatal("preview must not persist anything")
	}
}

func TestPreviewRejectsVacantRoom(t *testing.T) {
	f := newCheckoutFixture()
	f.room.Status = enum.RoomStatusAvailable

	_, err := f.svc.Preview(context.Background(), &CheckoutParams{RoomID: f.room.ID})
	if !errors.Is(err, apperror.ErrRoomNotOccupied) {
		t.Fatalf("expected room-not-occupied error, got %v", err)
	}
}

func TestConfirmPersistsFullWriteSet(t *testing.T) {
	f := newCheckoutFixture()
	operator := uuid.New()

	billing, err := f.svc.Confirm(context.Background(), &CheckoutParams{
		RoomID:        f.room.ID,
		PaymentMethod: "cash",
		AdditionalCharges: []ChargeParam{
			{Name: "Laundry", Amount: 150},
		},
	}, operator)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}

	if billing.BillNo == "" || len(billing.BillNo) != len("BILL-XXXXXXXX") {
		t.Fatalf("unexpected bill number %q", billing.BillNo)
	}
	if billing.GuestName != f.reservation.GuestName {
		t.Fatalf("guest name = %q", billing.GuestName)
	}
	if billing.AdditionalTotal != 15000 {
		t.Fatalf("additional total = %d, want 15000", billing.AdditionalTotal)
	}
	if billing.GrandTotal != 680000 {
		t.Fatalf("grand total = %d, want 680000", billing.GrandTotal)
	}
	if billing.CheckedOutBy != operator {
		t.Fatal("operator not recorded")
	}

	write := f.billingRepo.lastWrite
	if write == nil {
		t.Fatal("nothing persisted")
	}
	if len(write.FoodOrderIDs) != 2 || len(write.POSOrderIDs) != 1 {
		t.Fatalf("write set has %d food / %d pos orders", len(write.FoodOrderIDs), len(write.POSOrderIDs))
	}
	if write.RoomID != f.room.ID || write.RoomVersion != f.room.Version {
		t.Fatal("room guard not carried into the write set")
	}
}

func TestConfirmRequiresPaymentMethod(t *testing.T) {
	f := newCheckoutFixture()

	_, err := f.svc.Confirm(context.Background(), &CheckoutParams{RoomID: f.room.ID}, uuid.New())
	if appErr := apperror.GetAppError(err); appErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", appErr.Code)
	}
}

func TestConfirmSurfacesConcurrentCheckoutConflict(t *testing.T) {
	f := newCheckoutFixture()
	f.billingRepo.confirmErr = apperror.ErrCheckoutConflict

	_, err := f.svc.Confirm(context.Background(), &CheckoutParams{
		RoomID:        f.room.ID,
		PaymentMethod: "card",
	}, uuid.New())
	if !errors.Is(err, apperror.ErrCheckoutConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestConfirmAppliesPromotionAndRecordsCode(t *testing.T) {
	promo := activePromotion("WELCOME10")
	f := newCheckoutFixture(promo)

	billing, err := f.svc.Confirm(context.Background(), &CheckoutParams{
		RoomID:        f.room.ID,
		PaymentMethod: "cash",
		PromotionCode: "WELCOME10",
	}, uuid.New())
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if billing.PromotionCode != "WELCOME10" {
		t.Fatalf("promotion code = %q", billing.PromotionCode)
	}
	// 10% of 665000
	if billing.PromotionDiscount != 66500 {
		t.Fatalf("promotion discount = %d, want 66500", billing.PromotionDiscount)
	}
}

func TestLogPromotionUsageFailureStaysQuiet(t *testing.T) {
	promo := activePromotion("WELCOME10")
	f := newCheckoutFixture(promo)
	f.promoRepo.usageErr = errors.New("audit table unavailable")

	billing := &entity.Billing{
		ID:                uuid.New(),
		RestaurantID:      uuid.New(),
		BillNo:            "BILL-TEST0001",
		GuestName:         "Asha Verma",
		GrandTotal:        565000,
		PromotionDiscount: 65000,
	}

	// must not panic or surface the error
	f.svc.logPromotionUsage(promo, billing)

	f.promoRepo.usageErr = nil
	f.svc.logPromotionUsage(promo, billing)
	if len(f.promoRepo.usages) != 1 {
		t.Fatalf("usage rows = %d, want 1", len(f.promoRepo.usages))
	}
	u := f.promoRepo.usages[0]
	if u.PromotionID != promo.ID || u.BillingID != billing.ID || u.DiscountAmount != 65000 {
		t.Fatalf("usage row mismatch: %+v", u)
	}
}

func TestPreviewTracksPromotionLifecycle(t *testing.T) {
	promo := activePromotion("WELCOME10")
	f := newCheckoutFixture(promo)

	preview, err := f.svc.Preview(context.Background(), &CheckoutParams{RoomID: f.room.ID})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if preview.PromotionStatus != PromotionNone {
		t.Fatalf("status without code = %q, want %q", preview.PromotionStatus, PromotionNone)
	}
	if preview.Promotion != nil {
		t.Fatalf("no promotion should be applied without a code")
	}

	preview, err = f.svc.Preview(context.Background(), &CheckoutParams{
		RoomID:        f.room.ID,
		PromotionCode: "WELCOME10",
	})
	if err != nil {
		t.Fatalf("preview with code: %v", err)
	}
	if preview.PromotionStatus != PromotionApplied {
		t.Fatalf("status with valid code = %q, want %q", preview.PromotionStatus, PromotionApplied)
	}
	if preview.Promotion == nil || preview.Promotion.Code != "WELCOME10" {
		t.Fatalf("applied promotion missing from preview")
	}

	_, err = f.svc.Preview(context.Background(), &CheckoutParams{
		RoomID:        f.room.ID,
		PromotionCode: "BOGUS",
	})
	if err == nil {
		t.Fatalf("unknown code should reject the preview")
	}
}
