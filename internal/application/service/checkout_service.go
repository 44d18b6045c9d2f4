package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/enum"
	domainRepo "github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/repository"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/pkg/apperror"
)

// ChargeParam is an operator-entered ad-hoc charge. Amount is in rupees as
// typed on the checkout screen.
type ChargeParam struct {
	Name   string
	Amount float64
}

// CheckoutParams carries the operator's checkout screen inputs.
type CheckoutParams struct {
	RoomID            uuid.UUID
	AdditionalCharges []ChargeParam
	DiscountType      enum.DiscountType
	DiscountValue     float64
	PromotionCode     string
	PaymentMethod     string
}

// CheckoutPreview is the assembled, priced state of a checkout before
// confirmation. Nothing is persisted for a preview.
type CheckoutPreview struct {
	Room            *entity.Room         `json:"room"`
	Reservation     *entity.Reservation  `json:"reservation"`
	FoodOrders      []entity.FoodOrder   `json:"food_orders"`
	POSOrders       []entity.POSOrder    `json:"pos_orders"`
	Promotion       *entity.Promotion    `json:"promotion,omitempty"`
	PromotionStatus PromotionStatus      `json:"promotion_status"`
	Snapshot        *entity.BillSnapshot `json:"snapshot"`
}

// CheckoutService drives the checkout flow: assemble the guest's open
// charges, price them, and on confirmation persist the bill and release
// the room in a single transaction.
type CheckoutService struct {
	roomRepo        domainRepo.RoomRepository
	reservationRepo domainRepo.ReservationRepository
	foodOrderRepo   domainRepo.FoodOrderRepository
	posOrderRepo    domainRepo.POSOrderRepository
	billingRepo     domainRepo.BillingRepository
	promotionRepo   domainRepo.PromotionRepository
	restaurantRepo  domainRepo.RestaurantRepository
	promotionSvc    *PromotionService
	calculator      *BillingCalculator
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	roomRepo domainRepo.RoomRepository,
	reservationRepo domainRepo.ReservationRepository,
	foodOrderRepo domainRepo.FoodOrderRepository,
	posOrderRepo domainRepo.POSOrderRepository,
	billingRepo domainRepo.BillingRepository,
	promotionRepo domainRepo.PromotionRepository,
	restaurantRepo domainRepo.RestaurantRepository,
	promotionSvc *PromotionService,
) *CheckoutService {
	return &CheckoutService{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		foodOrderRepo:   foodOrderRepo,
		posOrderRepo:    posOrderRepo,
		billingRepo:     billingRepo,
		promotionRepo:   promotionRepo,
		restaurantRepo:  restaurantRepo,
		promotionSvc:    promotionSvc,
		calculator:      NewBillingCalculator(),
	}
}

// assembly is the gathered state a checkout prices and persists.
type assembly struct {
	room        *entity.Room
	reservation *entity.Reservation
	restaurant  *entity.Restaurant
	foodOrders  []entity.FoodOrder
	posOrders   []entity.POSOrder
	promoState  *PromotionState
	charges     []entity.AdditionalCharge
	checkoutAt  time.Time
	snapshot    *entity.BillSnapshot
}

// promotion returns the applied promotion, or nil when none is in effect.
func (a *assembly) promotion() *entity.Promotion {
	return a.promoState.Applied()
}

func (s *CheckoutService) assemble(ctx context.Context, params *CheckoutParams) (*assembly, error) {
	room, err := s.roomRepo.GetByID(ctx, params.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperror.NewNotFoundError("Room")
	}
	if room.Status != enum.RoomStatusOccupied {
		return nil, apperror.ErrRoomNotOccupied
	}

	reservation, err := s.reservationRepo.GetActiveByRoom(ctx, room.ID)
	if err != nil {
		return nil, err
	}
	if reservation == nil {
		return nil, apperror.NewBadRequestError("Room has no active reservation")
	}

	restaurant, err := s.restaurantRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperror.NewNotFoundError("Restaurant")
	}

	foodOrders, err := s.foodOrderRepo.ListBillableByRoom(ctx, room.ID)
	if err != nil {
		return nil, err
	}
	posOrders, err := s.posOrderRepo.ListPendingRoomCharge(ctx, reservation.ID)
	if err != nil {
		return nil, err
	}

	var foodTotal, posTotal int64
	for _, o := range foodOrders {
		foodTotal += o.Total
	}
	for _, o := range posOrders {
		posTotal += o.Total
	}

	charges, chargesTotal, err := buildCharges(params.AdditionalCharges)
	if err != nil {
		return nil, err
	}

	promoState := NewPromotionState()
	if strings.TrimSpace(params.PromotionCode) != "" {
		if err := promoState.BeginValidation(); err != nil {
			return nil, err
		}
		// validate against the stay subtotal before discounts
		subtotal := room.DailyRate*int64(DaysStayed(reservation.CheckinAt, time.Now())) +
			foodTotal + posTotal + chargesTotal
		promotion, err := s.promotionSvc.ValidateCode(ctx, params.PromotionCode, subtotal)
		if err != nil {
			_ = promoState.Reject(apperror.GetAppError(err).Message)
			return nil, err
		}
		if err := promoState.Accept(promotion); err != nil {
			return nil, err
		}
	}

	checkoutAt := time.Now()
	snapshot := s.calculator.Compute(&CheckoutInput{
		CheckinAt:            reservation.CheckinAt,
		CheckoutAt:           checkoutAt,
		RoomRate:             room.DailyRate,
		FoodOrdersTotal:      foodTotal,
		POSOrdersTotal:       posTotal,
		AdditionalTotal:      chargesTotal,
		DiscountType:         params.DiscountType,
		DiscountValue:        params.DiscountValue,
		Promotion:            promoState.Applied(),
		ServiceChargeEnabled: restaurant.ServiceChargeEnabled,
		ServiceChargePercent: restaurant.ServiceChargePercent,
		TaxRatePercent:       restaurant.TaxRatePercent,
	})

	return &assembly{
		room:        room,
		reservation: reservation,
		restaurant:  restaurant,
		foodOrders:  foodOrders,
		posOrders:   posOrders,
		promoState:  promoState,
		charges:     charges,
		checkoutAt:  checkoutAt,
		snapshot:    snapshot,
	}, nil
}

func buildCharges(params []ChargeParam) ([]entity.AdditionalCharge, int64, error) {
	var charges []entity.AdditionalCharge
	var total int64
	for _, c := range params {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, 0, apperror.NewValidationError([]apperror.FieldError{
				{Field: "additional_charges", Message: "Charge name is required"},
			})
		}
		if c.Amount <= 0 {
			return nil, 0, apperror.NewValidationError([]apperror.FieldError{
				{Field: "additional_charges", Message: "Charge amount must be greater than zero"},
			})
		}
		amount := RupeesToPaise(c.Amount)
		charges = append(charges, entity.AdditionalCharge{Name: name, Amount: amount})
		total += amount
	}
	return charges, total, nil
}

// Preview assembles and prices the checkout without persisting anything.
func (s *CheckoutService) Preview(ctx context.Context, params *CheckoutParams) (*CheckoutPreview, error) {
	a, err := s.assemble(ctx, params)
	if err != nil {
		return nil, err
	}
	return &CheckoutPreview{
		Room:            a.room,
		Reservation:     a.reservation,
		FoodOrders:      a.foodOrders,
		POSOrders:       a.posOrders,
		Promotion:       a.promotion(),
		PromotionStatus: a.promoState.Status,
		Snapshot:        a.snapshot,
	}, nil
}

// Confirm reprices the checkout server-side and commits it: the billing
// record, the billed markers on folded orders, the reservation close and
// the room release all succeed or fail together. A concurrent checkout of
// the same room fails with a conflict. The promotion usage log runs after
// commit and never affects the outcome.
func (s *CheckoutService) Confirm(ctx context.Context, params *CheckoutParams, checkedOutBy uuid.UUID) (*entity.Billing, error) {
	if strings.TrimSpace(params.PaymentMethod) == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "payment_method", Message: "Payment method is required"},
		})
	}

	a, err := s.assemble(ctx, params)
	if err != nil {
		return nil, err
	}

	billing := &entity.Billing{
		ID:                   uuid.New(),
		RestaurantID:         a.restaurant.ID,
		RoomID:               a.room.ID,
		ReservationID:        a.reservation.ID,
		BillNo:               newBillNo(),
		GuestName:            a.reservation.GuestName,
		GuestPhone:           a.reservation.GuestPhone,
		CheckinAt:            a.reservation.CheckinAt,
		CheckoutAt:           a.checkoutAt,
		DaysStayed:           a.snapshot.DaysStayed,
		RoomRate:             a.snapshot.RoomRate,
		RoomCharges:          a.snapshot.RoomCharges,
		FoodOrdersTotal:      a.snapshot.FoodOrdersTotal,
		POSOrdersTotal:       a.snapshot.POSOrdersTotal,
		AdditionalTotal:      a.snapshot.AdditionalTotal,
		Subtotal:             a.snapshot.Subtotal,
		ManualDiscount:       a.snapshot.ManualDiscount,
		PromotionDiscount:    a.snapshot.PromotionDiscount,
		TotalDiscount:        a.snapshot.TotalDiscount,
		ServiceCharge:        a.snapshot.ServiceCharge,
		TaxAmount:            a.snapshot.TaxAmount,
		GrandTotal:           a.snapshot.GrandTotal,
		DiscountType:         params.DiscountType,
		DiscountValue:        params.DiscountValue,
		ServiceChargePercent: a.restaurant.ServiceChargePercent,
		TaxRatePercent:       a.restaurant.TaxRatePercent,
		PaymentMethod:        params.PaymentMethod,
		PaymentStatus:        enum.PaymentStatusPaid,
		CheckedOutBy:         checkedOutBy,
		Charges:              a.charges,
	}
	if promotion := a.promotion(); promotion != nil {
		billing.PromotionCode = promotion.Code
	}

	foodOrderIDs := make([]uuid.UUID, 0, len(a.foodOrders))
	for _, o := range a.foodOrders {
		foodOrderIDs = append(foodOrderIDs, o.ID)
	}
	posOrderIDs := make([]uuid.UUID, 0, len(a.posOrders))
	for _, o := range a.posOrders {
		posOrderIDs = append(posOrderIDs, o.ID)
	}

	err = s.billingRepo.ConfirmCheckout(ctx, &domainRepo.CheckoutWrite{
		Billing:      billing,
		FoodOrderIDs: foodOrderIDs,
		POSOrderIDs:  posOrderIDs,
		RoomID:       a.room.ID,
		RoomVersion:  a.room.Version,
	})
	if err != nil {
		return nil, err
	}

	if promotion := a.promotion(); promotion != nil {
		go s.logPromotionUsage(promotion, billing)
	}

	return billing, nil
}

// GetBilling returns a persisted billing record with its charges.
func (s *CheckoutService) GetBilling(ctx context.Context, id uuid.UUID) (*entity.Billing, error) {
	billing, err := s.billingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if billing == nil {
		return nil, apperror.NewNotFoundError("Billing")
	}
	return billing, nil
}

// ListBillings returns the paginated checkout history.
func (s *CheckoutService) ListBillings(ctx context.Context, params *domainRepo.BillingFilterParams) ([]entity.Billing, int64, error) {
	return s.billingRepo.List(ctx, params)
}

// logPromotionUsage writes the redemption audit row. Best effort: a failure
// is logged and never surfaced to the operator.
func (s *CheckoutService) logPromotionUsage(promotion *entity.Promotion, billing *entity.Billing) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	usage := &entity.PromotionUsage{
		RestaurantID:   billing.RestaurantID,
		PromotionID:    promotion.ID,
		BillingID:      billing.ID,
		GuestName:      billing.GuestName,
		GuestPhone:     billing.GuestPhone,
		OrderTotal:     billing.GrandTotal,
		DiscountAmount: billing.PromotionDiscount,
	}
	if err := s.promotionRepo.LogUsage(ctx, usage); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"bill_no":   billing.BillNo,
			"promotion": promotion.Code,
		}).Warn("failed to log promotion usage")
	}
}

func newBillNo() string {
	return "BILL-" + strings.ToUpper(uuid.NewString()[:8])
}
