package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/pkg/pagination"
)

// CheckoutWrite bundles everything the checkout confirmation persists as one
// atomic unit: the billing record (with its additional charges), the orders
// folded into it, and the guarded room release. Either all of it commits or
// none of it does.
type CheckoutWrite struct {
	Billing      *entity.Billing
	FoodOrderIDs []uuid.UUID
	POSOrderIDs  []uuid.UUID
	RoomID       uuid.UUID
	RoomVersion  int64
}

// BillingFilterParams contains filtering parameters for billing queries
type BillingFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	RoomID     *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// BillingRepository defines the interface for billing data operations
type BillingRepository interface {
	// ConfirmCheckout runs the whole checkout write set in a single
	// transaction. Returns apperror.ErrCheckoutConflict (409) when the room
	// version guard fails.
	ConfirmCheckout(ctx context.Context, write *CheckoutWrite) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Billing, error)
	GetByBillNo(ctx context.Context, billNo string) (*entity.Billing, error)
	List(ctx context.Context, params *BillingFilterParams) ([]entity.Billing, int64, error)
}
