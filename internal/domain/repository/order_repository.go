package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
)

// FoodOrderRepository defines the interface for room-service order data
type FoodOrderRepository interface {
	Create(ctx context.Context, order *entity.FoodOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FoodOrder, error)
	// ListBillableByRoom returns delivered, not-yet-billed orders for a room,
	// with their line items preloaded.
	ListBillableByRoom(ctx context.Context, roomID uuid.UUID) ([]entity.FoodOrder, error)
	// ListByBilling returns the orders folded into a confirmed bill, with
	// their line items preloaded, for receipt itemization.
	ListByBilling(ctx context.Context, billingID uuid.UUID) ([]entity.FoodOrder, error)
}

// POSOrderRepository defines the interface for point-of-sale order data
type POSOrderRepository interface {
	Create(ctx context.Context, order *entity.POSOrder) error
	// ListPendingRoomCharge returns orders linked to the reservation whose
	// payment status is the "Pending - Room Charge" sentinel.
	ListPendingRoomCharge(ctx context.Context, reservationID uuid.UUID) ([]entity.POSOrder, error)
}
