package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/enum"
	domainRepo "github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/repository"
	"gorm.io/gorm"
)

type foodOrderRepository struct {
	db *gorm.DB
}

// NewFoodOrderRepository creates a new food order repository
func NewFoodOrderRepository(db *gorm.DB) domainRepo.FoodOrderRepository {
	return &foodOrderRepository{db: db}
}

func (r *foodOrderRepository) Create(ctx context.Context, order *entity.FoodOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *foodOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.FoodOrder, error) {
	var order entity.FoodOrder
	err := r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		Preload("Items").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *foodOrderRepository) ListBillableByRoom(ctx context.Context, roomID uuid.UUID) ([]entity.FoodOrder, error) {
	var orders []entity.FoodOrder
	err := r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		Where("room_id = ? AND status = ? AND billing_id IS NULL", roomID, enum.FoodOrderStatusDelivered).
		Preload("Items").
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

func (r *foodOrderRepository) ListByBilling(ctx context.Context, billingID uuid.UUID) ([]entity.FoodOrder, error) {
	var orders []entity.FoodOrder
	err := r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		Where("billing_id = ?", billingID).
		Preload("Items").
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

type posOrderRepository struct {
	db *gorm.DB
}

// NewPOSOrderRepository creates a new POS order repository
func NewPOSOrderRepository(db *gorm.DB) domainRepo.POSOrderRepository {
	return &posOrderRepository{db: db}
}

func (r *posOrderRepository) Create(ctx context.Context, order *entity.POSOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *posOrderRepository) ListPendingRoomCharge(ctx context.Context, reservationID uuid.UUID) ([]entity.POSOrder, error) {
	var orders []entity.POSOrder
	err := r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		Where("reservation_id = ? AND payment_status = ? AND billing_id IS NULL",
			reservationID, enum.PaymentStatusPendingRoomCharge).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}
