package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/enum"
	domainRepo "github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/repository"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/pkg/apperror"
	"gorm.io/gorm"
)

type billingRepository struct {
	db *gorm.DB
}

// NewBillingRepository creates a new billing repository
func NewBillingRepository(db *gorm.DB) domainRepo.BillingRepository {
	return &billingRepository{db: db}
}

// ConfirmCheckout commits the whole checkout write set in one transaction:
// the billing record with its charges, the billed markers on the folded
// orders, the reservation close, and the guarded room release. A version
// mismatch on the room aborts the transaction with ErrCheckoutConflict.
func (r *billingRepository) ConfirmCheckout(ctx context.Context, write *domainRepo.CheckoutWrite) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(write.Billing).Error; err != nil {
			return err
		}

		if len(write.FoodOrderIDs) > 0 {
			if err := tx.Model(&entity.FoodOrder{}).
				Where("id IN ?", write.FoodOrderIDs).
				Update("billing_id", write.Billing.ID).Error; err != nil {
				return err
			}
		}

		if len(write.POSOrderIDs) > 0 {
			if err := tx.Model(&entity.POSOrder{}).
				Where("id IN ?", write.POSOrderIDs).
				Updates(map[string]interface{}{
					"billing_id":     write.Billing.ID,
					"payment_status": enum.PaymentStatusPaid,
				}).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&entity.Reservation{}).
			Where("id = ?", write.Billing.ReservationID).
			Updates(map[string]interface{}{
				"status":      entity.ReservationStatusCheckedOut,
				"checkout_at": write.Billing.CheckoutAt,
			}).Error; err != nil {
			return err
		}

		result := tx.Model(&entity.Room{}).
			Where("id = ? AND version = ? AND status = ?",
				write.RoomID, write.RoomVersion, enum.RoomStatusOccupied).
			Updates(map[string]interface{}{
				"status":  enum.RoomStatusAvailable,
				"version": write.RoomVersion + 1,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != 1 {
			return apperror.ErrCheckoutConflict
		}

		return nil
	})
}

func (r *billingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Billing, error) {
	var billing entity.Billing
	err := r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		Preload("Charges").
		Preload("Room").
		First(&billing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &billing, err
}

func (r *billingRepository) GetByBillNo(ctx context.Context, billNo string) (*entity.Billing, error) {
	var billing entity.Billing
	err := r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		Preload("Charges").
		First(&billing, "bill_no = ?", billNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &billing, err
}

func (r *billingRepository) List(ctx context.Context, params *domainRepo.BillingFilterParams) ([]entity.Billing, int64, error) {
	var billings []entity.Billing
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Billing{}).Scopes(RestaurantScope(ctx))

	if params.Search != "" {
		query = query.Where("bill_no ILIKE ? OR guest_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.RoomID != nil {
		query = query.Where("room_id = ?", *params.RoomID)
	}
	if params.StartDate != nil {
		query = query.Where("checkout_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("checkout_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&billings).Error

	return billings, total, err
}
