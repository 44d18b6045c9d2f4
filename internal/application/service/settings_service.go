package service

import (
	"context"

	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
	domainRepo "github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/repository"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/pkg/apperror"
)

// SettingsService reads and updates the restaurant's billing settings
type SettingsService struct {
	restaurantRepo domainRepo.RestaurantRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(restaurantRepo domainRepo.RestaurantRepository) *SettingsService {
	return &SettingsService{restaurantRepo: restaurantRepo}
}

// Get returns the scoped restaurant with its billing settings.
func (s *SettingsService) Get(ctx context.Context) (*entity.Restaurant, error) {
	restaurant, err := s.restaurantRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperror.NewNotFoundError("Restaurant")
	}
	return restaurant, nil
}

// UpdateInput carries the editable billing settings.
type UpdateInput struct {
	ServiceChargeEnabled *bool
	ServiceChargePercent *float64
	TaxRatePercent       *float64
	Address              *string
	Phone                *string
	GSTIN                *string
}

// Update applies the given settings. Percentages are bounded: service
// charge 0..50, tax rate 0..100.
func (s *SettingsService) Update(ctx context.Context, input *UpdateInput) (*entity.Restaurant, error) {
	restaurant, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.ServiceChargePercent != nil {
		if *input.ServiceChargePercent < 0 || *input.ServiceChargePercent > 50 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "service_charge_percent", Message: "Service charge must be between 0 and 50 percent"},
			})
		}
		restaurant.ServiceChargePercent = *input.ServiceChargePercent
	}
	if input.TaxRatePercent != nil {
		if *input.TaxRatePercent < 0 || *input.TaxRatePercent > 100 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "tax_rate_percent", Message: "Tax rate must be between 0 and 100 percent"},
			})
		}
		restaurant.TaxRatePercent = *input.TaxRatePercent
	}
	if input.ServiceChargeEnabled != nil {
		restaurant.ServiceChargeEnabled = *input.ServiceChargeEnabled
	}
	if input.Address != nil {
		restaurant.Address = *input.Address
	}
	if input.Phone != nil {
		restaurant.Phone = *input.Phone
	}
	if input.GSTIN != nil {
		restaurant.GSTIN = *input.GSTIN
	}

	if err := s.restaurantRepo.Update(ctx, restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}
