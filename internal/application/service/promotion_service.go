package service

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
	domainRepo "github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/repository"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/infrastructure/client"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/pkg/apperror"
)

// PromotionService validates promotion codes for checkout. The local
// promotions table is the pricing authority; when a remote validator is
// configured its verdict gates acceptance, but its discount figures are
// never used.
type PromotionService struct {
	promotionRepo domainRepo.PromotionRepository
	validator     client.PromotionValidator
}

// NewPromotionService creates a new promotion service. validator may be
// nil, in which case codes are checked only against the local table.
func NewPromotionService(promotionRepo domainRepo.PromotionRepository, validator client.PromotionValidator) *PromotionService {
	return &PromotionService{
		promotionRepo: promotionRepo,
		validator:     validator,
	}
}

// ValidateCode resolves a code to an applicable promotion, or an error the
// checkout screen can surface. orderSubtotal is in paise.
func (s *PromotionService) ValidateCode(ctx context.Context, code string, orderSubtotal int64) (*entity.Promotion, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "code", Message: "Promotion code is required"},
		})
	}

	promotion, err := s.promotionRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if promotion == nil {
		return nil, apperror.NewAppError(http.StatusUnprocessableEntity, "Invalid promotion code")
	}
	if !promotion.IsActive {
		return nil, apperror.NewAppError(http.StatusUnprocessableEntity, "Promotion is no longer active")
	}
	if !promotion.WithinWindow(time.Now()) {
		return nil, apperror.NewAppError(http.StatusUnprocessableEntity, "Promotion code has expired")
	}

	if s.validator != nil {
		verdict, err := s.validator.Validate(ctx, &client.ValidationRequest{
			Code:          promotion.Code,
			OrderSubtotal: float64(orderSubtotal) / 100,
			RestaurantID:  promotion.RestaurantID,
		})
		if err != nil {
			logrus.WithError(err).WithField("code", promotion.Code).Warn("promotion validator call failed")
			return nil, apperror.NewBadGatewayError("Promotion validation is temporarily unavailable")
		}
		if !verdict.Valid {
			message := verdict.Error
			if message == "" {
				message = "Invalid promotion code"
			}
			return nil, apperror.NewAppError(http.StatusUnprocessableEntity, message)
		}
	}

	return promotion, nil
}

// ListActive returns promotions currently inside their validity window.
func (s *PromotionService) ListActive(ctx context.Context) ([]entity.Promotion, error) {
	return s.promotionRepo.ListActive(ctx)
}
