package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
	domainRepo "github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/repository"
	"gorm.io/gorm"
)

type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository creates a new promotion repository
func NewPromotionRepository(db *gorm.DB) domainRepo.PromotionRepository {
	return &promotionRepository{db: db}
}

// GetByCode looks up a promotion by its code, case-insensitively.
func (r *promotionRepository) GetByCode(ctx context.Context, code string) (*entity.Promotion, error) {
	var promotion entity.Promotion
	err := r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		First(&promotion, "UPPER(code) = ?", strings.ToUpper(code)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &promotion, err
}

func (r *promotionRepository) ListActive(ctx context.Context) ([]entity.Promotion, error) {
	var promotions []entity.Promotion
	now := time.Now()
	err := r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Order("created_at DESC").
		Find(&promotions).Error
	return promotions, err
}

func (r *promotionRepository) LogUsage(ctx context.Context, usage *entity.PromotionUsage) error {
	return r.db.WithContext(ctx).Create(usage).Error
}
