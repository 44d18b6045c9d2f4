package repository

import (
	"context"

	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
)

// PromotionRepository defines the interface for promotion data operations.
// Promotions are administered outside this service; this interface is
// read-only apart from the usage audit log.
type PromotionRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Promotion, error)
	ListActive(ctx context.Context) ([]entity.Promotion, error)
	LogUsage(ctx context.Context, usage *entity.PromotionUsage) error
}
