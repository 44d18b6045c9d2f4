package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/entity"
)

// RestaurantRepository defines the interface for restaurant data operations
type RestaurantRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	// Get returns the restaurant for the scope carried in ctx.
	Get(ctx context.Context) (*entity.Restaurant, error)
	Update(ctx context.Context, restaurant *entity.Restaurant) error
}

// UserRepository defines the interface for staff account data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
