package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

// RestaurantIDKey is the context key for the restaurant scope
const RestaurantIDKey ctxKey = "restaurant_id"

// RestaurantScope returns a GORM scope that filters by restaurant.
// Applied to all queries for restaurant-scoped entities. If the scope is
// missing from the context the query matches nothing; this prevents
// accidental cross-property data access.
func RestaurantScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		restaurantID, ok := ctx.Value(RestaurantIDKey).(uuid.UUID)
		if !ok || restaurantID == uuid.Nil {
			return db.Where("1 = 0")
		}
		return db.Where("restaurant_id = ?", restaurantID)
	}
}

// WithRestaurant adds the restaurant ID to the context
func WithRestaurant(ctx context.Context, restaurantID uuid.UUID) context.Context {
	return context.WithValue(ctx, RestaurantIDKey, restaurantID)
}

// GetRestaurantID extracts the restaurant ID from the context
func GetRestaurantID(ctx context.Context) (uuid.UUID, bool) {
	restaurantID, ok := ctx.Value(RestaurantIDKey).(uuid.UUID)
	return restaurantID, ok
}
