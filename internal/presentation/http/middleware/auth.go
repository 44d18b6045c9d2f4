package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	infraRepo "github.com/sudipjangam/tasty-bite-harbor-sub001/internal/infrastructure/repository"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/presentation/http/dto/response"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware. The restaurant
// scope from the token claims is propagated into the request context so
// repositories only ever see that restaurant's rows.
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}
		if claims.RestaurantID == uuid.Nil {
			response.Unauthorized(c, "Token carries no restaurant scope")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Set("restaurant_id", claims.RestaurantID)

		ctx := infraRepo.WithRestaurant(c.Request.Context(), claims.RestaurantID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetRestaurantScope reads the restaurant scope set by AuthMiddleware.
// Returns uuid.Nil when the request is unauthenticated.
func GetRestaurantScope(c *gin.Context) uuid.UUID {
	val, exists := c.Get("restaurant_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("user_role")
		if !exists {
			response.ErrorWithCode(c, 403, "Access denied")
			c.Abort()
			return
		}
		userRole, _ := roleVal.(string)
		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}
		response.ErrorWithCode(c, 403, "Insufficient role privileges")
		c.Abort()
	}
}
