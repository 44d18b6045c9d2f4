package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetRestaurantID extracts the restaurant scope from the Gin context
func GetRestaurantID(c *gin.Context) *uuid.UUID {
	val, exists := c.Get("restaurant_id")
	if !exists {
		return nil
	}
	restaurantID, ok := val.(uuid.UUID)
	if !ok {
		return nil
	}
	return &restaurantID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}
