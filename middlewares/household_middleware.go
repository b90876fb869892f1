package middlewares

import (
	"net/http"

	"github.com/MohammadCZeidan/Server-Homelife/config"
	"github.com/MohammadCZeidan/Server-Homelife/models"

	"github.com/gin-gonic/gin"
)

// HouseholdRequired gates household-scoped routes: the authenticated
// user must belong to a household, whose id is stored in the context
// for the handlers.
func HouseholdRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")

		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "failure", "payload": nil, "message": "user not found"})
			return
		}
		if user.HouseholdID == nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"status": "failure", "payload": nil, "message": "User must belong to a household"})
			return
		}

		c.Set("householdID", *user.HouseholdID)
		c.Next()
	}
}

// AdminOnly restricts a route to admin users.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")

		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil || user.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"status": "failure", "payload": nil, "message": "admin access required"})
			return
		}
		c.Next()
	}
}
