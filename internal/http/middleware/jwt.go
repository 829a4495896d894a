package middleware

import (
	"net/http"
	"strings"

	"workasana/internal/service"

	"github.com/gin-gonic/gin"
)

// JWT validates the Authorization header and stores the user id in the gin
// context under "user_id". A "Bearer " prefix is accepted but not required.
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}
		token = strings.TrimPrefix(token, "Bearer ")

		userID, err := service.ParseJWT(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token or token is expired."})
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
