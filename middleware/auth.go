package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"movie-catalog-backend/helper"
)

const userIDKey = "user_id"

// RequireAuth validates the bearer token on protected routes and puts the
// resolved user id into the request context. Invalid or missing tokens
// short-circuit with 401; the downstream handler is never invoked.
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			helper.Error(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := helper.ParseToken(tokenString, jwtSecret)
		if err != nil {
			helper.Error(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// GetUserID returns the authenticated user's object id from the context.
func GetUserID(c *gin.Context) (primitive.ObjectID, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return primitive.NilObjectID, false
	}

	hex, ok := value.(string)
	if !ok {
		return primitive.NilObjectID, false
	}

	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
