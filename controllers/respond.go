package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"movie-catalog-backend/helper"
	"movie-catalog-backend/middleware"
	"movie-catalog-backend/services"
)

// respondError translates service errors into HTTP responses. Anything
// outside the taxonomy becomes a generic 500 with full detail only in the
// server log.
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": validationErr.Message,
			"errors":  validationErr.Fields,
		})
	case errors.Is(err, services.ErrUserExists):
		helper.Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrFavoriteExists):
		helper.Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		helper.Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrNotFound):
		helper.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrUpstream):
		helper.Error(c, http.StatusBadGateway, "Error fetching movie data")
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled error")
		helper.Error(c, http.StatusInternalServerError, "Internal server error")
	}
}

// respondBindError translates gin binding failures into the uniform 400 body.
func respondBindError(c *gin.Context, err error) {
	if fieldErrors := helper.FieldErrors(err); fieldErrors != nil {
		helper.ValidationFailed(c, fieldErrors)
		return
	}
	helper.Error(c, http.StatusBadRequest, "Invalid request body")
}

// authedUserID reads the user id placed in the context by the auth gate.
func authedUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		helper.Error(c, http.StatusUnauthorized, "Authentication required")
	}
	return userID, ok
}
