package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"movie-catalog-backend/models"
)

// Error writes the uniform error body.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, models.ErrorResponse{Message: message})
}

// ValidationFailed writes a 400 with field-level detail.
func ValidationFailed(c *gin.Context, fieldErrors []models.FieldError) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Message: "Validation failed",
		Errors:  fieldErrors,
	})
}
