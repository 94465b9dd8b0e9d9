package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"movie-catalog-backend/models"
	"movie-catalog-backend/services"
)

type ReviewController struct {
	reviewService *services.ReviewService
}

func NewReviewController(reviewService *services.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

func (c *ReviewController) Upsert(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}

	var req models.UpsertReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	review, err := c.reviewService.Upsert(ctx.Request.Context(), userID, ctx.Param("movieId"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, review)
}

func (c *ReviewController) Delete(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}

	if err := c.reviewService.Delete(ctx.Request.Context(), userID, ctx.Param("movieId")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

func (c *ReviewController) ListForMovie(ctx *gin.Context) {
	reviews, err := c.reviewService.ListForMovie(ctx.Request.Context(), ctx.Param("movieId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}

// GetOwn returns the caller's review for the movie, or a JSON null when they
// have not reviewed it.
func (c *ReviewController) GetOwn(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}

	review, err := c.reviewService.GetOwn(ctx.Request.Context(), userID, ctx.Param("movieId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, review)
}
