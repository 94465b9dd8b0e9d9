package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"movie-catalog-backend/models"
	"movie-catalog-backend/services"
)

type MovieController struct {
	movieService     *services.MovieService
	favoritesService *services.FavoritesService
}

func NewMovieController(movieService *services.MovieService, favoritesService *services.FavoritesService) *MovieController {
	return &MovieController{
		movieService:     movieService,
		favoritesService: favoritesService,
	}
}

func (c *MovieController) Search(ctx *gin.Context) {
	result, err := c.movieService.Search(ctx.Request.Context(), ctx.Query("query"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (c *MovieController) Detail(ctx *gin.Context) {
	movie, err := c.movieService.Detail(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, movie)
}

func (c *MovieController) Trending(ctx *gin.Context) {
	movies, err := c.movieService.Trending(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, movies)
}

func (c *MovieController) AddFavorite(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}

	var req models.AddFavoriteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	favorites, err := c.favoritesService.Add(ctx.Request.Context(), userID, &req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, favorites)
}

func (c *MovieController) RemoveFavorite(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}

	favorites, err := c.favoritesService.Remove(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, favorites)
}

func (c *MovieController) ListFavorites(ctx *gin.Context) {
	userID, ok := authedUserID(ctx)
	if !ok {
		return
	}

	favorites, err := c.favoritesService.List(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, favorites)
}
