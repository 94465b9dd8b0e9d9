package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"movie-catalog-backend/config"
	"movie-catalog-backend/controllers"
	"movie-catalog-backend/data_access"
	"movie-catalog-backend/middleware"
	"movie-catalog-backend/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := newLogger(cfg.Env)
	log.Logger = logger

	// Connect to the document store before accepting any traffic. The
	// bounded retry lives inside NewMongoDB; exhausting it is fatal.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := data_access.NewMongoDB(ctx, cfg.MongoURI, cfg.DBName, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := db.Close(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to close mongodb connection")
		}
	}()

	if err := db.EnsureIndexes(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to create indexes")
	}

	// Repositories
	userRepo := data_access.NewUserRepository(db)
	reviewRepo := data_access.NewReviewRepository(db)
	omdbClient := data_access.NewOMDBClient(cfg.MovieAPIKey, cfg.MovieAPIBaseURL)

	// Services
	authService := services.NewAuthService(userRepo, reviewRepo, cfg.JWTSecret, cfg.JWTExpiry, logger)
	favoritesService := services.NewFavoritesService(userRepo, logger)
	reviewService := services.NewReviewService(reviewRepo, logger)
	movieService := services.NewMovieService(omdbClient, logger)

	// Controllers
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(authService)
	movieController := controllers.NewMovieController(movieService, favoritesService)
	reviewController := controllers.NewReviewController(reviewService)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.Recovery())
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	registerRoutes(router, cfg.JWTSecret, authController, userController, movieController, reviewController)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   15 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("forced server shutdown")
	}

	logger.Info().Msg("server exited")
}

func registerRoutes(
	router *gin.Engine,
	jwtSecret string,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	movieController *controllers.MovieController,
	reviewController *controllers.ReviewController,
) {
	requireAuth := middleware.RequireAuth(jwtSecret)

	users := router.Group("/users")
	{
		users.POST("/register", authController.Register)
		users.POST("/login", authController.Login)
		users.GET("/profile", requireAuth, userController.Profile)
		users.PUT("/profile", requireAuth, userController.UpdateProfile)
		users.DELETE("/profile", requireAuth, userController.DeleteAccount)
	}

	movies := router.Group("/movies")
	{
		movies.GET("/search", movieController.Search)
		movies.GET("/detail/:id", movieController.Detail)
		movies.GET("/trending", movieController.Trending)
		movies.POST("/favorites", requireAuth, movieController.AddFavorite)
		movies.DELETE("/favorites/:id", requireAuth, movieController.RemoveFavorite)
		movies.GET("/favorites", requireAuth, movieController.ListFavorites)
	}

	reviews := router.Group("/reviews")
	{
		reviews.GET("/movie/:movieId", reviewController.ListForMovie)
		reviews.POST("/movie/:movieId", requireAuth, reviewController.Upsert)
		reviews.DELETE("/movie/:movieId", requireAuth, reviewController.Delete)
		reviews.GET("/movie/:movieId/user", requireAuth, reviewController.GetOwn)
	}
}

func newLogger(env string) zerolog.Logger {
	if env == "production" {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
}
