package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mrlokans/bookcatalog/internal/validation"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggerMiddleware())
	router.Use(MetricsMiddleware())

	validator := cfg.Validator
	if validator == nil {
		validator = validation.New()
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	booksController := NewBooksController(cfg.Store, WithRandom(cfg.Random))

	// Health and metrics endpoints
	router.GET("/health", health.Status)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Books API endpoints
	books := router.Group("/api/books")
	{
		books.GET("", booksController.ListBooks)
		books.POST("", ValidateBookBody(validator, validation.ModeCreate), booksController.CreateBook)
		books.GET("/recommendations", booksController.RecommendBook)
		books.PUT("/:id", ValidateBookBody(validator, validation.ModeUpdate), booksController.UpdateBook)
		books.DELETE("/:id", booksController.DeleteBook)
		books.PUT("/:id/favorite", booksController.FavoriteBook)
	}

	return router
}
