package router

import (
	"time"

	"dishly/internal/auth"
	"dishly/internal/extract"
	"dishly/internal/food"
	"dishly/internal/menu"
	"dishly/internal/middleware"
	"dishly/internal/restaurant"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth        *auth.Handler
	Foods       *food.Handler
	Restaurants *restaurant.Handler
	Menus       *menu.Handler
	Extract     *extract.Handler
}

func NewRouter(h Handlers, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.DeviceIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	r.GET("/profiles/me", middleware.AuthMiddleware(), h.Auth.Me)

	// ───────────────────────── FOODS ─────────────────────────
	foods := r.Group("/foods")
	foods.Use(middleware.OptionalAuth())
	{
		foods.GET("", h.Foods.Batch)
		foods.GET("/trending", h.Foods.Trending)
		foods.GET("/recommended", h.Foods.Recommended)
		foods.GET("/search", h.Foods.Search)
		foods.GET("/:id", h.Foods.Detail)
		foods.GET("/:id/reviews", h.Foods.ListReviews)
		foods.POST("/:id/reviews", middleware.RequireIdentity(), h.Foods.AddReview)
	}

	saved := r.Group("/saved")
	saved.Use(middleware.OptionalAuth(), middleware.RequireIdentity())
	{
		saved.GET("", h.Foods.ListSaved)
		saved.PUT("/:foodID", h.Foods.Save)
		saved.DELETE("/:foodID", h.Foods.Unsave)
	}

	// ───────────────────────── RESTAURANTS ─────────────────────────
	restaurants := r.Group("/restaurants")
	{
		restaurants.GET("", h.Restaurants.List)
		restaurants.GET("/by-name/:name/foods", h.Restaurants.FoodsByName)
		restaurants.POST("", middleware.AuthMiddleware(), h.Restaurants.CreateRestaurant)
	}

	// ───────────────────────── MENUS ─────────────────────────
	menus := r.Group("/menus")
	menus.Use(middleware.OptionalAuth(), middleware.RequireIdentity())
	{
		menus.POST("/upload", h.Menus.Upload)
		menus.GET("/uploads", h.Menus.History)
	}

	// called by clients that upload straight to the bucket
	r.POST("/functions/menu-scraper", middleware.OptionalAuth(), h.Extract.MenuScraper)

	return r
}
