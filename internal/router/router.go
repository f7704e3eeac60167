// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shopora/storefront/internal/config"
	"github.com/shopora/storefront/internal/handlers"
	"github.com/shopora/storefront/internal/middleware"
	"github.com/shopora/storefront/internal/services"
	"github.com/shopora/storefront/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(db, cfg)
	catalogService := services.NewCatalogService(db)
	cartService := services.NewCartService(db)
	wishlistService := services.NewWishlistService(db)
	orderService := services.NewOrderService(db)
	profileService := services.NewProfileService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	orderHandler := handlers.NewOrderHandler(orderService)
	profileHandler := handlers.NewProfileHandler(profileService)
	adminHandler := handlers.NewAdminHandler(orderService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetCurrentUser)
		}

		// Public catalog routes
		categories := v1.Group("/categories")
		{
			categories.GET("", catalogHandler.GetCategories)
		}

		products := v1.Group("/products")
		{
			products.GET("", catalogHandler.GetProducts)
			products.GET("/:id", catalogHandler.GetProduct)
		}

		// Cart routes
		cart := v1.Group("/cart")
		cart.Use(middleware.AuthRequired())
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items/:id", cartHandler.UpdateItem)
			cart.DELETE("/items/:id", cartHandler.RemoveItem)
			cart.DELETE("", cartHandler.ClearCart)
		}

		// Wishlist routes
		wishlist := v1.Group("/wishlist")
		wishlist.Use(middleware.AuthRequired())
		{
			wishlist.GET("", wishlistHandler.GetWishlist)
			wishlist.GET("/:productID", wishlistHandler.ContainsItem)
			wishlist.PUT("/:productID", wishlistHandler.AddItem)
			wishlist.DELETE("/:productID", wishlistHandler.RemoveItem)
		}

		// Order routes
		orders := v1.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.POST("", middleware.CheckoutRateLimit(), orderHandler.CreateOrder)
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/:id", orderHandler.GetOrder)
		}

		// Profile routes
		profile := v1.Group("/profile")
		profile.Use(middleware.AuthRequired())
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.UpdateProfile)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
		}
	}

	return r
}
