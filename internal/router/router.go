// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/livrestore/storefront/internal/assistant"
	"github.com/livrestore/storefront/internal/config"
	"github.com/livrestore/storefront/internal/handlers"
	"github.com/livrestore/storefront/internal/middleware"
	"github.com/livrestore/storefront/internal/services"
	"github.com/livrestore/storefront/internal/state"
	"github.com/livrestore/storefront/internal/utils"
)

func Initialize(store *state.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	assistantClient := assistant.FromConfig(cfg.Assistant)

	authService := services.NewAuthService(cfg)
	catalogService := services.NewCatalogService()
	cartService := services.NewCartService()
	orderService := services.NewOrderService()
	listingService := services.NewListingService(assistantClient)
	chatService := services.NewChatService(assistantClient)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	sessionHandler := handlers.NewSessionHandler()
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	listingHandler := handlers.NewListingHandler(listingService)
	chatHandler := handlers.NewChatHandler(chatService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"version":  "1.0.0",
			"sessions": store.Len(),
			"time":     time.Now().UTC(),
		})
	})

	// API v1 routes: everything below is session-scoped state
	v1 := r.Group("/v1")
	v1.Use(middleware.SessionAttach(store))
	v1.Use(middleware.RequestLogger())
	{
		// Session state and navigation
		session := v1.Group("/session")
		{
			session.GET("", sessionHandler.GetState)
			session.POST("/navigate", sessionHandler.Navigate)
		}

		// Authentication routes (mock identities, demo semantics)
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Catalog routes
		catalogGroup := v1.Group("/catalog")
		{
			catalogGroup.GET("/products", catalogHandler.GetProducts)
			catalogGroup.GET("/products/:id", catalogHandler.GetProduct)
			catalogGroup.GET("/categories", catalogHandler.GetCategories)
			catalogGroup.GET("/search", catalogHandler.Search)
		}

		// Cart routes
		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.POST("", cartHandler.AddToCart)
			cart.PUT("/:id", cartHandler.UpdateQuantity)
			cart.DELETE("/:id", cartHandler.RemoveFromCart)
		}

		// Checkout and orders
		v1.POST("/checkout", orderHandler.Checkout)
		v1.GET("/orders", orderHandler.GetOrders)

		// Seller listings
		listings := v1.Group("/listings")
		listings.Use(middleware.OptionalAuth())
		{
			listings.GET("", listingHandler.GetListings)
			listings.POST("", listingHandler.CreateListing)
			listings.POST("/draft", listingHandler.DraftListing)
		}

		// Seller chat (scoped to the open product-detail view)
		chat := v1.Group("/products/:id/chat")
		chat.Use(middleware.ChatRateLimit())
		{
			chat.GET("", chatHandler.GetTranscript)
			chat.POST("", chatHandler.SendMessage)
		}
	}

	return r
}
