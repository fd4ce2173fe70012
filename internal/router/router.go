package router

import (
	"github.com/gin-gonic/gin"
	"github.com/lovehampers/lovehampers-backend/config"
	"github.com/lovehampers/lovehampers-backend/internal/app/controller"
	"github.com/lovehampers/lovehampers-backend/internal/middleware"
	"github.com/lovehampers/lovehampers-backend/internal/websocket"
)

type Router struct {
	authController    *controller.AuthController
	productController *controller.ProductController
	cartController    *controller.CartController
	bundleController  *controller.BundleController
	orderController   *controller.OrderController
	uploadController  *controller.UploadController
	authMiddleware    *middleware.AuthMiddleware
	hub               *websocket.Hub
	config            *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	productController *controller.ProductController,
	cartController *controller.CartController,
	bundleController *controller.BundleController,
	orderController *controller.OrderController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	hub *websocket.Hub,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:    authController,
		productController: productController,
		cartController:    cartController,
		bundleController:  bundleController,
		orderController:   orderController,
		uploadController:  uploadController,
		authMiddleware:    authMiddleware,
		hub:               hub,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "LoveHampers API is running",
		})
	})

	// The storefront client calls the auth endpoints with trailing slashes
	auth := router.Group("/auth")
	{
		auth.POST("/registration/", r.authController.Register)
		auth.POST("/login/", r.authController.Login)
		auth.GET("/me/", r.authMiddleware.Authenticate(), r.authController.GetMe)
	}

	api := router.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", r.productController.GetProducts)
			products.GET("/:id", r.productController.GetProduct)

			products.POST("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.productController.CreateProduct,
			)
			products.PUT("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.productController.UpdateProduct,
			)
			products.DELETE("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.productController.DeleteProduct,
			)
		}

		cart := api.Group("/cart")
		cart.Use(middleware.DeviceID())
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("/items", r.cartController.AddItem)
			cart.PUT("/items/:productId", r.cartController.UpdateItem)
			cart.DELETE("/items/:productId", r.cartController.RemoveItem)
			cart.DELETE("", r.cartController.ClearCart)
		}

		bundle := api.Group("/bundle")
		bundle.Use(middleware.DeviceID())
		{
			bundle.GET("/products", r.bundleController.GetEligibleProducts)
			bundle.POST("/quote", r.bundleController.Quote)
			bundle.POST("/confirm", r.bundleController.Confirm)
		}

		orders := api.Group("/orders")
		{
			// Checkout is open to guests; a valid token attaches the order
			// to the account.
			orders.POST("",
				middleware.DeviceID(),
				r.authMiddleware.OptionalAuthenticate(),
				r.orderController.Checkout,
			)

			orders.GET("", r.authMiddleware.Authenticate(), r.orderController.GetOrders)
			orders.GET("/export",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.orderController.ExportOrders,
			)
			orders.GET("/feed",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.serveOrderFeed,
			)
			orders.GET("/:id", r.authMiddleware.Authenticate(), r.orderController.GetOrder)
			orders.PATCH("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.orderController.UpdateStatus,
			)
			orders.DELETE("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.orderController.DeleteOrder,
			)
		}

		uploads := api.Group("/uploads")
		uploads.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireRole("admin"))
		{
			uploads.POST("/product-image", r.uploadController.PresignProductImage)
		}
	}

	return router
}

func (r *Router) serveOrderFeed(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	websocket.ServeWS(r.hub, c, userID)
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Device-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Device-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
