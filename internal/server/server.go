package server

import (
	"database/sql"

	"furnistore-be/internal/admin"
	"furnistore-be/internal/cart"
	"furnistore-be/internal/category"
	"furnistore-be/internal/checkout"
	"furnistore-be/internal/logger"
	"furnistore-be/internal/middleware"
	"furnistore-be/internal/order"
	"furnistore-be/internal/product"
	"furnistore-be/internal/review"
	"furnistore-be/internal/user"

	"github.com/gin-gonic/gin"
)

type Server struct {
	db *sql.DB

	users      user.Service
	userRepo   user.Repository
	products   product.Service
	categories category.Service
	carts      cart.Service
	checkouts  checkout.Service
	orders     order.Service
	reviews    review.Service
	reporting  admin.Service
}

type Deps struct {
	DB         *sql.DB
	Users      user.Service
	UserRepo   user.Repository
	Products   product.Service
	Categories category.Service
	Carts      cart.Service
	Checkouts  checkout.Service
	Orders     order.Service
	Reviews    review.Service
	Reporting  admin.Service
}

func New(deps Deps) *Server {
	return &Server{
		db:         deps.DB,
		users:      deps.Users,
		userRepo:   deps.UserRepo,
		products:   deps.Products,
		categories: deps.Categories,
		carts:      deps.Carts,
		checkouts:  deps.Checkouts,
		orders:     deps.Orders,
		reviews:    deps.Reviews,
		reporting:  deps.Reporting,
	}
}

// Router assembles the gin engine with all routes and middleware.
func (s *Server) Router(env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.LoggingMiddleware())
	r.Use(middleware.RateLimit())

	api := r.Group("/api")

	api.GET("/health", s.handleHealth)
	api.GET("/test", s.handleTest)

	auth := api.Group("/auth")
	{
		auth.POST("/register", s.handleRegister)
		auth.POST("/login", s.handleLogin)
		auth.GET("/:id/profile", middleware.Auth(s.userRepo), s.handleProfile)
		auth.POST("/changePassword", middleware.Auth(s.userRepo), s.handleChangePassword)
	}

	products := api.Group("/products")
	{
		products.GET("", s.handleListProducts)
		products.GET("/search", s.handleSearchProducts)
		products.GET("/:id", s.handleGetProduct)
		products.GET("/code/:code", s.handleGetProductByCode)
		products.GET("/:id/related", s.handleRelatedProducts)

		adminOnly := products.Group("", middleware.Auth(s.userRepo), middleware.RequireRoles(user.RoleAdmin))
		{
			adminOnly.POST("", s.handleCreateProduct)
			adminOnly.PUT("/:id", s.handleUpdateProduct)
			adminOnly.DELETE("/:id", s.handleDeleteProduct)
			adminOnly.PATCH("/:id/stock", s.handleAdjustStock)
			adminOnly.PATCH("/:id/status", s.handleToggleStatus)
			adminOnly.GET("/:id/inventory-logs", s.handleInventoryLogs)
		}
	}

	categories := api.Group("/categories")
	{
		categories.GET("", s.handleCategoryTree)
		categories.GET("/category/:id", s.handleCategoryProducts)
		categories.GET("/parent-category/:id", s.handleParentCategoryProducts)
	}

	carts := api.Group("/cart", middleware.Auth(s.userRepo))
	{
		carts.GET("/:userId", s.handleGetCart)
		carts.POST("/add", s.handleAddToCart)
		carts.PUT("/update-quantity", s.handleUpdateCartQuantity)
		carts.DELETE("/remove", s.handleRemoveFromCart)
		carts.DELETE("/clear", s.handleClearCart)
	}

	checkouts := api.Group("/checkout", middleware.Auth(s.userRepo))
	{
		checkouts.GET("/inf", s.handleCheckoutInfo)
		checkouts.POST("/place-order", s.handlePlaceOrder)
	}

	orders := api.Group("/orders", middleware.Auth(s.userRepo))
	{
		orders.GET("/my-orders", s.handleMyOrders)
		orders.GET("/:orderId", s.handleOrderDetail)
	}

	reviews := api.Group("/reviews")
	{
		reviews.POST("", middleware.Auth(s.userRepo), s.handleAddReview)
		reviews.GET("/:productId", s.handleListReviews)
		reviews.GET("/:productId/average", s.handleReviewSummary)
	}

	adminGroup := api.Group("/admin", middleware.Auth(s.userRepo), middleware.RequireRoles(user.RoleAdmin))
	{
		adminGroup.GET("/dashboard", s.handleDashboard)
		adminGroup.GET("/stock-stats", s.handleStockStats)
		adminGroup.GET("/stats", s.handleRangeStats)
		adminGroup.GET("/revenue-chart", s.handleRevenueChart)
		adminGroup.GET("/customers", s.handleListCustomers)
		adminGroup.GET("/customers/top", s.handleTopCustomers)
		adminGroup.PUT("/customers/:id", s.handleUpdateCustomer)
		adminGroup.DELETE("/customers/:id", s.handleDisableCustomer)
		adminGroup.GET("/orders", s.handleAdminOrders)
		adminGroup.PUT("/orders/:id", s.handleAdminUpdateOrder)
	}

	return r
}
