package main

import (
	"furnistore-be/internal/admin"
	"furnistore-be/internal/cart"
	"furnistore-be/internal/category"
	"furnistore-be/internal/checkout"
	"furnistore-be/internal/config"
	"furnistore-be/internal/db"
	"furnistore-be/internal/inventory"
	"furnistore-be/internal/logger"
	"furnistore-be/internal/order"
	"furnistore-be/internal/product"
	"furnistore-be/internal/review"
	"furnistore-be/internal/server"
	"furnistore-be/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	user.SetJWTSecret(cfg.JWTSecret)

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	userRepo := user.NewRepository(database)
	productRepo := product.NewRepository(database)
	categoryRepo := category.NewRepository(database)
	inventoryRepo := inventory.NewRepository(database)
	cartRepo := cart.NewRepository(database)
	checkoutRepo := checkout.NewRepository(database)
	orderRepo := order.NewRepository(database)
	reviewRepo := review.NewRepository(database)
	adminRepo := admin.NewRepository(database)

	srv := server.New(server.Deps{
		DB:         database,
		Users:      user.NewService(userRepo),
		UserRepo:   userRepo,
		Products:   product.NewService(productRepo, inventoryRepo),
		Categories: category.NewService(categoryRepo, productRepo),
		Carts:      cart.NewService(cartRepo, productRepo),
		Checkouts:  checkout.NewService(checkoutRepo, userRepo),
		Orders:     order.NewService(orderRepo),
		Reviews:    review.NewService(reviewRepo),
		Reporting:  admin.NewService(adminRepo),
	})

	router := srv.Router(cfg.AppEnv)

	logger.L().Info("server starting", zap.String("port", cfg.AppPort), zap.String("env", cfg.AppEnv))
	if err := router.Run(":" + cfg.AppPort); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
