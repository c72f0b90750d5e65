package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/storefront/pkg/ai"
	"github.com/example/storefront/pkg/auth"
	"github.com/example/storefront/pkg/config"
	"github.com/example/storefront/pkg/events"
	"github.com/example/storefront/pkg/imagekit"
	"github.com/example/storefront/pkg/repository"
	"github.com/example/storefront/pkg/service"
	"github.com/example/storefront/server"
	"go.uber.org/zap"
)

func main() {
	// Load config
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Setup logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("Failed to create logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("Starting storefront service",
		zap.String("name", cfg.Server.Name),
		zap.Int("port", cfg.Server.Port))

	// MongoDB
	mongoRepo, err := repository.NewMongoRepository(&cfg.MongoDB)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	ctx := context.Background()
	if err := mongoRepo.Ping(ctx); err != nil {
		logger.Fatal("MongoDB ping failed", zap.Error(err))
	}
	defer mongoRepo.Close(ctx)

	// Redis
	redisRepo := repository.NewRedisRepository(&cfg.Redis)
	if err := redisRepo.Ping(ctx); err != nil {
		logger.Warn("Redis connection failed", zap.Error(err))
	} else {
		logger.Info("Redis connected successfully")
	}
	defer redisRepo.Close()

	// Kafka (optional)
	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher, err := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		if err != nil {
			logger.Warn("Kafka unavailable, order events disabled", zap.Error(err))
		} else {
			publisher = kafkaPublisher
			logger.Info("Kafka producer connected", zap.Strings("brokers", cfg.Kafka.Brokers))
		}
	}
	defer publisher.Close()

	// Repositories
	products := repository.NewProductRepository(mongoRepo)
	orders := repository.NewOrderRepository(mongoRepo)
	testimonials := repository.NewTestimonialRepository(mongoRepo)
	inquiries := repository.NewInquiryRepository(mongoRepo)
	settings := repository.NewSettingsRepository(mongoRepo)
	subscribers := repository.NewSubscriberRepository(mongoRepo)
	adminUsers := repository.NewAdminUserRepository(mongoRepo)
	cartStore := repository.NewCartStore(redisRepo, cfg.Redis.CartTTL)

	// Services
	tokens := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	cartSvc := service.NewCartService(cartStore, products)
	checkoutSvc := service.NewCheckoutService(cartStore, orders, tokens, publisher, logger)
	reviewSvc := service.NewReviewService(orders, testimonials)
	searchSvc := service.NewSearchService(products, ai.NewClient(&cfg.AI), logger)
	adminSvc := service.NewAdminService(adminUsers, tokens)

	// First admin account comes from config on an empty database.
	if err := adminSvc.Bootstrap(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		logger.Error("Failed to bootstrap admin account", zap.Error(err))
	}

	// HTTP server
	srv := server.New(cfg, logger, server.Deps{
		Products:     products,
		Orders:       orders,
		Testimonials: testimonials,
		Inquiries:    inquiries,
		Settings:     settings,
		Subscribers:  subscribers,
		Cart:         cartSvc,
		Checkout:     checkoutSvc,
		Reviews:      reviewSvc,
		Search:       searchSvc,
		Admin:        adminSvc,
		Tokens:       tokens,
		Uploads:      imagekit.NewClient(&cfg.ImageKit),
		Publisher:    publisher,
	})
	srv.SetupRoutes()

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		logger.Info("Received shutdown signal")
	case err := <-serverErr:
		logger.Fatal("Server error", zap.Error(err))
	}

	logger.Info("Service stopped")
}
