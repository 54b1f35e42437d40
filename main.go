package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-backend/controllers"
	"storefront-backend/database"
	"storefront-backend/events"
	"storefront-backend/logger"
	"storefront-backend/middleware"
	"storefront-backend/repository"
	"storefront-backend/routes"
	"storefront-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const requestTimeout = 30 * time.Second

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		zap.NewExample().Fatal("Failed to load configuration", zap.Error(err))
	}

	log := logger.Initialize(cfg.Env)
	defer log.Sync()

	mongoClient, db, err := database.Connect(cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.Close(mongoClient); err != nil {
			log.Error("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}()
	log.Info("Connected to MongoDB", zap.String("database", cfg.MongoDB))

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		log.Info("Connected to Redis")
	} else {
		log.Info("REDIS_URL not set, product cache disabled")
	}

	publisher := newPublisher(cfg, log)
	defer publisher.Close()

	// --- Repositories ---
	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	warehouseRepo := repository.NewWarehouseRepository(db)
	userRepo := repository.NewUserRepository(db)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer indexCancel()
	if err := categoryRepo.EnsureIndexes(indexCtx); err != nil {
		log.Fatal("Failed to create category indexes", zap.Error(err))
	}
	if err := couponRepo.EnsureIndexes(indexCtx); err != nil {
		log.Fatal("Failed to create coupon indexes", zap.Error(err))
	}
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		log.Fatal("Failed to create user indexes", zap.Error(err))
	}

	// --- Services ---
	productCache := services.NewProductCache(redisClient)
	cartService := services.NewCartService(cartRepo, productRepo, log)
	productService := services.NewProductService(productRepo, categoryRepo, productCache, log)
	categoryService := services.NewCategoryService(categoryRepo, log)
	couponService := services.NewCouponService(couponRepo, log)
	orderService := services.NewOrderService(orderRepo, productRepo, userRepo, publisher, log)
	warehouseService := services.NewWarehouseService(warehouseRepo, log)
	userService := services.NewUserService(userRepo, log)

	// --- HTTP ---
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.Timeout(requestTimeout))
	router.Use(middleware.SecurityHeaders(), middleware.CORS(cfg.CORSOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.Register(router, routes.Controllers{
		Cart:      controllers.NewCartController(cartService),
		Product:   controllers.NewProductController(productService),
		Category:  controllers.NewCategoryController(categoryService),
		Coupon:    controllers.NewCouponController(couponService),
		Order:     controllers.NewOrderController(orderService),
		Warehouse: controllers.NewWarehouseController(warehouseService),
		User:      controllers.NewUserController(userService),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("Starting server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited cleanly")
}

// newPublisher builds the order-event sink selected by EVENT_SINK.
func newPublisher(cfg *Config, log *zap.Logger) events.Publisher {
	switch cfg.EventSink {
	case "kafka":
		log.Info("Publishing order events to Kafka",
			zap.Strings("brokers", cfg.KafkaBrokers), zap.String("topic", cfg.KafkaTopic))
		return events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	case "sns":
		publisher, err := events.NewSNSPublisher(context.Background(), cfg.SNSTopicARN)
		if err != nil {
			log.Fatal("Failed to initialize SNS publisher", zap.Error(err))
		}
		log.Info("Publishing order events to SNS", zap.String("topic_arn", cfg.SNSTopicARN))
		return publisher
	default:
		log.Info("Order event publishing disabled")
		return events.Noop{}
	}
}
