package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"

	"github.com/shopnet/user-service/internal/config"
	"github.com/shopnet/user-service/internal/events"
	"github.com/shopnet/user-service/internal/handler"
	"github.com/shopnet/user-service/internal/logger"
	"github.com/shopnet/user-service/internal/orders"
	"github.com/shopnet/user-service/internal/repository"
	"github.com/shopnet/user-service/internal/response"
	"github.com/shopnet/user-service/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.SetDefault(logger.Setup(cfg.LogLevel))

	// Database connection (user store)
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		slog.Error("failed to ping database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Redis connection (lifecycle event stream); optional.
	var redisClient *goredis.Client
	if cfg.RedisAddr != "" {
		redisClient = goredis.NewClient(&goredis.Options{
			Addr:         cfg.RedisAddr,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		defer redisClient.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			cancel()
			slog.Error("failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		cancel()
	}

	// Dependencies are constructed once here and passed by reference; no
	// component performs ambient lookups or builds its own clients.
	publisher := events.NewPublisher(redisClient)
	userRepo := repository.NewPostgresUserRepository(db)
	ordersClient := orders.NewClient(cfg.OrdersAPIURL, cfg.OrdersTimeout)
	userService := service.NewUserService(userRepo, ordersClient, publisher)
	userHandler := handler.NewUserHandler(userService, cfg.UpdateMissingAsError)

	router := gin.New()
	router.Use(gin.Logger())
	// Anything unanticipated answers with the generic envelope; detail is
	// logged server-side only.
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("panic recovered", slog.Any("error", recovered))
		c.AbortWithStatusJSON(500, response.Fail("Internal Server Error", nil))
	}))
	userHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	slog.Info("user service starting", slog.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		slog.Error("failed to start server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
