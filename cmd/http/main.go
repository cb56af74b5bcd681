package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-storefinder-service/config"
	"github.com/fekuna/omnipos-storefinder-service/internal/auth"
	"github.com/fekuna/omnipos-storefinder-service/internal/imagestore"
	"github.com/fekuna/omnipos-storefinder-service/pkg/cache"
	"github.com/fekuna/omnipos-storefinder-service/pkg/database"
	"github.com/fekuna/omnipos-storefinder-service/pkg/logger"
	"github.com/fekuna/omnipos-storefinder-service/pkg/middleware"

	locH "github.com/fekuna/omnipos-storefinder-service/internal/locator/handler"
	locUCPkg "github.com/fekuna/omnipos-storefinder-service/internal/locator/usecase"

	mapH "github.com/fekuna/omnipos-storefinder-service/internal/storemap/handler"
	mapRepoPkg "github.com/fekuna/omnipos-storefinder-service/internal/storemap/repository"
	mapUCPkg "github.com/fekuna/omnipos-storefinder-service/internal/storemap/usecase"

	prodH "github.com/fekuna/omnipos-storefinder-service/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-storefinder-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-storefinder-service/internal/product/usecase"

	secH "github.com/fekuna/omnipos-storefinder-service/internal/section/handler"
	secRepoPkg "github.com/fekuna/omnipos-storefinder-service/internal/section/repository"
	secUCPkg "github.com/fekuna/omnipos-storefinder-service/internal/section/usecase"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := database.NewDB(&database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.DSN(),
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		appLogger.Fatal("Could not migrate database", zap.Error(err))
	}
	appLogger.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	// 4. Initialize Repositories
	mapRepo := mapRepoPkg.NewSQLRepository(db)
	secRepo := secRepoPkg.NewSQLRepository(db)
	prodRepo := prodRepoPkg.NewSQLRepository(db)

	images := imagestore.NewLocalStore(cfg.Storage.MapImageDir)

	// 5. Initialize Redis (rate limiting only)
	var limiter middleware.Counter
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Redis, rate limiting disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			limiter = redisClient
			appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		}
	}

	// 6. Initialize UseCases
	mapUC := mapUCPkg.NewStoreMapUseCase(mapRepo, images, appLogger)
	secUC := secUCPkg.NewSectionUseCase(secRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, appLogger)
	locUC := locUCPkg.NewLocatorUseCase(mapUC, secUC, prodUC, appLogger)

	// 7. Initialize Handlers
	mapHandler := mapH.NewStoreMapHandler(mapUC, appLogger)
	secHandler := secH.NewSectionHandler(secUC, appLogger)
	prodHandler := prodH.NewProductHandler(prodUC, appLogger)
	locHandler := locH.NewLocatorHandler(locUC, appLogger)

	// 8. Start HTTP Server
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(appLogger),
		auth.Identify(cfg.Auth.AdminToken),
	)
	router.GET("/healthz", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	writeGuard := []gin.HandlerFunc{
		auth.RequireOperator(),
		middleware.RateLimiter(limiter, cfg.RateLimit.Count, time.Duration(cfg.RateLimit.PeriodSeconds)*time.Second, appLogger),
	}

	api := router.Group("/api/v1")
	mapHandler.Register(api, writeGuard...)
	secHandler.Register(api, writeGuard...)
	prodHandler.Register(api, writeGuard...)
	locHandler.Register(api)

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:              port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
