package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/coffeeshop/internal/pkg/config"
	"github.com/piresc/coffeeshop/internal/pkg/database"
	"github.com/piresc/coffeeshop/internal/pkg/health"
	"github.com/piresc/coffeeshop/internal/pkg/logger"
	"github.com/piresc/coffeeshop/internal/pkg/middleware"
	nsqpkg "github.com/piresc/coffeeshop/internal/pkg/nsq"
	"github.com/piresc/coffeeshop/internal/pkg/server"
	"github.com/piresc/coffeeshop/services/shop"
	"github.com/piresc/coffeeshop/services/shop/gateway"
	"github.com/piresc/coffeeshop/services/shop/handler"
	"github.com/piresc/coffeeshop/services/shop/repository"
	"github.com/piresc/coffeeshop/services/shop/usecase"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = ".env"
	}
	configs := config.InitConfig(configPath)
	appName := configs.App.Name

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	var ready atomic.Bool

	// Load shops before serving
	shopStore := repository.NewStore()
	loaded, err := repository.NewLoader(shopStore, zapLogger).LoadFile(configs.Data.SourcePath, configs.Data.Sheet)
	if err != nil {
		zapLogger.Fatal("Failed to load shops", logger.String("source", configs.Data.SourcePath), logger.Err(err))
	}
	zapLogger.Info("Shops loaded",
		logger.Int("count", loaded),
		logger.Int("next_id", shopStore.NextID()))

	// Optional Redis geocode cache
	var redisClient *database.RedisClient
	if configs.Redis.Enabled {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Warn("Redis unavailable, geocode cache disabled", logger.Err(err))
			redisClient = nil
		}
	}

	// Optional NSQ event publishing
	var shopEvents shop.EventGW
	var producer *nsqpkg.Producer
	if configs.NSQ.Enabled {
		producer, err = nsqpkg.NewProducer(configs.NSQ.Address)
		if err != nil {
			zapLogger.Warn("NSQ unavailable, shop events disabled", logger.Err(err))
			producer = nil
		}
	}
	if producer != nil {
		shopEvents = gateway.NewEventGW(producer, configs.NSQ.Topic)
	} else {
		shopEvents = gateway.NewEventGW(nil, "")
	}

	geocoder := gateway.NewGeocoder(configs.Geocoder, redisClient, zapLogger)
	shopUC := usecase.NewShopUC(shopStore, geocoder, shopEvents, zapLogger)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, ready.Load)

	// Register service routes
	handler.NewHTTPHandler(shopUC).RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if producer != nil {
		srv.OnShutdown(func(context.Context) error {
			producer.Stop()
			return nil
		})
	}
	if redisClient != nil {
		srv.OnShutdown(func(context.Context) error {
			return redisClient.Close()
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ready.Store(true)
	if err := srv.Run(ctx); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
		_ = zapLogger.Close()
		os.Exit(1)
	}
}
