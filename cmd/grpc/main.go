package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-storefront-service/config"
	"github.com/fekuna/omnipos-storefront-service/internal/auth"
	"github.com/fekuna/omnipos-storefront-service/internal/server"
	"github.com/fekuna/omnipos-storefront-service/internal/tenant"
	"github.com/fekuna/omnipos-storefront-service/pkg/broker"
	"github.com/fekuna/omnipos-storefront-service/pkg/cache"
	"github.com/fekuna/omnipos-storefront-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/fekuna/omnipos-storefront-service/pkg/middleware"

	catH "github.com/fekuna/omnipos-storefront-service/internal/category/handler"
	catRepoPkg "github.com/fekuna/omnipos-storefront-service/internal/category/repository"
	catUCPkg "github.com/fekuna/omnipos-storefront-service/internal/category/usecase"

	contentH "github.com/fekuna/omnipos-storefront-service/internal/content/handler"
	contentRepoPkg "github.com/fekuna/omnipos-storefront-service/internal/content/repository"
	contentUCPkg "github.com/fekuna/omnipos-storefront-service/internal/content/usecase"

	ordH "github.com/fekuna/omnipos-storefront-service/internal/ordering/handler"
	ordListenerPkg "github.com/fekuna/omnipos-storefront-service/internal/ordering/listener"
	ordRepoPkg "github.com/fekuna/omnipos-storefront-service/internal/ordering/repository"
	ordUCPkg "github.com/fekuna/omnipos-storefront-service/internal/ordering/usecase"
	pageH "github.com/fekuna/omnipos-storefront-service/internal/page/handler"
	pageRepoPkg "github.com/fekuna/omnipos-storefront-service/internal/page/repository"
	pageUCPkg "github.com/fekuna/omnipos-storefront-service/internal/page/usecase"

	prodH "github.com/fekuna/omnipos-storefront-service/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-storefront-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-storefront-service/internal/product/usecase"

	siteH "github.com/fekuna/omnipos-storefront-service/internal/site/handler"
	siteRepoPkg "github.com/fekuna/omnipos-storefront-service/internal/site/repository"
	siteUCPkg "github.com/fekuna/omnipos-storefront-service/internal/site/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Repositories
	ordRepo := ordRepoPkg.NewPGRepository(db)
	catRepo := catRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)
	contentRepo := contentRepoPkg.NewPGRepository(db)
	siteRepo := siteRepoPkg.NewPGRepository(db)
	pageRepo := pageRepoPkg.NewPGRepository(db)

	// 5. Initialize Redis store lock
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	storeLock := tenant.NewStoreLock(redisClient, tenant.LockConfig{
		TTL:     cfg.Lock.TTL,
		Retries: cfg.Lock.Retries,
		Backoff: cfg.Lock.Backoff,
	}, appLogger)

	// 6. Initialize Kafka Consumer
	kafkaConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer kafkaConsumer.Close()
	appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	// 7. Initialize UseCases
	ordUC := ordUCPkg.NewOrderingUseCase(ordRepo, storeLock, appLogger)
	catUC := catUCPkg.NewCategoryUseCase(catRepo, ordUC, storeLock, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, ordUC, storeLock, appLogger)
	contentUC := contentUCPkg.NewContentUseCase(contentRepo, ordUC, storeLock, appLogger)
	siteUC := siteUCPkg.NewSiteUseCase(siteRepo, storeLock, appLogger)
	pageUC := pageUCPkg.NewPageUseCase(pageRepo, storeLock, appLogger)

	// 8. Start catalog listener
	catalogListener := ordListenerPkg.NewCatalogListener(kafkaConsumer, ordUC, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go catalogListener.Start(ctx)

	// 9. Start gRPC Server
	port := cfg.Server.GRPCPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	lis, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.LoggingInterceptor(appLogger),
			middleware.ContextInterceptor(auth.StoreIDHeader, auth.WithStoreID),
		),
	)

	server.NewBuilderServer(server.Handlers{
		Ordering: ordH.NewOrderingHandler(ordUC, appLogger),
		Content:  contentH.NewContentHandler(contentUC, appLogger),
		Site:     siteH.NewSiteHandler(siteUC, appLogger),
		Product:  prodH.NewProductHandler(prodUC, appLogger),
		Category: catH.NewCategoryHandler(catUC, appLogger),
		Page:     pageH.NewPageHandler(pageUC, appLogger),
	}).Register(grpcServer)

	reflection.Register(grpcServer)

	appLogger.Info("Starting gRPC server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}
