package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"feline-fascination/internal/adapter"
	"feline-fascination/internal/cache"
	"feline-fascination/internal/config"
	"feline-fascination/internal/content"
	"feline-fascination/internal/domain"
	"feline-fascination/internal/handler"
	"feline-fascination/internal/logger"
	"feline-fascination/internal/middleware"
	"feline-fascination/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := content.Load(cfg.Content.Path)
	if err != nil {
		appLogger.Fatal("Failed to load content catalog", zap.String("path", cfg.Content.Path), zap.Error(err))
	}
	appLogger.Info("Content catalog loaded",
		zap.Int("facts", len(catalog.Facts)),
		zap.Int("questions", len(catalog.Quiz)),
		zap.Int("breeds", len(catalog.Breeds)),
	)

	var cacheAdapter domain.Cache
	switch cfg.Cache.Driver {
	case config.CacheDriverRedis:
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Using Redis cache", zap.String("address", cfg.Redis.Address))
	default:
		memoryCache := adapter.NewMemoryCacheAdapter()
		if err := memoryCache.StartJanitor(ctx, cfg.Cache.CleanupInterval); err != nil {
			appLogger.Fatal("Failed to start cache janitor", zap.Error(err))
		}
		defer memoryCache.Close()
		cacheAdapter = memoryCache
		appLogger.Info("Using in-memory cache", zap.Duration("cleanup_interval", cfg.Cache.CleanupInterval))
	}

	factService, err := service.NewFactService(catalog.Facts, cfg.Facts.Interval)
	if err != nil {
		appLogger.Fatal("Failed to create FactService", zap.Error(err))
	}
	quizService, err := service.NewQuizService(catalog.Quiz, service.NewQuizSessionStore(cacheAdapter, cfg.Cache.SessionTTL))
	if err != nil {
		appLogger.Fatal("Failed to create QuizService", zap.Error(err))
	}
	likeService := service.NewLikeService(cacheAdapter, catalog.Page.LikeToast)
	pageService := service.NewPageService(catalog, factService, likeService)

	app := handler.NewApp(fiber.Config{
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           20 * time.Second,
		BodyLimit:             64 * 1024,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))

	handler.RegisterRoutes(app,
		handler.NewPageHandler(pageService, factService, likeService),
		handler.NewQuizHandler(quizService),
		handler.NewHealthHandler(cacheAdapter),
	)

	g, gctx := errgroup.WithContext(ctx)

	if err := factService.Start(gctx); err != nil {
		appLogger.Fatal("Failed to start fact rotation", zap.Error(err))
	}
	appLogger.Info("Fact rotation started", zap.Duration("interval", cfg.Facts.Interval))

	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		return app.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})

	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")

		factService.Stop()
		appLogger.Info("Fact rotation stopped")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Server exited with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	appLogger.Info("Server exited gracefully")
}
