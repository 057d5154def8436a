package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/yumyum-spot/menu-service/internal/api/http"
	"github.com/yumyum-spot/menu-service/internal/api/http/handlers"
	"github.com/yumyum-spot/menu-service/internal/auth"
	"github.com/yumyum-spot/menu-service/internal/config"
	"github.com/yumyum-spot/menu-service/internal/events"
	"github.com/yumyum-spot/menu-service/internal/observability"
	"github.com/yumyum-spot/menu-service/internal/persistence"
	"github.com/yumyum-spot/menu-service/internal/repository"
	"github.com/yumyum-spot/menu-service/internal/service"
	"github.com/yumyum-spot/menu-service/internal/storage"
	"github.com/yumyum-spot/menu-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	menuRepo := repository.NewMenuItemRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService, err := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		RoleRepo:   roleRepo,
		Dispatcher: dispatcher,
	})
	if err != nil {
		logger.Fatal("failed to init auth service", zap.Error(err))
	}

	if err := authService.SeedRoles(ctx); err != nil {
		logger.Fatal("failed to seed roles", zap.Error(err))
	}

	imageStore := storage.NewDiskImageStore(cfg.Upload)

	var menuCache service.MenuCache
	if cache := persistence.NewMenuListCache(redis, logger); cache != nil {
		menuCache = cache
	}
	menuService := service.NewMenuService(menuRepo, imageStore, menuCache, dispatcher, logger)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics)
	authHandler := handlers.NewAuthHandler(authService)
	authTestHandler := handlers.NewAuthTestHandler()
	menuHandler := handlers.NewMenuHandler(menuService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         healthHandler,
		Auth:           authHandler,
		AuthTest:       authTestHandler,
		Menu:           menuHandler,
		AuthMiddleware: authMiddleware,
		PublicDir:      imageStore.PublicDir(),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
