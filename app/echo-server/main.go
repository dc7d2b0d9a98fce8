package main

import (
	"backoffice/app/echo-server/router"
	"backoffice/business/analytics"
	"backoffice/business/guest"
	"backoffice/business/trigger"
	"backoffice/business/user"
	"backoffice/internal/middleware"
	memoryRepo "backoffice/internal/repository/memory"
	psqlRepo "backoffice/internal/repository/postgres"
	"backoffice/internal/rest"
	"backoffice/pkg/config"
	"backoffice/pkg/database"
	"backoffice/pkg/logger"
	"backoffice/pkg/metrics"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type repositories struct {
	guests   guest.GuestRepository
	triggers trigger.TriggerRepository
	users    user.UserRepository
	orders   analytics.OrderRepository
	stats    analytics.StatisticsRepository
}

// buildMemoryRepositories wires the in-memory store pre-loaded with the
// demo dataset the dashboard ships with.
func buildMemoryRepositories() repositories {
	guestRepo := memoryRepo.NewGuestRepository()
	guestRepo.Seed(memoryRepo.SampleGuests())

	triggerRepo := memoryRepo.NewTriggerRepository()
	triggerRepo.Seed(memoryRepo.SampleTriggers())

	orderRepo := memoryRepo.NewOrderRepository()
	orderRepo.Seed(memoryRepo.SampleOrders())

	statsRepo := memoryRepo.NewStatisticsRepository()
	statsRepo.Seed(memoryRepo.SampleStatistics())

	return repositories{
		guests:   guestRepo,
		triggers: triggerRepo,
		users:    memoryRepo.NewUserRepository(),
		orders:   orderRepo,
		stats:    statsRepo,
	}
}

func buildPostgresRepositories(cfg *config.Config) (repositories, error) {
	db, err := database.InitPostgres(cfg)
	if err != nil {
		return repositories{}, err
	}

	logger.Info("Database connected successfully")

	return repositories{
		guests:   psqlRepo.NewGuestRepository(db),
		triggers: psqlRepo.NewTriggerRepository(db),
		users:    psqlRepo.NewUserRepository(db),
		orders:   psqlRepo.NewOrderRepository(db),
		stats:    psqlRepo.NewStatisticsRepository(db),
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting back office", "version", cfg.App.Version, "storage", cfg.Storage.Driver)

	metrics.Init()

	// Init repos
	var repos repositories
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		repos, err = buildPostgresRepositories(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to database", "error", err)
		}
	default:
		repos = buildMemoryRepositories()
	}

	// Init services
	guestService := guest.NewGuestService(repos.guests)
	triggerService := trigger.NewTriggerService(repos.triggers)
	userService := user.NewUserService(repos.users)
	analyticsService := analytics.NewAnalyticsService(repos.guests, repos.orders, repos.stats)

	// Init handlers
	guestHandler := rest.NewGuestHandler(guestService)
	triggerHandler := rest.NewTriggerHandler(triggerService)
	userHandler := rest.NewUserHandler(userService)
	analyticsHandler := rest.NewAnalyticsHandler(analyticsService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.Metrics())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api")
	router.SetupGuestRoutes(api, guestHandler)
	router.SetupTriggerRoutes(api, triggerHandler)
	router.SetupUserRoutes(api, userHandler)
	router.SetupDashboardRoutes(api, analyticsHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
