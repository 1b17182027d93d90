package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/SscSPs/exchange_shop/internal/adapters/document"
	"github.com/SscSPs/exchange_shop/internal/adapters/spot"
	"github.com/SscSPs/exchange_shop/internal/core/booking"
	"github.com/SscSPs/exchange_shop/internal/core/catalog"
	"github.com/SscSPs/exchange_shop/internal/core/services"
	"github.com/SscSPs/exchange_shop/internal/handlers"
	"github.com/SscSPs/exchange_shop/internal/middleware"
	"github.com/SscSPs/exchange_shop/internal/platform/config"
	"github.com/SscSPs/exchange_shop/internal/platform/metrics"
	"github.com/SscSPs/exchange_shop/internal/repositories/database/pgsql"
	"github.com/SscSPs/exchange_shop/internal/utils"
	"github.com/SscSPs/exchange_shop/migrations"
	"github.com/SscSPs/exchange_shop/pkg/database"
)

const shopName = "Exchange Shop"

// @title Exchange Shop API
// @version 1.0
// @description Currency exchange storefront: live quotes, pickup reservations, invoices and the in-shop rate screen.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := database.RunMigrations(cfg.DatabaseURL, migrations.FS, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	policy, err := newWindowPolicy(cfg, logger)
	if err != nil {
		logger.Error("Failed to build booking window", slog.String("error", err.Error()))
		os.Exit(1)
	}

	appMetrics := metrics.New()
	spotSource := spot.NewCachingSource(
		spot.NewCurrencyAPIClient(cfg.SpotPrimaryURL, cfg.SpotFallbackURL, cfg.SpotHTTPTimeout),
		cfg.SpotCacheTTL,
		cfg.SpotFailureTTL,
		spot.WithFetchCounter(appMetrics.SpotFetchTotal),
	)

	serviceContainer := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), services.Collaborators{
		Catalog:  catalog.New(catalog.WithDefaultSpread(cfg.DefaultSpreadPercent)),
		Policy:   policy,
		Spot:     spotSource,
		Renderer: document.NewRenderer(shopName),
		Metrics:  appMetrics,
	})

	analytics := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer analytics.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.SecurityHeaders(), middleware.AnalyticsMiddleware(analytics))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, appMetrics.Handler()); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("Server exited")
}

// newWindowPolicy builds the booking window from the shop settings. Unparseable
// values fall back to the defaults with a warning.
func newWindowPolicy(cfg *config.Config, logger *slog.Logger) (*booking.WindowPolicy, error) {
	loc, err := time.LoadLocation(cfg.ShopTimezone)
	if err != nil {
		logger.Warn("Invalid SHOP_TIMEZONE, using Europe/Paris", slog.String("value", cfg.ShopTimezone))
		if loc, err = time.LoadLocation("Europe/Paris"); err != nil {
			return nil, err
		}
	}
	open, err := booking.ParseClock(cfg.ShopOpenTime)
	if err != nil {
		logger.Warn("Invalid SHOP_OPEN_TIME, using 09:30", slog.String("value", cfg.ShopOpenTime))
		open = booking.Clock{Hour: 9, Minute: 30}
	}
	closeAt, err := booking.ParseClock(cfg.ShopCloseTime)
	if err != nil {
		logger.Warn("Invalid SHOP_CLOSE_TIME, using 19:00", slog.String("value", cfg.ShopCloseTime))
		closeAt = booking.Clock{Hour: 19}
	}
	restDay, err := booking.ParseWeekday(cfg.ShopRestDay)
	if err != nil {
		logger.Warn("Invalid SHOP_REST_DAY, using sunday", slog.String("value", cfg.ShopRestDay))
		restDay = time.Sunday
	}
	return booking.NewWindowPolicy(loc, open, closeAt, restDay)
}
