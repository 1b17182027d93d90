package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/SscSPs/exchange_shop/cmd/docs"
	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
	"github.com/SscSPs/exchange_shop/internal/middleware"
	"github.com/SscSPs/exchange_shop/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// metricsHandler may be nil, in which case /metrics is not served.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	metricsHandler http.Handler,
) error {
	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("login rate limit: %w", err)
	}
	bookingLimiter, err := middleware.NewMemoryLimiter(cfg.BookingRateLimit)
	if err != nil {
		return fmt.Errorf("booking rate limit: %w", err)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	if metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(metricsHandler))
	}

	v1 := r.Group("/api/v1")

	// Public storefront
	registerRateRoutes(v1, services.Rate)
	registerExchangeRoutes(v1, services.Exchange)
	registerBookingRoutes(v1, services.Reservation)
	registerAuthRoutes(v1, services.Auth, middleware.RateLimit(loginLimiter))

	// Customer area
	authed := v1.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	registerReservationRoutes(authed, services.Reservation, middleware.RateLimit(bookingLimiter))
	registerContactRoutes(authed, services.Contact)

	// Back office
	admin := authed.Group("/admin", middleware.RequireAdmin())
	registerAdminRateRoutes(admin, services.Rate)
	registerAdminReservationRoutes(admin, services.Reservation)
	registerInvoiceRoutes(admin, services.Invoice)
	registerDisplayRoutes(admin, services.Display)
	registerAdminMessageRoutes(admin, services.Contact)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
