package services

import (
	"github.com/SscSPs/exchange_shop/internal/core/booking"
	"github.com/SscSPs/exchange_shop/internal/core/catalog"
	portsrepo "github.com/SscSPs/exchange_shop/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
	"github.com/SscSPs/exchange_shop/internal/platform/config"
	"github.com/SscSPs/exchange_shop/internal/platform/metrics"
)

// Collaborators groups the non-repository dependencies of the services.
type Collaborators struct {
	Catalog  *catalog.Catalog
	Policy   *booking.WindowPolicy
	Spot     portssvc.SpotSource // optional; percent rules fall back to the mid without it
	Renderer portssvc.DocumentRenderer
	Metrics  *metrics.Metrics // optional
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, deps Collaborators) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	rateOpts := []RateServiceOption{WithRateCacheTTL(cfg.RateCacheTTL)}
	reservationOpts := []ReservationServiceOption{}
	if deps.Spot != nil {
		rateOpts = append(rateOpts, WithSpotSource(deps.Spot))
	}
	if deps.Metrics != nil {
		rateOpts = append(rateOpts, WithQuoteCounter(deps.Metrics.QuotesTotal))
		reservationOpts = append(reservationOpts, WithBookingCounter(deps.Metrics.BookingsTotal))
	}

	// The rate engine comes first since every pricing service depends on it
	container.Rate = NewRateService(deps.Catalog, repos.RateRepo, rateOpts...)
	lines := NewLineReconciler(deps.Catalog, container.Rate)

	container.Exchange = NewExchangeService(lines)
	container.Reservation = NewReservationService(repos.ReservationRepo, lines, deps.Policy, deps.Renderer, reservationOpts...)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, lines, deps.Renderer)
	container.Display = NewDisplayService(repos.DisplayRepo, deps.Catalog, container.Rate)
	container.Auth = NewAuthService(cfg, repos.UserRepo)
	container.Contact = NewContactService(repos.ContactRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.RateSvcFacade        = (*rateService)(nil)
	_ portssvc.LineReconcilerSvc    = (*lineReconciler)(nil)
	_ portssvc.ExchangeSvc          = (*exchangeService)(nil)
	_ portssvc.ReservationSvcFacade = (*reservationService)(nil)
	_ portssvc.InvoiceSvcFacade     = (*invoiceService)(nil)
	_ portssvc.DisplaySvcFacade     = (*displayService)(nil)
	_ portssvc.AuthSvcFacade        = (*authService)(nil)
	_ portssvc.ContactSvcFacade     = (*contactService)(nil)
)
