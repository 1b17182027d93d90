package handlers_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
	"github.com/SscSPs/exchange_shop/internal/dto"
)

// --- Mock RateService ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) ComputeBuySell(ctx context.Context, code string) domain.Quote {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.Quote)
}
func (m *MockRateService) ListCurrencies(ctx context.Context) []domain.CurrencyMeta {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CurrencyMeta)
}
func (m *MockRateService) GetQuote(ctx context.Context, code string) (*domain.RateSheetEntry, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateSheetEntry), args.Error(1)
}
func (m *MockRateService) RateSheet(ctx context.Context) []domain.RateSheetEntry {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RateSheetEntry)
}
func (m *MockRateService) RateBoard(ctx context.Context) []domain.RateSheetEntry {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RateSheetEntry)
}
func (m *MockRateService) ConvertFromEur(ctx context.Context, code string, eur decimal.Decimal) (decimal.Decimal, bool) {
	args := m.Called(ctx, code, eur)
	return args.Get(0).(decimal.Decimal), args.Bool(1)
}
func (m *MockRateService) ConvertToEur(ctx context.Context, code string, local decimal.Decimal) (decimal.Decimal, bool) {
	args := m.Called(ctx, code, local)
	return args.Get(0).(decimal.Decimal), args.Bool(1)
}
func (m *MockRateService) SaveOverrides(ctx context.Context, overrides map[string]float64) error {
	return m.Called(ctx, overrides).Error(0)
}
func (m *MockRateService) SaveRule(ctx context.Context, input dto.RateRuleInput) (*domain.RateRule, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateRule), args.Error(1)
}
func (m *MockRateService) SaveRateSheet(ctx context.Context, req dto.SaveRateSheetRequest) error {
	return m.Called(ctx, req).Error(0)
}

var _ portssvc.RateSvcFacade = (*MockRateService)(nil)

// --- Mock ExchangeService ---
type MockExchangeService struct {
	mock.Mock
}

func (m *MockExchangeService) Simulate(ctx context.Context, req dto.SimulateRequest) (*domain.ExchangeSimulation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeSimulation), args.Error(1)
}

var _ portssvc.ExchangeSvc = (*MockExchangeService)(nil)

// --- Mock ReservationService ---
type MockReservationService struct {
	mock.Mock
	now time.Time
}

func (m *MockReservationService) ListMyReservations(ctx context.Context, userID string) ([]domain.Reservation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationService) GetReservation(ctx context.Context, userID, orderCode string, isAdmin bool) (*domain.Reservation, error) {
	args := m.Called(ctx, userID, orderCode, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationService) ListReservations(ctx context.Context, params dto.ListReservationsParams) ([]domain.Reservation, string, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]domain.Reservation), args.String(1), args.Error(2)
}
func (m *MockReservationService) ReservationQR(ctx context.Context, userID, orderCode string, isAdmin bool) ([]byte, error) {
	args := m.Called(ctx, userID, orderCode, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *MockReservationService) BookingWindow(now time.Time) domain.BookingWindow {
	return m.Called(now).Get(0).(domain.BookingWindow)
}
func (m *MockReservationService) Now() time.Time { return m.now }
func (m *MockReservationService) CreateReservation(ctx context.Context, userID string, req dto.CreateReservationRequest) (*domain.Reservation, []domain.LineWarning, error) {
	args := m.Called(ctx, userID, req)
	var warnings []domain.LineWarning
	if w := args.Get(1); w != nil {
		warnings = w.([]domain.LineWarning)
	}
	if args.Get(0) == nil {
		return nil, warnings, args.Error(2)
	}
	return args.Get(0).(*domain.Reservation), warnings, args.Error(2)
}
func (m *MockReservationService) ConfirmReservation(ctx context.Context, orderCode string) (*domain.Reservation, error) {
	args := m.Called(ctx, orderCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

var _ portssvc.ReservationSvcFacade = (*MockReservationService)(nil)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, []domain.LineWarning, error) {
	args := m.Called(ctx, req)
	var warnings []domain.LineWarning
	if w := args.Get(1); w != nil {
		warnings = w.([]domain.LineWarning)
	}
	if args.Get(0) == nil {
		return nil, warnings, args.Error(2)
	}
	return args.Get(0).(*domain.Invoice), warnings, args.Error(2)
}
func (m *MockInvoiceService) GetInvoice(ctx context.Context, invoiceCode string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) RenderInvoicePDF(ctx context.Context, invoiceCode string) ([]byte, string, error) {
	args := m.Called(ctx, invoiceCode)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock DisplayService ---
type MockDisplayService struct {
	mock.Mock
}

func (m *MockDisplayService) GetDisplayConfig(ctx context.Context) (*domain.DisplayConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisplayConfig), args.Error(1)
}
func (m *MockDisplayService) UpdateDisplayConfig(ctx context.Context, req dto.UpdateDisplayRequest) (*domain.DisplayConfig, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisplayConfig), args.Error(1)
}
func (m *MockDisplayService) Screen(ctx context.Context) (domain.DisplayDirection, []domain.ScreenRow, error) {
	args := m.Called(ctx)
	if args.Get(1) == nil {
		return domain.DisplayDirection(args.String(0)), nil, args.Error(2)
	}
	return domain.DisplayDirection(args.String(0)), args.Get(1).([]domain.ScreenRow), args.Error(2)
}

var _ portssvc.DisplaySvcFacade = (*MockDisplayService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (string, time.Time, *domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(2) == nil {
		return "", time.Time{}, nil, args.Error(3)
	}
	return args.String(0), args.Get(1).(time.Time), args.Get(2).(*domain.User), args.Error(3)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock ContactService ---
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Send(ctx context.Context, userID string, req dto.SendContactRequest) (*domain.ContactMessage, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}
func (m *MockContactService) ListMessages(ctx context.Context, params dto.ListMessagesParams) ([]domain.ContactMessage, string, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]domain.ContactMessage), args.String(1), args.Error(2)
}

var _ portssvc.ContactSvcFacade = (*MockContactService)(nil)
