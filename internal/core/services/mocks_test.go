package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
	"github.com/SscSPs/exchange_shop/internal/utils/pagination"
)

// --- Mock RateRepository ---
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) ListOverrides(ctx context.Context) (map[string]float64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

func (m *MockRateRepository) UpsertOverride(ctx context.Context, override domain.RateOverride) error {
	return m.Called(ctx, override).Error(0)
}

func (m *MockRateRepository) DeleteOverride(ctx context.Context, code string) error {
	return m.Called(ctx, code).Error(0)
}

func (m *MockRateRepository) ListRules(ctx context.Context) (map[string]domain.RateRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.RateRule), args.Error(1)
}

func (m *MockRateRepository) UpsertRule(ctx context.Context, rule domain.RateRule) error {
	return m.Called(ctx, rule).Error(0)
}

// --- Mock ReservationRepository ---
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) FindReservationByCode(ctx context.Context, orderCode string) (*domain.Reservation, error) {
	args := m.Called(ctx, orderCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindReservationsByUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListReservations(ctx context.Context, limit int, cursor *pagination.Cursor) ([]domain.Reservation, error) {
	args := m.Called(ctx, limit, cursor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) SaveReservation(ctx context.Context, reservation *domain.Reservation) error {
	return m.Called(ctx, reservation).Error(0)
}

func (m *MockReservationRepository) UpdateReservationStatus(ctx context.Context, orderCode string, status domain.ReservationStatus) error {
	return m.Called(ctx, orderCode, status).Error(0)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByCode(ctx context.Context, invoiceCode string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice *domain.Invoice) error {
	return m.Called(ctx, invoice).Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

// --- Mock DisplayConfigRepository ---
type MockDisplayRepository struct {
	mock.Mock
}

func (m *MockDisplayRepository) GetDisplayConfig(ctx context.Context) (*domain.DisplayConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisplayConfig), args.Error(1)
}

func (m *MockDisplayRepository) SaveDisplayConfig(ctx context.Context, cfg domain.DisplayConfig) error {
	return m.Called(ctx, cfg).Error(0)
}

// --- Mock ContactMessageRepository ---
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) SaveContactMessage(ctx context.Context, msg domain.ContactMessage) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *MockContactRepository) ListContactMessages(ctx context.Context, limit int, cursor *pagination.Cursor) ([]domain.ContactMessage, error) {
	args := m.Called(ctx, limit, cursor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactMessage), args.Error(1)
}

// --- Mock DocumentRenderer ---
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) InvoicePDF(inv *domain.Invoice) ([]byte, error) {
	args := m.Called(inv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRenderer) QRCodePNG(content string) ([]byte, error) {
	args := m.Called(content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// staticSpots is a fixed spot source.
type staticSpots map[string]float64

func (s staticSpots) EurSpots(context.Context) map[string]float64 { return s }

func f64(v float64) *float64 { return &v }

// emptyRateRepo returns a rate repository mock with no overrides or rules.
func emptyRateRepo() *MockRateRepository {
	repo := new(MockRateRepository)
	repo.On("ListOverrides", mock.Anything).Return(map[string]float64{}, nil)
	repo.On("ListRules", mock.Anything).Return(map[string]domain.RateRule{}, nil)
	return repo
}
