package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/exchange_shop/internal/apperrors"
	"github.com/SscSPs/exchange_shop/internal/core/domain"
	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
	"github.com/SscSPs/exchange_shop/internal/dto"
	"github.com/SscSPs/exchange_shop/internal/handlers"
	"github.com/SscSPs/exchange_shop/internal/middleware"
	"github.com/SscSPs/exchange_shop/internal/platform/config"
	"github.com/SscSPs/exchange_shop/internal/utils"
)

func f64(v float64) *float64 { return &v }

type HandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	jwtSecret   string
	now         time.Time
	rate        *MockRateService
	exchange    *MockExchangeService
	reservation *MockReservationService
	invoice     *MockInvoiceService
	display     *MockDisplayService
	auth        *MockAuthService
	contact     *MockContactService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.now = time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

	suite.rate = new(MockRateService)
	suite.exchange = new(MockExchangeService)
	suite.reservation = &MockReservationService{now: suite.now}
	suite.invoice = new(MockInvoiceService)
	suite.display = new(MockDisplayService)
	suite.auth = new(MockAuthService)
	suite.contact = new(MockContactService)

	cfg := &config.Config{
		JWTSecret:        suite.jwtSecret,
		IsProduction:     true,
		LoginRateLimit:   "100-M",
		BookingRateLimit: "100-M",
	}
	services := &portssvc.ServiceContainer{
		Rate:        suite.rate,
		Exchange:    suite.exchange,
		Reservation: suite.reservation,
		Invoice:     suite.invoice,
		Display:     suite.display,
		Auth:        suite.auth,
		Contact:     suite.contact,
	}

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, services, nil))
}

func (suite *HandlerTestSuite) token(userID string, role domain.UserRole) string {
	token, err := utils.GenerateJWT(userID, string(role), suite.jwtSecret, time.Hour, "test")
	suite.Require().NoError(err)
	return token
}

func (suite *HandlerTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decodeError(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var body dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (suite *HandlerTestSuite) reservationFixture() *domain.Reservation {
	return &domain.Reservation{
		UserID:         "user-1",
		FirstName:      "Jean",
		LastName:       "Dupont",
		Operation:      domain.OperationBuy,
		OrderCode:      "ABCDEFGH23",
		Status:         domain.StatusPending,
		CreatedAt:      suite.now,
		PickupDeadline: suite.now.Add(26 * time.Hour),
		Items: []domain.ReservationItem{
			{Currency: "USD", AmountEuro: decimal.NewFromInt(100), AmountLocal: decimal.NewFromFloat(110.16), RateBuy: 1.0584, RateSell: 1.1016},
		},
	}
}

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestGetQuote() {
	entry := &domain.RateSheetEntry{
		Meta:  domain.CurrencyMeta{Code: "USD", DisplayName: "Dollar américain", Country: "États-Unis", Flag: "🇺🇸"},
		Quote: domain.Quote{Mid: f64(1.08), Buy: f64(1.0584), Sell: f64(1.1016), Strategy: domain.StrategyDefault},
	}
	suite.rate.On("GetQuote", mock.Anything, "USD").Return(entry, nil).Once()
	suite.rate.On("GetQuote", mock.Anything, "XYZ").Return(nil, fmt.Errorf("%w: currency XYZ", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/rates/usd", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	var quote dto.QuoteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &quote))
	suite.Equal("USD", quote.Code)
	suite.Require().NotNil(quote.Sell)
	suite.InDelta(1.1016, *quote.Sell, 1e-9)
	suite.Equal("default", quote.Strategy)

	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/v1/rates/XYZ", "", nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/rates/US", "", nil).Code)
	suite.rate.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRateBoard() {
	suite.rate.On("RateBoard", mock.Anything).Return([]domain.RateSheetEntry{
		{Meta: domain.CurrencyMeta{Code: "USD"}, Quote: domain.Quote{Mid: f64(1.08), Buy: f64(1.0584), Sell: f64(1.1016), Strategy: domain.StrategyDefault}},
		{Meta: domain.CurrencyMeta{Code: "XOF"}, Quote: domain.Quote{Strategy: domain.StrategyUnpriced}},
	}).Once()

	w := suite.do(http.MethodGet, "/api/v1/rates", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	var board []map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &board))
	suite.Require().Len(board, 2)
	suite.Nil(board[1]["buy"])
	suite.Equal("unpriced", board[1]["strategy"])
	suite.NotContains(board[0], "override")
}

func (suite *HandlerTestSuite) TestListCurrencies() {
	suite.rate.On("ListCurrencies", mock.Anything).Return([]domain.CurrencyMeta{
		{Code: "USD", DefaultSpreadPercent: 2},
		{Code: "GBP", DefaultSpreadPercent: 2},
	}).Once()

	w := suite.do(http.MethodGet, "/api/v1/currencies", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	var body []dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body, 2)
	suite.Equal("GBP", body[1].Code)
}

func (suite *HandlerTestSuite) TestSimulate() {
	ok := dto.SimulateRequest{Direction: "buy", Code: "USD", AmountEur: "100"}
	suite.exchange.On("Simulate", mock.Anything, ok).Return(&domain.ExchangeSimulation{
		Direction:   domain.OperationBuy,
		Code:        "USD",
		Rate:        1.1016,
		AmountEuro:  decimal.NewFromInt(100),
		AmountLocal: decimal.NewFromFloat(110.16),
	}, nil).Once()
	unpriced := dto.SimulateRequest{Direction: "sell", Code: "XOF", AmountLocal: "5000"}
	suite.exchange.On("Simulate", mock.Anything, unpriced).Return(nil, apperrors.ErrRateUnavailable).Once()

	w := suite.do(http.MethodPost, "/api/v1/exchange/simulate", "", ok)
	suite.Equal(http.StatusOK, w.Code)
	var sim dto.SimulateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &sim))
	suite.True(sim.AmountLocal.Equal(decimal.NewFromFloat(110.16)))

	suite.Equal(http.StatusUnprocessableEntity, suite.do(http.MethodPost, "/api/v1/exchange/simulate", "", unpriced).Code)

	w = suite.do(http.MethodPost, "/api/v1/exchange/simulate", "", dto.SimulateRequest{Direction: "hold", Code: "USD"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.exchange.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestBookingWindow() {
	window := domain.BookingWindow{Open: false, Reason: "rest_day", OpensAt: "09:30", ClosesAt: "19:00", RestDay: "Sunday", Timezone: "Europe/Paris"}
	suite.reservation.On("BookingWindow", suite.now).Return(window).Once()

	w := suite.do(http.MethodGet, "/api/v1/booking/window", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	var body dto.BookingWindowResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.False(body.Open)
	suite.Equal("rest_day", body.Reason)
}

func (suite *HandlerTestSuite) TestCreateReservation() {
	req := dto.CreateReservationRequest{
		FirstName: "jean", LastName: "dupont", Operation: "buy",
		Lines: []dto.LineInput{{Currency: "USD", AmountEur: "100"}, {Currency: "XOF", AmountEur: "50"}},
	}
	warnings := []domain.LineWarning{{Line: 2, Currency: "XOF", Reason: domain.ReasonRateUnavailable}}
	suite.reservation.On("CreateReservation", mock.Anything, "user-1", req).Return(suite.reservationFixture(), warnings, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/reservations", suite.token("user-1", domain.RoleUser), req)
	suite.Equal(http.StatusCreated, w.Code)
	var body dto.CreateReservationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("ABCDEFGH23", body.Reservation.OrderCode)
	suite.Equal(26, body.Reservation.Remaining.Hours)
	suite.False(body.Reservation.Expired)
	suite.Require().Len(body.Warnings, 1)
	suite.Equal(2, body.Warnings[0].Line)
	suite.Equal("rate_unavailable", body.Warnings[0].Reason)
}

func (suite *HandlerTestSuite) TestCreateReservation_Errors() {
	req := dto.CreateReservationRequest{FirstName: "Jean", LastName: "Dupont", Operation: "sell", Lines: []dto.LineInput{{Currency: "USD"}}}

	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodPost, "/api/v1/reservations", "", req).Code)

	suite.reservation.On("CreateReservation", mock.Anything, "closed", req).
		Return(nil, nil, &apperrors.BookingClosedError{Reason: apperrors.ClosedRestDay}).Once()
	w := suite.do(http.MethodPost, "/api/v1/reservations", suite.token("closed", domain.RoleUser), req)
	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("rest_day", suite.decodeError(w).Reason)

	suite.reservation.On("CreateReservation", mock.Anything, "empty", req).Return(nil, nil, apperrors.ErrNoLineItems).Once()
	w = suite.do(http.MethodPost, "/api/v1/reservations", suite.token("empty", domain.RoleUser), req)
	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Equal(apperrors.ErrNoLineItems.Error(), suite.decodeError(w).Error)

	suite.reservation.On("CreateReservation", mock.Anything, "nameless", req).
		Return(nil, nil, apperrors.FieldErrors{"firstName": "is required"}).Once()
	w = suite.do(http.MethodPost, "/api/v1/reservations", suite.token("nameless", domain.RoleUser), req)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("is required", suite.decodeError(w).Fields["firstName"])
	suite.reservation.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetReservation_PassesRole() {
	suite.reservation.On("GetReservation", mock.Anything, "admin-1", "ABCDEFGH23", true).Return(suite.reservationFixture(), nil).Once()
	suite.reservation.On("GetReservation", mock.Anything, "user-2", "ABCDEFGH23", false).Return(nil, apperrors.ErrNotFound).Once()

	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/reservations/ABCDEFGH23", suite.token("admin-1", domain.RoleAdmin), nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/v1/reservations/ABCDEFGH23", suite.token("user-2", domain.RoleUser), nil).Code)
	suite.reservation.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestReservationQR() {
	png := []byte{0x89, 'P', 'N', 'G'}
	suite.reservation.On("ReservationQR", mock.Anything, "user-1", "ABCDEFGH23", false).Return(png, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reservations/ABCDEFGH23/qr", suite.token("user-1", domain.RoleUser), nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("image/png", w.Header().Get("Content-Type"))
	suite.Equal(png, w.Body.Bytes())
}

func (suite *HandlerTestSuite) TestAdminRoutesRequireAdmin() {
	userToken := suite.token("user-1", domain.RoleUser)
	for _, path := range []string{"/api/v1/admin/rates", "/api/v1/admin/reservations", "/api/v1/admin/display", "/api/v1/admin/screen"} {
		suite.Equal(http.StatusForbidden, suite.do(http.MethodGet, path, userToken, nil).Code, path)
		suite.Equal(http.StatusUnauthorized, suite.do(http.MethodGet, path, "", nil).Code, path)
	}
	suite.rate.AssertNotCalled(suite.T(), "RateSheet", mock.Anything)
}

func (suite *HandlerTestSuite) TestSaveRateSheet() {
	admin := suite.token("admin-1", domain.RoleAdmin)
	bad := dto.SaveRateSheetRequest{Rows: []dto.RateRowInput{{RateRuleInput: dto.RateRuleInput{Code: "USD", Mode: "manual"}}}}
	suite.rate.On("SaveRateSheet", mock.Anything, bad).
		Return(apperrors.FieldErrors{"USD.manualBuy": "manual buy rate must be greater than 0"}).Once()

	w := suite.do(http.MethodPut, "/api/v1/admin/rates", admin, bad)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decodeError(w).Fields, "USD.manualBuy")

	good := dto.SaveRateSheetRequest{Rows: []dto.RateRowInput{{RateRuleInput: dto.RateRuleInput{Code: "GBP"}, Override: f64(0.86)}}}
	suite.rate.On("SaveRateSheet", mock.Anything, good).Return(nil).Once()
	suite.rate.On("RateSheet", mock.Anything).Return([]domain.RateSheetEntry{
		{Meta: domain.CurrencyMeta{Code: "GBP"}, Override: f64(0.86), Quote: domain.Quote{Strategy: domain.StrategyDefault}},
	}).Once()

	w = suite.do(http.MethodPut, "/api/v1/admin/rates", admin, good)
	suite.Equal(http.StatusOK, w.Code)
	var rows []dto.RateSheetRowResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rows))
	suite.Require().Len(rows, 1)
	suite.InDelta(0.86, *rows[0].Override, 1e-9)

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPut, "/api/v1/admin/rates", admin, dto.SaveRateSheetRequest{}).Code)
	suite.rate.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestAdminReservations() {
	admin := suite.token("admin-1", domain.RoleAdmin)
	params := dto.ListReservationsParams{Limit: 5, NextToken: "abc"}
	suite.reservation.On("ListReservations", mock.Anything, params).
		Return([]domain.Reservation{*suite.reservationFixture()}, "next-page", nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/admin/reservations?limit=5&nextToken=abc", admin, nil)
	suite.Equal(http.StatusOK, w.Code)
	var page dto.ListReservationsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &page))
	suite.Len(page.Reservations, 1)
	suite.Equal("next-page", page.NextToken)

	confirmed := suite.reservationFixture()
	confirmed.Status = domain.StatusCompleted
	suite.reservation.On("ConfirmReservation", mock.Anything, "ABCDEFGH23").Return(confirmed, nil).Once()
	suite.reservation.On("ConfirmReservation", mock.Anything, "MISSING234").Return(nil, apperrors.ErrNotFound).Once()

	w = suite.do(http.MethodPost, "/api/v1/admin/reservations/ABCDEFGH23/confirm", admin, nil)
	suite.Equal(http.StatusOK, w.Code)
	var body dto.ReservationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("completed", body.Status)

	suite.Equal(http.StatusNotFound, suite.do(http.MethodPost, "/api/v1/admin/reservations/MISSING234/confirm", admin, nil).Code)
	suite.reservation.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestInvoices() {
	admin := suite.token("admin-1", domain.RoleAdmin)
	req := dto.CreateInvoiceRequest{
		FirstName: "Marie", LastName: "Curie", DateOfBirth: "07/11/1990", Address: "1 rue de Paris",
		Lines: []dto.LineInput{{Currency: "USD", AmountEur: "100", RateEurToLocal: "1.1"}},
	}
	invoice := &domain.Invoice{
		FirstName: "Marie", LastName: "Curie", DateOfBirth: time.Date(1990, 11, 7, 0, 0, 0, 0, time.UTC),
		Address: "1 rue de Paris", PaymentMethod: domain.PaymentCash, InvoiceCode: "INVCODE234", CreatedAt: suite.now,
		Items: []domain.InvoiceItem{{Currency: "USD", AmountEuro: decimal.NewFromInt(100), AmountLocal: decimal.NewFromInt(110), RateEurToLocal: 1.1, RateLocalToEur: 1 / 1.1}},
	}
	suite.invoice.On("CreateInvoice", mock.Anything, req).Return(invoice, nil, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/admin/invoices", admin, req)
	suite.Equal(http.StatusCreated, w.Code)
	var created dto.CreateInvoiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.Equal("INVCODE234", created.Invoice.InvoiceCode)
	suite.Equal("1990-11-07", created.Invoice.DateOfBirth)
	suite.NotNil(created.Warnings)
	suite.Empty(created.Warnings)

	suite.invoice.On("RenderInvoicePDF", mock.Anything, "INVCODE234").Return([]byte("%PDF-1.3"), "Invoice_INVCODE234.pdf", nil).Once()
	w = suite.do(http.MethodGet, "/api/v1/admin/invoices/INVCODE234/pdf", admin, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "Invoice_INVCODE234.pdf")

	suite.invoice.On("GetInvoice", mock.Anything, "NOPE234567").Return(nil, apperrors.ErrNotFound).Once()
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/v1/admin/invoices/NOPE234567", admin, nil).Code)
	suite.invoice.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestDisplay() {
	admin := suite.token("admin-1", domain.RoleAdmin)
	update := dto.UpdateDisplayRequest{Codes: []string{"usd", "gbp"}, Direction: "local_to_eur"}
	suite.display.On("UpdateDisplayConfig", mock.Anything, update).
		Return(&domain.DisplayConfig{Codes: []string{"USD", "GBP"}, Direction: domain.DirectionLocalToEur}, nil).Once()
	suite.display.On("Screen", mock.Anything).Return(string(domain.DirectionLocalToEur), []domain.ScreenRow{
		{Code: "USD", DisplayBuy: f64(1 / 1.0584), DisplaySell: f64(1 / 1.1016), PrefixCode: "USD", SuffixCode: "EUR"},
	}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/admin/display", admin, update)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"codes":["USD","GBP"],"direction":"local_to_eur"}`, w.Body.String())

	w = suite.do(http.MethodGet, "/api/v1/admin/screen", admin, nil)
	suite.Equal(http.StatusOK, w.Code)
	var screen dto.ScreenResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &screen))
	suite.Equal("local_to_eur", screen.Direction)
	suite.Require().Len(screen.Rows, 1)
	suite.Equal("EUR", screen.Rows[0].SuffixCode)
	suite.display.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestAuth() {
	login := dto.LoginRequest{Email: "jean@example.com", Password: "wrong-password"}
	suite.auth.On("Login", mock.Anything, login).Return("", nil, nil, apperrors.ErrUnauthorized).Once()
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodPost, "/api/v1/auth/login", "", login).Code)

	good := dto.LoginRequest{Email: "jean@example.com", Password: "correct-horse"}
	user := &domain.User{UserID: "user-1", Email: "jean@example.com", Role: domain.RoleUser}
	suite.auth.On("Login", mock.Anything, good).Return("signed.jwt.token", suite.now.Add(time.Hour), user, nil).Once()
	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", good)
	suite.Equal(http.StatusOK, w.Code)
	var body dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("signed.jwt.token", body.Token)
	suite.Equal("user", body.User.Role)

	reg := dto.RegisterRequest{
		FirstName: "Jean", LastName: "Dupont", Email: "jean@example.com",
		DateOfBirth: "1990-01-01", Password: "correct-horse", PasswordConfirm: "correct-horse",
	}
	suite.auth.On("Register", mock.Anything, reg).Return(nil, fmt.Errorf("%w: email", apperrors.ErrDuplicate)).Once()
	suite.Equal(http.StatusConflict, suite.do(http.MethodPost, "/api/v1/auth/register", "", reg).Code)

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{Email: "nope"}).Code)
	suite.auth.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestContact() {
	user := suite.token("user-1", domain.RoleUser)
	req := dto.SendContactRequest{Name: "Jean", Email: "jean@example.com", Message: "Hello"}

	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodPost, "/api/v1/contact", "", req).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/v1/contact", user, dto.SendContactRequest{Name: "Jean"}).Code)

	stored := &domain.ContactMessage{MessageID: "m-1", UserID: "user-1", Name: "Jean", Email: "jean@example.com", Message: "Hello", CreatedAt: suite.now}
	suite.contact.On("Send", mock.Anything, "user-1", req).Return(stored, nil).Once()
	w := suite.do(http.MethodPost, "/api/v1/contact", user, req)
	suite.Equal(http.StatusCreated, w.Code)
	var body dto.ContactMessageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("m-1", body.MessageID)

	bad := dto.SendContactRequest{Name: "Jean", Email: "nope", Message: "Hello"}
	suite.contact.On("Send", mock.Anything, "user-1", bad).Return(nil, apperrors.FieldErrors{"email": "must be a valid email address"}).Once()
	w = suite.do(http.MethodPost, "/api/v1/contact", user, bad)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("must be a valid email address", suite.decodeError(w).Fields["email"])
}

func (suite *HandlerTestSuite) TestAdminMessages() {
	admin := suite.token("admin-1", domain.RoleAdmin)

	suite.Equal(http.StatusForbidden, suite.do(http.MethodGet, "/api/v1/admin/messages", suite.token("user-1", domain.RoleUser), nil).Code)

	params := dto.ListMessagesParams{Limit: 5, NextToken: "tok"}
	suite.contact.On("ListMessages", mock.Anything, params).
		Return([]domain.ContactMessage{{MessageID: "m-2", Name: "Ana", CreatedAt: suite.now}}, "next", nil).Once()
	w := suite.do(http.MethodGet, "/api/v1/admin/messages?limit=5&nextToken=tok", admin, nil)
	suite.Equal(http.StatusOK, w.Code)
	var body dto.ListMessagesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Messages, 1)
	suite.Equal("m-2", body.Messages[0].MessageID)
	suite.Equal("next", body.NextToken)

	suite.contact.On("ListMessages", mock.Anything, dto.ListMessagesParams{Limit: 20, NextToken: "!!"}).
		Return(nil, "", apperrors.ErrValidation).Once()
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/admin/messages?nextToken=!!", admin, nil).Code)
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
