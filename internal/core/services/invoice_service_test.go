package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/exchange_shop/internal/apperrors"
	"github.com/SscSPs/exchange_shop/internal/core/domain"
	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
	"github.com/SscSPs/exchange_shop/internal/core/services"
	"github.com/SscSPs/exchange_shop/internal/dto"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	repo     *MockInvoiceRepository
	renderer *MockRenderer
	service  portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = new(MockInvoiceRepository)
	suite.renderer = new(MockRenderer)
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	lines := newReconciler(fakeEngine{"USD": quote(1.08, 1.0584, 1.1016)})
	suite.service = services.NewInvoiceService(suite.repo, lines, suite.renderer,
		services.WithInvoiceClock(func() time.Time { return now }))
}

func (suite *InvoiceServiceTestSuite) request() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		FirstName:     "marie",
		LastName:      "curie",
		DateOfBirth:   "07/11/1967",
		Address:       " 1 rue de Paris ",
		PaymentMethod: "card",
		Lines: []dto.LineInput{
			{Currency: "USD", AmountEur: "100", RateEurToLocal: "1.1"},
			{Currency: "USD", AmountEur: "50"},
		},
	}
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	suite.repo.On("SaveInvoice", suite.ctx, mock.AnythingOfType("*domain.Invoice")).Return(nil).Once()

	inv, warnings, err := suite.service.CreateInvoice(suite.ctx, suite.request())

	suite.Require().NoError(err)
	suite.Empty(warnings)
	suite.Equal("Marie", inv.FirstName)
	suite.Equal("1 rue de Paris", inv.Address)
	suite.Equal(domain.PaymentCard, inv.PaymentMethod)
	suite.Equal(time.Date(1967, 11, 7, 0, 0, 0, 0, time.UTC), inv.DateOfBirth)
	suite.Len(inv.InvoiceCode, 10)
	suite.Require().Len(inv.Items, 2)
	suite.Equal("110.00", inv.Items[0].AmountLocal.StringFixed(2))
	suite.Equal("55.08", inv.Items[1].AmountLocal.StringFixed(2))
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Validation() {
	req := suite.request()
	req.DateOfBirth = "2999-01-01"
	req.Address = "  "

	_, _, err := suite.service.CreateInvoice(suite.ctx, req)

	var fe apperrors.FieldErrors
	suite.Require().ErrorAs(err, &fe)
	suite.Contains(fe, "dateOfBirth")
	suite.Contains(fe, "address")
	suite.repo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NoLines() {
	req := suite.request()
	req.Lines = []dto.LineInput{{Currency: "USD"}}

	_, _, err := suite.service.CreateInvoice(suite.ctx, req)

	suite.ErrorIs(err, apperrors.ErrNoLineItems)
}

func (suite *InvoiceServiceTestSuite) TestRenderInvoicePDF() {
	inv := &domain.Invoice{InvoiceCode: "ABCDEFGH23"}
	suite.repo.On("FindInvoiceByCode", suite.ctx, "ABCDEFGH23").Return(inv, nil).Once()
	suite.renderer.On("InvoicePDF", inv).Return([]byte("%PDF"), nil).Once()

	pdf, name, err := suite.service.RenderInvoicePDF(suite.ctx, "abcdefgh23")

	suite.Require().NoError(err)
	suite.Equal([]byte("%PDF"), pdf)
	suite.Equal("Invoice_ABCDEFGH23.pdf", name)
}

func (suite *InvoiceServiceTestSuite) TestGetInvoice_NotFound() {
	suite.repo.On("FindInvoiceByCode", suite.ctx, "NOPE").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetInvoice(suite.ctx, "nope")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
