package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/exchange_shop/internal/apperrors"
	"github.com/SscSPs/exchange_shop/internal/core/domain"
	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
	"github.com/SscSPs/exchange_shop/internal/core/services"
	"github.com/SscSPs/exchange_shop/internal/dto"
	"github.com/SscSPs/exchange_shop/internal/utils/pagination"
)

type ContactServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	now     time.Time
	repo    *MockContactRepository
	service portssvc.ContactSvcFacade
}

func (suite *ContactServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.now = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	suite.repo = new(MockContactRepository)
	suite.service = services.NewContactService(suite.repo, services.WithContactClock(func() time.Time { return suite.now }))
}

func (suite *ContactServiceTestSuite) TestSend_NormalizesAndStores() {
	suite.repo.On("SaveContactMessage", suite.ctx, mock.MatchedBy(func(m domain.ContactMessage) bool {
		return m.UserID == "u-1" && m.Name == "Jean Dupont" && m.Email == "jean@example.com" &&
			m.Message == "Do you stock THB?" && m.CreatedAt.Equal(suite.now) && m.MessageID != ""
	})).Return(nil).Once()

	msg, err := suite.service.Send(suite.ctx, "u-1", dto.SendContactRequest{
		Name:    "  jean   dupont ",
		Email:   " Jean@Example.com ",
		Message: "  Do you stock THB?\n",
	})

	suite.Require().NoError(err)
	suite.Equal("Jean Dupont", msg.Name)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *ContactServiceTestSuite) TestSend_Validation() {
	_, err := suite.service.Send(suite.ctx, "u-1", dto.SendContactRequest{
		Name:    "   ",
		Email:   "not-an-email",
		Message: strings.Repeat("x", 5001),
	})

	var fe apperrors.FieldErrors
	suite.Require().ErrorAs(err, &fe)
	suite.Equal("is required", fe["name"])
	suite.Equal("must be a valid email address", fe["email"])
	suite.Equal("is too long", fe["message"])
	suite.repo.AssertNotCalled(suite.T(), "SaveContactMessage", mock.Anything, mock.Anything)
}

func (suite *ContactServiceTestSuite) TestSend_RepoError() {
	suite.repo.On("SaveContactMessage", suite.ctx, mock.Anything).Return(errors.New("db down")).Once()

	_, err := suite.service.Send(suite.ctx, "u-1", dto.SendContactRequest{Name: "Ana", Email: "ana@example.com", Message: "Hi"})

	suite.Error(err)
	suite.NotErrorIs(err, apperrors.ErrValidation)
}

func (suite *ContactServiceTestSuite) TestListMessages_Paginates() {
	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	rows := []domain.ContactMessage{
		{MessageID: "m3", CreatedAt: base.Add(3 * time.Hour)},
		{MessageID: "m2", CreatedAt: base.Add(2 * time.Hour)},
		{MessageID: "m1", CreatedAt: base.Add(time.Hour)},
	}
	suite.repo.On("ListContactMessages", suite.ctx, 3, (*pagination.Cursor)(nil)).Return(rows, nil).Once()

	page, next, err := suite.service.ListMessages(suite.ctx, dto.ListMessagesParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Len(page, 2)
	cursor, err := pagination.DecodeToken(next)
	suite.Require().NoError(err)
	suite.Equal("m2", cursor.Key)
}

func (suite *ContactServiceTestSuite) TestListMessages_LastPageHasNoToken() {
	rows := []domain.ContactMessage{{MessageID: "m1"}}
	suite.repo.On("ListContactMessages", suite.ctx, 21, (*pagination.Cursor)(nil)).Return(rows, nil).Once()

	page, next, err := suite.service.ListMessages(suite.ctx, dto.ListMessagesParams{})

	suite.Require().NoError(err)
	suite.Len(page, 1)
	suite.Empty(next)
}

func (suite *ContactServiceTestSuite) TestListMessages_BadToken() {
	_, _, err := suite.service.ListMessages(suite.ctx, dto.ListMessagesParams{NextToken: "!!"})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestContactServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContactServiceTestSuite))
}
