package services

import (
	"context"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
	"github.com/SscSPs/exchange_shop/internal/dto"
)

// ContactSvcFacade handles messages customers leave for the shop
type ContactSvcFacade interface {
	// Send stores a message from the signed-in user.
	Send(ctx context.Context, userID string, req dto.SendContactRequest) (*domain.ContactMessage, error)

	// ListMessages returns a page of messages, newest first, and the token of the next page.
	ListMessages(ctx context.Context, params dto.ListMessagesParams) ([]domain.ContactMessage, string, error)
}
