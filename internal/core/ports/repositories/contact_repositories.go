package repositories

import (
	"context"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
	"github.com/SscSPs/exchange_shop/internal/utils/pagination"
)

// ContactMessageRepository stores customer messages to the shop.
type ContactMessageRepository interface {
	SaveContactMessage(ctx context.Context, msg domain.ContactMessage) error

	// ListContactMessages retrieves a page of messages, newest first, strictly after cursor when set.
	ListContactMessages(ctx context.Context, limit int, cursor *pagination.Cursor) ([]domain.ContactMessage, error)
}
