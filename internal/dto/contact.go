package dto

import (
	"time"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
)

// SendContactRequest is a customer's message to the shop.
type SendContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ContactMessageResponse is a stored contact message.
type ContactMessageResponse struct {
	MessageID string    `json:"messageId"`
	UserID    string    `json:"userId,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListMessagesParams defines query parameters for the admin message list.
type ListMessagesParams struct {
	Limit     int    `form:"limit,default=20"`
	NextToken string `form:"nextToken"`
}

// ListMessagesResponse wraps a page of contact messages.
type ListMessagesResponse struct {
	Messages  []ContactMessageResponse `json:"messages"`
	NextToken string                   `json:"nextToken,omitempty"`
}

func ToContactMessageResponse(m *domain.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		MessageID: m.MessageID,
		UserID:    m.UserID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}
