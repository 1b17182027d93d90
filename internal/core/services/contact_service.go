package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/SscSPs/exchange_shop/internal/apperrors"
	"github.com/SscSPs/exchange_shop/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_shop/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
	"github.com/SscSPs/exchange_shop/internal/dto"
	"github.com/SscSPs/exchange_shop/internal/utils"
	"github.com/SscSPs/exchange_shop/internal/utils/pagination"
)

const (
	defaultMessagePageSize = 20
	maxMessagePageSize     = 100
)

// contactService implements the ContactSvcFacade interface
type contactService struct {
	BaseService
	repo     portsrepo.ContactMessageRepository
	validate *validator.Validate
	now      func() time.Time
}

// ContactServiceOption configures the contact service.
type ContactServiceOption func(*contactService)

// WithContactClock replaces the clock stamping new messages.
func WithContactClock(now func() time.Time) ContactServiceOption {
	return func(s *contactService) {
		s.now = now
	}
}

// NewContactService creates a new contact service
func NewContactService(repo portsrepo.ContactMessageRepository, options ...ContactServiceOption) portssvc.ContactSvcFacade {
	svc := &contactService{repo: repo, validate: newFormValidator(), now: time.Now}
	for _, opt := range options {
		opt(svc)
	}
	return svc
}

// contactForm bounds match the contact_messages columns.
type contactForm struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,max=180,email"`
	Message string `json:"message" validate:"required,max=5000"`
}

var contactMessages = map[string]string{
	"required": "is required",
	"max":      "is too long",
	"email":    "must be a valid email address",
}

func (s *contactService) Send(ctx context.Context, userID string, req dto.SendContactRequest) (*domain.ContactMessage, error) {
	form := contactForm{
		Name:    utils.NormalizeName(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Message: strings.TrimSpace(req.Message),
	}
	if err := s.validate.Struct(form); err != nil {
		fieldErrs := apperrors.FieldErrors{}
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				msg, found := contactMessages[fe.Tag()]
				if !found {
					msg = "is invalid"
				}
				fieldErrs[fe.Field()] = msg
			}
		} else {
			fieldErrs["message"] = err.Error()
		}
		return nil, fieldErrs
	}

	msg := domain.ContactMessage{
		MessageID: uuid.NewString(),
		UserID:    userID,
		Name:      form.Name,
		Email:     form.Email,
		Message:   form.Message,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.SaveContactMessage(ctx, msg); err != nil {
		s.LogError(ctx, err, "Failed to save contact message", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}
	s.LogInfo(ctx, "Contact message received", slog.String("message_id", msg.MessageID))
	return &msg, nil
}

func (s *contactService) ListMessages(ctx context.Context, params dto.ListMessagesParams) ([]domain.ContactMessage, string, error) {
	limit := pagination.ClampLimit(params.Limit, defaultMessagePageSize, maxMessagePageSize)
	cursor, err := pagination.DecodeToken(params.NextToken)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	messages, err := s.repo.ListContactMessages(ctx, limit+1, cursor)
	if err != nil {
		s.LogError(ctx, err, "Failed to list contact messages")
		return nil, "", fmt.Errorf("failed to list contact messages: %w", err)
	}

	var nextToken string
	if len(messages) > limit {
		messages = messages[:limit]
		last := messages[limit-1]
		nextToken = pagination.EncodeToken(last.CreatedAt, last.MessageID)
	}
	return messages, nextToken, nil
}
