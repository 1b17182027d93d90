package services

import (
	"context"
	"time"

	"github.com/SscSPs/exchange_shop/internal/core/domain"
	"github.com/SscSPs/exchange_shop/internal/dto"
)

// AuthSvcFacade handles account registration and login.
type AuthSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Login verifies credentials and returns a signed access token and its expiry.
	Login(ctx context.Context, req dto.LoginRequest) (string, time.Time, *domain.User, error)
}
