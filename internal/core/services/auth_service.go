package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/exchange_shop/internal/apperrors"
	"github.com/SscSPs/exchange_shop/internal/core/domain"
	portsrepo "github.com/SscSPs/exchange_shop/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/exchange_shop/internal/core/ports/services"
	"github.com/SscSPs/exchange_shop/internal/dto"
	"github.com/SscSPs/exchange_shop/internal/platform/config"
	"github.com/SscSPs/exchange_shop/internal/utils"
)

// MinimumAge is the age required to open an account.
const MinimumAge = 18

// authService implements the AuthSvcFacade interface
type authService struct {
	BaseService
	cfg  *config.Config
	repo portsrepo.UserRepositoryFacade
	now  func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config, repo portsrepo.UserRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, repo: repo, now: time.Now}
}

// Register opens a customer account. Addresses listed in ADMIN_EMAILS become administrators.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	now := s.now()
	email := strings.ToLower(strings.TrimSpace(req.Email))
	fieldErrs := apperrors.FieldErrors{}

	firstName, lastName := utils.NormalizeName(req.FirstName), utils.NormalizeName(req.LastName)
	if firstName == "" {
		fieldErrs["firstName"] = "is required"
	}
	if lastName == "" {
		fieldErrs["lastName"] = "is required"
	}
	if email == "" {
		fieldErrs["email"] = "is required"
	}
	if msg := utils.PasswordProblem(req.Password); msg != "" {
		fieldErrs["password"] = msg
	}
	if req.Password != req.PasswordConfirm {
		fieldErrs["passwordConfirm"] = "passwords do not match"
	}
	dob, err := utils.ParseFlexibleDate(req.DateOfBirth)
	switch {
	case err != nil:
		fieldErrs["dateOfBirth"] = "must be a date such as 2006-01-02 or 02/01/2006"
	case utils.AgeOn(dob, now) < MinimumAge:
		fieldErrs["dateOfBirth"] = fmt.Sprintf("you must be at least %d years old", MinimumAge)
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		DateOfBirth:  dob,
		PasswordHash: hash,
		Role:         s.roleFor(email, domain.RoleUser),
		CreatedAt:    now.UTC(),
	}
	if err := s.repo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: an account already exists for this email", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save user")
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &user, nil
}

// Login verifies credentials and issues an access token carrying the user's role.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (string, time.Time, *domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", time.Time{}, nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to load user for login")
		return "", time.Time{}, nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogInfo(ctx, "Login refused", slog.String("user_id", user.UserID))
		return "", time.Time{}, nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	user.Role = s.roleFor(user.Email, user.Role)
	expiresAt := s.now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return "", time.Time{}, nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, expiresAt, user, nil
}

// roleFor promotes configured administrator emails.
func (s *authService) roleFor(email string, stored domain.UserRole) domain.UserRole {
	if s.cfg.IsAdminEmail(email) {
		return domain.RoleAdmin
	}
	if stored == "" {
		return domain.RoleUser
	}
	return stored
}
