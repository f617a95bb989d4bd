package usecase

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/brinepantry/inventory/internal/domain"
	"github.com/brinepantry/inventory/internal/ports"
)

// LoginResponse carries the issued token and the resolved actor
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	Actor       domain.Actor `json:"actor"`
}

// AuthUseCase resolves admin credentials into an actor token
type AuthUseCase struct {
	adminRepo ports.AdminRepository
	passwords ports.PasswordService
	tokens    ports.TokenService
	logger    *logrus.Logger
}

// NewAuthUseCase creates a new auth use case
func NewAuthUseCase(adminRepo ports.AdminRepository, passwords ports.PasswordService, tokens ports.TokenService, logger *logrus.Logger) *AuthUseCase {
	if logger == nil {
		logger = logrus.New()
	}
	return &AuthUseCase{
		adminRepo: adminRepo,
		passwords: passwords,
		tokens:    tokens,
		logger:    logger,
	}
}

// Login verifies credentials and issues an access token
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, domain.ErrInvalidArgument("email and password are required")
	}

	user, err := uc.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		// Same error for unknown email and wrong password.
		uc.logger.WithField("email", email).Warn("login failed: unknown email")
		return nil, domain.ErrPermissionDenied
	}

	if err := uc.passwords.ComparePassword(user.Password, password); err != nil {
		uc.logger.WithField("email", email).Warn("login failed: bad password")
		return nil, domain.ErrPermissionDenied
	}

	actor := domain.Actor{ID: user.ID, Role: user.Role}
	token, err := uc.tokens.GenerateAccessToken(actor)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{AccessToken: token, Actor: actor}, nil
}
