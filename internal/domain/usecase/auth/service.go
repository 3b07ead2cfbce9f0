package auth

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/query"
)

// MinPasswordLength is the shortest password signup accepts
const MinPasswordLength = 8

var _ usecase.AuthUseCase = (*Service)(nil)

// Service implements AuthUseCase
type Service struct {
	platform gateway.AuthGateway
	caches   query.Provider
	logger   core.Logger
}

// NewService creates an auth service
func NewService(platform gateway.AuthGateway, caches query.Provider, logger core.Logger) *Service {
	return &Service{
		platform: platform,
		caches:   caches,
		logger:   logger,
	}
}

// Login signs session in with the platform credentials
func (s *Service) Login(ctx context.Context, session *entity.Session, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return errs.NewValidationError("email", "Please fill in all fields", errs.ErrRequiredField)
	}

	creds, err := s.platform.Login(ctx, email, password)
	if err != nil {
		s.logger.Warn("Login rejected", map[string]any{
			"session_id": session.ID,
			"error_code": errs.ErrorCode(err),
		})
		return err
	}

	s.signIn(session, creds)
	s.logger.Info("User logged in", map[string]any{
		"session_id": session.ID,
		"user_id":    creds.UserID,
	})
	return nil
}

// Signup creates the account and signs session in when the platform returns a token
func (s *Service) Signup(ctx context.Context, session *entity.Session, input entity.SignupInput) (bool, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.WalletAddress = strings.TrimSpace(input.WalletAddress)
	input.ReferredByCode = strings.TrimSpace(input.ReferredByCode)

	if err := validateSignup(input); err != nil {
		return false, err
	}

	creds, err := s.platform.Signup(ctx, input)
	if err != nil {
		s.logger.Warn("Signup rejected", map[string]any{
			"session_id": session.ID,
			"error_code": errs.ErrorCode(err),
		})
		return false, err
	}

	s.logger.Info("Account created", map[string]any{
		"session_id": session.ID,
		"user_id":    creds.UserID,
		"signed_in":  creds.Token != "",
	})
	if creds.Token == "" {
		return false, nil
	}
	s.signIn(session, creds)
	return true, nil
}

func validateSignup(input entity.SignupInput) error {
	if input.Name == "" || input.Email == "" || input.Password == "" ||
		input.ConfirmPassword == "" || input.ReferredByCode == "" {
		return errs.NewValidationError("form", "Please fill in all required fields", errs.ErrRequiredField)
	}
	if input.Password != input.ConfirmPassword {
		return errs.NewValidationError("confirmPassword", "Passwords do not match", errs.ErrPasswordMismatch)
	}
	if len(input.Password) < MinPasswordLength {
		return errs.NewValidationError("password", "Password must be at least 8 characters", errs.ErrPasswordTooShort)
	}
	return nil
}

// signIn stores the credentials and starts from an empty cache
func (s *Service) signIn(session *entity.Session, creds *entity.Credentials) {
	s.caches.Drop(session.ID)
	session.Investment = nil
	session.Authenticate(creds.Token, creds.UserID)
}

// Logout clears the credentials and the whole query cache of session
func (s *Service) Logout(_ context.Context, session *entity.Session) error {
	userID := session.UserID
	session.SignOut()
	s.caches.Drop(session.ID)

	s.logger.Info("User logged out", map[string]any{
		"session_id": session.ID,
		"user_id":    userID,
	})
	return nil
}
