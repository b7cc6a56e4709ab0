package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/SERMEX0/sermex-backend/internal/domain"
	"github.com/SERMEX0/sermex-backend/internal/password"
	"github.com/SERMEX0/sermex-backend/internal/repository"
	"github.com/SERMEX0/sermex-backend/internal/token"
)

// AuthService orchestrates registration, login, and password changes.
type AuthService struct {
	users  repository.UserRepository
	hasher password.Hasher
	tokens *token.Issuer
	logger *zap.Logger
}

// NewAuthService wires the credential store, hasher, and token issuer.
func NewAuthService(users repository.UserRepository, hasher password.Hasher, tokens *token.Issuer, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// LoginResult carries the minted bearer credential and the minimal user
// identity returned to the client. The password digest never leaves the
// service.
type LoginResult struct {
	Token string
	User  domain.User
}

// Register hashes the password and inserts one new user row. No token is
// issued; the caller must log in separately.
func (s *AuthService) Register(ctx context.Context, correo, plaintext string) (domain.User, error) {
	ctx, span := startSpan(ctx, "AuthService.Register")
	defer span.End()

	digest, err := s.hasher.Hash(plaintext)
	if err != nil {
		span.RecordError(err)
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, normalizeCorreo(correo), digest)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return domain.User{}, domain.ErrDuplicateEmail
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	s.audit("auth.register.success", "user_id", user.ID)
	return user, nil
}

// Login verifies credentials and mints a bearer credential. Unknown user and
// wrong password stay distinguishable; the handlers surface the distinct
// messages the frontend relies on.
func (s *AuthService) Login(ctx context.Context, correo, plaintext string) (LoginResult, error) {
	ctx, span := startSpan(ctx, "AuthService.Login")
	defer span.End()

	user, err := s.users.GetByCorreo(ctx, normalizeCorreo(correo))
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn("login attempt for unknown user", zap.String("correo", normalizeCorreo(correo)))
			return LoginResult{}, domain.ErrUserNotFound
		}
		return LoginResult{}, fmt.Errorf("load user: %w", err)
	}

	if !s.hasher.Verify(plaintext, user.PasswordHash) {
		s.logger.Warn("login with wrong password", zap.Int64("user_id", user.ID))
		return LoginResult{}, domain.ErrInvalidPassword
	}

	signed, err := s.tokens.Issue(user.ID, user.Correo)
	if err != nil {
		span.RecordError(err)
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}

	s.audit("auth.login.success", "user_id", user.ID)
	return LoginResult{Token: signed, User: user}, nil
}

// ChangePassword re-verifies the current password and swaps the stored digest.
// Tokens minted before the change stay valid until their own expiry.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	ctx, span := startSpan(ctx, "AuthService.ChangePassword")
	defer span.End()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("load user: %w", err)
	}

	if !s.hasher.Verify(current, user.PasswordHash) {
		return domain.ErrInvalidPassword
	}

	digest, err := s.hasher.Hash(next)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, digest); err != nil {
		span.RecordError(err)
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("update password: %w", err)
	}

	s.audit("auth.change_password.success", "user_id", user.ID)
	return nil
}

func (s *AuthService) audit(event string, kv ...any) {
	s.logger.Sugar().Infow(event, kv...)
}
