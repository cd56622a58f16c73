package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/tuiter/internal/apperror"
	"github.com/sakif/tuiter/internal/auth"
	"github.com/sakif/tuiter/internal/model"
	"github.com/sakif/tuiter/internal/repository"
)

// invalidCredentials is deliberately the same for an unknown username and a
// wrong password.
const invalidCredentials = "invalid username or password"

// AuthService turns a username and password into a signed access token.
//
//	AuthHandler → AuthService → UserRepository
//	                          ↘ PasswordService, TokenService
type AuthService struct {
	users     repository.UserRepository
	tokens    *auth.TokenService
	passwords *auth.PasswordService
	logger    *slog.Logger
}

func NewAuthService(
	users repository.UserRepository,
	tokens *auth.TokenService,
	passwords *auth.PasswordService,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
	}
}

// AuthResult bundles the logged-in user (password blanked) with the token
// so the handler can set the cookie and respond in one step.
type AuthResult struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Login returns apperror.ErrUnauthorized for bad credentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperror.ValidationFailed("username", "username and password are required")
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			s.logger.Warn("login for unknown user", slog.String("username", username))
			return nil, apperror.Unauthorized(invalidCredentials)
		}
		return nil, fmt.Errorf("service/auth: looking up %q: %w", username, err)
	}

	if err := s.passwords.Verify(user.Password, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.Warn("login with wrong password", slog.String("user_id", user.ID))
			return nil, apperror.Unauthorized(invalidCredentials)
		}
		return nil, fmt.Errorf("service/auth: verifying password for %s: %w", user.ID, err)
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("service/auth: generating token for %s: %w", user.ID, err)
	}

	s.logger.Info("user logged in", slog.String("user_id", user.ID), slog.String("username", user.Username))
	user.Password = ""
	return &AuthResult{User: user, Token: token}, nil
}

// Profile returns the user the token was issued to.
func (s *AuthService) Profile(ctx context.Context, uid string) (*model.User, error) {
	if uid == "" {
		return nil, apperror.Unauthorized("not logged in")
	}
	user, err := s.users.GetUserByID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("service/auth: fetching user %s: %w", uid, err)
	}
	user.Password = ""
	return user, nil
}

// TokenTTL is how long issued tokens live. The handler mirrors it in the
// cookie's Max-Age.
func (s *AuthService) TokenTTL() int {
	return int(s.tokens.TTL().Seconds())
}
