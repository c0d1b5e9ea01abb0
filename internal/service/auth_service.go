package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"foodtruck/internal/auth"
	"foodtruck/internal/errors"
	"foodtruck/internal/model"
	"foodtruck/internal/repository"
)

// AuthService verifies admin credentials and manages session tokens.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	users    repository.UserRepository
	sessions *auth.SessionService
	revoker  auth.SessionRevoker
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, sessions *auth.SessionService, revoker auth.SessionRevoker) AuthService {
	return &authService{users: users, sessions: sessions, revoker: revoker}
}

// Login checks the password against the stored bcrypt hash and issues
// a session token. An unknown email and a wrong password are
// indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, "", errors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", errors.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("issue session: %w", err)
	}
	return user, token, nil
}

// Logout revokes the session behind the token until it would have
// expired. An invalid or already-expired token is not an error: the
// client ends up logged out either way.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.sessions.Validate(token)
	if err != nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.revoker.Revoke(ctx, claims.ID, ttl)
}
