package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"foodtruck/internal/auth"
	"foodtruck/internal/errors"
	"foodtruck/internal/model"
	"foodtruck/internal/repository"
)

const testSessionSecret = "test-session-secret"

func adminUser(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.User{
		ID:           1,
		Email:        "admin@foodtruck.ma",
		PasswordHash: string(hash),
		Name:         "Admin",
		Role:         "admin",
	}
}

func TestAuthService_Login(t *testing.T) {
	users := new(MockUserRepository)
	sessions := auth.NewSessionService(testSessionSecret)
	svc := NewAuthService(users, sessions, new(MockSessionRevoker))

	users.On("FindByEmail", mock.Anything, "admin@foodtruck.ma").Return(adminUser(t, "admin123"), nil)

	user, token, err := svc.Login(context.Background(), "admin@foodtruck.ma", "admin123")
	require.NoError(t, err)

	assert.Equal(t, "admin@foodtruck.ma", user.Email)
	require.NotEmpty(t, token)

	claims, err := sessions.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.ID, "session id is needed for revocation")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewAuthService(users, auth.NewSessionService(testSessionSecret), new(MockSessionRevoker))

	users.On("FindByEmail", mock.Anything, "admin@foodtruck.ma").Return(adminUser(t, "admin123"), nil)

	_, _, err := svc.Login(context.Background(), "admin@foodtruck.ma", "wrong")
	assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewAuthService(users, auth.NewSessionService(testSessionSecret), new(MockSessionRevoker))

	users.On("FindByEmail", mock.Anything, "nobody@foodtruck.ma").Return(nil, repository.ErrNotFound)

	_, _, err := svc.Login(context.Background(), "nobody@foodtruck.ma", "admin123")
	assert.ErrorIs(t, err, errors.ErrInvalidCredentials, "unknown email and wrong password look the same")
}

func TestAuthService_Logout_RevokesSession(t *testing.T) {
	users := new(MockUserRepository)
	sessions := auth.NewSessionService(testSessionSecret)
	revoker := new(MockSessionRevoker)
	svc := NewAuthService(users, sessions, revoker)

	token, err := sessions.Issue(adminUser(t, "admin123"))
	require.NoError(t, err)
	claims, err := sessions.Validate(token)
	require.NoError(t, err)

	revoker.On("Revoke", mock.Anything, claims.ID, mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 0 && ttl <= auth.SessionTTL
	})).Return(nil)

	require.NoError(t, svc.Logout(context.Background(), token))
	revoker.AssertExpectations(t)
}

func TestAuthService_Logout_InvalidTokenIsNoop(t *testing.T) {
	users := new(MockUserRepository)
	revoker := new(MockSessionRevoker)
	svc := NewAuthService(users, auth.NewSessionService(testSessionSecret), revoker)

	assert.NoError(t, svc.Logout(context.Background(), "not-a-token"))
	revoker.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything, mock.Anything)
}
