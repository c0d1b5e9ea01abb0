// Package auth implements the admin session gate: opaque signed
// session tokens carried in an httpOnly cookie, plus a Redis-backed
// revocation list consulted on every guarded request.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"foodtruck/internal/model"
)

const (
	// CookieName is the admin session cookie.
	CookieName = "admin_session"
	// SessionTTL is how long an issued session stays valid.
	SessionTTL = 7 * 24 * time.Hour
)

// SessionClaims is the payload of a session token. Clients treat the
// token as opaque.
type SessionClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SessionService signs and validates session tokens.
type SessionService struct {
	secret []byte
}

// NewSessionService creates a session service with the given secret.
func NewSessionService(secret string) *SessionService {
	return &SessionService{secret: []byte(secret)}
}

// Issue signs a session token for the user. The jti identifies the
// session on the revocation list.
func (s *SessionService) Issue(user *model.User) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses a session token and returns its claims. Validation
// is side-effect-free.
func (s *SessionService) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}
