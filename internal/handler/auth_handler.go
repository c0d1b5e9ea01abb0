package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"foodtruck/internal/auth"
	"foodtruck/internal/service"
)

// AuthHandler handles admin session endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents an admin login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Principal is the session identity exposed to the admin UI.
type Principal struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Login godoc
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /admin/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Email and password are required"))
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(auth.SessionTTL.Seconds()),
	})

	return c.JSON(http.StatusOK, OK(Principal{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}))
}

// Logout godoc
// @Summary Admin logout
// @Tags admin
// @Produce json
// @Success 200 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(auth.CookieName); err == nil && cookie.Value != "" {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			return respondError(c, err)
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})

	return c.JSON(http.StatusOK, Envelope{Success: true, Message: "Logged out successfully"})
}

// Me godoc
// @Summary Current admin principal
// @Tags admin
// @Produce json
// @Success 200 {object} Envelope
// @Failure 401 {object} Envelope
// @Router /admin/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, ok := SessionClaims(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, Fail("Not authenticated"))
	}
	return c.JSON(http.StatusOK, OK(Principal{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role,
	}))
}

// SessionClaims extracts the verified session claims set by the
// session middleware.
func SessionClaims(c echo.Context) (*auth.SessionClaims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*auth.SessionClaims)
	return claims, ok
}
