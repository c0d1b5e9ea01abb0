package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"foodtruck/internal/auth"
	"foodtruck/internal/config"
	"foodtruck/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	revoker auth.SessionRevoker,
	healthHandler *handler.HealthHandler,
	authHandler *handler.AuthHandler,
	truckHandler *handler.TruckHandler,
	quoteHandler *handler.QuoteHandler,
	messageHandler *handler.MessageHandler,
	uploadHandler *handler.UploadHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(securityHeaders)

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", healthHandler.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/uploads", cfg.UploadDir)

	api := e.Group("/api")

	// Public routes
	api.GET("/food-trucks", truckHandler.ListTrucks)
	api.GET("/food-trucks/:id", truckHandler.GetTruck)
	api.POST("/quote-requests", quoteHandler.CreateQuote)
	api.POST("/contact", messageHandler.CreateMessage)
	api.POST("/admin/login", authHandler.Login)
	api.POST("/admin/logout", authHandler.Logout)

	// Admin routes (require a valid, non-revoked session cookie)
	admin := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.SessionSecret),
		TokenLookup: "cookie:" + auth.CookieName,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.SessionClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, handler.Fail("Not authenticated"))
		},
	}), sessionNotRevoked(revoker))

	admin.GET("/admin/me", authHandler.Me)

	admin.POST("/food-trucks", truckHandler.CreateTruck)
	admin.PUT("/food-trucks/:id", truckHandler.UpdateTruck)
	admin.DELETE("/food-trucks/:id", truckHandler.DeleteTruck)

	admin.GET("/quote-requests", quoteHandler.ListQuotes)
	admin.PUT("/quote-requests/:id", quoteHandler.UpdateQuote)
	admin.DELETE("/quote-requests/:id", quoteHandler.DeleteQuote)

	admin.GET("/contact-messages", messageHandler.ListMessages)
	admin.DELETE("/contact-messages/:id", messageHandler.DeleteMessage)

	admin.POST("/upload", uploadHandler.Upload)
}

// sessionNotRevoked rejects sessions that were logged out before their
// token expired.
func sessionNotRevoked(revoker auth.SessionRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := handler.SessionClaims(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, handler.Fail("Not authenticated"))
			}
			revoked, _ := revoker.IsRevoked(c.Request().Context(), claims.ID)
			if revoked {
				return c.JSON(http.StatusUnauthorized, handler.Fail("Session expired"))
			}
			return next(c)
		}
	}
}

func securityHeaders(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "origin-when-cross-origin")
		return next(c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
