package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodtruck/internal/model"
	"foodtruck/internal/query"
	"foodtruck/internal/service"
)

// QuoteHandler handles quote request endpoints.
type QuoteHandler struct {
	quotes service.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(quotes service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

// CreateQuoteRequest represents the public quote form payload.
type CreateQuoteRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	Message     string `json:"message"`
	FoodTruckID *uint  `json:"food_truck_id"`
}

// UpdateQuoteRequest represents a status change.
type UpdateQuoteRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListQuotes godoc
// @Summary List quote requests
// @Tags quotes
// @Produce json
// @Param status query string false "Status filter"
// @Param page query int false "Page number, default 1"
// @Param limit query int false "Page size, default 10; 0 disables paging"
// @Success 200 {object} Envelope
// @Failure 401 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /quote-requests [get]
func (h *QuoteHandler) ListQuotes(c echo.Context) error {
	page := query.ParsePage(c.QueryParam("page"))
	limit := query.ParseLimit(c.QueryParam("limit"))

	quotes, pagination, err := h.quotes.List(c.Request().Context(), c.QueryParam("status"), page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, Page(quotes, pagination))
}

// CreateQuote godoc
// @Summary Submit a quote request
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body CreateQuoteRequest true "Quote request data"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /quote-requests [post]
func (h *QuoteHandler) CreateQuote(c echo.Context) error {
	var req CreateQuoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Missing required fields"))
	}

	quote, err := h.quotes.Create(c.Request().Context(), service.CreateQuoteInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		FoodTruckID: req.FoodTruckID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, OK(quote))
}

// UpdateQuote godoc
// @Summary Update a quote request status
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path int true "Quote request ID"
// @Param request body UpdateQuoteRequest true "New status"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /quote-requests/{id} [put]
func (h *QuoteHandler) UpdateQuote(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, Fail("Invalid id"))
	}
	var req UpdateQuoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Invalid status"))
	}

	quote, err := h.quotes.UpdateStatus(c.Request().Context(), id, model.QuoteStatus(req.Status))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, OK(quote))
}

// DeleteQuote godoc
// @Summary Delete a quote request
// @Tags quotes
// @Produce json
// @Param id path int true "Quote request ID"
// @Success 200 {object} Envelope
// @Failure 401 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /quote-requests/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, Fail("Invalid id"))
	}
	if err := h.quotes.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: "Quote request deleted successfully"})
}
