package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodtruck/internal/query"
	"foodtruck/internal/service"
)

// MessageHandler handles contact message endpoints.
type MessageHandler struct {
	messages service.MessageService
}

// NewMessageHandler creates a new contact message handler.
func NewMessageHandler(messages service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// ContactRequest represents the public contact form payload.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

// ListMessages godoc
// @Summary List contact messages
// @Tags messages
// @Produce json
// @Param page query int false "Page number, default 1"
// @Param limit query int false "Page size, default 10; 0 disables paging"
// @Success 200 {object} Envelope
// @Failure 401 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /contact-messages [get]
func (h *MessageHandler) ListMessages(c echo.Context) error {
	page := query.ParsePage(c.QueryParam("page"))
	limit := query.ParseLimit(c.QueryParam("limit"))

	msgs, pagination, err := h.messages.List(c.Request().Context(), page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, Page(msgs, pagination))
}

// CreateMessage godoc
// @Summary Submit a contact message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact form data"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /contact [post]
func (h *MessageHandler) CreateMessage(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Missing required fields"))
	}

	msg, err := h.messages.Create(c.Request().Context(), service.CreateMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, OK(msg))
}

// DeleteMessage godoc
// @Summary Delete a contact message
// @Tags messages
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} Envelope
// @Failure 401 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /contact-messages/{id} [delete]
func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, Fail("Invalid id"))
	}
	if err := h.messages.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: "Contact message deleted successfully"})
}
