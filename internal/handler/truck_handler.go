package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodtruck/internal/model"
	"foodtruck/internal/service"
)

// TruckHandler handles catalog endpoints.
type TruckHandler struct {
	trucks service.TruckService
}

// NewTruckHandler creates a new truck handler.
func NewTruckHandler(trucks service.TruckService) *TruckHandler {
	return &TruckHandler{trucks: trucks}
}

// CreateTruckRequest represents a truck creation payload.
type CreateTruckRequest struct {
	Title          string        `json:"title" validate:"required"`
	Description    string        `json:"description" validate:"required"`
	Category       string        `json:"category" validate:"required"`
	ImageURL       string        `json:"image_url"`
	Specifications model.JSONMap `json:"specifications"`
}

// UpdateTruckRequest represents a partial truck update; absent fields
// are left unchanged.
type UpdateTruckRequest struct {
	Title          *string        `json:"title"`
	Description    *string        `json:"description"`
	Category       *string        `json:"category"`
	ImageURL       *string        `json:"image_url"`
	Specifications *model.JSONMap `json:"specifications"`
}

// ListTrucks godoc
// @Summary List food trucks
// @Tags trucks
// @Produce json
// @Param featured query bool false "Only the showcase catalog"
// @Param category query string false "Category filter, case-insensitive"
// @Param search query string false "Substring search on title and description"
// @Success 200 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /food-trucks [get]
func (h *TruckHandler) ListTrucks(c echo.Context) error {
	filter := service.TruckFilter{
		Featured: c.QueryParam("featured") == "true",
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}
	trucks, err := h.trucks.List(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, OK(trucks))
}

// GetTruck godoc
// @Summary Get a food truck
// @Tags trucks
// @Produce json
// @Param id path int true "Truck ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /food-trucks/{id} [get]
func (h *TruckHandler) GetTruck(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, Fail("Invalid id"))
	}
	truck, err := h.trucks.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, OK(truck))
}

// CreateTruck godoc
// @Summary Create a food truck
// @Tags trucks
// @Accept json
// @Produce json
// @Param request body CreateTruckRequest true "Truck data"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /food-trucks [post]
func (h *TruckHandler) CreateTruck(c echo.Context) error {
	var req CreateTruckRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Missing required fields"))
	}

	truck, err := h.trucks.Create(c.Request().Context(), service.CreateTruckInput{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		ImageURL:       req.ImageURL,
		Specifications: req.Specifications,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, OK(truck))
}

// UpdateTruck godoc
// @Summary Update a food truck
// @Tags trucks
// @Accept json
// @Produce json
// @Param id path int true "Truck ID"
// @Param request body UpdateTruckRequest true "Fields to update"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 401 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /food-trucks/{id} [put]
func (h *TruckHandler) UpdateTruck(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, Fail("Invalid id"))
	}
	var req UpdateTruckRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Fail("Invalid request body"))
	}

	truck, err := h.trucks.Update(c.Request().Context(), id, service.UpdateTruckInput{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		ImageURL:       req.ImageURL,
		Specifications: req.Specifications,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, OK(truck))
}

// DeleteTruck godoc
// @Summary Delete a food truck
// @Tags trucks
// @Produce json
// @Param id path int true "Truck ID"
// @Success 200 {object} Envelope
// @Failure 401 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /food-trucks/{id} [delete]
func (h *TruckHandler) DeleteTruck(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, Fail("Invalid id"))
	}
	if err := h.trucks.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: "Food truck deleted successfully"})
}
