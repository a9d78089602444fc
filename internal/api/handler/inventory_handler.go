package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
)

// InventoryHandler handles the inventory unit catalog routes.
type InventoryHandler struct {
	service ports.InventoryService
}

func NewInventoryHandler(service ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

type listInventoryResponse struct {
	Data       []*domain.InventoryUnit `json:"data"`
	Pagination paginationResponse      `json:"pagination"`
}

// @Summary      Create an inventory unit
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.InventoryUnit  true  "Unit details"
// @Success      201   {object}  domain.InventoryUnit
// @Failure      400   {object}  errorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c echo.Context) error {
	var u domain.InventoryUnit
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if u.UnitNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "unit_number is required")
	}
	if u.PropertyType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "property_type is required")
	}

	created, err := h.service.Create(c.Request().Context(), &u)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// @Summary      Get an inventory unit
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Unit id"
// @Success      200  {object}  domain.InventoryUnit
// @Failure      404  {object}  errorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) Get(c echo.Context) error {
	u, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// @Summary      List inventory units
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  listInventoryResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	units, total, err := h.service.List(c.Request().Context(), ports.PageFilter{Page: page, Limit: limit})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listInventoryResponse{
		Data:       units,
		Pagination: newPagination(total, page, limit),
	})
}

// @Summary      Update an inventory unit
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Unit id"
// @Param        body  body      domain.InventoryUnit  true  "Unit details"
// @Success      200   {object}  domain.InventoryUnit
// @Failure      404   {object}  errorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c echo.Context) error {
	var u domain.InventoryUnit
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if u.UnitNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "unit_number is required")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), &u)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// @Summary      Delete an inventory unit
// @Tags         inventory
// @Security     BearerAuth
// @Param        id  path  string  true  "Unit id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
