package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
)

// DeveloperHandler handles the developer catalog routes. Open to any active
// principal; the catalog collections carry no per-record authorization.
type DeveloperHandler struct {
	service ports.DeveloperService
}

func NewDeveloperHandler(service ports.DeveloperService) *DeveloperHandler {
	return &DeveloperHandler{service: service}
}

type listDevelopersResponse struct {
	Data       []*domain.Developer `json:"data"`
	Pagination paginationResponse  `json:"pagination"`
}

// Create adds a developer to the catalog.
//
// @Summary      Create a developer
// @Tags         developers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.Developer  true  "Developer details"
// @Success      201   {object}  domain.Developer
// @Failure      400   {object}  errorResponse
// @Router       /api/developers [post]
func (h *DeveloperHandler) Create(c echo.Context) error {
	var d domain.Developer
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if d.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	created, err := h.service.Create(c.Request().Context(), &d)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// @Summary      Get a developer
// @Tags         developers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Developer id"
// @Success      200  {object}  domain.Developer
// @Failure      404  {object}  errorResponse
// @Router       /api/developers/{id} [get]
func (h *DeveloperHandler) Get(c echo.Context) error {
	d, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

// @Summary      List developers
// @Tags         developers
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  listDevelopersResponse
// @Router       /api/developers [get]
func (h *DeveloperHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	devs, total, err := h.service.List(c.Request().Context(), ports.PageFilter{Page: page, Limit: limit})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listDevelopersResponse{
		Data:       devs,
		Pagination: newPagination(total, page, limit),
	})
}

// Update replaces a developer record; id and creation time are preserved.
//
// @Summary      Update a developer
// @Tags         developers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Developer id"
// @Param        body  body      domain.Developer  true  "Developer details"
// @Success      200   {object}  domain.Developer
// @Failure      404   {object}  errorResponse
// @Router       /api/developers/{id} [put]
func (h *DeveloperHandler) Update(c echo.Context) error {
	var d domain.Developer
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if d.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), &d)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// @Summary      Delete a developer
// @Tags         developers
// @Security     BearerAuth
// @Param        id  path  string  true  "Developer id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/developers/{id} [delete]
func (h *DeveloperHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
