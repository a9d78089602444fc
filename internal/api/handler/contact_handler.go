package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
)

// ContactHandler handles the shared address-book routes.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

type listContactsResponse struct {
	Data       []*domain.Contact  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// @Summary      Create a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.Contact  true  "Contact details"
// @Success      201   {object}  domain.Contact
// @Failure      400   {object}  errorResponse
// @Router       /api/contacts [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var ct domain.Contact
	if err := c.Bind(&ct); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if ct.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	created, err := h.service.Create(c.Request().Context(), &ct)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// @Summary      Get a contact
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Contact id"
// @Success      200  {object}  domain.Contact
// @Failure      404  {object}  errorResponse
// @Router       /api/contacts/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	ct, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ct)
}

// @Summary      List contacts
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  listContactsResponse
// @Router       /api/contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	contacts, total, err := h.service.List(c.Request().Context(), ports.PageFilter{Page: page, Limit: limit})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listContactsResponse{
		Data:       contacts,
		Pagination: newPagination(total, page, limit),
	})
}

// @Summary      Update a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Contact id"
// @Param        body  body      domain.Contact  true  "Contact details"
// @Success      200   {object}  domain.Contact
// @Failure      404   {object}  errorResponse
// @Router       /api/contacts/{id} [put]
func (h *ContactHandler) Update(c echo.Context) error {
	var ct domain.Contact
	if err := c.Bind(&ct); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if ct.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), &ct)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// @Summary      Delete a contact
// @Tags         contacts
// @Security     BearerAuth
// @Param        id  path  string  true  "Contact id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/contacts/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
