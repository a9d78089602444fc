package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estateops/crm-backend/internal/core/ports"
)

// EnquiryHandler handles the ownership-scoped enquiry routes.
type EnquiryHandler struct {
	service ports.EnquiryService
}

func NewEnquiryHandler(service ports.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{service: service}
}

// Create records a new customer enquiry.
//
// @Summary      Create an enquiry
// @Tags         enquiries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEnquiryRequest  true  "Enquiry details"
// @Success      201   {object}  domain.Enquiry
// @Failure      400   {object}  errorResponse
// @Router       /api/enquiries [post]
func (h *EnquiryHandler) Create(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createEnquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	enq, err := h.service.Create(c.Request().Context(), actor, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, enq)
}

// Get returns an enquiry if the actor owns it or is an administrator.
//
// @Summary      Get an enquiry
// @Tags         enquiries
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Enquiry id"
// @Success      200  {object}  domain.Enquiry
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/enquiries/{id} [get]
func (h *EnquiryHandler) Get(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	enq, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enq)
}

// List returns the actor's enquiries; administrators see everyone's.
//
// @Summary      List enquiries
// @Tags         enquiries
// @Produce      json
// @Security     BearerAuth
// @Param        status        query     string  false  "Filter by status"
// @Param        enquiry_type  query     string  false  "Filter by type"
// @Param        page          query     int     false  "Page number (1-based)"
// @Param        limit         query     int     false  "Page size"
// @Success      200           {object}  listEnquiriesResponse
// @Router       /api/enquiries [get]
func (h *EnquiryHandler) List(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	page, limit := pageParams(c)
	filter := ports.EnquiryFilter{
		Status:      c.QueryParam("status"),
		EnquiryType: c.QueryParam("enquiry_type"),
		Page:        page,
		Limit:       limit,
	}

	enqs, total, err := h.service.List(c.Request().Context(), actor, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listEnquiriesResponse{
		Data:       enqs,
		Pagination: newPagination(total, filter.Page, filter.Limit),
	})
}

// Update applies a partial update, subject to the ownership rule.
//
// @Summary      Update an enquiry
// @Tags         enquiries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Enquiry id"
// @Param        body  body      updateEnquiryRequest  true  "Fields to change"
// @Success      200   {object}  domain.Enquiry
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/enquiries/{id} [put]
func (h *EnquiryHandler) Update(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateEnquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	enq, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), req.toUpdate())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enq)
}

// Delete removes an enquiry, subject to the ownership rule.
//
// @Summary      Delete an enquiry
// @Tags         enquiries
// @Security     BearerAuth
// @Param        id  path  string  true  "Enquiry id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/enquiries/{id} [delete]
func (h *EnquiryHandler) Delete(c echo.Context) error {
	actor, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
