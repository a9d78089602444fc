package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
)

// LandParcelHandler handles the land parcel catalog routes. Survey numbers
// are unique; a duplicate create comes back as 409.
type LandParcelHandler struct {
	service ports.LandParcelService
}

func NewLandParcelHandler(service ports.LandParcelService) *LandParcelHandler {
	return &LandParcelHandler{service: service}
}

type listLandParcelsResponse struct {
	Data       []*domain.LandParcel `json:"data"`
	Pagination paginationResponse   `json:"pagination"`
}

// @Summary      Create a land parcel
// @Tags         land-parcels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.LandParcel  true  "Parcel details"
// @Success      201   {object}  domain.LandParcel
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/land-parcels [post]
func (h *LandParcelHandler) Create(c echo.Context) error {
	var p domain.LandParcel
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if p.SurveyNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "survey_number is required")
	}

	created, err := h.service.Create(c.Request().Context(), &p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// @Summary      Get a land parcel
// @Tags         land-parcels
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Parcel id"
// @Success      200  {object}  domain.LandParcel
// @Failure      404  {object}  errorResponse
// @Router       /api/land-parcels/{id} [get]
func (h *LandParcelHandler) Get(c echo.Context) error {
	p, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// @Summary      List land parcels
// @Tags         land-parcels
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  listLandParcelsResponse
// @Router       /api/land-parcels [get]
func (h *LandParcelHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	parcels, total, err := h.service.List(c.Request().Context(), ports.PageFilter{Page: page, Limit: limit})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listLandParcelsResponse{
		Data:       parcels,
		Pagination: newPagination(total, page, limit),
	})
}

// @Summary      Update a land parcel
// @Tags         land-parcels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Parcel id"
// @Param        body  body      domain.LandParcel  true  "Parcel details"
// @Success      200   {object}  domain.LandParcel
// @Failure      404   {object}  errorResponse
// @Router       /api/land-parcels/{id} [put]
func (h *LandParcelHandler) Update(c echo.Context) error {
	var p domain.LandParcel
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if p.SurveyNumber == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "survey_number is required")
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), &p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// @Summary      Delete a land parcel
// @Tags         land-parcels
// @Security     BearerAuth
// @Param        id  path  string  true  "Parcel id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/land-parcels/{id} [delete]
func (h *LandParcelHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
