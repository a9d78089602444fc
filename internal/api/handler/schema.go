package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// errorResponse documents the standard error envelope in swagger output; the
// actual rendering happens in the central HTTP error handler.
type errorResponse struct {
	Error string `json:"error"`
}

// paginationResponse is the shared pagination block on all list endpoints.
type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

func newPagination(total int64, page, limit int) paginationResponse {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return paginationResponse{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: pages,
	}
}

// pageParams reads the shared ?page= and ?limit= query parameters. Missing
// or malformed values come back as 0; the service layer applies defaults and
// clamps the upper bound.
func pageParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}
