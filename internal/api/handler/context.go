package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estateops/crm-backend/internal/api/middleware"
	"github.com/estateops/crm-backend/internal/core/domain"
)

// ctxPrincipal extracts the employee injected by the Auth middleware. A nil
// principal means the middleware did not run on this route; reject with 401
// rather than proceeding unauthenticated.
func ctxPrincipal(c echo.Context) (*domain.Employee, error) {
	emp, _ := c.Get(middleware.PrincipalKey).(*domain.Employee)
	if emp == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return emp, nil
}
