package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estateops/crm-backend/internal/api/metrics"
	"github.com/estateops/crm-backend/internal/core/domain"
)

// RequireAdmin gates a route group to administrator principals. Runs after
// Auth, so the principal in context is already verified and active.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			emp, _ := c.Get(PrincipalKey).(*domain.Employee)
			if emp == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if !emp.IsAdmin() {
				metrics.AuthzDenialsTotal.WithLabelValues("role").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}
