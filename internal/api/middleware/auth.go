package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/estateops/crm-backend/internal/api/metrics"
	"github.com/estateops/crm-backend/internal/core/ports"
)

// PrincipalKey is the echo context key the authenticated employee is stored
// under. Handlers retrieve it through the handler package's helper.
const PrincipalKey = "principal"

// Auth verifies the bearer token, then re-resolves the subject against the
// credential store on every request. The store lookup is deliberate: role
// changes and deactivation must take effect immediately, not at token
// expiry, so nothing beyond the subject id is trusted from the token itself.
func Auth(verifier ports.TokenVerifier, store ports.CredentialStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			emp, err := store.ResolveSubject(c.Request().Context(), claims.SubjectID)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("unknown_subject").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if !emp.IsActive {
				metrics.TokenVerificationsTotal.WithLabelValues("inactive").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "account inactive")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("success").Inc()
			c.Set(PrincipalKey, emp)

			return next(c)
		}
	}
}
