package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/estateops/crm-backend/internal/core/domain"
)

func runWithPrincipal(t *testing.T, emp *domain.Employee, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if emp != nil {
		c.Set(PrincipalKey, emp)
	}

	if err := RequireAdmin()(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	called := false
	rec := runWithPrincipal(t, &domain.Employee{ID: "emp_9", Role: domain.RoleAdmin, IsActive: true}, func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAdmin_ForbidsEmployee(t *testing.T) {
	rec := runWithPrincipal(t, &domain.Employee{ID: "emp_1", Role: domain.RoleEmployee, IsActive: true}, func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireAdmin_MissingPrincipal(t *testing.T) {
	rec := runWithPrincipal(t, nil, func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
