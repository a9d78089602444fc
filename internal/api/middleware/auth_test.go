package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
	"github.com/estateops/crm-backend/internal/core/service"
)

// stubStore resolves subjects from a fixed map; Authenticate and Register
// are unused by the middleware.
type stubStore struct {
	employees map[string]*domain.Employee
}

func (s *stubStore) Authenticate(_ context.Context, _, _ string) (string, error) {
	panic("not used")
}

func (s *stubStore) Register(_ context.Context, _ ports.RegisterInput) (*domain.Employee, string, error) {
	panic("not used")
}

func (s *stubStore) ResolveSubject(_ context.Context, subjectID string) (*domain.Employee, error) {
	if e, ok := s.employees[subjectID]; ok {
		clone := *e
		return &clone, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func authFixture(t *testing.T) (*service.JWTTokens, *stubStore, echo.MiddlewareFunc) {
	t.Helper()
	tokens := service.NewJWTTokens("secret", time.Hour)
	store := &stubStore{employees: map[string]*domain.Employee{
		"emp_1": {ID: "emp_1", Email: "a@x.com", Role: domain.RoleEmployee, IsActive: true},
	}}
	return tokens, store, Auth(tokens, store)
}

func runRequest(t *testing.T, mw echo.MiddlewareFunc, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := mw(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAuth_ValidToken(t *testing.T) {
	tokens, _, mw := authFixture(t)
	signed, err := tokens.Issue("emp_1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	called := false
	rec := runRequest(t, mw, "Bearer "+signed, func(c echo.Context) error {
		called = true
		emp, _ := c.Get(PrincipalKey).(*domain.Employee)
		if emp == nil || emp.ID != "emp_1" {
			t.Fatalf("principal not injected: %+v", emp)
		}
		return c.NoContent(http.StatusOK)
	})

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, _, mw := authFixture(t)
	rec := runRequest(t, mw, "", func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	_, _, mw := authFixture(t)
	rec := runRequest(t, mw, "Token abc", func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	_, store, _ := authFixture(t)
	expired := service.NewJWTTokens("secret", 0)
	mw := Auth(service.NewJWTTokens("secret", time.Hour), store)

	signed, err := expired.Issue("emp_1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	rec := runRequest(t, mw, "Bearer "+signed, func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_UnknownSubject(t *testing.T) {
	tokens, _, mw := authFixture(t)
	signed, err := tokens.Issue("emp_ghost")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	rec := runRequest(t, mw, "Bearer "+signed, func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_DeactivatedMidSession(t *testing.T) {
	// The token is still cryptographically valid, but the account was
	// deactivated after issuance. The live re-check must reject it.
	tokens, store, mw := authFixture(t)
	signed, err := tokens.Issue("emp_1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec := runRequest(t, mw, "Bearer "+signed, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("precondition: expected 200 before deactivation, got %d", rec.Code)
	}

	store.employees["emp_1"].IsActive = false

	rec = runRequest(t, mw, "Bearer "+signed, func(c echo.Context) error {
		t.Fatalf("should not reach next after deactivation")
		return nil
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
