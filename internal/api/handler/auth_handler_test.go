package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/estateops/crm-backend/internal/api/middleware"
	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
)

// stubAuthService scripts the outcomes of Login and Register.
type stubAuthService struct {
	token    string
	employee *domain.Employee
	err      error

	gotEmail    string
	gotPassword string
	gotInput    ports.RegisterInput
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.Employee, error) {
	s.gotEmail, s.gotPassword = email, password
	return s.token, s.employee, s.err
}

func (s *stubAuthService) Register(_ context.Context, in ports.RegisterInput) (string, *domain.Employee, error) {
	s.gotInput = in
	return s.token, s.employee, s.err
}

func newEchoContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{
		token:    "signed-token",
		employee: &domain.Employee{ID: "emp_1", Email: "a@x.com", Role: domain.RoleEmployee, IsActive: true},
	}
	h := NewAuthHandler(svc)

	c, rec := newEchoContext(t, http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"pw1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotEmail != "a@x.com" || svc.gotPassword != "pw1" {
		t.Fatalf("credentials not forwarded: %s / %s", svc.gotEmail, svc.gotPassword)
	}

	var resp struct {
		Token    string           `json:"token"`
		Employee *domain.Employee `json:"employee"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Token != "signed-token" || resp.Employee.ID != "emp_1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response must not leak credential fields: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{err: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc)

	c, _ := newEchoContext(t, http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_RejectsMalformedPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newEchoContext(t, http.MethodPost, "/api/auth/login", `{"email":"not-an-email","password":"pw"}`)
	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_ForwardsInput(t *testing.T) {
	svc := &stubAuthService{
		token:    "signed-token",
		employee: &domain.Employee{ID: "emp_2", Email: "b@x.com", Role: domain.RoleEmployee, IsActive: true},
	}
	h := NewAuthHandler(svc)

	body := `{"username":"bob","email":"b@x.com","password":"pw2pw2","full_name":"Bob","department":"sales"}`
	c, rec := newEchoContext(t, http.MethodPost, "/api/auth/register", body)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.gotInput.Username != "bob" || svc.gotInput.Department != "sales" {
		t.Fatalf("input not forwarded: %+v", svc.gotInput)
	}
}

// A taken email must produce exactly the same response as any other
// registration failure, otherwise the public register route can be used to
// probe which accounts exist.
func TestAuthHandler_Register_FailuresAreIndistinguishable(t *testing.T) {
	body := `{"username":"bob","email":"b@x.com","password":"pw2pw2","full_name":"Bob"}`

	responses := make([]*echo.HTTPError, 0, 3)
	for _, cause := range []error{
		domain.ErrEmployeeExists,     // duplicate identity
		domain.ErrInvalidCredentials, // provider rejection or outage
		errors.New("write failed"),   // storage fault
	} {
		h := NewAuthHandler(&stubAuthService{err: cause})
		c, _ := newEchoContext(t, http.MethodPost, "/api/auth/register", body)
		err := h.Register(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			t.Fatalf("cause %v: expected an HTTP error, got %v", cause, err)
		}
		if he.Code == http.StatusConflict {
			t.Fatalf("cause %v: duplicate identity must not surface as 409", cause)
		}
		responses = append(responses, he)
	}

	for _, he := range responses[1:] {
		if he.Code != responses[0].Code || he.Message != responses[0].Message {
			t.Fatalf("registration failures differ: %v vs %v", responses[0], he)
		}
	}
	if msg, ok := responses[0].Message.(string); !ok || strings.Contains(msg, "exists") {
		t.Fatalf("response must not name the failed check: %v", responses[0].Message)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newEchoContext(t, http.MethodGet, "/api/auth/me", "")
	c.Set(middleware.PrincipalKey, &domain.Employee{ID: "emp_1", Email: "a@x.com", IsActive: true})
	if err := h.Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "a@x.com") {
		t.Fatalf("principal missing from response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newEchoContext(t, http.MethodGet, "/api/auth/me", "")
	err := h.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
