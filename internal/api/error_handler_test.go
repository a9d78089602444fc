package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/estateops/crm-backend/internal/core/domain"
)

func TestResolveError_DomainMappings(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	log := zerolog.Nop()

	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrInvalidToken, http.StatusUnauthorized},
		{domain.ErrInactiveAccount, http.StatusForbidden},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests},
		{domain.ErrEmployeeExists, http.StatusConflict},
		{domain.ErrLandParcelExists, http.StatusConflict},
		{domain.ErrLeadNotFound, http.StatusNotFound},
		{domain.ErrEnquiryNotFound, http.StatusNotFound},
		{domain.ErrContactNotFound, http.StatusNotFound},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		code, msg := resolveError(tc.err, log, c)
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
		if msg == "" {
			t.Fatalf("%v: empty message", tc.err)
		}
	}
}

func TestResolveError_NeverEchoesCredentialDetail(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, msg := resolveError(domain.ErrInvalidCredentials, zerolog.Nop(), c)
	if msg != "invalid credentials" {
		t.Fatalf("login failure message must stay generic, got %q", msg)
	}
}
