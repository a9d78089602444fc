package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
)

// stubLimiter records limiter interactions.
type stubLimiter struct {
	blocked  bool
	err      error
	failures int
	resets   int
}

func (l *stubLimiter) TooManyAttempts(_ context.Context, _ string) (bool, error) {
	return l.blocked, l.err
}

func (l *stubLimiter) RecordFailure(_ context.Context, _ string) error {
	l.failures++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, _ string) error {
	l.resets++
	return nil
}

func newAuthFixture(t *testing.T) (*AuthService, *LocalCredentialStore, *stubEmployeeRepo, *stubLimiter) {
	t.Helper()
	repo := newStubEmployeeRepo()
	store := NewLocalCredentialStore(repo)
	limiter := &stubLimiter{}
	svc := NewAuthService(store, NewJWTTokens("secret", time.Hour), limiter, zerolog.Nop())
	return svc, store, repo, limiter
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	svc, _, _, limiter := newAuthFixture(t)
	ctx := context.Background()

	_, created, err := svc.Register(ctx, ports.RegisterInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw1",
		FullName: "Alice",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if created.Role != domain.RoleEmployee {
		t.Fatalf("role should default to employee, got %s", created.Role)
	}

	token, emp, err := svc.Login(ctx, "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if !emp.IsActive || emp.Role != domain.RoleEmployee {
		t.Fatalf("unexpected principal: %+v", emp)
	}
	if limiter.resets != 1 {
		t.Fatalf("successful login must reset the limiter, resets=%d", limiter.resets)
	}
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, repo, limiter := newAuthFixture(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, ports.RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw1"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	// Deactivate the account directly in the repo.
	emp, _ := repo.FindByEmail(ctx, "a@x.com")
	emp.IsActive = false
	if err := repo.Update(ctx, emp); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	cases := []struct {
		name            string
		email, password string
	}{
		{"unknown email", "nobody@x.com", "pw1"},
		{"wrong password", "a@x.com", "wrong"},
		{"inactive account", "a@x.com", "pw1"},
	}
	for _, tc := range cases {
		if _, _, err := svc.Login(ctx, tc.email, tc.password); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", tc.name, err)
		}
	}
	if limiter.failures != len(cases) {
		t.Fatalf("each rejection must count against the limiter, got %d", limiter.failures)
	}
}

func TestAuthService_Throttled(t *testing.T) {
	svc, _, _, limiter := newAuthFixture(t)
	limiter.blocked = true

	if _, _, err := svc.Login(context.Background(), "a@x.com", "pw1"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_LimiterFaultFailsOpen(t *testing.T) {
	svc, _, _, limiter := newAuthFixture(t)
	limiter.err = errors.New("redis down")

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw1"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@x.com", "pw1"); err != nil {
		t.Fatalf("limiter fault must not block a valid login, got %v", err)
	}
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, ports.RegisterInput{Email: "a@x.com", Password: "pw1"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("missing username: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Register(ctx, ports.RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw1", Role: "superuser"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("bad role: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_TokenResolvesThroughSameStore(t *testing.T) {
	// Issue via login, then resolve the token subject through the same
	// store: the round trip must land on the same employee. Run once per
	// identity scheme.
	ctx := context.Background()
	tokens := NewJWTTokens("secret", time.Hour)

	stores := map[string]ports.CredentialStore{
		"local": NewLocalCredentialStore(newStubEmployeeRepo()),
		"delegated": NewDelegatedCredentialStore(
			newStubProvider(), newStubEmployeeRepo(), zerolog.Nop()),
	}

	for name, store := range stores {
		svc := NewAuthService(store, tokens, nil, zerolog.Nop())

		_, created, err := svc.Register(ctx, ports.RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw1"})
		if err != nil {
			t.Fatalf("%s: Register returned error: %v", name, err)
		}

		token, _, err := svc.Login(ctx, "a@x.com", "pw1")
		if err != nil {
			t.Fatalf("%s: Login returned error: %v", name, err)
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			t.Fatalf("%s: Verify returned error: %v", name, err)
		}
		resolved, err := store.ResolveSubject(ctx, claims.SubjectID)
		if err != nil {
			t.Fatalf("%s: ResolveSubject returned error: %v", name, err)
		}
		if resolved.ID != created.ID {
			t.Fatalf("%s: token resolved to %s, want %s", name, resolved.ID, created.ID)
		}
	}
}
