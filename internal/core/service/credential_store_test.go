package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
)

// stubEmployeeRepo is an in-memory ports.EmployeeRepository shared by the
// service tests.
type stubEmployeeRepo struct {
	byID   map[string]*domain.Employee
	nextID int
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{byID: make(map[string]*domain.Employee)}
}

func cloneEmployee(e *domain.Employee) *domain.Employee {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	r.nextID++
	copy := cloneEmployee(e)
	copy.ID = fmt.Sprintf("emp_%d", r.nextID)
	r.byID[copy.ID] = cloneEmployee(copy)
	return cloneEmployee(copy), nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	if e, ok := r.byID[id]; ok {
		return cloneEmployee(e), nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) FindByAuthID(_ context.Context, authID string) (*domain.Employee, error) {
	if authID == "" {
		return nil, domain.ErrEmployeeNotFound
	}
	for _, e := range r.byID {
		if e.AuthID == authID {
			return cloneEmployee(e), nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) FindByEmail(_ context.Context, email string) (*domain.Employee, error) {
	for _, e := range r.byID {
		if e.Email == email {
			return cloneEmployee(e), nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) FindByUsername(_ context.Context, username string) (*domain.Employee, error) {
	for _, e := range r.byID {
		if e.Username == username {
			return cloneEmployee(e), nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) List(_ context.Context, _, _ int) ([]*domain.Employee, int64, error) {
	out := make([]*domain.Employee, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, cloneEmployee(e))
	}
	return out, int64(len(out)), nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, e *domain.Employee) error {
	if _, ok := r.byID[e.ID]; !ok {
		return domain.ErrEmployeeNotFound
	}
	r.byID[e.ID] = cloneEmployee(e)
	return nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.byID, id)
	return nil
}

// stubProvider fakes the external identity provider.
type stubProvider struct {
	identities map[string]string // email -> secret
	subjects   map[string]string // email -> subject id
	nextID     int
	failAuth   error
	failCreate error
}

func newStubProvider() *stubProvider {
	return &stubProvider{
		identities: make(map[string]string),
		subjects:   make(map[string]string),
	}
}

func (p *stubProvider) Authenticate(_ context.Context, email, secret string) (string, error) {
	if p.failAuth != nil {
		return "", p.failAuth
	}
	if stored, ok := p.identities[email]; !ok || stored != secret {
		return "", errors.New("bad credentials")
	}
	return p.subjects[email], nil
}

func (p *stubProvider) CreateIdentity(_ context.Context, email, secret string, _ ports.IdentityMetadata) (string, error) {
	if p.failCreate != nil {
		return "", p.failCreate
	}
	p.nextID++
	id := fmt.Sprintf("ext-uuid-%d", p.nextID)
	p.identities[email] = secret
	p.subjects[email] = id
	return id, nil
}

func TestLocalStore_RegisterAuthenticateResolve(t *testing.T) {
	repo := newStubEmployeeRepo()
	store := NewLocalCredentialStore(repo)
	ctx := context.Background()

	emp, subjectID, err := store.Register(ctx, ports.RegisterInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw1",
		FullName: "Alice",
		Role:     domain.RoleEmployee,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if subjectID != emp.ID {
		t.Fatalf("local subject must be the record id, got %s vs %s", subjectID, emp.ID)
	}
	if emp.PasswordHash == "pw1" || emp.PasswordHash == "" {
		t.Fatalf("password not hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte("pw1")) != nil {
		t.Fatalf("stored hash does not match password")
	}

	got, err := store.Authenticate(ctx, "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if got != subjectID {
		t.Fatalf("Authenticate subject %s, want %s", got, subjectID)
	}

	resolved, err := store.ResolveSubject(ctx, got)
	if err != nil {
		t.Fatalf("ResolveSubject returned error: %v", err)
	}
	if resolved.Email != "a@x.com" || !resolved.IsActive {
		t.Fatalf("unexpected resolved employee: %+v", resolved)
	}
}

func TestLocalStore_WrongPassword(t *testing.T) {
	repo := newStubEmployeeRepo()
	store := NewLocalCredentialStore(repo)
	ctx := context.Background()

	if _, _, err := store.Register(ctx, ports.RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw1", Role: domain.RoleEmployee}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if _, err := store.Authenticate(ctx, "a@x.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := store.Authenticate(ctx, "nobody@x.com", "pw1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestLocalStore_DuplicateRegistration(t *testing.T) {
	repo := newStubEmployeeRepo()
	store := NewLocalCredentialStore(repo)
	ctx := context.Background()

	in := ports.RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw1", Role: domain.RoleEmployee}
	if _, _, err := store.Register(ctx, in); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	if _, _, err := store.Register(ctx, in); !errors.Is(err, domain.ErrEmployeeExists) {
		t.Fatalf("expected ErrEmployeeExists, got %v", err)
	}
	// Same email under a different username is still a duplicate.
	in.Username = "alice2"
	if _, _, err := store.Register(ctx, in); !errors.Is(err, domain.ErrEmployeeExists) {
		t.Fatalf("expected ErrEmployeeExists on email clash, got %v", err)
	}
}

func TestDelegatedStore_RegisterAuthenticateResolve(t *testing.T) {
	repo := newStubEmployeeRepo()
	provider := newStubProvider()
	store := NewDelegatedCredentialStore(provider, repo, zerolog.Nop())
	ctx := context.Background()

	emp, subjectID, err := store.Register(ctx, ports.RegisterInput{
		Username: "bob",
		Email:    "b@x.com",
		Password: "pw2",
		Role:     domain.RoleEmployee,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if subjectID == emp.ID {
		t.Fatalf("delegated subject must not be the record id")
	}
	if emp.AuthID != subjectID {
		t.Fatalf("auth_id %s, want %s", emp.AuthID, subjectID)
	}
	if emp.PasswordHash != "" {
		t.Fatalf("delegated store must not keep a local hash")
	}

	got, err := store.Authenticate(ctx, "b@x.com", "pw2")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if got != subjectID {
		t.Fatalf("Authenticate subject %s, want %s", got, subjectID)
	}

	// Resolution goes through auth_id, never the primary key: the record id
	// must not resolve.
	if _, err := store.ResolveSubject(ctx, emp.ID); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("record id must not resolve in the delegated scheme, got %v", err)
	}
	resolved, err := store.ResolveSubject(ctx, subjectID)
	if err != nil {
		t.Fatalf("ResolveSubject returned error: %v", err)
	}
	if resolved.ID != emp.ID {
		t.Fatalf("resolved wrong employee: %s", resolved.ID)
	}
}

func TestDelegatedStore_ProviderFaultFailsClosed(t *testing.T) {
	repo := newStubEmployeeRepo()
	provider := newStubProvider()
	provider.failAuth = errors.New("connection refused")
	store := NewDelegatedCredentialStore(provider, repo, zerolog.Nop())

	if _, err := store.Authenticate(context.Background(), "b@x.com", "pw2"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("provider fault must surface as ErrInvalidCredentials, got %v", err)
	}
}

func TestDelegatedStore_SignupFaultFailsClosed(t *testing.T) {
	repo := newStubEmployeeRepo()
	provider := newStubProvider()
	provider.failCreate = errors.New("service unavailable")
	store := NewDelegatedCredentialStore(provider, repo, zerolog.Nop())

	_, _, err := store.Register(context.Background(), ports.RegisterInput{Username: "bob", Email: "b@x.com", Password: "pw2", Role: domain.RoleEmployee})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("no employee record may exist after a failed signup")
	}
}
