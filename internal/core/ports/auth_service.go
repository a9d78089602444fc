package ports

import (
	"context"

	"github.com/estateops/crm-backend/internal/core/domain"
)

// RegisterInput carries everything needed to provision a new employee.
type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	FullName   string
	Role       string
	Phone      string
	Department string
}

// AuthService implements the login and registration flows.
type AuthService interface {
	// Login validates credentials and returns an access token plus the
	// resolved employee. All failures surface as
	// domain.ErrInvalidCredentials; the internal cause is logged only.
	Login(ctx context.Context, email, password string) (string, *domain.Employee, error)

	// Register provisions credentials, creates the employee profile, and
	// returns a token for the new employee.
	Register(ctx context.Context, in RegisterInput) (string, *domain.Employee, error)
}
