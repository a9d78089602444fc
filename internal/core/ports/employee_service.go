package ports

import (
	"context"

	"github.com/estateops/crm-backend/internal/core/domain"
)

// EmployeeUpdate holds the mutable employee fields; nil means unchanged.
// Role changes and deactivation take effect on the target's next request
// because the auth middleware re-resolves the principal every time.
type EmployeeUpdate struct {
	FullName   *string
	Role       *string
	Phone      *string
	Department *string
	IsActive   *bool
}

// EmployeeService manages employee records. Creation goes through the
// configured CredentialStore so the new account is provisioned under the
// same identity scheme as everyone else.
type EmployeeService interface {
	Create(ctx context.Context, in RegisterInput) (*domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, page, limit int) ([]*domain.Employee, int64, error)
	Update(ctx context.Context, id string, upd EmployeeUpdate) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
