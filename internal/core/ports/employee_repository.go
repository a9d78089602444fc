package ports

import (
	"context"

	"github.com/estateops/crm-backend/internal/core/domain"
)

// EmployeeRepository defines persistence operations for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	// FindByAuthID looks up by the external identity provider's subject id,
	// which is distinct from the record's own primary key.
	FindByAuthID(ctx context.Context, authID string) (*domain.Employee, error)
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	FindByUsername(ctx context.Context, username string) (*domain.Employee, error)
	List(ctx context.Context, page, limit int) ([]*domain.Employee, int64, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id string) error
}
