package ports

import (
	"context"

	"github.com/estateops/crm-backend/internal/core/domain"
)

// LeadUpdate holds the mutable lead fields. Nil pointers mean "leave as is",
// mirroring a PATCH-style partial update.
type LeadUpdate struct {
	Name               *string
	Email              *string
	Phone              *string
	Company            *string
	Status             *domain.LeadStatus
	Source             *domain.LeadSource
	Budget             *float64
	Requirements       *string
	Notes              *string
	AssignedEmployeeID *string
}

// LeadService applies the ownership rule on every operation: a non-admin
// actor may only act on leads assigned to them.
type LeadService interface {
	Create(ctx context.Context, actor *domain.Employee, l *domain.Lead) (*domain.Lead, error)
	Get(ctx context.Context, actor *domain.Employee, id string) (*domain.Lead, error)
	List(ctx context.Context, actor *domain.Employee, filter LeadFilter) ([]*domain.Lead, int64, error)
	Update(ctx context.Context, actor *domain.Employee, id string, upd LeadUpdate) (*domain.Lead, error)
	Delete(ctx context.Context, actor *domain.Employee, id string) error
}
