package ports

import (
	"context"

	"github.com/estateops/crm-backend/internal/core/domain"
)

// LeadFilter carries query parameters for listing leads. AssignedEmployeeID
// is set by the service layer for non-admin callers so employees only see
// their own leads.
type LeadFilter struct {
	AssignedEmployeeID string // empty = no filter (admin)
	Status             string // optional
	Source             string // optional
	Page               int    // 1-based
	Limit              int    // capped by the service
}

// LeadRepository defines persistence operations for leads.
type LeadRepository interface {
	Create(ctx context.Context, l *domain.Lead) (*domain.Lead, error)
	FindByID(ctx context.Context, id string) (*domain.Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]*domain.Lead, int64, error)
	Update(ctx context.Context, l *domain.Lead) error
	Delete(ctx context.Context, id string) error
}
