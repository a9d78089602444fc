package ports

import (
	"context"

	"github.com/estateops/crm-backend/internal/core/domain"
)

// EnquiryUpdate holds the mutable enquiry fields; nil means unchanged.
type EnquiryUpdate struct {
	Subject            *string
	EnquiryType        *domain.EnquiryType
	Status             *domain.EnquiryStatus
	CustomerName       *string
	CustomerEmail      *string
	CustomerPhone      *string
	Budget             *float64
	PreferredLocation  *string
	Requirements       *string
	Description        *string
	Response           *string
	AssignedEmployeeID *string
}

// EnquiryService applies the same ownership rule as LeadService.
type EnquiryService interface {
	Create(ctx context.Context, actor *domain.Employee, e *domain.Enquiry) (*domain.Enquiry, error)
	Get(ctx context.Context, actor *domain.Employee, id string) (*domain.Enquiry, error)
	List(ctx context.Context, actor *domain.Employee, filter EnquiryFilter) ([]*domain.Enquiry, int64, error)
	Update(ctx context.Context, actor *domain.Employee, id string, upd EnquiryUpdate) (*domain.Enquiry, error)
	Delete(ctx context.Context, actor *domain.Employee, id string) error
}
