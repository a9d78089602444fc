package ports

import (
	"context"

	"github.com/estateops/crm-backend/internal/core/domain"
)

// EnquiryFilter carries query parameters for listing enquiries.
type EnquiryFilter struct {
	AssignedEmployeeID string // empty = no filter (admin)
	Status             string // optional
	EnquiryType        string // optional
	Page               int    // 1-based
	Limit              int
}

// EnquiryRepository defines persistence operations for enquiries.
type EnquiryRepository interface {
	Create(ctx context.Context, e *domain.Enquiry) (*domain.Enquiry, error)
	FindByID(ctx context.Context, id string) (*domain.Enquiry, error)
	List(ctx context.Context, filter EnquiryFilter) ([]*domain.Enquiry, int64, error)
	Update(ctx context.Context, e *domain.Enquiry) error
	Delete(ctx context.Context, id string) error
}
