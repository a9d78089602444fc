package ports

import (
	"context"

	"github.com/estateops/crm-backend/internal/core/domain"
)

// The catalog services cover the shared reference collections: any active
// principal may read or write them, so unlike leads and enquiries no actor
// is threaded through. Update is full-replace; the service preserves the
// record id and creation timestamp.

type DeveloperService interface {
	Create(ctx context.Context, d *domain.Developer) (*domain.Developer, error)
	Get(ctx context.Context, id string) (*domain.Developer, error)
	List(ctx context.Context, filter PageFilter) ([]*domain.Developer, int64, error)
	Update(ctx context.Context, id string, d *domain.Developer) (*domain.Developer, error)
	Delete(ctx context.Context, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, filter PageFilter) ([]*domain.Project, int64, error)
	Update(ctx context.Context, id string, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

type InventoryService interface {
	Create(ctx context.Context, u *domain.InventoryUnit) (*domain.InventoryUnit, error)
	Get(ctx context.Context, id string) (*domain.InventoryUnit, error)
	List(ctx context.Context, filter PageFilter) ([]*domain.InventoryUnit, int64, error)
	Update(ctx context.Context, id string, u *domain.InventoryUnit) (*domain.InventoryUnit, error)
	Delete(ctx context.Context, id string) error
}

type LandParcelService interface {
	Create(ctx context.Context, p *domain.LandParcel) (*domain.LandParcel, error)
	Get(ctx context.Context, id string) (*domain.LandParcel, error)
	List(ctx context.Context, filter PageFilter) ([]*domain.LandParcel, int64, error)
	Update(ctx context.Context, id string, p *domain.LandParcel) (*domain.LandParcel, error)
	Delete(ctx context.Context, id string) error
}

type ContactService interface {
	Create(ctx context.Context, ct *domain.Contact) (*domain.Contact, error)
	Get(ctx context.Context, id string) (*domain.Contact, error)
	List(ctx context.Context, filter PageFilter) ([]*domain.Contact, int64, error)
	Update(ctx context.Context, id string, ct *domain.Contact) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}
