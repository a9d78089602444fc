package ports

import (
	"context"

	"github.com/estateops/crm-backend/internal/core/domain"
)

// PageFilter is the shared pagination filter for catalog collections.
type PageFilter struct {
	Page  int // 1-based
	Limit int
}

// DeveloperRepository defines persistence operations for developers.
type DeveloperRepository interface {
	Create(ctx context.Context, d *domain.Developer) (*domain.Developer, error)
	FindByID(ctx context.Context, id string) (*domain.Developer, error)
	List(ctx context.Context, filter PageFilter) ([]*domain.Developer, int64, error)
	Update(ctx context.Context, d *domain.Developer) error
	Delete(ctx context.Context, id string) error
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, filter PageFilter) ([]*domain.Project, int64, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

// InventoryRepository defines persistence operations for inventory units.
type InventoryRepository interface {
	Create(ctx context.Context, u *domain.InventoryUnit) (*domain.InventoryUnit, error)
	FindByID(ctx context.Context, id string) (*domain.InventoryUnit, error)
	List(ctx context.Context, filter PageFilter) ([]*domain.InventoryUnit, int64, error)
	Update(ctx context.Context, u *domain.InventoryUnit) error
	Delete(ctx context.Context, id string) error
}

// LandParcelRepository defines persistence operations for land parcels.
// Create returns domain.ErrLandParcelExists on a duplicate survey number.
type LandParcelRepository interface {
	Create(ctx context.Context, p *domain.LandParcel) (*domain.LandParcel, error)
	FindByID(ctx context.Context, id string) (*domain.LandParcel, error)
	List(ctx context.Context, filter PageFilter) ([]*domain.LandParcel, int64, error)
	Update(ctx context.Context, p *domain.LandParcel) error
	Delete(ctx context.Context, id string) error
}

// ContactRepository defines persistence operations for contacts.
type ContactRepository interface {
	Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	FindByID(ctx context.Context, id string) (*domain.Contact, error)
	List(ctx context.Context, filter PageFilter) ([]*domain.Contact, int64, error)
	Update(ctx context.Context, c *domain.Contact) error
	Delete(ctx context.Context, id string) error
}
