package service

import (
	"context"
	"time"

	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
)

// The catalog services wrap their repositories with the shared lifecycle
// rules: ids and creation timestamps are immutable, updates are full-replace,
// and pagination is clamped. No per-record authorization applies here.

// DeveloperService implements ports.DeveloperService.
type DeveloperService struct {
	repo ports.DeveloperRepository
}

func NewDeveloperService(repo ports.DeveloperRepository) *DeveloperService {
	return &DeveloperService{repo: repo}
}

func (s *DeveloperService) Create(ctx context.Context, d *domain.Developer) (*domain.Developer, error) {
	now := time.Now().UTC()
	d.IsActive = true
	d.CreatedAt = now
	d.UpdatedAt = now
	return s.repo.Create(ctx, d)
}

func (s *DeveloperService) Get(ctx context.Context, id string) (*domain.Developer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DeveloperService) List(ctx context.Context, filter ports.PageFilter) ([]*domain.Developer, int64, error) {
	normalizePage(&filter.Page, &filter.Limit)
	return s.repo.List(ctx, filter)
}

func (s *DeveloperService) Update(ctx context.Context, id string, d *domain.Developer) (*domain.Developer, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d.ID = existing.ID
	d.CreatedAt = existing.CreatedAt
	d.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DeveloperService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ProjectService implements ports.ProjectService.
type ProjectService struct {
	repo ports.ProjectRepository
}

func NewProjectService(repo ports.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if p.Status == "" {
		p.Status = domain.ProjectPlanning
	}
	now := time.Now().UTC()
	p.IsActive = true
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.repo.Create(ctx, p)
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) List(ctx context.Context, filter ports.PageFilter) ([]*domain.Project, int64, error) {
	normalizePage(&filter.Page, &filter.Limit)
	return s.repo.List(ctx, filter)
}

func (s *ProjectService) Update(ctx context.Context, id string, p *domain.Project) (*domain.Project, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// InventoryService implements ports.InventoryService.
type InventoryService struct {
	repo ports.InventoryRepository
}

func NewInventoryService(repo ports.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

func (s *InventoryService) Create(ctx context.Context, u *domain.InventoryUnit) (*domain.InventoryUnit, error) {
	if u.Status == "" {
		u.Status = domain.UnitAvailable
	}
	now := time.Now().UTC()
	u.IsActive = true
	u.CreatedAt = now
	u.UpdatedAt = now
	return s.repo.Create(ctx, u)
}

func (s *InventoryService) Get(ctx context.Context, id string) (*domain.InventoryUnit, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *InventoryService) List(ctx context.Context, filter ports.PageFilter) ([]*domain.InventoryUnit, int64, error) {
	normalizePage(&filter.Page, &filter.Limit)
	return s.repo.List(ctx, filter)
}

func (s *InventoryService) Update(ctx context.Context, id string, u *domain.InventoryUnit) (*domain.InventoryUnit, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.ID = existing.ID
	u.CreatedAt = existing.CreatedAt
	u.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *InventoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// LandParcelService implements ports.LandParcelService.
type LandParcelService struct {
	repo ports.LandParcelRepository
}

func NewLandParcelService(repo ports.LandParcelRepository) *LandParcelService {
	return &LandParcelService{repo: repo}
}

func (s *LandParcelService) Create(ctx context.Context, p *domain.LandParcel) (*domain.LandParcel, error) {
	now := time.Now().UTC()
	p.IsActive = true
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.repo.Create(ctx, p)
}

func (s *LandParcelService) Get(ctx context.Context, id string) (*domain.LandParcel, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *LandParcelService) List(ctx context.Context, filter ports.PageFilter) ([]*domain.LandParcel, int64, error) {
	normalizePage(&filter.Page, &filter.Limit)
	return s.repo.List(ctx, filter)
}

func (s *LandParcelService) Update(ctx context.Context, id string, p *domain.LandParcel) (*domain.LandParcel, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *LandParcelService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ContactService implements ports.ContactService.
type ContactService struct {
	repo ports.ContactRepository
}

func NewContactService(repo ports.ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

func (s *ContactService) Create(ctx context.Context, ct *domain.Contact) (*domain.Contact, error) {
	if ct.ContactType == "" {
		ct.ContactType = domain.ContactOther
	}
	now := time.Now().UTC()
	ct.IsActive = true
	ct.CreatedAt = now
	ct.UpdatedAt = now
	return s.repo.Create(ctx, ct)
}

func (s *ContactService) Get(ctx context.Context, id string) (*domain.Contact, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ContactService) List(ctx context.Context, filter ports.PageFilter) ([]*domain.Contact, int64, error) {
	normalizePage(&filter.Page, &filter.Limit)
	return s.repo.List(ctx, filter)
}

func (s *ContactService) Update(ctx context.Context, id string, ct *domain.Contact) (*domain.Contact, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ct.ID = existing.ID
	ct.CreatedAt = existing.CreatedAt
	ct.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, ct); err != nil {
		return nil, err
	}
	return ct, nil
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
