package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
)

const maxPageLimit = 100

// LeadService implements lead CRUD with the ownership rule: non-admin actors
// may only read, update, or delete leads assigned to themselves. The check
// runs per-operation against the freshly loaded record, never cached state.
type LeadService struct {
	repo ports.LeadRepository
	log  zerolog.Logger
}

func NewLeadService(repo ports.LeadRepository, log zerolog.Logger) *LeadService {
	return &LeadService{repo: repo, log: log}
}

func (s *LeadService) Create(ctx context.Context, actor *domain.Employee, l *domain.Lead) (*domain.Lead, error) {
	// Non-admins always own the leads they create.
	if !actor.IsAdmin() && l.AssignedEmployeeID == "" {
		l.AssignedEmployeeID = actor.ID
	}
	if l.Status == "" {
		l.Status = domain.LeadNew
	}
	if l.Source == "" {
		l.Source = domain.SourceWebsite
	}

	now := time.Now().UTC()
	l.IsActive = true
	l.CreatedAt = now
	l.UpdatedAt = now

	created, err := s.repo.Create(ctx, l)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("lead_id", created.ID).Str("assigned_to", created.AssignedEmployeeID).Msg("lead created")
	return created, nil
}

func (s *LeadService) Get(ctx context.Context, actor *domain.Employee, id string) (*domain.Lead, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(l.AssignedEmployeeID) {
		return nil, domain.ErrForbidden
	}
	return l, nil
}

func (s *LeadService) List(ctx context.Context, actor *domain.Employee, filter ports.LeadFilter) ([]*domain.Lead, int64, error) {
	if !actor.IsAdmin() {
		filter.AssignedEmployeeID = actor.ID
	}
	normalizePage(&filter.Page, &filter.Limit)
	return s.repo.List(ctx, filter)
}

func (s *LeadService) Update(ctx context.Context, actor *domain.Employee, id string, upd ports.LeadUpdate) (*domain.Lead, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(l.AssignedEmployeeID) {
		return nil, domain.ErrForbidden
	}

	applyLeadUpdate(l, upd)
	l.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *LeadService) Delete(ctx context.Context, actor *domain.Employee, id string) error {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanAccess(l.AssignedEmployeeID) {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("lead_id", id).Str("deleted_by", actor.ID).Msg("lead deleted")
	return nil
}

func applyLeadUpdate(l *domain.Lead, upd ports.LeadUpdate) {
	if upd.Name != nil {
		l.Name = *upd.Name
	}
	if upd.Email != nil {
		l.Email = *upd.Email
	}
	if upd.Phone != nil {
		l.Phone = *upd.Phone
	}
	if upd.Company != nil {
		l.Company = *upd.Company
	}
	if upd.Status != nil {
		l.Status = *upd.Status
	}
	if upd.Source != nil {
		l.Source = *upd.Source
	}
	if upd.Budget != nil {
		l.Budget = *upd.Budget
	}
	if upd.Requirements != nil {
		l.Requirements = *upd.Requirements
	}
	if upd.Notes != nil {
		l.Notes = *upd.Notes
	}
	if upd.AssignedEmployeeID != nil {
		l.AssignedEmployeeID = *upd.AssignedEmployeeID
	}
}

// normalizePage clamps pagination parameters to sane bounds.
func normalizePage(page, limit *int) {
	if *page < 1 {
		*page = 1
	}
	if *limit < 1 || *limit > maxPageLimit {
		*limit = maxPageLimit
	}
}
