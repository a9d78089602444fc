package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
)

// EnquiryService implements enquiry CRUD with the same per-operation
// ownership rule as LeadService.
type EnquiryService struct {
	repo ports.EnquiryRepository
	log  zerolog.Logger
}

func NewEnquiryService(repo ports.EnquiryRepository, log zerolog.Logger) *EnquiryService {
	return &EnquiryService{repo: repo, log: log}
}

func (s *EnquiryService) Create(ctx context.Context, actor *domain.Employee, e *domain.Enquiry) (*domain.Enquiry, error) {
	if !actor.IsAdmin() && e.AssignedEmployeeID == "" {
		e.AssignedEmployeeID = actor.ID
	}
	if e.Status == "" {
		e.Status = domain.EnquiryOpen
	}
	if e.EnquiryType == "" {
		e.EnquiryType = domain.EnquiryGeneral
	}

	now := time.Now().UTC()
	e.IsActive = true
	e.CreatedAt = now
	e.UpdatedAt = now

	created, err := s.repo.Create(ctx, e)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("enquiry_id", created.ID).Str("assigned_to", created.AssignedEmployeeID).Msg("enquiry created")
	return created, nil
}

func (s *EnquiryService) Get(ctx context.Context, actor *domain.Employee, id string) (*domain.Enquiry, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(e.AssignedEmployeeID) {
		return nil, domain.ErrForbidden
	}
	return e, nil
}

func (s *EnquiryService) List(ctx context.Context, actor *domain.Employee, filter ports.EnquiryFilter) ([]*domain.Enquiry, int64, error) {
	if !actor.IsAdmin() {
		filter.AssignedEmployeeID = actor.ID
	}
	normalizePage(&filter.Page, &filter.Limit)
	return s.repo.List(ctx, filter)
}

func (s *EnquiryService) Update(ctx context.Context, actor *domain.Employee, id string, upd ports.EnquiryUpdate) (*domain.Enquiry, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(e.AssignedEmployeeID) {
		return nil, domain.ErrForbidden
	}

	applyEnquiryUpdate(e, upd)
	e.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EnquiryService) Delete(ctx context.Context, actor *domain.Employee, id string) error {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanAccess(e.AssignedEmployeeID) {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("enquiry_id", id).Str("deleted_by", actor.ID).Msg("enquiry deleted")
	return nil
}

func applyEnquiryUpdate(e *domain.Enquiry, upd ports.EnquiryUpdate) {
	if upd.Subject != nil {
		e.Subject = *upd.Subject
	}
	if upd.EnquiryType != nil {
		e.EnquiryType = *upd.EnquiryType
	}
	if upd.Status != nil {
		e.Status = *upd.Status
	}
	if upd.CustomerName != nil {
		e.CustomerName = *upd.CustomerName
	}
	if upd.CustomerEmail != nil {
		e.CustomerEmail = *upd.CustomerEmail
	}
	if upd.CustomerPhone != nil {
		e.CustomerPhone = *upd.CustomerPhone
	}
	if upd.Budget != nil {
		e.Budget = *upd.Budget
	}
	if upd.PreferredLocation != nil {
		e.PreferredLocation = *upd.PreferredLocation
	}
	if upd.Requirements != nil {
		e.Requirements = *upd.Requirements
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.Response != nil {
		e.Response = *upd.Response
	}
	if upd.AssignedEmployeeID != nil {
		e.AssignedEmployeeID = *upd.AssignedEmployeeID
	}
}
