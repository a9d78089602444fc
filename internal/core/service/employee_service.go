package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
)

// EmployeeService manages employee records. Creation delegates to the
// configured credential store so new accounts are provisioned under the same
// identity scheme as the rest of the deployment.
type EmployeeService struct {
	store ports.CredentialStore
	repo  ports.EmployeeRepository
	log   zerolog.Logger
}

func NewEmployeeService(store ports.CredentialStore, repo ports.EmployeeRepository, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{store: store, repo: repo, log: log}
}

func (s *EmployeeService) Create(ctx context.Context, in ports.RegisterInput) (*domain.Employee, error) {
	if in.Role == "" {
		in.Role = domain.RoleEmployee
	}
	if !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidCredentials
	}

	emp, _, err := s.store.Register(ctx, in)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("employee_id", emp.ID).Str("role", emp.Role).Msg("employee created")
	return emp, nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EmployeeService) List(ctx context.Context, page, limit int) ([]*domain.Employee, int64, error) {
	normalizePage(&page, &limit)
	return s.repo.List(ctx, page, limit)
}

func (s *EmployeeService) Update(ctx context.Context, id string, upd ports.EmployeeUpdate) (*domain.Employee, error) {
	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.FullName != nil {
		emp.FullName = *upd.FullName
	}
	if upd.Role != nil {
		if !domain.ValidRole(*upd.Role) {
			return nil, domain.ErrInvalidCredentials
		}
		emp.Role = *upd.Role
	}
	if upd.Phone != nil {
		emp.Phone = *upd.Phone
	}
	if upd.Department != nil {
		emp.Department = *upd.Department
	}
	if upd.IsActive != nil {
		emp.IsActive = *upd.IsActive
	}
	emp.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, emp); err != nil {
		return nil, err
	}
	if upd.IsActive != nil && !*upd.IsActive {
		// Takes effect on the target's next request: the auth middleware
		// re-resolves the principal rather than trusting token claims.
		s.log.Info().Str("employee_id", id).Msg("employee deactivated")
	}
	return emp, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("employee_id", id).Msg("employee deleted")
	return nil
}
