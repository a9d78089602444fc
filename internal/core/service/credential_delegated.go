package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
)

// DelegatedCredentialStore is the federated identity scheme: secret
// verification is handed to an external identity provider and the token
// subject is the provider-assigned identifier, stored on the employee record
// in a dedicated auth_id field distinct from the primary key. Both issuance
// and resolution use that same field, never the record id.
type DelegatedCredentialStore struct {
	provider ports.IdentityProvider
	repo     ports.EmployeeRepository
	log      zerolog.Logger
}

// NewDelegatedCredentialStore builds a DelegatedCredentialStore. The provider
// is an injected dependency so the store stays testable with fakes.
func NewDelegatedCredentialStore(provider ports.IdentityProvider, repo ports.EmployeeRepository, log zerolog.Logger) *DelegatedCredentialStore {
	return &DelegatedCredentialStore{provider: provider, repo: repo, log: log}
}

func (s *DelegatedCredentialStore) Authenticate(ctx context.Context, email, secret string) (string, error) {
	subjectID, err := s.provider.Authenticate(ctx, email, secret)
	if err != nil {
		// Fail closed: a provider transport fault looks identical to a bad
		// credential from the outside.
		s.log.Warn().Err(err).Msg("identity provider authentication failed")
		return "", domain.ErrInvalidCredentials
	}
	return subjectID, nil
}

func (s *DelegatedCredentialStore) Register(ctx context.Context, in ports.RegisterInput) (*domain.Employee, string, error) {
	if err := checkDuplicate(ctx, s.repo, in.Username, in.Email); err != nil {
		return nil, "", err
	}

	subjectID, err := s.provider.CreateIdentity(ctx, in.Email, in.Password, ports.IdentityMetadata{
		FullName: in.FullName,
		Role:     in.Role,
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("identity provider signup failed")
		return nil, "", domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	emp := &domain.Employee{
		AuthID:     subjectID,
		Username:   in.Username,
		Email:      in.Email,
		FullName:   in.FullName,
		Role:       in.Role,
		Phone:      in.Phone,
		Department: in.Department,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Create(ctx, emp)
	if err != nil {
		return nil, "", err
	}
	return created, subjectID, nil
}

func (s *DelegatedCredentialStore) ResolveSubject(ctx context.Context, subjectID string) (*domain.Employee, error) {
	return s.repo.FindByAuthID(ctx, subjectID)
}
