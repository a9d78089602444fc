package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
)

// LocalCredentialStore is the self-contained identity scheme: secrets are
// bcrypt hashes on the employee record and the token subject is the record's
// own primary key.
type LocalCredentialStore struct {
	repo ports.EmployeeRepository
}

// NewLocalCredentialStore builds a LocalCredentialStore over repo.
func NewLocalCredentialStore(repo ports.EmployeeRepository) *LocalCredentialStore {
	return &LocalCredentialStore{repo: repo}
}

func (s *LocalCredentialStore) Authenticate(ctx context.Context, email, secret string) (string, error) {
	emp, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(secret)) != nil {
		return "", domain.ErrInvalidCredentials
	}
	return emp.ID, nil
}

func (s *LocalCredentialStore) Register(ctx context.Context, in ports.RegisterInput) (*domain.Employee, string, error) {
	if err := checkDuplicate(ctx, s.repo, in.Username, in.Email); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	emp := &domain.Employee{
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		PasswordHash: string(hash),
		Role:         in.Role,
		Phone:        in.Phone,
		Department:   in.Department,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, emp)
	if err != nil {
		return nil, "", err
	}
	return created, created.ID, nil
}

func (s *LocalCredentialStore) ResolveSubject(ctx context.Context, subjectID string) (*domain.Employee, error) {
	return s.repo.FindByID(ctx, subjectID)
}

// checkDuplicate rejects registration when the username or email is taken.
func checkDuplicate(ctx context.Context, repo ports.EmployeeRepository, username, email string) error {
	if _, err := repo.FindByUsername(ctx, username); err == nil {
		return domain.ErrEmployeeExists
	} else if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return err
	}
	if _, err := repo.FindByEmail(ctx, email); err == nil {
		return domain.ErrEmployeeExists
	} else if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return err
	}
	return nil
}
