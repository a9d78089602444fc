package ports

import (
	"context"

	"github.com/estateops/crm-backend/internal/core/domain"
)

// IdentityMetadata carries optional profile data attached to a new identity.
type IdentityMetadata struct {
	FullName string
	Role     string
}

// CredentialStore binds credential verification, provisioning, and subject
// resolution to a single identity scheme. The subject identifier returned by
// Authenticate and Register is the same one ResolveSubject accepts, so tokens
// issued against one store always resolve through that store. Exactly one
// implementation is wired per deployment:
//
//   - the local store verifies bcrypt hashes and uses the employee record id
//     as the subject;
//   - the delegated store hands verification to an external identity provider
//     and uses the provider-assigned id, which employees carry in a separate
//     auth_id field.
type CredentialStore interface {
	// Authenticate validates an email/secret pair and returns the subject
	// identifier on success. Any failure, including provider transport
	// faults, is reported as domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, secret string) (string, error)

	// Register provisions credentials and the employee profile, returning
	// the created record and the subject identifier tokens will carry.
	Register(ctx context.Context, in RegisterInput) (*domain.Employee, string, error)

	// ResolveSubject maps a verified subject identifier to its employee
	// record, or domain.ErrEmployeeNotFound.
	ResolveSubject(ctx context.Context, subjectID string) (*domain.Employee, error)
}
