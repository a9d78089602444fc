package ports

import "context"

// IdentityProvider is the external service the delegated credential strategy
// hands secret verification to. Implementations must fail closed: transport
// faults and provider-side errors are indistinguishable from bad credentials
// to callers, and provider-internal detail is never propagated.
type IdentityProvider interface {
	Authenticate(ctx context.Context, email, secret string) (subjectID string, err error)
	CreateIdentity(ctx context.Context, email, secret string, meta IdentityMetadata) (subjectID string, err error)
}
