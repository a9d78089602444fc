package ports

import "time"

// TokenClaims is the verified content of an access token: the subject
// identifier the token was issued for and its absolute expiry.
type TokenClaims struct {
	SubjectID string
	ExpiresAt time.Time
}

// TokenIssuer mints signed, time-bounded access tokens. Issuance is
// stateless: tokens are never stored server-side and expire on their own.
type TokenIssuer interface {
	Issue(subjectID string) (string, error)
}

// TokenVerifier checks a token's signature and expiry and extracts its
// claims. It performs no I/O and does not consult the employee store;
// active-status and role checks happen downstream against live data.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}
