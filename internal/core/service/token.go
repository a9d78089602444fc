package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
)

const defaultTokenTTL = 30 * time.Minute

// JWTTokens issues and verifies HS256 access tokens. Issuance is stateless:
// nothing is stored server-side, so two tokens for the same subject stay
// valid independently until their own expiries. Verification checks only
// signature and expiry; active-status is re-checked downstream on every
// request so a deactivation takes effect without waiting for expiry.
type JWTTokens struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTTokens builds a JWTTokens with the given signing secret and TTL.
// A negative TTL falls back to the 30 minute default; zero is honored as-is.
func NewJWTTokens(secret string, ttl time.Duration) *JWTTokens {
	if ttl < 0 {
		ttl = defaultTokenTTL
	}
	return &JWTTokens{secret: []byte(secret), ttl: ttl}
}

// Issue mints a signed token carrying subjectID and an absolute expiry of
// now + ttl.
func (t *JWTTokens) Issue(subjectID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(t.secret)
}

// Verify checks the signature and expiry and returns the token's claims.
// A token is rejected at exactly its expiry instant, not only after it.
// Every failure mode maps to domain.ErrInvalidToken.
func (t *JWTTokens) Verify(token string) (*ports.TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}
	return &ports.TokenClaims{
		SubjectID: claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
