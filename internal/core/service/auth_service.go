package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
)

// LoginLimiter abstracts the failed-login throttle (Redis).
type LoginLimiter interface {
	TooManyAttempts(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements login and registration on top of the configured
// credential store. Which identity scheme is active (local or delegated) is
// decided once at wiring time; this service never mixes the two.
type AuthService struct {
	store   ports.CredentialStore
	tokens  ports.TokenIssuer
	limiter LoginLimiter
	log     zerolog.Logger
}

// NewAuthService builds an AuthService. limiter may be nil, in which case no
// throttling is applied.
func NewAuthService(store ports.CredentialStore, tokens ports.TokenIssuer, limiter LoginLimiter, log zerolog.Logger) *AuthService {
	return &AuthService{store: store, tokens: tokens, limiter: limiter, log: log}
}

// Login validates a credential pair and issues a token. Unknown email, wrong
// secret, and inactive account all surface as ErrInvalidCredentials so the
// response cannot be used to enumerate identities; the real reason is logged.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Employee, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		blocked, err := s.limiter.TooManyAttempts(ctx, email)
		if err != nil {
			// Throttle backend faults fail open; the credential check below
			// still decides the outcome.
			s.log.Warn().Err(err).Msg("login limiter unavailable")
		} else if blocked {
			s.log.Warn().Str("email", email).Msg("login throttled")
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	subjectID, err := s.store.Authenticate(ctx, email, password)
	if err != nil {
		s.recordFailure(ctx, email, "credential check failed", err)
		return "", nil, domain.ErrInvalidCredentials
	}

	emp, err := s.store.ResolveSubject(ctx, subjectID)
	if err != nil {
		s.recordFailure(ctx, email, "subject did not resolve", err)
		return "", nil, domain.ErrInvalidCredentials
	}

	if !emp.IsActive {
		s.recordFailure(ctx, email, "inactive account", domain.ErrInactiveAccount)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(subjectID)
	if err != nil {
		return "", nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("failed to reset login limiter")
		}
	}

	s.log.Info().Str("employee_id", emp.ID).Str("role", emp.Role).Msg("login succeeded")
	return token, emp, nil
}

// Register provisions a new employee through the credential store and issues
// a token for the fresh account.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, *domain.Employee, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if in.Role == "" {
		in.Role = domain.RoleEmployee
	}
	if !domain.ValidRole(in.Role) {
		return "", nil, domain.ErrInvalidCredentials
	}

	emp, subjectID, err := s.store.Register(ctx, in)
	if err != nil {
		s.log.Warn().Err(err).Str("email", in.Email).Msg("registration rejected")
		return "", nil, err
	}

	token, err := s.tokens.Issue(subjectID)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("employee_id", emp.ID).Str("role", emp.Role).Msg("employee registered")
	return token, emp, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email, reason string, cause error) {
	s.log.Warn().Err(cause).Str("email", email).Str("reason", reason).Msg("login rejected")
	if s.limiter != nil {
		if err := s.limiter.RecordFailure(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("failed to record login failure")
		}
	}
}
