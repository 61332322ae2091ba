package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskvault/taskvault-api/internal/auth/password"
	"github.com/taskvault/taskvault-api/internal/auth/token"
	"github.com/taskvault/taskvault-api/internal/core/domain"
	"github.com/taskvault/taskvault-api/internal/core/ports"
)

// LoginThrottle abstracts the failed-attempt limiter (Redis). All methods
// are best-effort: the service fails open when the limiter errors.
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// AuthService implements signup and login on top of the credential store,
// the password hasher, and the token codec.
type AuthService struct {
	users    ports.UserRepository
	codec    *token.Codec
	throttle LoginThrottle
	audit    ports.AuditRecorder
	log      zerolog.Logger
}

// NewAuthService wires the login/signup orchestrator. throttle and audit
// may be nil; both features are then disabled.
func NewAuthService(
	users ports.UserRepository,
	codec *token.Codec,
	throttle LoginThrottle,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		codec:    codec,
		throttle: throttle,
		audit:    audit,
		log:      log,
	}
}

// Signup creates a new identity. Conflicts are detected with explicit
// existence queries (username first, then email) rather than by catching a
// uniqueness violation. No token is issued.
func (s *AuthService) Signup(ctx context.Context, username, email, pw string, roleNames []string) (*domain.User, error) {
	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUsernameTaken
	}

	inUse, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, domain.ErrEmailTaken
	}

	hash, err := password.Hash(pw)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Roles:        domain.ResolveRoles(roleNames),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.record(domain.AuthEvent{Username: username, Action: domain.AuditSignup, At: now})
	s.log.Info().Str("username", username).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and mints a token. Unknown handle and
// wrong password both surface as ErrInvalidCredentials so the response
// never reveals which field was wrong.
func (s *AuthService) Login(ctx context.Context, username, pw string) (string, *domain.User, error) {
	if s.throttle != nil {
		blocked, err := s.throttle.TooManyFailures(ctx, username)
		if err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("login throttle check failed, proceeding")
		} else if blocked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, s.loginFailed(ctx, username)
		}
		return "", nil, err
	}

	if !password.Verify(pw, user.PasswordHash) {
		return "", nil, s.loginFailed(ctx, username)
	}

	tok, err := s.codec.Issue(user.Username)
	if err != nil {
		return "", nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("failed to reset login throttle")
		}
	}
	s.record(domain.AuthEvent{Username: username, Action: domain.AuditLoginSuccess, At: time.Now().UTC()})
	return tok, user, nil
}

func (s *AuthService) loginFailed(ctx context.Context, username string) error {
	if s.throttle != nil {
		if err := s.throttle.RecordFailure(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("failed to record login failure")
		}
	}
	s.record(domain.AuthEvent{Username: username, Action: domain.AuditLoginFailure, At: time.Now().UTC()})
	return domain.ErrInvalidCredentials
}

func (s *AuthService) record(event domain.AuthEvent) {
	if s.audit != nil {
		s.audit.Record(event)
	}
}
