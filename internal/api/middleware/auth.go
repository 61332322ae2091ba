package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskvault/taskvault-api/internal/api/metrics"
	"github.com/taskvault/taskvault-api/internal/auth/token"
	"github.com/taskvault/taskvault-api/internal/core/domain"
	"github.com/taskvault/taskvault-api/internal/core/ports"
)

// principalContextKey is the echo context key the authenticated principal is
// stored under.
const principalContextKey = "auth.principal"

// bearerPrefix is matched case-sensitively, single trailing space.
const bearerPrefix = "Bearer "

// Authenticate runs once per request, before any endpoint logic. It extracts
// the bearer token, verifies it, re-resolves the subject against the
// credential store (roles may have changed since issuance), and attaches the
// resulting principal to the request context.
//
// It never aborts the pipeline: a missing, malformed, expired, or forged
// token and a deleted subject all simply leave the request unauthenticated,
// so public endpoints keep working and every failure subtype collapses into
// the same downstream outcome.
func Authenticate(codec *token.Codec, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := bearerToken(c.Request())
			if !ok {
				return next(c)
			}

			subject, err := codec.ParseAndVerify(raw)
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues(tokenFailureReason(err)).Inc()
				log.Debug().Err(err).Str("path", c.Path()).Msg("bearer token rejected")
				return next(c)
			}

			user, err := users.FindByUsername(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.TokenValidationsTotal.WithLabelValues(metrics.TokenUnknownSubject).Inc()
					log.Debug().Str("subject", subject).Msg("token subject no longer exists")
				} else {
					log.Warn().Err(err).Str("subject", subject).Msg("identity lookup failed")
				}
				return next(c)
			}

			metrics.TokenValidationsTotal.WithLabelValues(metrics.TokenValid).Inc()
			SetPrincipal(c, domain.NewPrincipal(user))
			return next(c)
		}
	}
}

// bearerToken extracts the token from the Authorization header. An absent
// header or one without the exact "Bearer " scheme means "no token present".
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	tok := header[len(bearerPrefix):]
	if tok == "" {
		return "", false
	}
	return tok, true
}

func tokenFailureReason(err error) string {
	switch {
	case errors.Is(err, token.ErrExpired):
		return metrics.TokenExpired
	case errors.Is(err, token.ErrSignatureInvalid):
		return metrics.TokenSignatureInvalid
	default:
		return metrics.TokenMalformed
	}
}

// SetPrincipal attaches the authenticated principal to the request context.
func SetPrincipal(c echo.Context, p domain.Principal) {
	c.Set(principalContextKey, p)
}

// PrincipalFrom returns the principal attached by Authenticate, if any.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalContextKey).(domain.Principal)
	return p, ok
}
