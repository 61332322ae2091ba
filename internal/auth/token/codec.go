// Package token implements the signed bearer-token codec: compact JWS
// (HS256) carrying subject, issued-at, and expiry claims.
package token

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// minKeyBytes is the minimum decoded key length (256 bits) for HMAC-SHA-256.
const minKeyBytes = 32

// leeway is the tolerated clock skew when comparing the expiry claim to the
// current time. A token is rejected once now >= expires_at + leeway.
const leeway = 30 * time.Second

const defaultTTL = 24 * time.Hour

var (
	// ErrMalformed covers tokens that are not three base64url segments with
	// decodable claims.
	ErrMalformed = errors.New("malformed token")

	// ErrExpired is returned when the signature verifies but the expiry
	// claim is in the past.
	ErrExpired = errors.New("token expired")

	// ErrSignatureInvalid is returned when the recomputed signature over
	// header.payload differs from the token's signature segment, or the
	// signing algorithm is not HS256.
	ErrSignatureInvalid = errors.New("invalid token signature")
)

// Codec issues and verifies tokens with a single symmetric key. The key is
// fixed at construction and safe for unsynchronized concurrent reads.
type Codec struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewCodec builds a codec from a base64-encoded secret. The decoded secret
// must be at least 256 bits; there is no default. A non-positive ttl falls
// back to 24 hours.
func NewCodec(base64Secret string, ttl time.Duration) (*Codec, error) {
	key, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return nil, fmt.Errorf("decode signing secret: %w", err)
	}
	if len(key) < minKeyBytes {
		return nil, fmt.Errorf("signing secret is %d bytes after decoding, need at least %d", len(key), minKeyBytes)
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{key: key, ttl: ttl, now: time.Now}, nil
}

// Issue mints a signed token with subject=handle, iat=now, exp=now+TTL.
func (c *Codec) Issue(subject string) (string, error) {
	now := c.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
}

// ParseAndVerify is the sole validation gate: it checks structure, signature,
// and expiry in one call and returns only the subject claim. Callers must
// never branch on partially validated tokens.
func (c *Codec) ParseAndVerify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return c.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(leeway),
		jwt.WithTimeFunc(func() time.Time { return c.now() }),
	)
	if err != nil {
		return "", classify(err)
	}
	if claims.Subject == "" {
		return "", ErrMalformed
	}
	return claims.Subject, nil
}

// classify maps the library's error taxonomy onto ours. Expiry is reported
// only for tokens whose signature verified; tampering always surfaces as
// ErrSignatureInvalid.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrSignatureInvalid
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	default:
		return ErrMalformed
	}
}
