// Package token is the codec for the stateless identity claim: it signs and
// verifies the bearer token every protected request carries. There is no
// refresh flow — expiry forces re-authentication.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/loopcrm/crm-backend/internal/core/domain"
)

var ErrInvalidToken = errors.New("invalid token")
var ErrExpiredToken = errors.New("token expired")

const defaultTTL = 24 * time.Hour

// Claims is the signed payload: subject id, role, issued-at and expiry.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues and verifies HS256-signed tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a Manager. A non-positive ttl falls back to 24h.
func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given user id and role.
func (m *Manager) Issue(userID string, role domain.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify parses and validates a raw token string. It returns ErrExpiredToken
// when the signature is fine but the token is past its expiry, and
// ErrInvalidToken for every other failure (bad signature, wrong algorithm,
// malformed input).
func (m *Manager) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Identity converts the claims into the identity threaded through requests.
func (c *Claims) Identity() domain.Identity {
	return domain.Identity{UserID: c.Subject, Role: c.Role}
}
