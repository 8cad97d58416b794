package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/ErlanBelekov/jobboard/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed        = errors.New("token is malformed")
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrExpired          = errors.New("token is expired")
)

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Manager issues and verifies HS256 identity tokens. A zero ttl issues
// tokens that never expire.
type Manager struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewManager(key []byte, ttl time.Duration) *Manager {
	return &Manager{key: key, ttl: ttl, now: time.Now}
}

func (m *Manager) Issue(c domain.Claims) (string, error) {
	now := m.now()
	rc := jwt.RegisteredClaims{
		Subject:  c.UserID,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if m.ttl > 0 {
		rc.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{RegisteredClaims: rc, Email: c.Email})
	signed, err := t.SignedString(m.key)
	if err != nil {
		return "", fmt.Errorf("sign jwt: %w", err)
	}
	return signed, nil
}

func (m *Manager) Verify(raw string) (domain.Claims, error) {
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return domain.Claims{}, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.Claims{}, ErrExpired
		default:
			return domain.Claims{}, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
	}

	if c.Subject == "" || c.Email == "" {
		return domain.Claims{}, ErrMalformed
	}
	return domain.Claims{UserID: c.Subject, Email: c.Email}, nil
}
