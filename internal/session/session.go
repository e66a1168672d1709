// Package session issues and resolves signed bearer tokens.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/and161185/epic-events/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the lifetime of an issued session.
const DefaultTTL = 24 * time.Hour

var (
	// ErrExpired is returned for a well-formed token past its expiry.
	ErrExpired = errors.New("session expired")
	// ErrInvalid is returned for a token that is malformed or has a bad signature.
	ErrInvalid = errors.New("session invalid")
)

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs tokens with an HMAC key.
type Codec struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewCodec constructs a codec. A non-positive ttl falls back to DefaultTTL.
func NewCodec(key []byte, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{key: key, ttl: ttl, now: time.Now}
}

// Issue creates a signed HS256 token for the given subject and role.
func (c *Codec) Issue(userID uuid.UUID, role model.Role) (model.Session, error) {
	now := c.now()
	exp := now.Add(c.ttl)
	cl := claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(c.key)
	if err != nil {
		return model.Session{}, fmt.Errorf("sign: %w", err)
	}
	return model.Session{Token: signed, ExpiresAt: cl.ExpiresAt.Time}, nil
}

// Resolve verifies token and returns its claims. It fails with ErrExpired or ErrInvalid.
func (c *Codec) Resolve(token string) (model.Claims, error) {
	var cl claims
	_, err := jwt.ParseWithClaims(token, &cl, func(*jwt.Token) (any, error) {
		return c.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return model.Claims{}, ErrExpired
	case err != nil:
		return model.Claims{}, ErrInvalid
	}

	id, err := uuid.FromString(cl.Subject)
	if err != nil {
		return model.Claims{}, ErrInvalid
	}
	return model.Claims{UserID: id, Role: model.Role(cl.Role), ExpiresAt: cl.ExpiresAt.Time}, nil
}
