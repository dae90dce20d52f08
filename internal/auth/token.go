package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTokenValidity = 2 * time.Hour

type Claims struct {
	AdminID int `json:"id"`
	jwt.RegisteredClaims
}

// TokenIssuer issues and verifies stateless HS256 session tokens.
// A token stays valid until its expiry; there is no revocation.
type TokenIssuer struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

type TokenIssuerOption func(*TokenIssuer)

// WithClock replaces the wall clock, used for both issuing and verifying.
func WithClock(now func() time.Time) TokenIssuerOption {
	return func(ti *TokenIssuer) {
		ti.now = now
	}
}

func NewTokenIssuer(secret string, validity time.Duration, opts ...TokenIssuerOption) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("token signing secret cannot be empty")
	}
	if validity <= 0 {
		validity = DefaultTokenValidity
	}
	ti := &TokenIssuer{
		secret:   []byte(secret),
		validity: validity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(ti)
	}
	return ti, nil
}

func (ti *TokenIssuer) Issue(adminID int) (string, error) {
	now := ti.now()
	claims := Claims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(adminID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.validity)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Verify returns the admin id bound to the token. Bad signatures, malformed
// tokens and expired tokens all yield ErrInvalidToken.
func (ti *TokenIssuer) Verify(token string) (int, error) {
	if token == "" {
		return 0, ErrMissingToken
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(*jwt.Token) (any, error) {
			return ti.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(ti.now),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.AdminID <= 0 {
		return 0, fmt.Errorf("%w: no subject", ErrInvalidToken)
	}

	return claims.AdminID, nil
}
