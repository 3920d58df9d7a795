// Package auth issues and verifies the session tokens that guard the API.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultTTL is how long a session stays valid
	DefaultTTL = 30 * 24 * time.Hour

	issuer  = "lifedash"
	subject = "owner"
)

var (
	// ErrInvalidPassword is returned when the login password does not match
	ErrInvalidPassword = errors.New("invalid password")

	// ErrInvalidToken is returned for malformed, expired or forged tokens
	ErrInvalidToken = errors.New("invalid token")
)

// Issuer checks the shared password and signs HS256 session tokens
type Issuer struct {
	password string
	secret   []byte
	ttl      time.Duration

	// Now is the clock used for issuing and verifying; defaults to time.Now
	Now func() time.Time
}

// NewIssuer creates a new Issuer. A non-positive ttl uses DefaultTTL.
func NewIssuer(password, secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{
		password: password,
		secret:   []byte(secret),
		ttl:      ttl,
		Now:      time.Now,
	}
}

// TTL returns the session lifetime
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Login verifies the password and returns a signed token with its expiry
func (i *Issuer) Login(password string) (string, time.Time, error) {
	if i.password == "" || subtle.ConstantTimeCompare([]byte(password), []byte(i.password)) != 1 {
		return "", time.Time{}, ErrInvalidPassword
	}
	return i.Issue()
}

// Issue signs a new session token
func (i *Issuer) Issue() (string, time.Time, error) {
	now := i.Now()
	expires := now.Add(i.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expires, nil
}

// Verify parses the token and checks signature, issuer and expiry
func (i *Issuer) Verify(tokenString string) error {
	_, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return i.secret, nil
		},
		jwt.WithIssuer(issuer),
		jwt.WithSubject(subject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.Now),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value
func BearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}
