// Package auth guards the privileged admin surface. Every mutating route
// shares one bearer credential, checked by a Policy implementation: a static
// shared secret (the default) or an HS256 JWT.
package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors for authentication failures.
var (
	// ErrMissingToken indicates the Authorization header was absent or not
	// a bearer token.
	ErrMissingToken = errors.New("missing bearer token")

	// ErrInvalidToken indicates the presented credential did not verify.
	ErrInvalidToken = errors.New("invalid token")
)

// Policy verifies a bearer credential extracted from the Authorization
// header.
type Policy interface {
	Authenticate(token string) error
}

// StaticTokenPolicy compares the presented token against a single shared
// secret with ordinary string equality. Acceptable for a single-admin
// personal surface; swap in JWTPolicy for anything stronger.
type StaticTokenPolicy struct {
	Token string
}

func (p *StaticTokenPolicy) Authenticate(token string) error {
	if p.Token == "" || token != p.Token {
		return ErrInvalidToken
	}
	return nil
}

// JWTPolicy verifies HS256-signed JWTs carrying an admin role claim.
type JWTPolicy struct {
	Secret []byte
}

func (p *JWTPolicy) Authenticate(token string) error {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return p.Secret, nil
	})
	if err != nil || !tok.Valid {
		return ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidToken
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return ErrInvalidToken
	}
	if role, ok := claims["role"].(string); !ok || role != "admin" {
		return ErrInvalidToken
	}
	return nil
}

// FromEnv builds the policy selected by AUTH_MODE: "jwt" verifies against
// JWT_SECRET, anything else (including unset) compares against ADMIN_TOKEN.
func FromEnv() (Policy, error) {
	switch mode := os.Getenv("AUTH_MODE"); mode {
	case "jwt":
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			return nil, errors.New("JWT_SECRET not set")
		}
		return &JWTPolicy{Secret: []byte(secret)}, nil
	case "", "static":
		token := os.Getenv("ADMIN_TOKEN")
		if token == "" {
			return nil, errors.New("ADMIN_TOKEN not set")
		}
		return &StaticTokenPolicy{Token: token}, nil
	default:
		return nil, fmt.Errorf("unknown auth mode: %q", mode)
	}
}
