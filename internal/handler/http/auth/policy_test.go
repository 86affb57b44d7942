package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestStaticTokenPolicy(t *testing.T) {
	policy := &StaticTokenPolicy{Token: "s3cret-admin-token"}

	if err := policy.Authenticate("s3cret-admin-token"); err != nil {
		t.Errorf("valid token rejected: %v", err)
	}
	if err := policy.Authenticate("wrong"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestStaticTokenPolicyEmptyConfiguredToken(t *testing.T) {
	policy := &StaticTokenPolicy{}

	// An unset secret must never authenticate an empty presented token.
	if err := policy.Authenticate(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func signJWT(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestJWTPolicy(t *testing.T) {
	secret := []byte("0123456789abcdef0123456789abcdef")
	policy := &JWTPolicy{Secret: secret}

	valid := signJWT(t, secret, jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	if err := policy.Authenticate(valid); err != nil {
		t.Errorf("valid token rejected: %v", err)
	}

	expired := signJWT(t, secret, jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	if err := policy.Authenticate(expired); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expired token accepted: %v", err)
	}

	wrongRole := signJWT(t, secret, jwt.MapClaims{
		"sub":  "reader",
		"role": "viewer",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	if err := policy.Authenticate(wrongRole); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("non-admin token accepted: %v", err)
	}

	wrongKey := signJWT(t, []byte("another-secret-value-entirely!!!"), jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	if err := policy.Authenticate(wrongKey); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("token with wrong signature accepted: %v", err)
	}
}

func TestFromEnvStatic(t *testing.T) {
	t.Setenv("AUTH_MODE", "")
	t.Setenv("ADMIN_TOKEN", "configured-admin-token-value-123")

	policy, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if _, ok := policy.(*StaticTokenPolicy); !ok {
		t.Errorf("expected StaticTokenPolicy, got %T", policy)
	}
}

func TestFromEnvJWT(t *testing.T) {
	t.Setenv("AUTH_MODE", "jwt")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")

	policy, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if _, ok := policy.(*JWTPolicy); !ok {
		t.Errorf("expected JWTPolicy, got %T", policy)
	}
}

func TestFromEnvUnknownMode(t *testing.T) {
	t.Setenv("AUTH_MODE", "oauth2")

	if _, err := FromEnv(); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestFromEnvMissingCredential(t *testing.T) {
	t.Setenv("AUTH_MODE", "static")
	t.Setenv("ADMIN_TOKEN", "")

	if _, err := FromEnv(); err == nil {
		t.Error("expected error for missing ADMIN_TOKEN")
	}
}
