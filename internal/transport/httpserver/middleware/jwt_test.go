package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"volunteer-tracker-go/internal/config"
)

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims sessionClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestJWTVerifierAcceptsValidToken(t *testing.T) {
	verifier, err := NewJWTVerifier(config.AuthConfig{JWTSecret: "secret", JWTAudience: "authenticated"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	token := signToken(t, "secret", jwt.SigningMethodHS256, sessionClaims{
		Email: "parent@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	identity, err := verifier.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if identity.ID != "user-1" || identity.Email != "parent@example.com" {
		t.Fatalf("unexpected identity %+v", identity)
	}
}

func TestJWTVerifierRejects(t *testing.T) {
	verifier, err := NewJWTVerifier(config.AuthConfig{JWTSecret: "secret"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	valid := jwt.RegisteredClaims{Subject: "u", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	cases := map[string]string{
		"wrong secret": signToken(t, "other", jwt.SigningMethodHS256, sessionClaims{RegisteredClaims: valid}),
		"expired": signToken(t, "secret", jwt.SigningMethodHS256, sessionClaims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}}),
		"no expiry":  signToken(t, "secret", jwt.SigningMethodHS256, sessionClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u"}}),
		"no subject": signToken(t, "secret", jwt.SigningMethodHS256, sessionClaims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: valid.ExpiresAt}}),
		"wrong alg":  signToken(t, "secret", jwt.SigningMethodHS512, sessionClaims{RegisteredClaims: valid}),
		"garbage":    "not-a-token",
	}

	for name, token := range cases {
		if _, err := verifier.Verify(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}

func TestNewJWTVerifierRequiresSecret(t *testing.T) {
	if _, err := NewJWTVerifier(config.AuthConfig{}); err == nil {
		t.Fatalf("expected error without secret")
	}
}
