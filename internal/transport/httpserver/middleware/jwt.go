package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"volunteer-tracker-go/internal/config"
	"volunteer-tracker-go/internal/domain/user"
)

// JWTVerifier checks HS256 session tokens issued by the identity provider
// without a network round trip.
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func NewJWTVerifier(cfg config.AuthConfig) (*JWTVerifier, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("AUTH_JWT_SECRET is required for jwt auth mode")
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.JWTIssuer != "" {
		options = append(options, jwt.WithIssuer(cfg.JWTIssuer))
	}
	if cfg.JWTAudience != "" {
		options = append(options, jwt.WithAudience(cfg.JWTAudience))
	}

	return &JWTVerifier{
		secret: []byte(cfg.JWTSecret),
		parser: jwt.NewParser(options...),
	}, nil
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (user.Identity, error) {
	claims := &sessionClaims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return user.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return user.Identity{}, ErrInvalidToken
	}

	return user.Identity{
		ID:    claims.Subject,
		Email: claims.Email,
	}, nil
}
