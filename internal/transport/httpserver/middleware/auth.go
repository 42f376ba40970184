package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"volunteer-tracker-go/internal/config"
	"volunteer-tracker-go/internal/domain/user"
	"volunteer-tracker-go/pkg/logger"
)

var ErrInvalidToken = errors.New("invalid token")

// Verifier turns a bearer token into the identity provider's view of the caller.
type Verifier interface {
	Verify(ctx context.Context, token string) (user.Identity, error)
}

type Authenticator struct {
	verifier Verifier
	skipAuth bool
	mockUser user.Identity
	log      logger.Logger
}

type contextKey int

const (
	identityKey contextKey = iota
	accountKey
)

func NewAuthenticator(cfg config.AuthConfig, verifier Verifier, log logger.Logger) *Authenticator {
	return &Authenticator{
		verifier: verifier,
		skipAuth: cfg.SkipAuth,
		mockUser: user.Identity{
			ID:    strings.TrimSpace(cfg.MockUserID),
			Email: strings.TrimSpace(cfg.MockUserEmail),
		},
		log: log,
	}
}

// NewVerifier picks the verifier for the configured AUTH_MODE.
func NewVerifier(cfg config.AuthConfig) (Verifier, error) {
	switch cfg.Mode {
	case config.AuthModeJWT:
		return NewJWTVerifier(cfg)
	case config.AuthModeRemote, "":
		return NewRemoteVerifier(cfg), nil
	default:
		return nil, errors.New("unsupported auth mode " + cfg.Mode)
	}
}

func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.skipAuth {
			if a.mockUser.ID == "" {
				writeError(w, http.StatusInternalServerError, "auth_not_configured", "auth mock user id not configured")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), a.mockUser)))
			return
		}

		if a.verifier == nil {
			writeError(w, http.StatusInternalServerError, "auth_not_configured", "auth not configured")
			return
		}

		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w)
			return
		}

		identity, err := a.verifier.Verify(r.Context(), token)
		if err != nil {
			if !errors.Is(err, ErrInvalidToken) {
				a.log.InternalError("auth: verify token failed", err, "path", r.URL.Path)
			}
			unauthorized(w)
			return
		}
		if identity.ID == "" {
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
}

func WithIdentity(ctx context.Context, identity user.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func IdentityFromContext(ctx context.Context) (user.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(user.Identity)
	if !ok || identity.ID == "" {
		return user.Identity{}, false
	}
	return identity, true
}

// WithUser attaches the caller's local account.
func WithUser(ctx context.Context, account *user.User) context.Context {
	return context.WithValue(ctx, accountKey, account)
}

func UserFromContext(ctx context.Context) (*user.User, bool) {
	account, ok := ctx.Value(accountKey).(*user.User)
	if !ok || account == nil {
		return nil, false
	}
	return account, true
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
