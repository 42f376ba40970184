package middleware

import (
	"context"
	"net/http"

	"volunteer-tracker-go/internal/domain/user"
	"volunteer-tracker-go/pkg/logger"
)

type AccountProvisioner interface {
	Provision(ctx context.Context, identity user.Identity) (*user.User, error)
}

// LoadAccount resolves the identity to its local user once per request.
// Roles are always read from the store, never from the token.
func LoadAccount(accounts AccountProvisioner, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				unauthorized(w)
				return
			}

			reqLog := logger.FromContext(r.Context(), log)
			account, err := accounts.Provision(r.Context(), identity)
			if err != nil {
				reqLog.InternalError("auth: load account failed", err, "user_id", identity.ID)
				writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
				return
			}
			if account.IsArchived() {
				reqLog.BusinessError("auth: archived account", user.ErrAlreadyArchived, "user_id", account.ID)
				writeError(w, http.StatusForbidden, "account_archived", "account is archived")
				return
			}

			ctx := WithUser(r.Context(), account)
			ctx = logger.IntoContext(ctx, reqLog.With("user_id", account.ID, "role", account.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireRole(role user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account, ok := UserFromContext(r.Context())
			if !ok {
				unauthorized(w)
				return
			}
			if account.Role != role {
				writeError(w, http.StatusForbidden, "forbidden", "requires "+string(role)+" role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
