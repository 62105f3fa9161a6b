package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/unitedpets/pkg/utils"
)

type ContextKey string

const (
	EmailKey   ContextKey = "email"
	SubjectKey ContextKey = "subject"
)

type RoleChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type Middleware struct {
	verifier Verifier
	roles    RoleChecker
}

func NewMiddleware(verifier Verifier, roles RoleChecker) *Middleware {
	return &Middleware{
		verifier: verifier,
		roles:    roles,
	}
}

// Authenticate rejects requests without a bearer token (401) or with one the
// verifier does not accept (403). An unreachable verifier is a 500. The
// verified email lands in the context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		identity, err := m.verifier.Verify(r.Context(), token)
		if errors.Is(err, ErrVerifierUnavailable) {
			zap.L().Error("identity verifier unavailable", zap.Error(err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if err != nil {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}

		ctx := context.WithValue(r.Context(), EmailKey, identity.Email)
		ctx = context.WithValue(ctx, SubjectKey, identity.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after Authenticate.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := EmailFrom(r.Context())
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		isAdmin, err := m.roles.IsAdmin(r.Context(), email)
		if err != nil {
			zap.L().Error("can't check admin role", zap.String("email", email), zap.Error(err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if !isAdmin {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func EmailFrom(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailKey).(string)
	return email, ok && email != ""
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
