package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	apperrors "drportal/pkg/errors"
	httputil "drportal/pkg/http"
	"drportal/pkg/logger"
)

type contextKey string

const principalKey contextKey = "principal_email"

// RoleSource answers role lookups for the admin gate. Implemented by
// the users service.
type RoleSource interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// PrincipalEmail returns the authenticated caller's email, or "" when
// the request skipped token verification.
func PrincipalEmail(ctx context.Context) string {
	if email, ok := ctx.Value(principalKey).(string); ok {
		return email
	}
	return ""
}

// WithPrincipal is exported for handler tests.
func WithPrincipal(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, principalKey, email)
}

type Middleware struct {
	tokens *TokenManager
	roles  RoleSource
	log    *logger.Logger
}

func NewMiddleware(tokens *TokenManager, roles RoleSource, log *logger.Logger) *Middleware {
	return &Middleware{
		tokens: tokens,
		roles:  roles,
		log:    log,
	}
}

// RequireToken rejects requests without a bearer token. A missing
// header is unauthorized; a present but invalid token is forbidden.
func (m *Middleware) RequireToken(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		header := r.Header.Get("Authorization")
		if header == "" {
			if err := httputil.WriteError(w, apperrors.Unauthorized("unauthorized access")); err != nil {
				m.log.Error("failed to write JSON response", "middleware", "RequireToken", "error", err)
			}
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		email, err := m.tokens.Verify(tokenString)
		if err != nil {
			if writeErr := httputil.WriteError(w, err); writeErr != nil {
				m.log.Error("failed to write JSON response", "middleware", "RequireToken", "error", writeErr)
			}
			return
		}

		ctx := WithPrincipal(r.Context(), email)
		next(w, r.WithContext(ctx), ps)
	}
}

// RequireAdmin stacks on RequireToken and additionally checks the
// caller's stored role.
func (m *Middleware) RequireAdmin(next httprouter.Handle) httprouter.Handle {
	return m.RequireToken(func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		email := PrincipalEmail(r.Context())

		isAdmin, err := m.roles.IsAdmin(r.Context(), email)
		if err != nil {
			m.log.Error("admin role lookup failed", "email", email, "error", err)
			if writeErr := httputil.WriteError(w, err); writeErr != nil {
				m.log.Error("failed to write JSON response", "middleware", "RequireAdmin", "error", writeErr)
			}
			return
		}
		if !isAdmin {
			if writeErr := httputil.WriteError(w, apperrors.Forbidden("forbidden access")); writeErr != nil {
				m.log.Error("failed to write JSON response", "middleware", "RequireAdmin", "error", writeErr)
			}
			return
		}

		next(w, r, ps)
	})
}
