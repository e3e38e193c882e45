package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/common"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/domain/user"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/http/response"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/security"
)

type contextKey string

const contextUserKey contextKey = "user"

// AuthMiddleware resolves the bearer token to a full user record so handlers
// always see a live identity, not just token claims.
type AuthMiddleware struct {
	tokens *security.TokenProvider
	users  user.Repository
}

func NewAuthMiddleware(tokens *security.TokenProvider, users user.Repository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Authenticate requires a valid bearer token referencing an existing user.
// Every failure mode collapses to the same 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		account, err := m.resolve(r)
		if err != nil {
			response.Error(w, common.NewError(common.CodeUnauthorized, "Not authorized", err))
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), account)))
	})
}

// OptionalAuthenticate resolves an identity when a valid token is present and
// proceeds without one otherwise.
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if account, err := m.resolve(r); err == nil {
			r = r.WithContext(withUser(r.Context(), account))
		}
		next.ServeHTTP(w, r)
	})
}

func (m *AuthMiddleware) resolve(r *http.Request) (*user.User, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, common.NewError(common.CodeUnauthorized, "missing authorization header", nil)
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, common.NewError(common.CodeUnauthorized, "invalid authorization header", nil)
	}
	userID, err := m.tokens.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, common.NewError(common.CodeUnauthorized, "invalid token", err)
	}
	account, err := m.users.GetByID(r.Context(), userID)
	if err != nil {
		return nil, common.NewError(common.CodeUnauthorized, "user no longer exists", err)
	}
	return account, nil
}

// RequireRole passes only identities holding one of the permitted roles:
// 401 without an identity, 403 with the wrong one.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account, ok := UserFromContext(r.Context())
			if !ok {
				response.Error(w, common.NewError(common.CodeUnauthorized, "Not authorized", nil))
				return
			}
			for _, role := range roles {
				if account.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			response.Error(w, common.NewError(common.CodeForbidden, "User not authorized to access this route", nil))
		})
	}
}

func withUser(ctx context.Context, account *user.User) context.Context {
	return context.WithValue(ctx, contextUserKey, account)
}

func UserFromContext(ctx context.Context) (*user.User, bool) {
	account, ok := ctx.Value(contextUserKey).(*user.User)
	return account, ok && account != nil
}
