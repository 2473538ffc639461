package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/verandah/pkg/auth"
	"github.com/shashiranjanraj/verandah/pkg/response"
)

type userIDKey struct{}
type roleKey struct{}

// Auth validates the bearer token and stores the caller's user id and role
// in the request context. Requests without a valid token get a 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromHeader(r)
		if !ok {
			response.Unauthorized(w, "Not authorized, no token")
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

// OptionalAuth stores the caller's identity when a valid token is present
// but lets anonymous requests through. Used on public menu/table listings.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := claimsFromHeader(r); ok {
			r = r.WithContext(withClaims(r.Context(), claims))
		}
		next.ServeHTTP(w, r)
	})
}

func claimsFromHeader(r *http.Request) (*auth.Claims, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return nil, false
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func withClaims(ctx context.Context, claims *auth.Claims) context.Context {
	ctx = context.WithValue(ctx, userIDKey{}, claims.UserID)
	return context.WithValue(ctx, roleKey{}, claims.Role)
}

// UserIDFromCtx returns the authenticated user's id, if any.
func UserIDFromCtx(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(userIDKey{}).(uint)
	return id, ok
}

// RoleFromCtx returns the authenticated user's role, if any.
func RoleFromCtx(r *http.Request) (string, bool) {
	role, ok := r.Context().Value(roleKey{}).(string)
	return role, ok
}
