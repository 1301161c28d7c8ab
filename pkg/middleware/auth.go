package middleware

import (
	"context"
	"net/http"
	"strings"

	"quickbites/pkg/auth"
	"quickbites/pkg/response"
)

// userIDKey is the unexported context key for the authenticated user id.
type userIDKey struct{}

// UserID extracts the trusted identity resolved by Auth from ctx.
// The second return is false when the request was not authenticated.
func UserID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDKey{}).(uint)
	return id, ok
}

// WithUserID stores a user id in ctx. Exposed for tests that call
// handlers directly without the middleware.
func WithUserID(ctx context.Context, id uint) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// Auth verifies the Bearer token and stores the user id it carries in the
// request context. Handlers below this middleware read the identity via
// UserID(ctx) and never touch the token themselves.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const prefix = "Bearer "

		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, prefix) {
			response.Unauthorized(w, "Missing token")
			return
		}

		token := strings.TrimPrefix(header, prefix)

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w, "Invalid token")
			return
		}

		ctx := WithUserID(r.Context(), claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
