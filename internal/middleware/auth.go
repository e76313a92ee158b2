package middleware

import (
	"context"
	"net/http"
	"strings"

	"englearn/internal/domain"
	"englearn/internal/service"

	"go.uber.org/zap"
)

type contextKey string

const userKey contextKey = "user"

// UserFrom extracts the authenticated user from a request context
func UserFrom(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(userKey).(*domain.User)
	return u, ok
}

// RequireAuth rejects requests without a valid login token. The token
// is taken from the Authorization header ("Bearer <token>").
func RequireAuth(authService *service.AuthService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				unauthorized(w)
				return
			}

			user, err := authService.UserByToken(token)
			if err != nil {
				logger.Debug("Token lookup failed", zap.Error(err))
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"success":false,"error":"login required"}`))
}
