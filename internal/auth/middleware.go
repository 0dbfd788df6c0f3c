package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const employeeContextKey contextKey = "employee"

// Middleware guards the intranet routes with a bearer-token check against
// the identity provider's signing secret.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
				return
			}
			tokenStr := strings.TrimPrefix(header, "Bearer ")
			claims, err := ValidateToken(secret, tokenStr)
			if err != nil {
				http.Error(w, `{"error":"invalid token"}`, http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), employeeContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetEmployee(ctx context.Context) *Claims {
	claims, _ := ctx.Value(employeeContextKey).(*Claims)
	return claims
}
