package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/bakehouse/bakehouse-go/internal/crypto"
)

type contextKey string

const adminKey contextKey = "admin"

// JWTAuth returns middleware guarding the admin mutation routes. It
// validates a Bearer token from the Authorization header and stores the
// authenticated admin username in the request context.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				if errors.Is(err, crypto.ErrTokenExpired) {
					writeJSONError(w, http.StatusUnauthorized, "token expired")
					return
				}
				writeJSONError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), adminKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFromContext extracts the authenticated admin username from the
// request context.
func AdminFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(adminKey).(string)
	return name, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
