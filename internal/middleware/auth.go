package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ideaboard/ideaboard-go/internal/crypto"
)

type contextKey string

const userIDKey contextKey = "userID"

// TokenCookie is the session cookie name set by the auth handlers.
const TokenCookie = "token"

// RequireAuth returns middleware that rejects requests without a valid
// session token. The token is read from the session cookie, falling back to
// an Authorization Bearer header.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				writeJSONError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth resolves a viewer identity when a valid token is present and
// passes the request through anonymously otherwise. Read endpoints use this
// to compute viewer-dependent fields such as hasUpvoted.
func OptionalAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := tokenFromRequest(r); token != "" {
				if claims, err := crypto.ValidateToken(token, secret); err == nil {
					ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the request
// context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// ViewerFromContext returns the authenticated user ID as an optional viewer,
// nil for anonymous requests.
func ViewerFromContext(ctx context.Context) *int64 {
	if id, ok := UserIDFromContext(ctx); ok {
		return &id
	}
	return nil
}

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(TokenCookie); err == nil && c.Value != "" {
		return c.Value
	}

	authHeader := r.Header.Get("Authorization")
	if token, found := strings.CutPrefix(authHeader, "Bearer "); found {
		return token
	}
	return ""
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
