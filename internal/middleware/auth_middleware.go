package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/baki-2025/learning-server-10/internal/auth"
)

type contextKey string

const principalKey contextKey = "principal"

// Principal returns the verified email attached by Auth, if any.
func Principal(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(principalKey).(string)
	return email, ok
}

// Auth guards a route behind bearer-token verification. A missing or
// malformed Authorization header is rejected without calling the verifier;
// on success the principal email is attached to the request context and the
// handler runs. The handler is never invoked on failure.
func Auth(verifier auth.Verifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := strings.TrimSpace(r.Header.Get("Authorization"))
			if header == "" {
				unauthorized(w)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				unauthorized(w)
				return
			}

			email, err := verifier.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
}
