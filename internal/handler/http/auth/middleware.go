package auth

import (
	"fmt"
	"net/http"
	"strings"

	"portfolio-blog/internal/handler/http/respond"
)

// Middleware requires a valid bearer credential for every request on the
// wrapped handler, regardless of method. Mount it around the privileged mux
// only; public routes never pass through here.
func Middleware(policy Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := AuthenticateRequest(policy, r); err != nil {
				respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AuthenticateRequest checks the request's bearer credential against the
// policy. Handlers that gate a single query mode rather than a whole route
// use this directly instead of mounting Middleware.
func AuthenticateRequest(policy Policy, r *http.Request) error {
	token, err := bearerToken(r.Header.Get("Authorization"))
	if err != nil {
		return err
	}
	return policy.Authenticate(token)
}

func bearerToken(authz string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return "", ErrMissingToken
	}
	token := strings.TrimPrefix(authz, prefix)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}
