package pkgrouter

import (
	"net/http"
	"strings"

	"github.com/shandysiswandi/goproduct/internal/pkg/pkgerror"
)

// HeaderAPIKey is the alternative header carrying the API key.
const HeaderAPIKey = "X-API-Key"

// KeyValidator reports whether a presented credential is acceptable.
type KeyValidator interface {
	IsValid(presented string) bool
}

// MiddlewareAPIKey rejects requests without a valid API key before the
// handler runs.
//
// The key is read from "Authorization: Bearer <key>" (a bare
// "Authorization: <key>" is accepted too) and then from X-API-Key.
func MiddlewareAPIKey(v KeyValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractAPIKey(r)
			if token == "" {
				WriteError(r.Context(), w, pkgerror.NewUnauthorized("Unauthorized: missing API key"))
				return
			}

			if !v.IsValid(token) {
				WriteError(r.Context(), w, pkgerror.NewUnauthorized("Unauthorized: invalid API key"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func extractAPIKey(r *http.Request) string {
	if auth := strings.TrimSpace(r.Header.Get("Authorization")); auth != "" {
		scheme, rest, _ := strings.Cut(auth, " ")
		if strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(rest)
		}
		return auth
	}

	return strings.TrimSpace(r.Header.Get(HeaderAPIKey))
}
