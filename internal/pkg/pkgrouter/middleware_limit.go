package pkgrouter

import (
	"net/http"
)

// MaxBodyBytes caps every request body. Reads past it fail with *http.MaxBytesError.
const MaxBodyBytes = 1 << 20

func middlewareBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}
