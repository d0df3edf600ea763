package pkgrouter

import "net/http"

// MaxBodyBytes caps the request body. Reads past the limit fail with
// *http.MaxBytesError, which handlers are expected to translate.
func MaxBodyBytes(limit int64) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit > 0 && r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
