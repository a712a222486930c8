// Package requestid assigns a request ID to every incoming request.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"idnum/pkg/requestcontext"
)

// Header is the canonical request ID header, honored when a trusted proxy
// already assigned one.
const Header = "X-Request-ID"

// Middleware reuses the inbound X-Request-ID header or generates a fresh UUID,
// stores the ID in the request context, and echoes it on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(Header, requestID)
		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
