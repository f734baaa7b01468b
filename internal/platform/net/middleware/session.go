package middleware

import (
	"net/http"

	"dagsplott/internal/platform/logger"
	pnet "dagsplott/internal/platform/net"
)

// sessionHeader carries the anonymous dashboard session id
const sessionHeader = "X-Session-ID"

// SessionContext lifts the request id and session header onto the context so
// downstream logs carry both. Mount after RequestID.
func SessionContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := pnet.RequestID(r.Context())
		sid := r.Header.Get(sessionHeader)

		ctx := pnet.WithRequest(r.Context(), reqID, sid)
		ctx = logger.WithRequest(ctx, reqID, sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
