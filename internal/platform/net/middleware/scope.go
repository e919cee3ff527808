package middleware

import (
	"net/http"

	"eventboard/internal/platform/logger"
	pnet "eventboard/internal/platform/net"
)

// Scope copies the request id and the current board load id onto the request
// context for both the net helpers and the logger, and mirrors the request id
// in the response. loadID may be nil
func Scope(loadID func() string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			reqID := pnet.RequestID(ctx)
			lid := ""
			if loadID != nil {
				lid = loadID()
			}
			ctx = pnet.WithRequest(ctx, reqID, lid)
			ctx = logger.WithRequest(ctx, reqID, lid)
			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
