package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"eventboard/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	// CORSOrigins enables CORS for the listed origins; empty disables it
	CORSOrigins []string
	// LoadID reports the id of the board load serving requests
	LoadID func() string
	// Observer receives per request samples, typically the metrics sink
	Observer middleware.Observer
	// Slow marks slow requests in the access log
	Slow time.Duration
}

// CommonStack returns the baseline middleware for every surface
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.Scope(o.LoadID),
		middleware.RecoverJSON,
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow, Observer: o.Observer}),
	}
	if len(o.CORSOrigins) > 0 {
		stack = append(stack, middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}))
	}
	return append(stack,
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(30*time.Second),
	)
}
