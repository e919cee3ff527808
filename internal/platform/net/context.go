// Package net holds transport neutral helpers for request scoped values
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const keyLoadID ctxKey = "load_id"

// WithRequest annotates ctx with the request id and the id of the board load
// answering it
func WithRequest(ctx context.Context, reqID, loadID string) context.Context {
	if reqID != "" {
		// chi's key so chimw.GetReqID sees it too
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if loadID != "" {
		ctx = context.WithValue(ctx, keyLoadID, loadID)
	}
	return ctx
}

// RequestID returns the request id on ctx, if any
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// LoadID returns the board load id on ctx, if any
func LoadID(ctx context.Context) string {
	v, _ := ctx.Value(keyLoadID).(string)
	return v
}
