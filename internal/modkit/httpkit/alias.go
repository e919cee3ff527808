// Package httpkit re-exports the platform http helpers modules need so they do
// not import internal/platform/net/http directly
package httpkit

import (
	"io"
	"net/http"

	phttp "eventboard/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the return style handler result
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Error returns a response that maps err to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Call adapts a handler without bound input
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.JSONHandlerNoBody(fn)
}

// Query adapts a handler whose query string binds into T
func Query[T any](fn func(*http.Request, T) (any, error)) Handler {
	return phttp.QueryHandler(fn)
}

// Handle adapts a Response returning function
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// RespondError writes err as an envelope
func RespondError(w http.ResponseWriter, r *http.Request, err error) { phttp.RespondError(w, r, err) }

// HTML renders a page through a buffer and writes it with status
func HTML(w http.ResponseWriter, r *http.Request, status int, render func(io.Writer) error) {
	phttp.RespondHTML(w, r, status, render)
}
