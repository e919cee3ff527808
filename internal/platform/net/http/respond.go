// Package http provides the router seam, the server and JSON/HTML responders
// with a consistent envelope
package http

import (
	"bytes"
	"encoding/json"
	"io"
	stdhttp "net/http"

	perr "eventboard/internal/platform/errors"
	"eventboard/internal/platform/logger"
	lumnet "eventboard/internal/platform/net"
)

// Envelope is the standard response body for every JSON endpoint
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	LoadID     string         `json:"load_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// envelope turns a transport neutral reply into the wire envelope
func envelope(r *stdhttp.Request, rep lumnet.Reply) Envelope {
	ctx := r.Context()
	return Envelope{
		StatusCode: rep.StatusCode,
		Status:     stdhttp.StatusText(rep.StatusCode),
		Code:       rep.Err.Code,
		Error:      rep.Err.Message,
		Field:      rep.Err.Field,
		RequestID:  lumnet.RequestID(ctx),
		LoadID:     lumnet.LoadID(ctx),
		Data:       rep.Data,
	}
}

// RespondOK writes a 200 envelope with data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	JSON(w, stdhttp.StatusOK, envelope(r, lumnet.OK(data)))
}

// RespondError maps a project error into an envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	rep := lumnet.Fail(err)
	JSON(w, rep.StatusCode, envelope(r, rep))
}

// RespondHTML renders into a buffer first so a failing template becomes a
// clean 500 instead of a truncated page
func RespondHTML(w stdhttp.ResponseWriter, r *stdhttp.Request, status int, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		logger.C(r.Context()).Error().Err(err).Msg("render page")
		stdhttp.Error(w, stdhttp.StatusText(stdhttp.StatusInternalServerError), stdhttp.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Response is a functional response object for return style handlers
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
}

// Handle adapts a Response returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}

	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	rep := lumnet.OK(resp.Body)
	if resp.Status != 0 {
		rep.StatusCode = resp.Status
	}
	JSON(w, rep.StatusCode, envelope(r, rep))
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error returns a response that maps err to status and envelope
func Error(err error) Response { return Response{Body: err} }
