package net

import (
	"net/http"

	perr "eventboard/internal/platform/errors"
)

// Reply is a transport neutral result: a status plus either data or an error
type Reply struct {
	StatusCode int
	Data       any
	Err        perr.Wire
}

// OK builds a 200 reply
func OK(data any) Reply { return Reply{StatusCode: http.StatusOK, Data: data} }

// Fail builds a reply for err. A nil err is OK(nil)
func Fail(err error) Reply {
	if err == nil {
		return OK(nil)
	}
	status, w := perr.HTTP(err)
	return Reply{StatusCode: status, Err: w}
}

// Failed reports whether the reply carries an error
func (r Reply) Failed() bool { return r.StatusCode >= http.StatusBadRequest }
