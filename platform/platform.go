// Package platform defines the minimal contract between the bridge and
// the hosting function runtime. The runtime hands each invocation a
// read-only Request and a mutable ResponseWriter; the bridge is the only
// writer of the ResponseWriter for the duration of the invocation.
package platform

import (
	"context"
	"io"
)

// Request is the read-only view of the incoming platform request. The
// runtime has already parsed the body into a Form before the bridge sees
// it; raw bytes are not available at this layer.
type Request interface {
	// Method returns the HTTP method verbatim.
	Method() string
	// Protocol returns the scheme, typically "http" or "https".
	Protocol() string
	// Host returns the value of the Host header, or "" when absent.
	Host() string
	// RequestURI returns the raw path and query, e.g. "/foo?x=1".
	RequestURI() string
	// Headers returns the platform header mapping. Entries may carry
	// one or many values; empty entries are allowed.
	Headers() map[string][]string
	// Body returns the pre-parsed body, or nil when the request had none.
	Body() Form
	// Context is canceled when the platform gives up on the invocation,
	// for example on client disconnect.
	Context() context.Context
}

// ResponseWriter is the mutable platform response. Headers may be
// appended many times; exactly one of Send, a streamed Write sequence
// followed by End, or a bare End terminates the response.
type ResponseWriter interface {
	io.Writer

	SetStatusCode(code int)
	SetStatusMessage(msg string)
	// SetHeader replaces any existing values under name.
	SetHeader(name, value string)
	// AppendHeader adds value under name, keeping existing values.
	AppendHeader(name, value string)
	// Send writes the complete buffered body and terminates the response.
	Send(body []byte) error
	// End terminates the response. After streaming via Write it closes
	// the output; with no prior writes it produces an empty body.
	End() error
}

// NextFunc is the middleware-chain completion callback. The bridge calls
// it with a non-nil error when request construction or the wrapped
// handler fails; the hosting chain owns error presentation from there.
type NextFunc func(err error)

// HandlerFunc is the per-request entry point produced by the bridge and
// registered with the function runtime.
type HandlerFunc func(r Request, w ResponseWriter, next NextFunc)
