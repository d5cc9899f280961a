package fnbridge

import (
	"bytes"
	"context"
	"net/http"

	"github.com/go-fnbridge/fnbridge/header"
)

// responseBuffer captures status, headers and body written by a net/http
// handler so the result can be repackaged as a *Response.
type responseBuffer struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newResponseBuffer() *responseBuffer {
	return &responseBuffer{header: http.Header{}, status: http.StatusOK}
}

func (b *responseBuffer) Header() http.Header {
	return b.header
}

func (b *responseBuffer) WriteHeader(status int) {
	b.status = status
}

func (b *responseBuffer) Write(p []byte) (int, error) {
	return b.body.Write(p)
}

// Adapt converts a net/http handler into a RequestHandler, letting chi
// routers or stdlib mux applications play the wrapped-framework role.
// The handler's output is buffered in full before being returned.
func Adapt(h http.Handler) RequestHandler {
	return func(ctx context.Context, r *Request, _ any) (*Response, error) {
		hr, err := http.NewRequestWithContext(ctx, r.Method, r.URL.String(), r.Body)
		if err != nil {
			return nil, err
		}
		for _, key := range r.Header.Keys() {
			for _, value := range r.Header.Values(key) {
				hr.Header.Add(key, value)
			}
		}
		hr.Host = r.URL.Host

		buf := newResponseBuffer()
		h.ServeHTTP(buf, hr)

		resp := &Response{
			StatusCode: buf.status,
			StatusText: http.StatusText(buf.status),
			Header:     header.FromMap(buf.header),
		}
		if buf.body.Len() > 0 {
			resp.Body = buf.body.Bytes()
		}
		return resp, nil
	}
}
