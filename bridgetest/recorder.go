// Package bridgetest provides fakes for exercising bridge handlers
// without a real function runtime.
package bridgetest

import (
	"bytes"
	"context"
	"net/url"

	"github.com/go-fnbridge/fnbridge/header"
	"github.com/go-fnbridge/fnbridge/platform"
)

// ResponseRecorder is an implementation of platform.ResponseWriter that
// records its mutations for later inspection in tests.
type ResponseRecorder struct {
	Code      int
	Message   string
	HeaderMap header.Header
	Body      *bytes.Buffer
	// Appends records every AppendHeader call in order as "name: value".
	Appends []string
	// Terminations counts terminal actions (Send or End).
	Terminations int
	Streamed     bool
}

// NewRecorder returns an initialized ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{
		Code:      200,
		HeaderMap: header.New(),
		Body:      &bytes.Buffer{},
	}
}

func (r *ResponseRecorder) SetStatusCode(code int) {
	r.Code = code
}

func (r *ResponseRecorder) SetStatusMessage(msg string) {
	r.Message = msg
}

func (r *ResponseRecorder) SetHeader(name, value string) {
	r.HeaderMap.Set(name, value)
}

func (r *ResponseRecorder) AppendHeader(name, value string) {
	r.HeaderMap.Add(name, value)
	r.Appends = append(r.Appends, name+": "+value)
}

func (r *ResponseRecorder) Write(b []byte) (int, error) {
	r.Streamed = true
	return r.Body.Write(b)
}

func (r *ResponseRecorder) Send(body []byte) (err error) {
	_, err = r.Body.Write(body)
	r.Terminations++
	return err
}

func (r *ResponseRecorder) End() error {
	r.Terminations++
	return nil
}

// Request is a fake platform request with mutable fields.
type Request struct {
	ReqMethod string
	Scheme    string
	HostValue string
	URI       string
	HeaderMap map[string][]string
	Form      platform.Form
	Ctx       context.Context
}

// NewRequest builds a fake platform request from a method and an
// absolute target URL such as "https://example.com/foo?x=1".
func NewRequest(method, target string) *Request {
	u, err := url.Parse(target)
	if err != nil {
		panic(err)
	}
	return &Request{
		ReqMethod: method,
		Scheme:    u.Scheme,
		HostValue: u.Host,
		URI:       u.RequestURI(),
		HeaderMap: map[string][]string{},
		Ctx:       context.Background(),
	}
}

func (r *Request) Method() string { return r.ReqMethod }

func (r *Request) Protocol() string { return r.Scheme }

func (r *Request) Host() string { return r.HostValue }

func (r *Request) RequestURI() string { return r.URI }

func (r *Request) Headers() map[string][]string { return r.HeaderMap }

func (r *Request) Body() platform.Form { return r.Form }

func (r *Request) Context() context.Context {
	if r.Ctx == nil {
		return context.Background()
	}
	return r.Ctx
}
