package fnbridge

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/go-fnbridge/fnbridge/header"
	"github.com/go-fnbridge/fnbridge/platform"
)

// ErrNoHost is returned when the platform request carries no usable Host
// header, making it impossible to build an absolute URL.
var ErrNoHost = errors.New("platform request has no host")

// Request is the fetch-style request handed to the wrapped application.
// It is built fresh per invocation and is read-only once handed over.
type Request struct {
	Method string
	URL    *url.URL
	Header header.Header
	// Body is the re-serialized request body, or nil when the platform
	// request had none.
	Body io.Reader
}

// NewRequest builds a Request from the platform request. The URL is the
// origin derived from the protocol and Host header, resolved against the
// raw path and query. A request without a host is an error rather than a
// silent default.
//
// When the platform parsed a non-empty body, it is attached in its
// form-urlencoded re-serialization (see platform.Form.Encode); the
// original parsed structure is not carried over.
func NewRequest(pr platform.Request) (*Request, error) {
	host := pr.Host()
	if host == "" {
		return nil, ErrNoHost
	}
	scheme := pr.Protocol()
	if scheme == "" {
		scheme = "http"
	}
	origin, err := url.Parse(scheme + "://" + host)
	if err != nil {
		return nil, fmt.Errorf("parse origin: %w", err)
	}
	ref, err := url.Parse(pr.RequestURI())
	if err != nil {
		return nil, fmt.Errorf("parse request uri: %w", err)
	}

	req := &Request{
		Method: pr.Method(),
		URL:    origin.ResolveReference(ref),
		Header: header.FromMap(pr.Headers()),
	}
	if body := pr.Body(); body.Len() > 0 {
		req.Body = strings.NewReader(body.Encode())
	}
	return req, nil
}
