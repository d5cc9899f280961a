package fnbridge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-fnbridge/fnbridge/logger"
	"github.com/go-fnbridge/fnbridge/platform"
)

// httpRequest adapts an incoming *http.Request to the platform contract,
// pre-parsing the body the way a function runtime would.
type httpRequest struct {
	r    *http.Request
	body platform.Form
}

// NewPlatformRequest wraps r as a platform.Request. Form-urlencoded and
// JSON bodies are parsed into the platform form; other content types are
// ignored, matching a runtime that only pre-parses what it understands.
func NewPlatformRequest(r *http.Request) (platform.Request, error) {
	body, err := parseBody(r)
	if err != nil {
		return nil, err
	}
	return &httpRequest{r: r, body: body}, nil
}

func parseBody(r *http.Request) (platform.Form, error) {
	if r.Body == nil || r.ContentLength == 0 {
		return nil, nil
	}
	ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return nil, nil
	}
	switch ct {
	case "application/x-www-form-urlencoded":
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
		return platform.ParseQuery(string(raw))
	case "application/json":
		return parseJSONBody(r.Body)
	default:
		return nil, nil
	}
}

// parseJSONBody decodes a top-level JSON object into a form, token by
// token so key order is preserved.
func parseJSONBody(body io.Reader) (platform.Form, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode json body: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("json body is not an object")
	}

	var form platform.Form
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode json key: %w", err)
		}
		key := tok.(string)
		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decode json value: %w", err)
		}
		form = form.Add(key, value)
	}
	return form, nil
}

func (q *httpRequest) Method() string { return q.r.Method }

func (q *httpRequest) Protocol() string {
	if q.r.TLS != nil {
		return "https"
	}
	return "http"
}

func (q *httpRequest) Host() string { return q.r.Host }

func (q *httpRequest) RequestURI() string { return q.r.URL.RequestURI() }

func (q *httpRequest) Headers() map[string][]string { return q.r.Header }

func (q *httpRequest) Body() platform.Form { return q.body }

func (q *httpRequest) Context() context.Context { return q.r.Context() }

// httpResponseWriter adapts http.ResponseWriter to the platform
// contract. Header mutations must happen before the first body write;
// the bridge guarantees that ordering.
type httpResponseWriter struct {
	w           http.ResponseWriter
	status      int
	wroteHeader bool
}

func (p *httpResponseWriter) SetStatusCode(code int) { p.status = code }

// SetStatusMessage is a no-op: net/http derives the reason phrase from
// the status code and offers no way to override it.
func (p *httpResponseWriter) SetStatusMessage(string) {}

func (p *httpResponseWriter) SetHeader(name, value string) {
	p.w.Header().Set(name, value)
}

func (p *httpResponseWriter) AppendHeader(name, value string) {
	p.w.Header().Add(name, value)
}

func (p *httpResponseWriter) Write(b []byte) (int, error) {
	p.flushHeader()
	return p.w.Write(b)
}

func (p *httpResponseWriter) Send(body []byte) error {
	p.flushHeader()
	_, err := p.w.Write(body)
	return err
}

func (p *httpResponseWriter) End() error {
	p.flushHeader()
	return nil
}

func (p *httpResponseWriter) flushHeader() {
	if p.wroteHeader {
		return
	}
	if p.status == 0 {
		p.status = http.StatusOK
	}
	p.w.WriteHeader(p.status)
	p.wroteHeader = true
}

// HTTPHandler exposes a platform handler as an http.Handler so the
// function can be served by a plain net/http server during development.
// Errors reaching next render the standard 500 error envelope, unless
// the response was already under way.
func HTTPHandler(h platform.HandlerFunc, log *logger.Logger) http.Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pw := &httpResponseWriter{w: w}
		next := func(err error) {
			if err == nil {
				return
			}
			log.Error("request failed", logger.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
				"error":  err.Error(),
			})
			if pw.wroteHeader {
				return
			}
			resp := ErrorResponse(http.StatusInternalServerError, "internal", "UNHANDLED", err.Error(), nil)
			if serr := SendResponse(pw, resp, nil); serr != nil {
				log.Error("send error response", logger.Fields{"error": serr.Error()})
			}
		}

		pr, err := NewPlatformRequest(r)
		if err != nil {
			next(err)
			return
		}
		h(pr, pw, next)
	})
}
