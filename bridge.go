package fnbridge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-fnbridge/fnbridge/abort"
	"github.com/go-fnbridge/fnbridge/logger"
	"github.com/go-fnbridge/fnbridge/platform"
	"github.com/go-fnbridge/fnbridge/validation"
)

// RequestHandler is the wrapped application's request handler. The
// context is the invocation's abort signal; loadContext is the opaque
// value produced by GetLoadContext, or nil.
type RequestHandler func(ctx context.Context, r *Request, loadContext any) (*Response, error)

// HandlerFactory builds a RequestHandler from an opaque build artifact
// and the resolved mode. It is called once, at setup time.
type HandlerFactory func(build any, mode string) RequestHandler

// LoadContextFunc computes the per-invocation load context from the raw
// platform request/response pair. It must be synchronous; its result is
// passed through to the handler unmodified.
type LoadContextFunc func(r platform.Request, w platform.ResponseWriter) any

// HandlerOptions configures CreateRequestHandler.
type HandlerOptions struct {
	// Handler serves requests directly. Exactly one of Handler and
	// Factory must be set.
	Handler RequestHandler `validate:"required_without=Factory,excluded_with=Factory"`
	// Factory builds the handler from Build and the resolved mode.
	Factory HandlerFactory `validate:"required_without=Handler"`
	// Build is the opaque build artifact handed to Factory.
	Build any
	// GetLoadContext, when set, is invoked once per request.
	GetLoadContext LoadContextFunc
	// Mode selects the handler build mode. Empty means DefaultMode().
	Mode string `validate:"omitempty,oneof=development test production"`
	// Logger receives invocation diagnostics. Nil disables logging.
	Logger *logger.Logger
}

// DefaultMode resolves the mode from the FNBRIDGE_MODE environment
// variable, falling back to "production".
func DefaultMode() string {
	if mode := os.Getenv("FNBRIDGE_MODE"); mode != "" {
		return mode
	}
	return "production"
}

// CreateRequestHandler returns the per-request platform handler. Each
// invocation gets its own abort controller and request; nothing is
// shared between invocations.
//
// Errors from request construction or from the wrapped handler are
// forwarded through next and leave the platform response untouched.
// Failures while emitting the response cannot reach the middleware chain
// anymore and are only logged.
func CreateRequestHandler(opts HandlerOptions) (platform.HandlerFunc, error) {
	if err := validation.Validate(opts); err != nil {
		return nil, fmt.Errorf("handler options: %w", err)
	}
	mode := opts.Mode
	if mode == "" {
		mode = DefaultMode()
	}
	handle := opts.Handler
	if handle == nil {
		handle = opts.Factory(opts.Build, mode)
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	return func(r platform.Request, w platform.ResponseWriter, next platform.NextFunc) {
		ctl := abort.NewController(r.Context())
		defer ctl.Release()

		req, err := NewRequest(r)
		if err != nil {
			next(err)
			return
		}

		var loadContext any
		if opts.GetLoadContext != nil {
			loadContext = opts.GetLoadContext(r, w)
		}

		resp, err := handle(ctl.Signal(), req, loadContext)
		if err != nil {
			next(err)
			return
		}
		if resp == nil {
			next(errors.New("handler returned no response"))
			return
		}

		log.Debug("handled request", logger.Fields{
			"method": req.Method,
			"url":    req.URL.String(),
			"status": resp.StatusCode,
		})
		if err := SendResponse(w, resp, ctl); err != nil {
			log.Error("send response", logger.Fields{"error": err.Error()})
		}
	}, nil
}

// SendResponse copies resp onto the platform response: status and status
// text verbatim, then every header value appended individually, then
// exactly one terminal body action. When ctl has aborted by the time the
// headers are flushed, Connection: close is set so the transport does
// not reuse the connection.
func SendResponse(w platform.ResponseWriter, resp *Response, ctl *abort.Controller) error {
	w.SetStatusCode(resp.StatusCode)
	if resp.StatusText != "" {
		w.SetStatusMessage(resp.StatusText)
	}
	for _, key := range resp.Header.Keys() {
		for _, value := range resp.Header.Values(key) {
			w.AppendHeader(key, value)
		}
	}
	if ctl != nil && ctl.Aborted() {
		w.SetHeader("Connection", "close")
	}

	switch {
	case resp.Body != nil:
		return w.Send(resp.Body)
	case resp.BodyStream != nil:
		if _, err := io.Copy(w, resp.BodyStream); err != nil {
			return fmt.Errorf("stream response body: %w", err)
		}
		return w.End()
	default:
		return w.End()
	}
}
