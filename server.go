package fnbridge

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	cfg "github.com/go-fnbridge/fnbridge/config"
	"github.com/go-fnbridge/fnbridge/logger"
	"github.com/go-fnbridge/fnbridge/platform"
)

// Options configures the local development server that hosts a platform
// handler over plain net/http.
type Options struct {
	// Config optionally carries the application configuration. When set,
	// the server address and logging level come from it unless
	// overridden on Options.
	Config *cfg.Config
	// Handler is the platform handler to serve, usually the value
	// returned by CreateRequestHandler.
	Handler platform.HandlerFunc
	// Middlewares are applied around the converted handler, in order.
	Middlewares  []func(http.Handler) http.Handler
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server hosts a platform handler on a local HTTP listener. It stands in
// for the function runtime during development and tests; production
// deployments register the platform handler with the runtime directly.
type Server struct {
	srv    *http.Server
	logger *logger.Logger
}

func NewServer(opts Options) (*Server, error) {
	if opts.Handler == nil {
		return nil, fmt.Errorf("server: no handler")
	}

	cfgSrc := opts.Config
	if cfgSrc == nil {
		cfgSrc = &cfg.ConfigVar
	}

	addr := ":8080"
	if cfgSrc.Server.Host != "" || cfgSrc.Server.Port != 0 {
		addr = fmt.Sprintf("%s:%d", cfgSrc.Server.Host, cfgSrc.Server.Port)
	}

	lvl := logger.LevelInfo
	if cfgSrc.App.Debug {
		lvl = logger.LevelDebug
	}
	std := logger.NewConsole(os.Stdout, lvl, cfgSrc.App.Debug)
	logger.SetStd(std)

	var h http.Handler = HTTPHandler(opts.Handler, std)
	for i := len(opts.Middlewares) - 1; i >= 0; i-- {
		h = opts.Middlewares[i](h)
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	}
	return &Server{srv: srv, logger: std}, nil
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	s.logger.Info("server started", logger.Fields{"addr": s.srv.Addr})
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("listen failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Handler returns the fully wrapped http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}
