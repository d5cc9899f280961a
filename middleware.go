package fnbridge

import (
	"net/http"
	"strings"
	"time"

	cfg "github.com/go-fnbridge/fnbridge/config"
	"github.com/go-fnbridge/fnbridge/logger"
)

// CORS returns a middleware that applies simple CORS headers based on
// config.
func CORS(c cfg.CorsConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(c.AllowedOrigins) > 0 {
				w.Header().Set("Access-Control-Allow-Origin", c.AllowedOrigins[0])
			} else {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			}
			if len(c.AllowedMethods) > 0 {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(c.AllowedMethods, ","))
			} else {
				w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
			}
			if len(c.AllowedHeaders) > 0 {
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(c.AllowedHeaders, ","))
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// responseRecorder captures status and size written by the handler.
type responseRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

// LoggerMiddleware logs each HTTP request in a single line.
func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rr, r)
		dur := time.Since(start)

		logger.Info("http request", logger.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"remote_addr": r.RemoteAddr,
			"status":      rr.status,
			"status_text": http.StatusText(rr.status),
			"size":        rr.size,
			"duration_ms": dur.Milliseconds(),
		})
	})
}
