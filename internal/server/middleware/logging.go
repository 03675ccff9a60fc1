package middleware

import (
	"net/http"
	"time"

	"github.com/skillsenselab/recruitd/internal/logger"
)

// statusWriter captures the status code the inner handler writes. Flush and
// Unwrap are delegated so streaming over h2c keeps working.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	if sw.status == 0 {
		sw.status = code
	}
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Flush() {
	if f, ok := sw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (sw *statusWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}

// RequestLogger returns middleware that logs every request with method,
// path, status code, and duration. Health-check paths are silently skipped.
func RequestLogger(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isHealthEndpoint(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r)
			duration := time.Since(start)

			status := sw.status
			if status == 0 {
				status = http.StatusOK
			}

			fields := map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"duration_ms": duration.Milliseconds(),
			}
			// RequestID stamps generated ids onto the request header, so
			// this sees both client-supplied and generated ids.
			if id := r.Header.Get(requestIDHeader); id != "" {
				fields[logger.FieldRequestID] = id
			}

			logByStatus(log, fields, status)
		})
	}
}

func isHealthEndpoint(path string) bool {
	return path == "/health" || path == "/api/health"
}

// logByStatus logs request fields at the appropriate level for the status code.
func logByStatus(log *logger.Logger, fields map[string]interface{}, status int) {
	switch {
	case status >= 500:
		log.Error("Request completed", fields)
	case status >= 400:
		log.Warn("Request completed", fields)
	default:
		log.Debug("Request completed", fields)
	}
}
