package middleware

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type HTTPRequestLogger struct {
	logger         *logrus.Logger
	debug          bool
	errorThreshold int
}

// NewHTTPRequestLogger logs every request when debug is set, otherwise only
// requests whose response status is at or above errorThreshold.
func NewHTTPRequestLogger(logger *logrus.Logger, debug bool, errorThreshold int) *HTTPRequestLogger {
	return &HTTPRequestLogger{
		logger:         logger,
		debug:          debug,
		errorThreshold: errorThreshold,
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (l *HTTPRequestLogger) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rec, r)

		if !l.debug && rec.statusCode < l.errorThreshold {
			return
		}

		l.logger.WithContext(r.Context()).WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.statusCode,
			"duration": time.Since(start).String(),
		}).Info()
	})
}
