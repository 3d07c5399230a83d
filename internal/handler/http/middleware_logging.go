package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/secure-e-diary/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log line per request. Client errors are
// logged at warn level and server errors at error level.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		logger.FromRequest(r).WithLevel(accessLogLevel(rw.status)).
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", rw.status).
			Dur("duration", time.Since(start)).
			Int("size", rw.size).
			Send()
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
