package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/driver-dashboard/internal/auth"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func Logger(logger *slog.Logger) func(next http.Handler) http.Handler {
	logger = logger.With(slog.String("middleware", "logger"))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := wrapResponseWriter(w)
			next.ServeHTTP(ww, r)

			attrs := []any{
				slog.Int("status", ww.status),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote", r.RemoteAddr),
				slog.String("duration", time.Since(start).String()),
				slog.String("request_id", chimw.GetReqID(r.Context())),
			}

			switch {
			case ww.status >= http.StatusInternalServerError:
				logger.Error("request", attrs...)
			case ww.status >= http.StatusBadRequest:
				logger.Warn("request", attrs...)
			default:
				logger.Info("request", attrs...)
			}
		})
	}
}

// WithIdentityLog добавляет email водителя в логгер запроса.
func WithIdentityLog(logger *slog.Logger, r *http.Request) *slog.Logger {
	if identity, ok := auth.IdentityFromContext(r.Context()); ok {
		return logger.With(slog.String("identity", identity))
	}
	return logger
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func wrapResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, status: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
