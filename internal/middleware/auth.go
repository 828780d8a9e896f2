package middleware

import (
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/driver-dashboard/internal/auth"
	"github.com/SergeyBogomolovv/driver-dashboard/pkg/utils"
)

// Identity проверяет bearer токен и кладёт email водителя в контекст запроса.
func Identity(logger *slog.Logger, secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := auth.BearerToken(r.Header.Get("Authorization"))
			if !ok {
				utils.WriteError(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			identity, err := auth.ParseToken(token, secret)
			if err != nil {
				logger.Debug("token rejected", slog.String("path", r.URL.Path), slog.Any("error", err))
				utils.WriteError(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		})
	}
}
