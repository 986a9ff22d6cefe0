package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/Barber-BookingService/internal/api/handlers"
	"github.com/m04kA/Barber-BookingService/internal/auth"
)

const (
	msgMissingToken = "отсутствует токен сессии"
	msgExpiredToken = "срок сессии истек"
	msgInvalidToken = "невалидный токен сессии"
)

type sessionKey struct{}

// SessionParser интерфейс проверки токенов сессий
type SessionParser interface {
	Parse(tokenString string) (*auth.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет Bearer токен сессии и кладет сессию в контекст.
// Запросы без валидной сессии получают 401 и до хендлера не доходят.
func Auth(parser SessionParser, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				logger.Warn("Auth: missing session token, path=%s", r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			session, err := parser.Parse(token)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrSessionExpired):
					logger.Warn("Auth: expired session, path=%s", r.URL.Path)
					handlers.RespondUnauthorized(w, msgExpiredToken)
				default:
					logger.Warn("Auth: invalid session token, path=%s: %v", r.URL.Path, err)
					handlers.RespondUnauthorized(w, msgInvalidToken)
				}
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey{}, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession извлекает сессию из контекста запроса
func GetSession(ctx context.Context) (*auth.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*auth.Session)
	return session, ok
}

// extractBearerToken извлекает токен из заголовка Authorization
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
