package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sportbook/SB-BookingService/internal/api/handlers"
)

// SessionHeader заголовок с идентификатором сессии клиента.
// Сессия - аналог вкладки браузера: клиент генерирует UUID и держит его
// до конца сеанса; с ним связано его последнее бронирование.
const SessionHeader = "X-Session-ID"

type contextKey string

const sessionIDKey contextKey = "sessionID"

const (
	msgMissingSessionID = "missing X-Session-ID header"
	msgInvalidSessionID = "X-Session-ID must be a valid UUID"
)

// Session требует валидный X-Session-ID и кладет его в контекст запроса
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(SessionHeader)
		if sessionID == "" {
			handlers.RespondUnauthorized(w, msgMissingSessionID)
			return
		}

		if _, err := uuid.Parse(sessionID); err != nil {
			handlers.RespondUnauthorized(w, msgInvalidSessionID)
			return
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionID возвращает идентификатор сессии из контекста
func GetSessionID(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionIDKey).(string)
	return sessionID, ok
}
