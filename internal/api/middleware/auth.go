package middleware

import (
	"context"
	"net/http"

	"github.com/avelesk/TenantBookingService/internal/api/handlers"
)

type userIDKey struct{}

// Auth проверяет наличие заголовка X-User-ID и кладет его значение в контекст.
// Защищенные маршруты рассчитывают, что аутентификацию выполнил API gateway,
// здесь проверяется только наличие идентификатора.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID возвращает идентификатор пользователя из контекста запроса
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey{}).(string)
	return id, ok
}
