package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// UserID извлекает идентификатор пользователя из заголовка X-User-Id
// (его проставляет вышестоящий gateway после аутентификации) и кладёт
// его в контекст. Невалидный/пустой заголовок не отклоняется здесь:
// решение принимает хендлер, которому пользователь обязателен.
func UserID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if raw := r.Header.Get("X-User-Id"); raw != "" {
				if id, err := uuid.Parse(raw); err == nil {
					ctx := context.WithValue(r.Context(), ctxUserID, id)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserIDFrom возвращает идентификатор пользователя из контекста.
func UserIDFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ctxUserID).(uuid.UUID)
	return id, ok
}
