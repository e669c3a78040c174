// handlers содержит HTTP-эндпоинты recommendation-service.
//
// Принципы:
//   - контекст запроса прокидывается в сервис без потерь;
//   - пользователь берётся из контекста (X-User-Id от gateway); единственное
//     исключение — batch-upsert слотов, где целевой user_id допустим в теле;
//   - ошибки сервиса транслируются в HTTP через apierrors.WriteError.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/pribylovaa/recommendation-service/internal/config"
	"github.com/pribylovaa/recommendation-service/internal/service"
	apierrors "github.com/pribylovaa/recommendation-service/internal/transport/http/errors"
	"github.com/pribylovaa/recommendation-service/internal/transport/http/middleware"
)

// Handlers агрегирует зависимости эндпоинтов.
type Handlers struct {
	service *service.Service
	cfg     config.Config
}

func New(svc *service.Service, cfg config.Config) *Handlers {
	return &Handlers{service: svc, cfg: cfg}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// userFrom достаёт пользователя из контекста запроса.
// Отсутствие валидного X-User-Id — 401 (пишется на месте).
func userFrom(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.UserIDFrom(r.Context())
	if !ok || id == uuid.Nil {
		apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
		return uuid.Nil, false
	}

	return id, true
}
