// http собирает HTTP-роутер recommendation-service: chi + middleware + роуты.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/recommendation-service/internal/config"
	"github.com/pribylovaa/recommendation-service/internal/service"
	"github.com/pribylovaa/recommendation-service/internal/transport/http/handlers"
	"github.com/pribylovaa/recommendation-service/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, cfg config.Config, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.UserID(),             // вынимаем X-User-Id в контекст для хендлеров
		middleware.Metrics(),            // счётчики/гистограммы по шаблону маршрута
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc, cfg)

	root.Get("/healthz", h.Healthz)

	root.Route("/recommendations", func(r chi.Router) {
		r.Get("/next", h.NextRecommendation)
		r.Patch("/{slot_id}/ack", h.AcknowledgeSlot)

		r.Get("/slots", h.ListSlots)
		r.Post("/slots", h.UpsertSlot)

		r.Get("/events", h.ListEvents)
	})

	return root
}
