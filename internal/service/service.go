// service содержит бизнес-логику recommendation-сервиса:
// планировщик слотов (scheduler.go), движок доставки (delivery.go),
// обработку подтверждений (ack.go) и выборки для дашборда (queries.go).
package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/recommendation-service/internal/config"
	"github.com/pribylovaa/recommendation-service/internal/storage"
)

var (
	// ErrInvalidArgument - некорректные входные аргументы.
	// Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidContentBinding — комбинация тип/идентификаторы контента
	// не образует однозначную привязку.
	// Транспорт: 400.
	ErrInvalidContentBinding = errors.New("invalid content binding")
	// ErrSlotNotFound — слот отсутствует или принадлежит другому пользователю.
	// Транспорт: 404.
	ErrSlotNotFound = errors.New("slot not found")
	// ErrResourceNotFound — ресурс для привязки отсутствует
	// (например, в каталоге нет ни одного факта).
	// Транспорт: 404.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrInvalidCursor — битый/чужой page_token.
	// Транспорт: 400.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrInternal — внутренняя ошибка (storage/БД/апстрим).
	// Транспорт: 500.
	ErrInternal = errors.New("internal error")
)

// ErrContentNotFound — сигнал «контента больше нет» от апстрима.
// Ядро никогда не отдаёт его клиенту: доставка конвертирует его
// в push-back и пустой результат.
var ErrContentNotFound = errors.New("content not found")

// ErrPreferencesNotFound — у пользователя нет сохранённых настроек
// уведомлений; планировщик применяет интервал по умолчанию из конфига.
var ErrPreferencesNotFound = errors.New("preferences not found")

// NewsPayload — данные новости для попапа.
type NewsPayload struct {
	ID           int64
	Title        string
	URL          string
	Summary      string
	PublishedAt  time.Time
	CategoryID   int64
	CategoryName string
}

// QuizPayload — данные квиза для попапа.
// Answer/Explanation заполняются только по явному запросу
// (*при доставке — никогда: клиент не должен видеть ответ заранее).
type QuizPayload struct {
	ID          int64
	Title       string
	Question    string
	URL         string
	Rule        string
	Answer      *bool
	Explanation *string
}

// ContentLookup — внешний просмотр контента (news/quiz-сервис).
// Отсутствующий контент — ErrContentNotFound.
type ContentLookup interface {
	NewsPayload(ctx context.Context, newsID int64) (*NewsPayload, error)
	QuizPayload(ctx context.Context, quizID int64, includeAnswer, includeExplanation bool) (*QuizPayload, error)
}

// UserPreferences — внешние настройки уведомлений пользователя.
// Интервал перечитывается на каждом upsert: смена настроек действует
// со следующего слота, не ретроактивно.
type UserPreferences interface {
	NotifyInterval(ctx context.Context, userID uuid.UUID) (time.Duration, error)
}

// Service — описывает бизнес-логику recommendation-service.
type Service struct {
	storage storage.Storage
	content ContentLookup
	prefs   UserPreferences
	cfg     config.Config

	// now и randInt64 вынесены в поля ради детерминированных тестов.
	now       func() time.Time
	randInt64 func(n int64) int64
}

// coerceInternal маскирует детали ошибки хранилища/апстрима за ErrInternal.
// Контекстные ошибки проходят как есть: транспорт отличает таймаут и
// отмену клиента (504/499) от настоящего сбоя (500).
func coerceInternal(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s: %w", op, ErrInternal)
}

// New создает новый экземпляр Service.
func New(storage storage.Storage, content ContentLookup, prefs UserPreferences, cfg config.Config) *Service {
	return &Service{
		storage:   storage,
		content:   content,
		prefs:     prefs,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
		randInt64: rand.Int64N,
	}
}
