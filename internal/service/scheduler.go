package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/recommendation-service/internal/models"
	"github.com/pribylovaa/recommendation-service/internal/pkg/log"
	"github.com/pribylovaa/recommendation-service/internal/storage"
)

// UpsertSlotInput — запрос на планирование/перепланирование слота.
//
// Контентные идентификаторы взаимоисключающие: заполняется ровно тот,
// что соответствует ContentType. Для FACT допустим ни одного — факт
// подбирается автоматически (см. resolveFactID).
type UpsertSlotInput struct {
	UserID      uuid.UUID
	ContentType models.ContentType
	NewsID      *int64
	QuizID      *int64
	FactID      *int64
	// Priority == nil — значение по умолчанию для нового слота; для
	// существующего приоритет не меняется.
	Priority *int
	Reason   string
}

// UpsertSlot планирует следующий слот пользователя для данного типа контента.
//
// Момент слота выводится из интервала уведомлений: последний SCHEDULED-слот
// плюс интервал, а если запланированных нет — now + интервал. Интервал
// перечитывается из сервиса настроек на каждом вызове; при недоступных
// настройках действует значение из конфигурации.
//
// Если на вычисленный момент слот уже существует, операция сливается с ним:
//   - приоритет — «меньше побеждает»: явный входной приоритет применяется,
//     только если он строже текущего;
//   - привязка и reason — «последний пишет»: перезаписываются всегда.
//
// Гонка двух конкурентных вставок на один момент разрешается через
// уникальный индекс: проигравший повторяет путь слияния.
func (s *Service) UpsertSlot(ctx context.Context, input UpsertSlotInput) (*models.Slot, error) {
	const op = "service/scheduler/UpsertSlot"

	lg := log.From(ctx).With("op", op, "user_id", input.UserID.String(), "content_type", input.ContentType.String())

	if input.UserID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}
	if !input.ContentType.Valid() {
		lg.Warn("invalid argument: unknown content type")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}
	if input.Priority != nil && *input.Priority < 1 {
		lg.Warn("invalid argument: non-positive priority")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	binding, err := s.resolveBinding(ctx, input.UserID, input.ContentType, input.NewsID, input.QuizID, input.FactID)
	if err != nil {
		if errors.Is(err, ErrInvalidContentBinding) || errors.Is(err, ErrResourceNotFound) {
			lg.Warn("binding rejected", "err", err)

			return nil, err
		}

		lg.Error("binding resolution failed", "err", err)

		return nil, err
	}

	interval := s.notifyInterval(ctx, input.UserID)

	var result *models.Slot

	err = s.storage.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		slotAt, err := s.nextSlotAt(ctx, tx, input.UserID, input.ContentType, interval)
		if err != nil {
			return err
		}

		existing, err := tx.SlotAtTimeForUpdate(ctx, input.UserID, input.ContentType, slotAt)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		if existing == nil {
			priority := s.cfg.Scheduler.DefaultPriority
			if input.Priority != nil {
				priority = *input.Priority
			}

			inserted, err := tx.InsertSlot(ctx, &models.Slot{
				UserID:   input.UserID,
				Binding:  binding,
				SlotAt:   slotAt,
				Status:   models.SlotStatusScheduled,
				Priority: priority,
				Reason:   input.Reason,
			})
			if err == nil {
				result = inserted
				return nil
			}
			if !errors.Is(err, storage.ErrAlreadyExists) {
				return err
			}

			// Проиграли гонку вставки — перечитываем под блокировкой
			// и сливаемся как с существующим.
			existing, err = tx.SlotAtTimeForUpdate(ctx, input.UserID, input.ContentType, slotAt)
			if err != nil {
				return err
			}
		}

		merged, err := tx.UpdateSlot(ctx, mergeSlot(existing, binding, input.Priority, input.Reason))
		if err != nil {
			return err
		}

		result = merged
		return nil
	})
	if err != nil {
		lg.Error("upsert failed", "err", err)

		return nil, coerceInternal(op, err)
	}

	lg.Info("slot upserted",
		slog.Int64("slot_id", result.ID),
		slog.Time("slot_at", result.SlotAt),
		slog.Int("priority", result.Priority),
	)

	return result, nil
}

// notifyInterval возвращает актуальный интервал уведомлений пользователя.
// Недоступные/отсутствующие настройки деградируют до дефолта из конфига,
// а не до ошибки: планирование важнее точности интервала.
func (s *Service) notifyInterval(ctx context.Context, userID uuid.UUID) time.Duration {
	interval, err := s.prefs.NotifyInterval(ctx, userID)
	if err != nil || interval <= 0 {
		if err != nil && !errors.Is(err, ErrPreferencesNotFound) {
			log.From(ctx).Warn("preferences lookup failed, using default interval",
				slog.String("user_id", userID.String()),
				slog.String("err", err.Error()),
			)
		}

		return s.cfg.Scheduler.DefaultInterval
	}

	return interval
}

// nextSlotAt вычисляет момент следующего слота: хвост расписания плюс
// интервал. Пустое расписание стартует от текущего момента.
func (s *Service) nextSlotAt(ctx context.Context, tx storage.Tx, userID uuid.UUID, contentType models.ContentType, interval time.Duration) (time.Time, error) {
	last, err := tx.LatestScheduled(ctx, userID, contentType)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return s.now().Add(interval), nil
		}

		return time.Time{}, err
	}

	return last.SlotAt.Add(interval), nil
}

// mergeSlot сливает входные данные в существующий слот: приоритет по
// правилу «меньше побеждает», привязка и reason — «последний пишет».
func mergeSlot(existing *models.Slot, binding models.ContentBinding, priority *int, reason string) *models.Slot {
	if priority != nil && *priority < existing.Priority {
		existing.Priority = *priority
	}
	existing.Binding = binding
	existing.Reason = reason

	return existing
}
