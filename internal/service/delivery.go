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

// Payload — собранная рекомендация для попапа.
type Payload struct {
	SlotID      int64
	ContentType models.ContentType
	ContentID   int64
	SlotAt      time.Time
	Title       string
	URL         string
	Question    string
	Extras      map[string]any
}

// NextRecommendation выбирает и доставляет не более одного слота в окне
// [windowStart, windowEnd].
//
// Весь путь — одна транзакция с эксклюзивной блокировкой выбранной строки:
// конкурентные вызовы на одно окно сериализуются, слот доставляется не более
// одного раза. Второй вызов после коммита видит слот уже в DELIVERED и не
// выберет его повторно.
//
// Возвращает (nil, nil), когда доставлять нечего: пустое окно и временная
// недоставляемость (контент исчез, факт уже показан) для клиента
// неразличимы и одинаково повторяемы. Недоставляемый слот откладывается
// push-back'ом (priority+1, статус снова SCHEDULED), а не ошибкой.
func (s *Service) NextRecommendation(ctx context.Context, userID uuid.UUID, contentType models.ContentType, windowStart, windowEnd time.Time) (*Payload, error) {
	const op = "service/delivery/NextRecommendation"

	lg := log.From(ctx).With("op", op, "user_id", userID.String(), "content_type", contentType.String())

	if userID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}
	if !contentType.Valid() {
		lg.Warn("invalid argument: unknown content type")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}
	if windowEnd.Before(windowStart) {
		lg.Warn("invalid argument: window end before start")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	var payload *Payload

	err := s.storage.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		slot, err := tx.NextForDeliveryForUpdate(ctx, userID, contentType, windowStart, windowEnd, models.SlotStatusScheduled)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				// Пустое окно — не ошибка.
				return nil
			}

			return err
		}

		payload, err = s.deliverLocked(ctx, tx, slot)
		return err
	})
	if err != nil {
		lg.Error("delivery failed", "err", err)

		return nil, coerceInternal(op, err)
	}

	if payload != nil {
		// Журнал — побочный эффект: ошибка записи не отменяет доставку.
		s.appendEvent(ctx, userID, payload.SlotID, models.EventTypeDelivered, 0)

		lg.Info("recommendation delivered",
			slog.Int64("slot_id", payload.SlotID),
			slog.Int64("content_id", payload.ContentID),
		)
	}

	return payload, nil
}

// deliverLocked собирает payload и помечает слот доставленным.
// Вызывается строго под блокировкой строки слота.
// Возвращает (nil, nil) при push-back.
func (s *Service) deliverLocked(ctx context.Context, tx storage.Tx, slot *models.Slot) (*Payload, error) {
	payload := &Payload{
		SlotID:      slot.ID,
		ContentType: slot.ContentType(),
		ContentID:   slot.ContentID(),
		SlotAt:      slot.SlotAt,
	}

	switch slot.ContentType() {
	case models.ContentTypeNews:
		news, err := s.content.NewsPayload(ctx, slot.ContentID())
		if err != nil {
			if errors.Is(err, ErrContentNotFound) {
				return nil, s.pushBackLocked(ctx, tx, slot)
			}

			return nil, err
		}

		payload.Title = news.Title
		payload.URL = news.URL
		payload.Extras = map[string]any{
			"summary":       news.Summary,
			"published_at":  news.PublishedAt,
			"category_id":   news.CategoryID,
			"category_name": news.CategoryName,
		}

	case models.ContentTypeQuiz:
		// Только вопрос: без ответа и без объяснения.
		quiz, err := s.content.QuizPayload(ctx, slot.ContentID(), false, false)
		if err != nil {
			if errors.Is(err, ErrContentNotFound) {
				return nil, s.pushBackLocked(ctx, tx, slot)
			}

			return nil, err
		}

		payload.Question = quiz.Question
		payload.Extras = map[string]any{
			"title": quiz.Title,
			"url":   quiz.URL,
			"rule":  quiz.Rule,
		}

	case models.ContentTypeFact:
		// Существование перепроверяется в момент доставки: факт мог
		// исчезнуть после планирования.
		fact, err := tx.FactByID(ctx, slot.ContentID())
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, s.pushBackLocked(ctx, tx, slot)
			}

			return nil, err
		}

		// Уже открытый факт не показываем повторно.
		seen, err := tx.FactSeen(ctx, slot.UserID, fact.ID)
		if err != nil {
			return nil, err
		}
		if seen {
			return nil, s.pushBackLocked(ctx, tx, slot)
		}

		payload.Title = fact.Title
		payload.Extras = map[string]any{
			"content": fact.Content,
			"url":     fact.URL,
		}
	}

	slot.Status = models.SlotStatusDelivered
	if _, err := tx.UpdateSlot(ctx, slot); err != nil {
		return nil, err
	}

	return payload, nil
}

// pushBackLocked откладывает недоставляемый слот: priority+1, статус
// снова SCHEDULED. Слот не блокирует окно для другого контента и будет
// повторён позже.
func (s *Service) pushBackLocked(ctx context.Context, tx storage.Tx, slot *models.Slot) error {
	slot.PushBack()
	if _, err := tx.UpdateSlot(ctx, slot); err != nil {
		return err
	}

	log.From(ctx).Info("slot pushed back",
		slog.Int64("slot_id", slot.ID),
		slog.Int("priority", slot.Priority),
	)

	return nil
}

// appendEvent пишет запись журнала взаимодействий log-and-continue:
// журнал аналитический, его сбой не должен ломать бизнес-операцию.
func (s *Service) appendEvent(ctx context.Context, userID uuid.UUID, slotID int64, eventType models.EventType, dwellMs int) {
	event := models.Event{
		UserID:     userID,
		SlotID:     slotID,
		EventType:  eventType,
		DwellMs:    dwellMs,
		OccurredAt: s.now(),
	}

	if err := s.storage.AppendEvent(ctx, &event); err != nil {
		log.From(ctx).Warn("event append failed",
			slog.Int64("slot_id", slotID),
			slog.String("event_type", eventType.String()),
			slog.String("err", err.Error()),
		)
	}
}
