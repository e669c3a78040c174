package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pribylovaa/recommendation-service/internal/models"
	"github.com/pribylovaa/recommendation-service/internal/pkg/log"
	"github.com/pribylovaa/recommendation-service/internal/storage"
)

// Acknowledge фиксирует реакцию пользователя на доставленный слот.
//
// На состояние слота влияют только два типа событий:
//   - OPENED  -> SEEN (для FACT дополнительно идемпотентная отметка
//     просмотра в fact_views);
//   - DISMISS -> DISMISSED.
//
// Остальные типы журналируются без перехода состояния. Операция
// идемпотентна: повторный ack уже терминального слота — no-op, а не ошибка.
func (s *Service) Acknowledge(ctx context.Context, userID uuid.UUID, slotID int64, eventType models.EventType, dwellMs int) (*models.Slot, error) {
	const op = "service/ack/Acknowledge"

	lg := log.From(ctx).With("op", op,
		"user_id", userID.String(),
		slog.Int64("slot_id", slotID),
		"event_type", eventType.String(),
	)

	if userID == uuid.Nil || slotID <= 0 || eventType == "" {
		lg.Warn("invalid argument")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}
	if dwellMs < 0 {
		dwellMs = 0
	}

	var result *models.Slot

	err := s.storage.WithinTx(ctx, func(ctx context.Context, tx storage.Tx) error {
		slot, err := tx.SlotByIDAndUser(ctx, slotID, userID)
		if err != nil {
			return err
		}

		switch eventType {
		case models.EventTypeOpened:
			if slot.Status == models.SlotStatusDelivered {
				slot.Status = models.SlotStatusSeen
				if slot, err = tx.UpdateSlot(ctx, slot); err != nil {
					return err
				}
			}

			// Отметка просмотра факта идемпотентна и ставится даже при
			// повторном OPENED: маркер важнее перехода статуса.
			if slot.ContentType() == models.ContentTypeFact {
				if err := tx.MarkFactSeen(ctx, userID, slot.ContentID(), s.now()); err != nil {
					return err
				}
			}

		case models.EventTypeDismiss:
			if slot.Status == models.SlotStatusDelivered {
				slot.Status = models.SlotStatusDismissed
				if slot, err = tx.UpdateSlot(ctx, slot); err != nil {
					return err
				}
			}
		}

		result = slot
		return nil
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("slot not found")

			return nil, fmt.Errorf("%s: %w", op, ErrSlotNotFound)
		}

		lg.Error("acknowledge failed", "err", err)

		return nil, coerceInternal(op, err)
	}

	// Журнал append-only: пишется для любого типа события, включая
	// неизвестные ядру, log-and-continue.
	s.appendEvent(ctx, userID, slotID, eventType, dwellMs)

	lg.Info("slot acknowledged", "status", result.Status.String())

	return result, nil
}
