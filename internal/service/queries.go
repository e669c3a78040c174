package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pribylovaa/recommendation-service/internal/models"
	"github.com/pribylovaa/recommendation-service/internal/pkg/log"
	"github.com/pribylovaa/recommendation-service/internal/storage"
)

// ListSlots возвращает страницу расписания пользователя, новые сначала.
// Лимит нормализуется к серверным границам; битый page_token — ErrInvalidCursor.
func (s *Service) ListSlots(ctx context.Context, userID uuid.UUID, opts models.ListSlotsOptions) (*models.SlotPage, error) {
	const op = "service/queries/ListSlots"

	lg := log.From(ctx).With("op", op, "user_id", userID.String())

	if userID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}
	if opts.ContentType != "" && !opts.ContentType.Valid() {
		lg.Warn("invalid argument: unknown content type")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}
	if !opts.From.IsZero() && !opts.To.IsZero() && opts.To.Before(opts.From) {
		lg.Warn("invalid argument: to before from")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	opts.Limit = s.normalizeLimit(opts.Limit)

	page, err := s.storage.ListSlots(ctx, userID, opts)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCursor) {
			lg.Warn("invalid page token")

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		}

		lg.Error("list slots failed", "err", err)

		return nil, coerceInternal(op, err)
	}

	return page, nil
}

// ListEvents возвращает страницу журнала взаимодействий пользователя,
// новые сначала.
func (s *Service) ListEvents(ctx context.Context, userID uuid.UUID, opts models.ListEventsOptions) (*models.EventPage, error) {
	const op = "service/queries/ListEvents"

	lg := log.From(ctx).With("op", op, "user_id", userID.String())

	if userID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	opts.Limit = s.normalizeLimit(opts.Limit)

	page, err := s.storage.ListEvents(ctx, userID, opts)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidCursor) {
			lg.Warn("invalid page token")

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		}

		lg.Error("list events failed", "err", err)

		return nil, coerceInternal(op, err)
	}

	return page, nil
}

// normalizeLimit приводит запрошенный лимит к серверным границам:
// 0 -> default, больше максимума -> максимум.
func (s *Service) normalizeLimit(limit int32) int32 {
	if limit <= 0 {
		return s.cfg.LimitsConfig.Default
	}
	if limit > s.cfg.LimitsConfig.Max {
		return s.cfg.LimitsConfig.Max
	}

	return limit
}
