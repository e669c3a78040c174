package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/recommendation-service/internal/models"
	"github.com/pribylovaa/recommendation-service/internal/storage"
)

// AppendEvent добавляет запись в append-only журнал взаимодействий.
func (q *queries) AppendEvent(ctx context.Context, event *models.Event) error {
	const op = "storage.postgres.AppendEvent"

	_, err := q.db.Exec(ctx, `
	INSERT INTO user_recommendation_events (user_id, slot_id, event_type, dwell_ms, occurred_at)
	VALUES ($1, $2, $3, $4, $5)
	`,
		event.UserID,
		event.SlotID,
		event.EventType.String(),
		event.DwellMs,
		event.OccurredAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListEvents возвращает страницу журнала пользователя с курсорной пагинацией.
// Сортировка фиксирована: occurred_at DESC, id DESC.
// При некорректном page_token возвращает storage.ErrInvalidCursor.
func (q *queries) ListEvents(ctx context.Context, userID uuid.UUID, opts models.ListEventsOptions) (*models.EventPage, error) {
	const op = "storage.postgres.ListEvents"

	limit := opts.Limit
	if limit <= 0 {
		limit = 1
	}

	var rows pgx.Rows
	var err error

	if opts.PageToken == "" {
		rows, err = q.db.Query(ctx, `
		SELECT id, user_id, slot_id, event_type, dwell_ms, occurred_at
		FROM user_recommendation_events
		WHERE user_id = $1
		ORDER BY occurred_at DESC, id DESC
		LIMIT $2
		`, userID, limit)
	} else {
		atCur, idCur, decErr := decodePageToken(opts.PageToken)
		if decErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		rows, err = q.db.Query(ctx, `
		SELECT id, user_id, slot_id, event_type, dwell_ms, occurred_at
		FROM user_recommendation_events
		WHERE user_id = $1
		  AND (occurred_at, id) < ($2, $3)
		ORDER BY occurred_at DESC, id DESC
		LIMIT $4
		`, userID, atCur, idCur, limit)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var page models.EventPage
	for rows.Next() {
		var event models.Event
		var eventType string
		if scanErr := rows.Scan(
			&event.ID,
			&event.UserID,
			&event.SlotID,
			&eventType,
			&event.DwellMs,
			&event.OccurredAt,
		); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		event.EventType = models.EventType(eventType)
		event.OccurredAt = event.OccurredAt.UTC()

		page.Items = append(page.Items, event)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	if l := len(page.Items); l > 0 {
		last := page.Items[l-1]
		page.NextPageToken = encodePageToken(last.OccurredAt, last.ID)
	} else {
		page.NextPageToken = ""
	}

	return &page, nil
}
