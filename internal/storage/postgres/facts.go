package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/recommendation-service/internal/models"
	"github.com/pribylovaa/recommendation-service/internal/storage"
)

// FactByID возвращает факт по идентификатору или storage.ErrNotFound.
func (q *queries) FactByID(ctx context.Context, factID int64) (*models.Fact, error) {
	const op = "storage.postgres.FactByID"

	var fact models.Fact
	err := q.db.QueryRow(ctx, `
	SELECT id, title, content, url
	FROM facts
	WHERE id = $1
	`, factID).Scan(&fact.ID, &fact.Title, &fact.Content, &fact.URL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &fact, nil
}

// CountFacts — общее количество фактов в каталоге.
func (q *queries) CountFacts(ctx context.Context) (int64, error) {
	const op = "storage.postgres.CountFacts"

	var count int64
	if err := q.db.QueryRow(ctx, `SELECT count(*) FROM facts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

// FactAt возвращает факт на позиции offset в порядке id ASC.
// Выборка по смещению, а не «первая строка»: случайное смещение выбирает
// сервис, поэтому распределение не смещено к маленьким id.
func (q *queries) FactAt(ctx context.Context, offset int64) (*models.Fact, error) {
	const op = "storage.postgres.FactAt"

	var fact models.Fact
	err := q.db.QueryRow(ctx, `
	SELECT id, title, content, url
	FROM facts
	ORDER BY id ASC
	OFFSET $1
	LIMIT 1
	`, offset).Scan(&fact.ID, &fact.Title, &fact.Content, &fact.URL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &fact, nil
}

// CountUnseenFacts — количество фактов, которые пользователь ещё не открывал.
func (q *queries) CountUnseenFacts(ctx context.Context, userID uuid.UUID) (int64, error) {
	const op = "storage.postgres.CountUnseenFacts"

	var count int64
	err := q.db.QueryRow(ctx, `
	SELECT count(*)
	FROM facts f
	WHERE NOT EXISTS (
		SELECT 1 FROM fact_views v
		WHERE v.user_id = $1 AND v.fact_id = f.id
	)
	`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

// UnseenFactAt возвращает непросмотренный факт на позиции offset (id ASC).
func (q *queries) UnseenFactAt(ctx context.Context, userID uuid.UUID, offset int64) (*models.Fact, error) {
	const op = "storage.postgres.UnseenFactAt"

	var fact models.Fact
	err := q.db.QueryRow(ctx, `
	SELECT f.id, f.title, f.content, f.url
	FROM facts f
	WHERE NOT EXISTS (
		SELECT 1 FROM fact_views v
		WHERE v.user_id = $1 AND v.fact_id = f.id
	)
	ORDER BY f.id ASC
	OFFSET $2
	LIMIT 1
	`, userID, offset).Scan(&fact.ID, &fact.Title, &fact.Content, &fact.URL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &fact, nil
}

// FactSeen сообщает, открывал ли пользователь данный факт.
func (q *queries) FactSeen(ctx context.Context, userID uuid.UUID, factID int64) (bool, error) {
	const op = "storage.postgres.FactSeen"

	var seen bool
	err := q.db.QueryRow(ctx, `
	SELECT EXISTS (
		SELECT 1 FROM fact_views
		WHERE user_id = $1 AND fact_id = $2
	)
	`, userID, factID).Scan(&seen)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return seen, nil
}

// MarkFactSeen фиксирует (user_id, fact_id) идемпотентно:
// повторная отметка поглощается ON CONFLICT DO NOTHING.
func (q *queries) MarkFactSeen(ctx context.Context, userID uuid.UUID, factID int64, viewedAt time.Time) error {
	const op = "storage.postgres.MarkFactSeen"

	_, err := q.db.Exec(ctx, `
	INSERT INTO fact_views (user_id, fact_id, viewed_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (user_id, fact_id) DO NOTHING
	`, userID, factID, viewedAt.UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
