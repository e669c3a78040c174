package postgres

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pribylovaa/recommendation-service/internal/models"
	"github.com/pribylovaa/recommendation-service/internal/storage"
)

const slotColumns = `id, user_id, content_type, news_id, quiz_id, fact_id, slot_at, status, priority, reason, created_at, updated_at`

// scanSlot читает строку user_recommendation_slots в доменную модель.
// Противоречивая привязка в БД (нарушенный CHECK) — ошибка, не «тихое» исправление.
func scanSlot(row pgx.Row) (*models.Slot, error) {
	var (
		slot        models.Slot
		contentType string
		status      string
		newsID      *int64
		quizID      *int64
		factID      *int64
	)

	if err := row.Scan(
		&slot.ID,
		&slot.UserID,
		&contentType,
		&newsID,
		&quizID,
		&factID,
		&slot.SlotAt,
		&status,
		&slot.Priority,
		&slot.Reason,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	); err != nil {
		return nil, err
	}

	binding, err := models.NewContentBinding(models.ContentType(contentType), newsID, quizID, factID)
	if err != nil {
		return nil, fmt.Errorf("slot %d: %w", slot.ID, err)
	}

	slot.Binding = binding
	slot.Status = models.SlotStatus(status)

	// Нормализация в UTC.
	slot.SlotAt = slot.SlotAt.UTC()
	slot.CreatedAt = slot.CreatedAt.UTC()
	slot.UpdatedAt = slot.UpdatedAt.UTC()

	return &slot, nil
}

// NextForDeliveryForUpdate выбирает один слот окна под эксклюзивной блокировкой.
// Порядок фиксирован: priority ASC, id ASC — самый срочный, при равенстве самый старый.
// Блокировка держится до конца транзакции вызывающего кода: два конкурентных
// запроса доставки на одно окно никогда не получат один и тот же слот.
func (q *queries) NextForDeliveryForUpdate(ctx context.Context, userID uuid.UUID, contentType models.ContentType, windowStart, windowEnd time.Time, status models.SlotStatus) (*models.Slot, error) {
	const op = "storage.postgres.NextForDeliveryForUpdate"

	row := q.db.QueryRow(ctx, `
	SELECT `+slotColumns+`
	FROM user_recommendation_slots
	WHERE user_id = $1
	  AND content_type = $2
	  AND slot_at BETWEEN $3 AND $4
	  AND status = $5
	ORDER BY priority ASC, id ASC
	LIMIT 1
	FOR UPDATE
	`, userID, contentType.String(), windowStart.UTC(), windowEnd.UTC(), status.String())

	slot, err := scanSlot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return slot, nil
}

// SlotAtTimeForUpdate возвращает слот по точному кортежу уникальности
// под той же блокировкой, что и выбор доставки.
func (q *queries) SlotAtTimeForUpdate(ctx context.Context, userID uuid.UUID, contentType models.ContentType, slotAt time.Time) (*models.Slot, error) {
	const op = "storage.postgres.SlotAtTimeForUpdate"

	row := q.db.QueryRow(ctx, `
	SELECT `+slotColumns+`
	FROM user_recommendation_slots
	WHERE user_id = $1 AND content_type = $2 AND slot_at = $3
	FOR UPDATE
	`, userID, contentType.String(), slotAt.UTC())

	slot, err := scanSlot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return slot, nil
}

// SlotByIDAndUser возвращает слот по id с проверкой владения.
// Чужой слот неотличим от отсутствующего — ErrNotFound.
func (q *queries) SlotByIDAndUser(ctx context.Context, slotID int64, userID uuid.UUID) (*models.Slot, error) {
	const op = "storage.postgres.SlotByIDAndUser"

	row := q.db.QueryRow(ctx, `
	SELECT `+slotColumns+`
	FROM user_recommendation_slots
	WHERE id = $1 AND user_id = $2
	`, slotID, userID)

	slot, err := scanSlot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return slot, nil
}

// LatestScheduled возвращает слот пользователя/типа с максимальным slot_at
// независимо от статуса — якорь для расчёта следующего времени.
func (q *queries) LatestScheduled(ctx context.Context, userID uuid.UUID, contentType models.ContentType) (*models.Slot, error) {
	const op = "storage.postgres.LatestScheduled"

	row := q.db.QueryRow(ctx, `
	SELECT `+slotColumns+`
	FROM user_recommendation_slots
	WHERE user_id = $1 AND content_type = $2
	ORDER BY slot_at DESC, id DESC
	LIMIT 1
	`, userID, contentType.String())

	slot, err := scanSlot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return slot, nil
}

// InsertSlot вставляет новый слот.
// Конфликт по (user_id, content_type, slot_at) — ErrAlreadyExists:
// конкурентные upsert на один момент ожидаемы, вызывающий код повторяет
// операцию как update. Конфликт поглощается ON CONFLICT DO NOTHING
// (вставка просто не возвращает строку), а не ошибкой 23505 — объемлющая
// транзакция не переходит в aborted, и слияние продолжается в ней же.
func (q *queries) InsertSlot(ctx context.Context, slot *models.Slot) (*models.Slot, error) {
	const op = "storage.postgres.InsertSlot"

	row := q.db.QueryRow(ctx, `
	INSERT INTO user_recommendation_slots
		(user_id, content_type, news_id, quiz_id, fact_id, slot_at, status, priority, reason)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (user_id, content_type, slot_at) DO NOTHING
	RETURNING `+slotColumns+`
	`,
		slot.UserID,
		slot.ContentType().String(),
		slot.Binding.NewsID(),
		slot.Binding.QuizID(),
		slot.Binding.FactID(),
		slot.SlotAt.UTC(),
		slot.Status.String(),
		slot.Priority,
		slot.Reason,
	)

	saved, err := scanSlot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

// UpdateSlot сохраняет мутируемые поля слота и обновляет updated_at.
func (q *queries) UpdateSlot(ctx context.Context, slot *models.Slot) (*models.Slot, error) {
	const op = "storage.postgres.UpdateSlot"

	row := q.db.QueryRow(ctx, `
	UPDATE user_recommendation_slots
	SET news_id = $2,
		quiz_id = $3,
		fact_id = $4,
		status = $5,
		priority = $6,
		reason = $7,
		updated_at = now()
	WHERE id = $1
	RETURNING `+slotColumns+`
	`,
		slot.ID,
		slot.Binding.NewsID(),
		slot.Binding.QuizID(),
		slot.Binding.FactID(),
		slot.Status.String(),
		slot.Priority,
		slot.Reason,
	)

	saved, err := scanSlot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

// ListSlots возвращает страницу расписания пользователя с курсорной пагинацией.
// Сортировка фиксирована: slot_at DESC, id DESC.
// page_token — непрозрачная строка (base64url).
// При некорректном токене возвращает storage.ErrInvalidCursor.
func (q *queries) ListSlots(ctx context.Context, userID uuid.UUID, opts models.ListSlotsOptions) (*models.SlotPage, error) {
	const op = "storage.postgres.ListSlots"

	limit := opts.Limit
	if limit <= 0 {
		// Защита от нуля/отрицательного значения.
		limit = 1
	}

	var contentType *string
	if opts.ContentType != "" {
		v := opts.ContentType.String()
		contentType = &v
	}

	var from, to *time.Time
	if !opts.From.IsZero() {
		v := opts.From.UTC()
		from = &v
	}
	if !opts.To.IsZero() {
		v := opts.To.UTC()
		to = &v
	}

	var rows pgx.Rows
	var err error

	if opts.PageToken == "" {
		rows, err = q.db.Query(ctx, `
		SELECT `+slotColumns+`
		FROM user_recommendation_slots
		WHERE user_id = $1
		  AND ($2::text IS NULL OR content_type = $2)
		  AND ($3::timestamptz IS NULL OR slot_at >= $3)
		  AND ($4::timestamptz IS NULL OR slot_at < $4)
		ORDER BY slot_at DESC, id DESC
		LIMIT $5
		`, userID, contentType, from, to, limit)
	} else {
		atCur, idCur, decErr := decodePageToken(opts.PageToken)
		if decErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		rows, err = q.db.Query(ctx, `
		SELECT `+slotColumns+`
		FROM user_recommendation_slots
		WHERE user_id = $1
		  AND ($2::text IS NULL OR content_type = $2)
		  AND ($3::timestamptz IS NULL OR slot_at >= $3)
		  AND ($4::timestamptz IS NULL OR slot_at < $4)
		  AND (slot_at, id) < ($5, $6)
		ORDER BY slot_at DESC, id DESC
		LIMIT $7
		`, userID, contentType, from, to, atCur, idCur, limit)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var page models.SlotPage
	for rows.Next() {
		slot, scanErr := scanSlot(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		page.Items = append(page.Items, *slot)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	// Курсор следующей страницы — по последнему элементу.
	if l := len(page.Items); l > 0 {
		last := page.Items[l-1]
		page.NextPageToken = encodePageToken(last.SlotAt, last.ID)
	} else {
		page.NextPageToken = ""
	}

	return &page, nil
}

// encodePageToken кодирует пару ключей страницы в непрозрачный токен для клиента.
func encodePageToken(at time.Time, id int64) string {
	raw := fmt.Sprintf("%d|%d", at.UTC().UnixNano(), id)

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodePageToken декодирует токен обратно в пару ключей.
func decodePageToken(token string) (time.Time, int64, error) {
	res, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return time.Time{}, 0, err
	}

	parts := strings.SplitN(string(res), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, 0, fmt.Errorf("bad parts")
	}

	t, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, 0, err
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, 0, err
	}

	return time.Unix(0, t).UTC(), id, nil
}
