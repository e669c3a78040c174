package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/recommendation-service/internal/storage"
)

func TestIntegration_Facts_Catalog_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ids := seedFacts(t, st, "alpha", "beta", "gamma")

	count, err := st.CountFacts(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(3), count)

	got, err := st.FactByID(context.Background(), ids[1])
	require.NoError(t, err)
	require.Equal(t, ids[1], got.ID)
	require.Equal(t, "beta", got.Title)
	require.Equal(t, "content of beta", got.Content)
	require.Equal(t, "https://facts.example.org/beta", got.URL)

	_, err = st.FactByID(context.Background(), ids[2]+1000)
	require.ErrorIs(t, err, storage.ErrNotFound)

	// FactAt — позиция в порядке id ASC.
	at1, err := st.FactAt(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, ids[1], at1.ID)

	_, err = st.FactAt(context.Background(), 3)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_Facts_UnseenAntiJoin(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ids := seedFacts(t, st, "one", "two", "three")
	userID := uuid.New()

	unseen, err := st.CountUnseenFacts(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, int64(3), unseen)

	// Отмечаем первый факт просмотренным.
	require.NoError(t, st.MarkFactSeen(context.Background(), userID, ids[0], time.Now().UTC()))

	unseen, err = st.CountUnseenFacts(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, int64(2), unseen)

	// UnseenFactAt(0) пропускает просмотренный факт.
	first, err := st.UnseenFactAt(context.Background(), userID, 0)
	require.NoError(t, err)
	require.Equal(t, ids[1], first.ID)

	_, err = st.UnseenFactAt(context.Background(), userID, 2)
	require.ErrorIs(t, err, storage.ErrNotFound)

	seen, err := st.FactSeen(context.Background(), userID, ids[0])
	require.NoError(t, err)
	require.True(t, seen)

	seen, err = st.FactSeen(context.Background(), userID, ids[1])
	require.NoError(t, err)
	require.False(t, seen)

	// Отметки одного пользователя не влияют на другого.
	otherUnseen, err := st.CountUnseenFacts(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Equal(t, int64(3), otherUnseen)
}

func TestIntegration_MarkFactSeen_Idempotent(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ids := seedFacts(t, st, "repeat")
	userID := uuid.New()

	first := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, st.MarkFactSeen(context.Background(), userID, ids[0], first))
	// Повторная отметка — не ошибка и не дубликат.
	require.NoError(t, st.MarkFactSeen(context.Background(), userID, ids[0], first.Add(time.Hour)))

	var count int64
	var viewedAt time.Time
	err := st.pool.QueryRow(context.Background(), `
	SELECT count(*), min(viewed_at)
	FROM fact_views
	WHERE user_id = $1 AND fact_id = $2
	`, userID, ids[0]).Scan(&count, &viewedAt)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)
	// Первая отметка авторитетна.
	require.True(t, viewedAt.UTC().Equal(first))
}
