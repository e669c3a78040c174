package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/recommendation-service/internal/models"
	"github.com/pribylovaa/recommendation-service/internal/storage"
)

func TestIntegration_AppendEvent_And_ListEvents_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	userID := uuid.New()
	base := time.Now().UTC().Truncate(time.Second)

	types := []models.EventType{models.EventTypeDelivered, models.EventTypeOpened, models.EventTypeDismiss}
	for i, et := range types {
		require.NoError(t, st.AppendEvent(context.Background(), &models.Event{
			UserID:     userID,
			SlotID:     int64(i + 1),
			EventType:  et,
			DwellMs:    i * 100,
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	// Чужое событие в выдачу не попадает.
	require.NoError(t, st.AppendEvent(context.Background(), &models.Event{
		UserID:     uuid.New(),
		SlotID:     99,
		EventType:  models.EventTypeOpened,
		OccurredAt: base,
	}))

	// Порядок: occurred_at DESC, id DESC.
	p1, err := st.ListEvents(context.Background(), userID, models.ListEventsOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, p1.Items, 2)
	require.Equal(t, models.EventTypeDismiss, p1.Items[0].EventType)
	require.Equal(t, int64(3), p1.Items[0].SlotID)
	require.Equal(t, 200, p1.Items[0].DwellMs)
	require.Equal(t, models.EventTypeOpened, p1.Items[1].EventType)
	require.NotEmpty(t, p1.NextPageToken)

	p2, err := st.ListEvents(context.Background(), userID, models.ListEventsOptions{Limit: 2, PageToken: p1.NextPageToken})
	require.NoError(t, err)
	require.Len(t, p2.Items, 1)
	require.Equal(t, models.EventTypeDelivered, p2.Items[0].EventType)
	require.Equal(t, int64(1), p2.Items[0].SlotID)

	p3, err := st.ListEvents(context.Background(), userID, models.ListEventsOptions{Limit: 2, PageToken: p2.NextPageToken})
	require.NoError(t, err)
	require.Empty(t, p3.Items)
	require.Equal(t, "", p3.NextPageToken)
}

func TestIntegration_ListEvents_InvalidToken_ReturnsErrInvalidCursor(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.ListEvents(context.Background(), uuid.New(), models.ListEventsOptions{Limit: 2, PageToken: "%%%not_base64%%%"})
	require.ErrorIs(t, err, storage.ErrInvalidCursor)
}

func TestIntegration_ListEvents_LimitZero_DefaultsToOne(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	userID := uuid.New()
	base := time.Now().UTC().Truncate(time.Second)

	for i := 0; i < 2; i++ {
		require.NoError(t, st.AppendEvent(context.Background(), &models.Event{
			UserID:     userID,
			SlotID:     int64(i + 1),
			EventType:  models.EventTypeDelivered,
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	p, err := st.ListEvents(context.Background(), userID, models.ListEventsOptions{Limit: 0})
	require.NoError(t, err)
	require.Len(t, p.Items, 1, "limit<=0 must fallback to 1")
	require.NotEmpty(t, p.NextPageToken)
}
