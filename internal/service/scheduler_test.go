package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/recommendation-service/internal/models"
	"github.com/pribylovaa/recommendation-service/internal/storage"
	"github.com/pribylovaa/recommendation-service/mocks"
	"github.com/stretchr/testify/require"
)

// Unit-тесты планировщика (scheduler.go).
//
// Покрываем:
//  - валидацию аргументов;
//  - расчёт момента слота: пустое расписание -> now+interval,
//    иначе хвост+interval (монотонность расписания);
//  - деградацию до дефолтного интервала при недоступных настройках;
//  - слияние с существующим слотом: приоритет «меньше побеждает»,
//    binding/reason «последний пишет»;
//  - гонку конкурентной вставки (ErrAlreadyExists -> повтор как update).

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func TestUpsertSlot_InvalidArguments(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSvcForTest(t, mocks.NewMockStorage(ctrl), stubContent{}, stubPrefs{})

	_, err := svc.UpsertSlot(context.Background(), UpsertSlotInput{
		UserID:      uuid.Nil,
		ContentType: models.ContentTypeNews,
		NewsID:      int64Ptr(1),
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.UpsertSlot(context.Background(), UpsertSlotInput{
		UserID:      testUser,
		ContentType: models.ContentType("PODCAST"),
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.UpsertSlot(context.Background(), UpsertSlotInput{
		UserID:      testUser,
		ContentType: models.ContentTypeNews,
		NewsID:      int64Ptr(1),
		Priority:    intPtr(0),
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestUpsertSlot_AmbiguousBinding(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newSvcForTest(t, mocks.NewMockStorage(ctrl), stubContent{}, stubPrefs{interval: time.Hour})

	// NEWS с quiz_id — неоднозначно.
	_, err := svc.UpsertSlot(context.Background(), UpsertSlotInput{
		UserID:      testUser,
		ContentType: models.ContentTypeNews,
		NewsID:      int64Ptr(1),
		QuizID:      int64Ptr(2),
	})
	require.ErrorIs(t, err, ErrInvalidContentBinding)

	// NEWS без идентификатора — тоже.
	_, err = svc.UpsertSlot(context.Background(), UpsertSlotInput{
		UserID:      testUser,
		ContentType: models.ContentTypeNews,
	})
	require.ErrorIs(t, err, ErrInvalidContentBinding)
}

func TestUpsertSlot_NewSlot_EmptySchedule(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockTx := mocks.NewMockTx(ctrl)
	expectTx(mockSt, mockTx)

	wantAt := testNow.Add(30 * time.Minute)

	mockTx.EXPECT().
		LatestScheduled(gomock.Any(), testUser, models.ContentTypeNews).
		Return(nil, storage.ErrNotFound)
	mockTx.EXPECT().
		SlotAtTimeForUpdate(gomock.Any(), testUser, models.ContentTypeNews, wantAt).
		Return(nil, storage.ErrNotFound)
	mockTx.EXPECT().
		InsertSlot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Slot) (*models.Slot, error) {
			require.Equal(t, wantAt, s.SlotAt, "empty schedule anchors at now+interval")
			require.Equal(t, models.SlotStatusScheduled, s.Status)
			require.Equal(t, 5, s.Priority, "default priority applies when not set")
			require.Equal(t, int64(7), s.ContentID())
			s.ID = 1
			return s, nil
		})

	svc := newSvcForTest(t, mockSt, stubContent{}, stubPrefs{interval: 30 * time.Minute})

	slot, err := svc.UpsertSlot(context.Background(), UpsertSlotInput{
		UserID:      testUser,
		ContentType: models.ContentTypeNews,
		NewsID:      int64Ptr(7),
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), slot.ID)
	require.Equal(t, wantAt, slot.SlotAt)
}

func TestUpsertSlot_AnchorsAtScheduleTail(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockTx := mocks.NewMockTx(ctrl)
	expectTx(mockSt, mockTx)

	tail := testNow.Add(2 * time.Hour)
	wantAt := tail.Add(time.Hour)

	mockTx.EXPECT().
		LatestScheduled(gomock.Any(), testUser, models.ContentTypeQuiz).
		Return(&models.Slot{ID: 9, SlotAt: tail}, nil)
	mockTx.EXPECT().
		SlotAtTimeForUpdate(gomock.Any(), testUser, models.ContentTypeQuiz, wantAt).
		Return(nil, storage.ErrNotFound)
	mockTx.EXPECT().
		InsertSlot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Slot) (*models.Slot, error) {
			require.Equal(t, wantAt, s.SlotAt, "next slot extends the schedule tail")
			return s, nil
		})

	svc := newSvcForTest(t, mockSt, stubContent{}, stubPrefs{interval: time.Hour})

	_, err := svc.UpsertSlot(context.Background(), UpsertSlotInput{
		UserID:      testUser,
		ContentType: models.ContentTypeQuiz,
		QuizID:      int64Ptr(2),
	})
	require.NoError(t, err)
}

func TestUpsertSlot_PrefsUnavailable_DefaultInterval(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockTx := mocks.NewMockTx(ctrl)
	expectTx(mockSt, mockTx)

	// cfg.Scheduler.DefaultInterval == 1h в testConfig.
	wantAt := testNow.Add(time.Hour)

	mockTx.EXPECT().
		LatestScheduled(gomock.Any(), testUser, models.ContentTypeNews).
		Return(nil, storage.ErrNotFound)
	mockTx.EXPECT().
		SlotAtTimeForUpdate(gomock.Any(), testUser, models.ContentTypeNews, wantAt).
		Return(nil, storage.ErrNotFound)
	mockTx.EXPECT().
		InsertSlot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Slot) (*models.Slot, error) {
			require.Equal(t, wantAt, s.SlotAt)
			return s, nil
		})

	svc := newSvcForTest(t, mockSt, stubContent{}, stubPrefs{err: errors.New("settings down")})

	_, err := svc.UpsertSlot(context.Background(), UpsertSlotInput{
		UserID:      testUser,
		ContentType: models.ContentTypeNews,
		NewsID:      int64Ptr(7),
	})
	require.NoError(t, err)
}

func TestUpsertSlot_MergeExisting_LowerPriorityWins(t *testing.T) {
	t.Parallel()

	existing := func() *models.Slot {
		return &models.Slot{
			ID:       5,
			UserID:   testUser,
			Binding:  models.MustContentBinding(models.ContentTypeNews, 7),
			SlotAt:   testNow.Add(time.Hour),
			Status:   models.SlotStatusScheduled,
			Priority: 3,
			Reason:   "old reason",
		}
	}

	cases := []struct {
		name         string
		priority     *int
		wantPriority int
	}{
		{name: "higher input keeps existing", priority: intPtr(5), wantPriority: 3},
		{name: "lower input wins", priority: intPtr(2), wantPriority: 2},
		{name: "nil input keeps existing", priority: nil, wantPriority: 3},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSt := mocks.NewMockStorage(ctrl)
			mockTx := mocks.NewMockTx(ctrl)
			expectTx(mockSt, mockTx)

			slot := existing()
			wantAt := slot.SlotAt

			mockTx.EXPECT().
				LatestScheduled(gomock.Any(), testUser, models.ContentTypeNews).
				Return(&models.Slot{ID: 5, SlotAt: testNow}, nil)
			mockTx.EXPECT().
				SlotAtTimeForUpdate(gomock.Any(), testUser, models.ContentTypeNews, wantAt).
				Return(slot, nil)
			mockTx.EXPECT().
				UpdateSlot(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, s *models.Slot) (*models.Slot, error) {
					require.Equal(t, tc.wantPriority, s.Priority)
					require.Equal(t, int64(8), s.ContentID(), "binding is last-writer-wins")
					require.Equal(t, "new reason", s.Reason, "reason is last-writer-wins")
					return s, nil
				})

			svc := newSvcForTest(t, mockSt, stubContent{}, stubPrefs{interval: time.Hour})

			_, err := svc.UpsertSlot(context.Background(), UpsertSlotInput{
				UserID:      testUser,
				ContentType: models.ContentTypeNews,
				NewsID:      int64Ptr(8),
				Priority:    tc.priority,
				Reason:      "new reason",
			})
			require.NoError(t, err)
		})
	}
}

func TestUpsertSlot_InsertRace_RetriesAsUpdate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockTx := mocks.NewMockTx(ctrl)
	expectTx(mockSt, mockTx)

	wantAt := testNow.Add(time.Hour)
	raceWinner := &models.Slot{
		ID:       6,
		UserID:   testUser,
		Binding:  models.MustContentBinding(models.ContentTypeNews, 9),
		SlotAt:   wantAt,
		Status:   models.SlotStatusScheduled,
		Priority: 4,
	}

	gomock.InOrder(
		mockTx.EXPECT().
			LatestScheduled(gomock.Any(), testUser, models.ContentTypeNews).
			Return(nil, storage.ErrNotFound),
		mockTx.EXPECT().
			SlotAtTimeForUpdate(gomock.Any(), testUser, models.ContentTypeNews, wantAt).
			Return(nil, storage.ErrNotFound),
		mockTx.EXPECT().
			InsertSlot(gomock.Any(), gomock.Any()).
			Return(nil, storage.ErrAlreadyExists),
		mockTx.EXPECT().
			SlotAtTimeForUpdate(gomock.Any(), testUser, models.ContentTypeNews, wantAt).
			Return(raceWinner, nil),
		mockTx.EXPECT().
			UpdateSlot(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *models.Slot) (*models.Slot, error) {
				require.Equal(t, int64(6), s.ID, "loser must merge into the winner's row")
				require.Equal(t, int64(7), s.ContentID())
				return s, nil
			}),
	)

	svc := newSvcForTest(t, mockSt, stubContent{}, stubPrefs{interval: time.Hour})

	slot, err := svc.UpsertSlot(context.Background(), UpsertSlotInput{
		UserID:      testUser,
		ContentType: models.ContentTypeNews,
		NewsID:      int64Ptr(7),
	})
	require.NoError(t, err)
	require.Equal(t, int64(6), slot.ID)
}

func TestUpsertSlot_StorageError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSt := mocks.NewMockStorage(ctrl)
	mockTx := mocks.NewMockTx(ctrl)
	expectTx(mockSt, mockTx)

	mockTx.EXPECT().
		LatestScheduled(gomock.Any(), testUser, models.ContentTypeNews).
		Return(nil, errors.New("connection reset"))

	svc := newSvcForTest(t, mockSt, stubContent{}, stubPrefs{interval: time.Hour})

	_, err := svc.UpsertSlot(context.Background(), UpsertSlotInput{
		UserID:      testUser,
		ContentType: models.ContentTypeNews,
		NewsID:      int64Ptr(7),
	})
	require.ErrorIs(t, err, ErrInternal)
}
