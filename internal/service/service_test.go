package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/recommendation-service/internal/config"
	"github.com/pribylovaa/recommendation-service/internal/storage"
	"github.com/pribylovaa/recommendation-service/mocks"
)

// Общие фикстуры unit-тестов сервисного слоя.
//
// Хранилище мокается через mocks (mockgen по internal/storage/storage.go);
// транзакционный путь — через expectTx: WithinTx исполняет колбэк на мок-Tx
// синхронно, так что взаимодействия внутри «транзакции» проверяются обычными
// EXPECT-ожиданиями. Внешние апстримы (контент, настройки) — лёгкие стабы:
// их мокы жили бы в mocks и замкнули бы цикл импорта с in-package тестами.

var (
	testUser = uuid.MustParse("7b8e1f4a-3c2d-4e5f-9a6b-1c2d3e4f5a6b")
	testNow  = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
)

func testConfig() config.Config {
	return config.Config{
		Delivery: config.DeliveryConfig{Window: 5 * time.Minute},
		Scheduler: config.SchedulerConfig{
			DefaultPriority: 5,
			DefaultInterval: time.Hour,
		},
		LimitsConfig: config.LimitsConfig{
			Default: 20,
			Max:     100,
		},
	}
}

// newSvcForTest — фабрика Service с фиксированным временем и
// детерминированным «случайным» смещением (всегда 0).
func newSvcForTest(t *testing.T, st storage.Storage, content ContentLookup, prefs UserPreferences) *Service {
	t.Helper()

	svc := New(st, content, prefs, testConfig())
	svc.now = func() time.Time { return testNow }
	svc.randInt64 = func(int64) int64 { return 0 }

	return svc
}

// expectTx настраивает WithinTx на синхронное исполнение колбэка с mock-Tx.
func expectTx(st *mocks.MockStorage, tx *mocks.MockTx) {
	st.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, storage.Tx) error) error {
			return fn(ctx, tx)
		})
}

// stubContent — подменяемый апстрим контента.
type stubContent struct {
	news func(ctx context.Context, newsID int64) (*NewsPayload, error)
	quiz func(ctx context.Context, quizID int64, includeAnswer, includeExplanation bool) (*QuizPayload, error)
}

func (s stubContent) NewsPayload(ctx context.Context, newsID int64) (*NewsPayload, error) {
	return s.news(ctx, newsID)
}

func (s stubContent) QuizPayload(ctx context.Context, quizID int64, includeAnswer, includeExplanation bool) (*QuizPayload, error) {
	return s.quiz(ctx, quizID, includeAnswer, includeExplanation)
}

// stubPrefs — подменяемый апстрим пользовательских настроек.
type stubPrefs struct {
	interval time.Duration
	err      error
}

func (s stubPrefs) NotifyInterval(context.Context, uuid.UUID) (time.Duration, error) {
	return s.interval, s.err
}
