package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/recommendation-service/internal/models"
)

// Интеграционные тесты пакета postgres:
// — поднимают реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// — применяют миграции из ./migrations;
// — проверяют контракты storage.Storage поверх живой БД: блокировки
//   FOR UPDATE, уникальность (user_id, content_type, slot_at),
//   keyset-пагинацию, anti-join непросмотренных фактов и идемпотентность
//   fact_views.

// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
// Используется для поиска SQL-миграций в каталоге ./migrations независимо от текущего рабочего каталога.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	root := repoRootFromThisFile()
	path := filepath.Join(root, "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает PostgreSQL через testcontainers-go,
// применяет миграции и возвращает инициализированное хранилище и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	// применяем миграции.
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, readMigration(t, "1_init_recommendations.up.sql"))
	require.NoError(t, err)

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

// mustInsertSlot — вставляет слот с переданной привязкой и проверяет отсутствие ошибки.
func mustInsertSlot(t *testing.T, st *Storage, userID uuid.UUID, binding models.ContentBinding, at time.Time, status models.SlotStatus, priority int) *models.Slot {
	t.Helper()

	slot, err := st.InsertSlot(context.Background(), &models.Slot{
		UserID:   userID,
		Binding:  binding,
		SlotAt:   at,
		Status:   status,
		Priority: priority,
		Reason:   "test",
	})
	require.NoError(t, err)
	require.NotZero(t, slot.ID)
	return slot
}

// seedFacts — наполняет каталог фактов напрямую, минуя слой хранилища
// (у сервиса нет операции вставки фактов — каталог пополняется импортом).
// Возвращает id вставленных фактов в порядке вставки.
func seedFacts(t *testing.T, st *Storage, titles ...string) []int64 {
	t.Helper()

	ids := make([]int64, 0, len(titles))
	for _, title := range titles {
		var id int64
		err := st.pool.QueryRow(context.Background(), `
		INSERT INTO facts (title, content, url)
		VALUES ($1, $2, $3)
		RETURNING id
		`, title, "content of "+title, "https://facts.example.org/"+title).Scan(&id)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}
