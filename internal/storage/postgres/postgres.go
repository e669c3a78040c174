// postgres — реализация storage.Storage поверх pgx/v5.
//
// Особенность пакета — явная транзакционная обвязка WithinTx: операции
// *ForUpdate берут блокировку строки (SELECT ... FOR UPDATE), поэтому
// должны выполняться на объекте транзакции, а не на пуле. Структура queries
// работает поверх любого исполнителя запросов (пул или pgx.Tx).
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pribylovaa/recommendation-service/internal/storage"
)

// querier — общий знаменатель pgxpool.Pool и pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// queries реализует storage.Tx поверх произвольного исполнителя.
type queries struct {
	db querier
}

type Storage struct {
	queries
	pool *pgxpool.Pool
}

// New создает новое подключение к PostgreSQL.
func New(ctx context.Context, dbURL string) (*Storage, error) {
	const op = "storage.postgres.New"

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{queries: queries{db: pool}, pool: pool}, nil
}

// Close закрывает пул соединений.
func (s *Storage) Close() {
	s.pool.Close()
}

// WithinTx выполняет fn в одной транзакции.
//
// Контракт:
//   - ошибка fn или коммита — rollback, ошибка возвращается без обёртки
//     (sentinel-ошибки хранилища должны пройти наверх нетронутыми);
//   - блокировки строк, взятые внутри fn, держатся до Commit/Rollback.
func (s *Storage) WithinTx(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error {
	const op = "storage.postgres.WithinTx"

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}
	// Rollback после успешного Commit — no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ctx, &queries{db: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	return nil
}

// Проверка на соответствие интерфейсу Storage.
var _ storage.Storage = (*Storage)(nil)
