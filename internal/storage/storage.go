// storage определяет контракты доступа к БД для recommendation-service.
//
// slots — расписание слотов доставки (единственный разделяемый мутируемый
// ресурс ядра, см. методы *ForUpdate); facts — локальный каталог фактов и
// отметки о просмотре; events — append-only журнал взаимодействий.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/recommendation-service/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — конфликт уникальности. Для слотов это ожидаемый
	// исход конкурентного upsert по (user_id, content_type, slot_at):
	// вызывающий код обязан повторить операцию как update, а не падать.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidCursor — битый/чужой page_token (курсор пагинации).
	ErrInvalidCursor = errors.New("invalid cursor")
)

// Slots описывает операции над слотами рекомендаций.
//
// Методы с суффиксом ForUpdate берут эксклюзивную блокировку выбранной
// строки (SELECT ... FOR UPDATE) и обязаны вызываться внутри транзакции
// (Storage.WithinTx) — блокировка удерживается до её коммита/отката.
type Slots interface {
	// NextForDeliveryForUpdate выбирает не более одного слота пользователя
	// данного типа в окне [windowStart, windowEnd] с указанным статусом.
	// Порядок выбора: priority ASC, id ASC (самый срочный/старый первым).
	// Пустое окно — ErrNotFound.
	NextForDeliveryForUpdate(ctx context.Context, userID uuid.UUID, contentType models.ContentType, windowStart, windowEnd time.Time, status models.SlotStatus) (*models.Slot, error)
	// SlotAtTimeForUpdate возвращает слот по точному кортежу
	// (user_id, content_type, slot_at) или ErrNotFound.
	// Используется upsert-путём; та же блокировка, что и у доставки,
	// исключает гонку upsert/доставка.
	SlotAtTimeForUpdate(ctx context.Context, userID uuid.UUID, contentType models.ContentType, slotAt time.Time) (*models.Slot, error)
	// SlotByIDAndUser возвращает слот по id с проверкой владения
	// (чужой слот неотличим от отсутствующего — ErrNotFound).
	SlotByIDAndUser(ctx context.Context, slotID int64, userID uuid.UUID) (*models.Slot, error)
	// LatestScheduled возвращает слот пользователя/типа с максимальным
	// slot_at (якорь расчёта следующего времени) или ErrNotFound.
	LatestScheduled(ctx context.Context, userID uuid.UUID, contentType models.ContentType) (*models.Slot, error)
	// InsertSlot вставляет новый слот. Конфликт уникальности
	// (user_id, content_type, slot_at) — ErrAlreadyExists.
	// Конфликт не абортирует объемлющую транзакцию: вызывающий код
	// вправе перечитать слот и слиться с ним в той же транзакции.
	InsertSlot(ctx context.Context, slot *models.Slot) (*models.Slot, error)
	// UpdateSlot сохраняет мутируемые поля слота (binding, status,
	// priority, reason) и обновляет updated_at. Отсутствующая строка — ErrNotFound.
	UpdateSlot(ctx context.Context, slot *models.Slot) (*models.Slot, error)
	// ListSlots возвращает страницу расписания пользователя,
	// отсортированную по slot_at DESC, id DESC (keyset-пагинация).
	ListSlots(ctx context.Context, userID uuid.UUID, opts models.ListSlotsOptions) (*models.SlotPage, error)
}

// Facts описывает локальный каталог фактов и отметки «уже показан».
//
// Случайный выбор намеренно разложен на count + выборку по смещению:
// смещение выбирает сервис, поэтому распределение равномерное,
// без смещения к маленьким id.
type Facts interface {
	// FactByID возвращает факт или ErrNotFound.
	FactByID(ctx context.Context, factID int64) (*models.Fact, error)
	// CountFacts — общее количество фактов в каталоге.
	CountFacts(ctx context.Context) (int64, error)
	// FactAt возвращает факт на позиции offset в порядке id ASC.
	FactAt(ctx context.Context, offset int64) (*models.Fact, error)
	// CountUnseenFacts — количество фактов, которые пользователь ещё не открывал.
	CountUnseenFacts(ctx context.Context, userID uuid.UUID) (int64, error)
	// UnseenFactAt возвращает непросмотренный факт на позиции offset (id ASC).
	UnseenFactAt(ctx context.Context, userID uuid.UUID, offset int64) (*models.Fact, error)
	// FactSeen сообщает, открывал ли пользователь данный факт.
	FactSeen(ctx context.Context, userID uuid.UUID, factID int64) (bool, error)
	// MarkFactSeen фиксирует (user_id, fact_id) идемпотентно:
	// повторная отметка не ошибка и не создаёт дубликата.
	MarkFactSeen(ctx context.Context, userID uuid.UUID, factID int64, viewedAt time.Time) error
}

// Events описывает append-only журнал взаимодействий.
type Events interface {
	// AppendEvent добавляет запись журнала. Строки никогда не мутируются.
	AppendEvent(ctx context.Context, event *models.Event) error
	// ListEvents возвращает страницу журнала пользователя,
	// отсортированную по occurred_at DESC, id DESC.
	ListEvents(ctx context.Context, userID uuid.UUID, opts models.ListEventsOptions) (*models.EventPage, error)
}

// Tx — набор операций, доступных внутри одной транзакции.
type Tx interface {
	Slots
	Facts
	Events
}

// Storage задаёт контракт доступа к хранилищу recommendation-сервиса.
// Методы Tx, вызванные на Storage напрямую, выполняются вне транзакции
// (autocommit) — блокирующие *ForUpdate-пути обязаны идти через WithinTx.
type Storage interface {
	Tx
	// WithinTx выполняет fn в одной транзакции: commit при nil,
	// rollback при ошибке или панике. Блокировки строк, взятые внутри fn,
	// удерживаются до завершения транзакции.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	Close()
}
