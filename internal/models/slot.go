// models содержит доменные сущности recommendation-сервиса.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContentType — тип рекомендуемого контента.
type ContentType string

const (
	ContentTypeNews ContentType = "NEWS"
	ContentTypeQuiz ContentType = "QUIZ"
	ContentTypeFact ContentType = "FACT"
)

// ParseContentType разбирает строковое представление типа контента.
// Регистр не учитывается; неизвестное значение — ошибка.
func ParseContentType(s string) (ContentType, error) {
	switch ContentType(strings.ToUpper(strings.TrimSpace(s))) {
	case ContentTypeNews:
		return ContentTypeNews, nil
	case ContentTypeQuiz:
		return ContentTypeQuiz, nil
	case ContentTypeFact:
		return ContentTypeFact, nil
	default:
		return "", fmt.Errorf("unknown content type: %q", s)
	}
}

func (c ContentType) String() string {
	return string(c)
}

// Valid сообщает, входит ли значение в множество поддерживаемых типов.
func (c ContentType) Valid() bool {
	switch c {
	case ContentTypeNews, ContentTypeQuiz, ContentTypeFact:
		return true
	default:
		return false
	}
}

// SlotStatus — состояние слота в жизненном цикле доставки.
//
// Переходы:
//
//	SCHEDULED -> DELIVERED -> SEEN | DISMISSED
//
// SEEN и DISMISSED — терминальные. Возврат в SCHEDULED (push-back) — это
// не новое состояние, а отложенный повтор: слот, который нельзя доставить
// сейчас, понижается в приоритете и ждёт следующего окна.
type SlotStatus string

const (
	SlotStatusScheduled SlotStatus = "SCHEDULED"
	SlotStatusDelivered SlotStatus = "DELIVERED"
	SlotStatusSeen      SlotStatus = "SEEN"
	SlotStatusDismissed SlotStatus = "DISMISSED"
)

func (s SlotStatus) String() string {
	return string(s)
}

// DefaultPriority — приоритет слота по умолчанию (середина шкалы, меньше — срочнее).
const DefaultPriority = 5

// Slot — запланированная возможность доставки одной единицы контента
// одному пользователю в один момент времени.
//
// Инварианты:
//   - (UserID, Binding.ContentType, SlotAt) уникальны — не более одного
//     слота на пользователя/тип/момент;
//   - Binding однозначен: ровно один контентный идентификатор, совпадающий
//     с типом (см. ContentBinding);
//   - временные метки — в UTC; UpdatedAt обновляется при каждой мутации.
//
// Слоты никогда не удаляются физически — расписание append-only,
// жизненный цикл выражается через Status.
type Slot struct {
	// ID — синтетический идентификатор (BIGSERIAL).
	ID int64
	// UserID — владелец слота (внешний ключ, далее не моделируется).
	UserID uuid.UUID
	// Binding — привязка к контенту (тип + ровно один id).
	Binding ContentBinding
	// SlotAt — момент, на который запланирована доставка.
	SlotAt time.Time
	// Status — текущее состояние жизненного цикла.
	Status SlotStatus
	// Priority — целочисленный приоритет, меньше — срочнее.
	// Повышается на 1 при push-back (демоция).
	Priority int
	// Reason — свободный текст для диагностики/телеметрии.
	Reason string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContentType — тип контента слота (прокси к Binding).
func (s *Slot) ContentType() ContentType {
	return s.Binding.ContentType()
}

// ContentID — идентификатор привязанного контента (прокси к Binding).
func (s *Slot) ContentID() int64 {
	return s.Binding.ContentID()
}

// PushBack откладывает слот: демотирует приоритет и возвращает статус
// в SCHEDULED, чтобы слот был повторён в следующем окне.
func (s *Slot) PushBack() {
	s.Priority++
	s.Status = SlotStatusScheduled
}

// ListSlotsOptions — параметры выборки расписания слотов пользователя.
//
// Особенности:
//   - при Limit == 0 применяется серверный default (из config.LimitsConfig.Default);
//   - PageToken == "" -> первая страница;
//   - ContentType == "" -> все типы;
//   - From/To — опциональные границы по slot_at (нулевое значение — без границы).
type ListSlotsOptions struct {
	ContentType ContentType
	From        time.Time
	To          time.Time
	Limit       int32
	PageToken   string
}

// SlotPage — страница слотов со ссылкой на продолжение.
type SlotPage struct {
	Items         []Slot
	NextPageToken string
}
