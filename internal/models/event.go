package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EventType — тип пользовательского взаимодействия со слотом.
//
// Множество намеренно не исчерпывающее: клиент может прислать новые типы
// событий, они логируются в журнал, но на состояние слота влияют только
// OPENED и DISMISS.
type EventType string

const (
	EventTypeDelivered EventType = "DELIVERED"
	EventTypeOpened    EventType = "OPENED"
	EventTypeDismiss   EventType = "DISMISS"
)

// ParseEventType разбирает строковое представление типа события.
func ParseEventType(s string) (EventType, error) {
	v := EventType(strings.ToUpper(strings.TrimSpace(s)))
	if v == "" {
		return "", fmt.Errorf("empty event type")
	}
	return v, nil
}

func (e EventType) String() string {
	return string(e)
}

// Event — неизменяемая запись журнала взаимодействий.
//
// Append-only: после вставки строка никогда не мутируется. Журнал существует
// только для аналитики; для решений планировщика авторитетен Slot.Status.
type Event struct {
	ID         int64
	UserID     uuid.UUID
	SlotID     int64
	EventType  EventType
	DwellMs    int
	OccurredAt time.Time
}

// ListEventsOptions — параметры выборки журнала событий.
type ListEventsOptions struct {
	Limit     int32
	PageToken string
}

// EventPage — страница событий со ссылкой на продолжение.
type EventPage struct {
	Items         []Event
	NextPageToken string
}
