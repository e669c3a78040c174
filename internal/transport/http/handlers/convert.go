package handlers

import (
	"time"

	"github.com/pribylovaa/recommendation-service/internal/models"
	"github.com/pribylovaa/recommendation-service/internal/service"
)

// slotResponse — представление слота для фронта.
// Контентные идентификаторы взаимоисключающие: сериализуется ровно один.
type slotResponse struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	ContentType string    `json:"content_type"`
	NewsID      *int64    `json:"news_id,omitempty"`
	QuizID      *int64    `json:"quiz_id,omitempty"`
	FactID      *int64    `json:"fact_id,omitempty"`
	SlotAt      time.Time `json:"slot_at"`
	Status      string    `json:"status"`
	Priority    int       `json:"priority"`
	Reason      string    `json:"reason,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toSlotResponse(s *models.Slot) slotResponse {
	return slotResponse{
		ID:          s.ID,
		UserID:      s.UserID.String(),
		ContentType: s.ContentType().String(),
		NewsID:      s.Binding.NewsID(),
		QuizID:      s.Binding.QuizID(),
		FactID:      s.Binding.FactID(),
		SlotAt:      s.SlotAt,
		Status:      s.Status.String(),
		Priority:    s.Priority,
		Reason:      s.Reason,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// payloadResponse — собранная рекомендация попапа.
type payloadResponse struct {
	SlotID      int64          `json:"slot_id"`
	ContentType string         `json:"content_type"`
	ContentID   int64          `json:"content_id"`
	SlotAt      time.Time      `json:"slot_at"`
	Title       string         `json:"title,omitempty"`
	URL         string         `json:"url,omitempty"`
	Question    string         `json:"question,omitempty"`
	Extras      map[string]any `json:"extras,omitempty"`
}

func toPayloadResponse(p *service.Payload) payloadResponse {
	return payloadResponse{
		SlotID:      p.SlotID,
		ContentType: p.ContentType.String(),
		ContentID:   p.ContentID,
		SlotAt:      p.SlotAt,
		Title:       p.Title,
		URL:         p.URL,
		Question:    p.Question,
		Extras:      p.Extras,
	}
}

// eventResponse — запись журнала взаимодействий.
type eventResponse struct {
	ID         int64     `json:"id"`
	SlotID     int64     `json:"slot_id"`
	EventType  string    `json:"event_type"`
	DwellMs    int       `json:"dwell_ms"`
	OccurredAt time.Time `json:"occurred_at"`
}

func toEventResponse(e models.Event) eventResponse {
	return eventResponse{
		ID:         e.ID,
		SlotID:     e.SlotID,
		EventType:  e.EventType.String(),
		DwellMs:    e.DwellMs,
		OccurredAt: e.OccurredAt,
	}
}

// slotListResponse / eventListResponse — страницы с курсором продолжения.
type slotListResponse struct {
	Items         []slotResponse `json:"items"`
	NextPageToken string         `json:"next_page_token,omitempty"`
}

type eventListResponse struct {
	Items         []eventResponse `json:"items"`
	NextPageToken string          `json:"next_page_token,omitempty"`
}
