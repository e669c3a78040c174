package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pribylovaa/recommendation-service/internal/models"
	"github.com/pribylovaa/recommendation-service/internal/service"
	apierrors "github.com/pribylovaa/recommendation-service/internal/transport/http/errors"
)

// NextRecommendation — GET /recommendations/next?type=NEWS[&window_start=...&window_end=...].
//
// Окно задаётся RFC3339-метками; без них действует серверное окно:
// от начала текущего часа до now + delivery.window. Пустой результат —
// 204 No Content: для клиента это «сейчас показывать нечего, повтори позже».
func (h *Handlers) NextRecommendation(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFrom(w, r)
	if !ok {
		return
	}

	contentType, err := models.ParseContentType(r.URL.Query().Get("type"))
	if err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	now := time.Now().UTC()
	windowStart := now.Truncate(time.Hour)
	windowEnd := now.Add(h.cfg.Delivery.Window)

	if v := r.URL.Query().Get("window_start"); v != "" {
		if windowStart, err = time.Parse(time.RFC3339, v); err != nil {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
	}
	if v := r.URL.Query().Get("window_end"); v != "" {
		if windowEnd, err = time.Parse(time.RFC3339, v); err != nil {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
	}

	payload, err := h.service.NextRecommendation(r.Context(), userID, contentType, windowStart, windowEnd)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	if payload == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, toPayloadResponse(payload))
}

// ackRequest — тело PATCH /recommendations/{slot_id}/ack.
type ackRequest struct {
	EventType string `json:"event_type"`
	DwellMs   int    `json:"dwell_ms"`
}

// AcknowledgeSlot — PATCH /recommendations/{slot_id}/ack.
// OPENED переводит слот в SEEN (для факта — с отметкой просмотра),
// DISMISS — в DISMISSED, прочие типы только журналируются.
func (h *Handlers) AcknowledgeSlot(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFrom(w, r)
	if !ok {
		return
	}

	slotID, err := strconv.ParseInt(chi.URLParam(r, "slot_id"), 10, 64)
	if err != nil || slotID <= 0 {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	var req ackRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	eventType, err := models.ParseEventType(req.EventType)
	if err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	slot, err := h.service.Acknowledge(r.Context(), userID, slotID, eventType, req.DwellMs)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSlotResponse(slot))
}

// upsertSlotRequest — тело POST /recommendations/slots.
// user_id опционален: batch-вызовы планируют слоты за пользователя,
// клиентские вызовы опираются на identity из заголовка.
type upsertSlotRequest struct {
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	ContentType string     `json:"content_type"`
	NewsID      *int64     `json:"news_id,omitempty"`
	QuizID      *int64     `json:"quiz_id,omitempty"`
	FactID      *int64     `json:"fact_id,omitempty"`
	Priority    *int       `json:"priority,omitempty"`
	Reason      string     `json:"reason,omitempty"`
}

// UpsertSlot — POST /recommendations/slots.
// Планирует следующий слот пользователя для данного типа контента
// (момент вычисляет сервер из интервала уведомлений).
func (h *Handlers) UpsertSlot(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFrom(w, r)
	if !ok {
		return
	}

	var req upsertSlotRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	contentType, err := models.ParseContentType(req.ContentType)
	if err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	if req.UserID != nil {
		userID = *req.UserID
	}

	slot, err := h.service.UpsertSlot(r.Context(), service.UpsertSlotInput{
		UserID:      userID,
		ContentType: contentType,
		NewsID:      req.NewsID,
		QuizID:      req.QuizID,
		FactID:      req.FactID,
		Priority:    req.Priority,
		Reason:      req.Reason,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSlotResponse(slot))
}
