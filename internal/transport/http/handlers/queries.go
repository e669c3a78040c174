package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pribylovaa/recommendation-service/internal/models"
	"github.com/pribylovaa/recommendation-service/internal/service"
	apierrors "github.com/pribylovaa/recommendation-service/internal/transport/http/errors"
)

// ListSlots — GET /recommendations/slots с фильтрами по типу и окну slot_at,
// keyset-пагинация через page_token.
func (h *Handlers) ListSlots(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFrom(w, r)
	if !ok {
		return
	}

	var opts models.ListSlotsOptions

	if v := r.URL.Query().Get("type"); v != "" {
		contentType, err := models.ParseContentType(v)
		if err != nil {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		opts.ContentType = contentType
	}
	if v := r.URL.Query().Get("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		opts.From = from
	}
	if v := r.URL.Query().Get("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		opts.To = to
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		opts.Limit = int32(n)
	}
	opts.PageToken = r.URL.Query().Get("page_token")

	page, err := h.service.ListSlots(r.Context(), userID, opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp := slotListResponse{
		Items:         make([]slotResponse, 0, len(page.Items)),
		NextPageToken: page.NextPageToken,
	}
	for i := range page.Items {
		resp.Items = append(resp.Items, toSlotResponse(&page.Items[i]))
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListEvents — GET /recommendations/events, журнал взаимодействий
// пользователя, новые сначала.
func (h *Handlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	userID, ok := userFrom(w, r)
	if !ok {
		return
	}

	var opts models.ListEventsOptions

	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		opts.Limit = int32(n)
	}
	opts.PageToken = r.URL.Query().Get("page_token")

	page, err := h.service.ListEvents(r.Context(), userID, opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp := eventListResponse{
		Items:         make([]eventResponse, 0, len(page.Items)),
		NextPageToken: page.NextPageToken,
	}
	for _, e := range page.Items {
		resp.Items = append(resp.Items, toEventResponse(e))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Healthz — GET /healthz, живость процесса.
func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
