package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pribylovaa/recommendation-service/internal/service"
	"github.com/stretchr/testify/require"
)

func TestToHTTP_Mapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "nil is internal", err: nil, wantStatus: http.StatusInternalServerError, wantCode: "internal"},
		{name: "invalid argument", err: service.ErrInvalidArgument, wantStatus: http.StatusBadRequest, wantCode: "invalid_argument"},
		{name: "invalid binding", err: service.ErrInvalidContentBinding, wantStatus: http.StatusBadRequest, wantCode: "invalid_content_binding"},
		{name: "invalid cursor", err: service.ErrInvalidCursor, wantStatus: http.StatusBadRequest, wantCode: "invalid_cursor"},
		{name: "slot not found", err: service.ErrSlotNotFound, wantStatus: http.StatusNotFound, wantCode: "slot_not_found"},
		{name: "resource not found", err: service.ErrResourceNotFound, wantStatus: http.StatusNotFound, wantCode: "resource_not_found"},
		{name: "unauthenticated", err: ErrUnauthenticated, wantStatus: http.StatusUnauthorized, wantCode: "unauthenticated"},
		{name: "deadline", err: context.DeadlineExceeded, wantStatus: http.StatusGatewayTimeout, wantCode: "deadline_exceeded"},
		{name: "canceled", err: context.Canceled, wantStatus: StatusClientClosedRequest, wantCode: "canceled"},
		{name: "wrapped sentinel", err: fmt.Errorf("op: %w", service.ErrSlotNotFound), wantStatus: http.StatusNotFound, wantCode: "slot_not_found"},
		{name: "unknown is internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "internal"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			status, resp := ToHTTP(tc.err)
			require.Equal(t, tc.wantStatus, status)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestWriteError_PropagatesRequestID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "rid-123")

	rec := httptest.NewRecorder()
	WriteError(rec, req, service.ErrSlotNotFound)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), `"request_id":"rid-123"`)
}
