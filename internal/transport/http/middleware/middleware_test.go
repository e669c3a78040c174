package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := RequestIDFrom(r.Context())
		require.True(t, ok)
		seen = id
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, seen, 32, "generated id is 16 random bytes in hex")
	require.Equal(t, seen, rec.Header().Get("X-Request-Id"))
}

func TestRequestID_RespectsIncoming(t *testing.T) {
	t.Parallel()

	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := RequestIDFrom(r.Context())
		require.True(t, ok)
		require.Equal(t, "incoming-id", id)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "incoming-id")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, "incoming-id", rec.Header().Get("X-Request-Id"))
}

func TestUserID_ParsesValidHeader(t *testing.T) {
	t.Parallel()

	want := uuid.MustParse("7b8e1f4a-3c2d-4e5f-9a6b-1c2d3e4f5a6b")

	h := UserID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFrom(r.Context())
		require.True(t, ok)
		require.Equal(t, want, id)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-Id", want.String())

	h.ServeHTTP(httptest.NewRecorder(), req)
}

func TestUserID_IgnoresInvalidHeader(t *testing.T) {
	t.Parallel()

	h := UserID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := UserIDFrom(r.Context())
		require.False(t, ok, "invalid uuid must not reach the context")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-Id", "not-a-uuid")

	h.ServeHTTP(httptest.NewRecorder(), req)
}

func TestTimeout_SetsDeadline(t *testing.T) {
	t.Parallel()

	h := Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, ok := r.Context().Deadline()
		require.True(t, ok)
		require.WithinDuration(t, time.Now().Add(time.Second), deadline, 200*time.Millisecond)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestTimeout_NoopWhenDisabled(t *testing.T) {
	t.Parallel()

	h := Timeout(0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.Context().Deadline()
		require.False(t, ok)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestStatusWriter_DefaultsToOK(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sw := newStatusWriter(rec)

	n, err := sw.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)

	require.Equal(t, http.StatusOK, sw.status)
	require.Equal(t, 5, sw.bytes)
}

func TestStatusWriter_FirstStatusWins(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sw := newStatusWriter(rec)

	sw.WriteHeader(http.StatusNotFound)
	sw.WriteHeader(http.StatusInternalServerError)

	require.Equal(t, http.StatusNotFound, sw.status)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatusWriter_CountsBytesAcrossWrites(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sw := newStatusWriter(rec)

	sw.WriteHeader(http.StatusCreated)
	_, _ = sw.Write([]byte("ab"))
	_, _ = sw.Write([]byte("cde"))

	require.Equal(t, http.StatusCreated, sw.status)
	require.Equal(t, 5, sw.bytes)
	require.Equal(t, "abcde", rec.Body.String())
}
