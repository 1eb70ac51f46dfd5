package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caredocs/internal/audit"
	"caredocs/pkg/domain"
)

func TestHandleList(t *testing.T) {
	store := audit.NewInMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	clientID := domain.NewClientID()
	event := audit.Event{
		ID:        "evt-1",
		ClientID:  clientID,
		Action:    audit.ActionDocumentUploaded,
		Subject:   "doc-1",
		ActorID:   "staff-7",
		Timestamp: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Append(t.Context(), event))

	r := chi.NewRouter()
	New(store, logger, nil, nil).Register(r)

	req := httptest.NewRequest(http.MethodGet, "/clients/"+clientID.String()+"/audit-events", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Events []audit.Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 1)
	assert.Equal(t, audit.ActionDocumentUploaded, resp.Events[0].Action)
	assert.Equal(t, "staff-7", resp.Events[0].ActorID)
}

func TestHandleListEmpty(t *testing.T) {
	store := audit.NewInMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	New(store, logger, nil, nil).Register(r)

	req := httptest.NewRequest(http.MethodGet, "/clients/"+domain.NewClientID().String()+"/audit-events", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"events":[]}`, rec.Body.String())
}

func TestHandleListBadClientID(t *testing.T) {
	store := audit.NewInMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	New(store, logger, nil, nil).Register(r)

	req := httptest.NewRequest(http.MethodGet, "/clients/nope/audit-events", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
