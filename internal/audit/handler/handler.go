package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"caredocs/internal/audit"
	"caredocs/internal/platform/metrics"
	"caredocs/internal/platform/middleware"
	dErrors "caredocs/pkg/domain-errors"
	"caredocs/pkg/domain"
	"caredocs/pkg/platform/httputil"
	"caredocs/pkg/requestcontext"
)

// Store is the read side of the audit trail.
type Store interface {
	ListByClient(ctx context.Context, clientID domain.ClientID) ([]audit.Event, error)
}

// Handler serves the per-client audit trail.
type Handler struct {
	logger       *slog.Logger
	store        Store
	metrics      *metrics.Metrics
	jwtValidator middleware.JWTValidator
}

func New(
	store Store,
	logger *slog.Logger,
	metrics *metrics.Metrics,
	jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		store:        store,
		metrics:      metrics,
		jwtValidator: jwtValidator,
	}
}

// Register registers the audit routes with the chi router. Shared middleware
// lives on the parent router.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Latency(h.metrics))
		if h.jwtValidator != nil {
			r.Use(middleware.RequireAuth(h.jwtValidator, h.logger))
		}
		r.Get("/clients/{clientID}/audit-events", h.handleList)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := domain.ParseClientID(chi.URLParam(r, "clientID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	events, err := h.store.ListByClient(ctx, clientID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list audit events",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeUnavailable, "audit trail unavailable"))
		return
	}
	if events == nil {
		events = []audit.Event{}
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{"events": events})
}
