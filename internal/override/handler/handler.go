package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"caredocs/internal/override"
	"caredocs/internal/override/service"
	"caredocs/internal/platform/metrics"
	"caredocs/internal/platform/middleware"
	dErrors "caredocs/pkg/domain-errors"
	"caredocs/pkg/domain"
	"caredocs/pkg/platform/httputil"
	"caredocs/pkg/requestcontext"
)

// Service defines the interface for override operations.
type Service interface {
	SetNotRequired(ctx context.Context, clientID domain.ClientID, docType domain.DocumentType, reason string) (*override.ComplianceOverride, error)
	SetRequired(ctx context.Context, clientID domain.ClientID, docType domain.DocumentType) (*override.ComplianceOverride, error)
	CustomizeFolder(ctx context.Context, clientID domain.ClientID, folderID domain.FolderID, req service.CustomizeFolderRequest) (*override.FolderOverride, error)
	ComplianceOverrides(ctx context.Context, clientID domain.ClientID) (map[domain.DocumentType]override.ComplianceOverride, error)
	FolderOverrides(ctx context.Context, clientID domain.ClientID) (map[domain.FolderID]override.FolderOverride, error)
}

// Handler handles per-client override endpoints.
type Handler struct {
	logger       *slog.Logger
	overrides    Service
	metrics      *metrics.Metrics
	jwtValidator middleware.JWTValidator
}

// New creates a new override Handler.
func New(
	overrides Service,
	logger *slog.Logger,
	metrics *metrics.Metrics,
	jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		overrides:    overrides,
		metrics:      metrics,
		jwtValidator: jwtValidator,
	}
}

// Register registers the override routes with the chi router. Shared
// middleware lives on the parent router; only override-specific middleware
// is added here.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.Latency(h.metrics))
		if h.jwtValidator != nil {
			r.Use(middleware.RequireAuth(h.jwtValidator, h.logger))
		}
		r.Post("/clients/{clientID}/obligations/not-required", h.handleSetNotRequired)
		r.Post("/clients/{clientID}/obligations/required", h.handleSetRequired)
		r.Put("/clients/{clientID}/folders/{folderID}", h.handleCustomizeFolder)
		r.Get("/clients/{clientID}/overrides", h.handleListOverrides)
	})
}

type obligationPayload struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

type folderPayload struct {
	CustomName *string `json:"custom_name"`
	Hidden     *bool   `json:"hidden"`
}

type complianceOverrideResponse struct {
	Type        string    `json:"type"`
	NotRequired bool      `json:"not_required"`
	Reason      string    `json:"reason,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type folderOverrideResponse struct {
	FolderID   string    `json:"folder_id"`
	CustomName string    `json:"custom_name,omitempty"`
	Hidden     *bool     `json:"hidden,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (h *Handler) handleSetNotRequired(w http.ResponseWriter, r *http.Request) {
	h.handleObligationToggle(w, r, "failed to mark obligation not required",
		func(ctx context.Context, clientID domain.ClientID, payload obligationPayload) (*override.ComplianceOverride, error) {
			return h.overrides.SetNotRequired(ctx, clientID, domain.DocumentType(payload.Type), payload.Reason)
		})
}

func (h *Handler) handleSetRequired(w http.ResponseWriter, r *http.Request) {
	h.handleObligationToggle(w, r, "failed to mark obligation required",
		func(ctx context.Context, clientID domain.ClientID, payload obligationPayload) (*override.ComplianceOverride, error) {
			return h.overrides.SetRequired(ctx, clientID, domain.DocumentType(payload.Type))
		})
}

func (h *Handler) handleObligationToggle(
	w http.ResponseWriter,
	r *http.Request,
	logMsg string,
	op func(ctx context.Context, clientID domain.ClientID, payload obligationPayload) (*override.ComplianceOverride, error),
) {
	ctx := r.Context()

	clientID, err := domain.ParseClientID(chi.URLParam(r, "clientID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var payload obligationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	ov, err := op(ctx, clientID, payload)
	if err != nil {
		h.writeServiceError(ctx, w, logMsg, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, complianceOverrideResponse{
		Type:        string(ov.Type),
		NotRequired: ov.NotRequired,
		Reason:      ov.Reason,
		UpdatedAt:   ov.UpdatedAt,
	})
}

func (h *Handler) handleCustomizeFolder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := domain.ParseClientID(chi.URLParam(r, "clientID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	folderID := domain.FolderID(chi.URLParam(r, "folderID"))

	var payload folderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	ov, err := h.overrides.CustomizeFolder(ctx, clientID, folderID, service.CustomizeFolderRequest{
		CustomName: payload.CustomName,
		Hidden:     payload.Hidden,
	})
	if err != nil {
		h.writeServiceError(ctx, w, "failed to customize folder", err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, folderOverrideResponse{
		FolderID:   string(ov.FolderID),
		CustomName: ov.CustomName,
		Hidden:     ov.Hidden,
		UpdatedAt:  ov.UpdatedAt,
	})
}

func (h *Handler) handleListOverrides(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := domain.ParseClientID(chi.URLParam(r, "clientID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	docOverrides, err := h.overrides.ComplianceOverrides(ctx, clientID)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to list overrides", err)
		return
	}
	folderOverrides, err := h.overrides.FolderOverrides(ctx, clientID)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to list overrides", err)
		return
	}

	resp := struct {
		Documents []complianceOverrideResponse `json:"documents"`
		Folders   []folderOverrideResponse     `json:"folders"`
	}{
		Documents: make([]complianceOverrideResponse, 0, len(docOverrides)),
		Folders:   make([]folderOverrideResponse, 0, len(folderOverrides)),
	}
	for _, ov := range docOverrides {
		resp.Documents = append(resp.Documents, complianceOverrideResponse{
			Type:        string(ov.Type),
			NotRequired: ov.NotRequired,
			Reason:      ov.Reason,
			UpdatedAt:   ov.UpdatedAt,
		})
	}
	for _, ov := range folderOverrides {
		resp.Folders = append(resp.Folders, folderOverrideResponse{
			FolderID:   string(ov.FolderID),
			CustomName: ov.CustomName,
			Hidden:     ov.Hidden,
			UpdatedAt:  ov.UpdatedAt,
		})
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeUnavailable, dErrors.CodeInternal:
		h.logger.ErrorContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
	default:
		h.logger.WarnContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
	}
	httputil.WriteError(w, err)
}
