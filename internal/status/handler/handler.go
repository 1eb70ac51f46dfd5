package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"caredocs/internal/compliance"
	"caredocs/internal/document"
	"caredocs/internal/platform/metrics"
	"caredocs/internal/platform/middleware"
	"caredocs/internal/status"
	dErrors "caredocs/pkg/domain-errors"
	"caredocs/pkg/domain"
	"caredocs/pkg/platform/httputil"
	"caredocs/pkg/requestcontext"
)

// Service defines the interface for compliance read operations.
type Service interface {
	ClientView(ctx context.Context, clientID domain.ClientID) (*status.ClientView, error)
	FolderReport(ctx context.Context, clientID domain.ClientID, folderID domain.FolderID) (compliance.FolderReport, error)
	OverallStatus(ctx context.Context, clientID domain.ClientID) (compliance.Status, error)
	DocumentsInFolder(ctx context.Context, clientID domain.ClientID, folderID domain.FolderID) ([]*document.Document, error)
}

// Handler handles compliance status endpoints.
type Handler struct {
	logger       *slog.Logger
	status       Service
	metrics      *metrics.Metrics
	jwtValidator middleware.JWTValidator
}

// New creates a new status Handler.
func New(
	status Service,
	logger *slog.Logger,
	metrics *metrics.Metrics,
	jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		status:       status,
		metrics:      metrics,
		jwtValidator: jwtValidator,
	}
}

// Register registers the status routes with the chi router. Shared middleware
// lives on the parent router; the read-only status routes skip the JSON
// content-type check.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Latency(h.metrics))
		if h.jwtValidator != nil {
			r.Use(middleware.RequireAuth(h.jwtValidator, h.logger))
		}
		r.Get("/clients/{clientID}/folders", h.handleClientView)
		r.Get("/clients/{clientID}/status", h.handleOverallStatus)
		r.Get("/clients/{clientID}/folders/{folderID}/status", h.handleFolderStatus)
		r.Get("/clients/{clientID}/folders/{folderID}/documents", h.handleFolderDocuments)
	})
}

type itemStatusResponse struct {
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	NotRequired bool       `json:"not_required"`
	HasDocument bool       `json:"has_document"`
}

type folderReportResponse struct {
	FolderID string               `json:"folder_id"`
	Status   string               `json:"status"`
	Items    []itemStatusResponse `json:"items,omitempty"`
}

func (h *Handler) handleClientView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := domain.ParseClientID(chi.URLParam(r, "clientID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	view, err := h.status.ClientView(ctx, clientID)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to build client view", err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, view)
}

func (h *Handler) handleOverallStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := domain.ParseClientID(chi.URLParam(r, "clientID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	overall, err := h.status.OverallStatus(ctx, clientID)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to evaluate overall status", err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": string(overall)})
}

func (h *Handler) handleFolderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := domain.ParseClientID(chi.URLParam(r, "clientID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	folderID := domain.FolderID(chi.URLParam(r, "folderID"))

	report, err := h.status.FolderReport(ctx, clientID, folderID)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to evaluate folder status", err)
		return
	}

	resp := folderReportResponse{
		FolderID: string(report.FolderID),
		Status:   string(report.Status),
	}
	for _, item := range report.Items {
		resp.Items = append(resp.Items, itemStatusResponse{
			Name:        string(item.Name),
			Status:      string(item.Status),
			DueDate:     item.DueDate,
			NotRequired: item.NotRequired,
			HasDocument: item.HasDocument,
		})
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleFolderDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := domain.ParseClientID(chi.URLParam(r, "clientID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	folderID := domain.FolderID(chi.URLParam(r, "folderID"))

	docs, err := h.status.DocumentsInFolder(ctx, clientID, folderID)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to list folder documents", err)
		return
	}

	type docEntry struct {
		ID         domain.DocumentID `json:"id"`
		Type       string            `json:"type"`
		Title      string            `json:"title"`
		UploadDate time.Time         `json:"upload_date"`
		ExpiryDate *time.Time        `json:"expiry_date,omitempty"`
		Archived   bool              `json:"archived"`
	}
	out := make([]docEntry, 0, len(docs))
	for _, doc := range docs {
		out = append(out, docEntry{
			ID:         doc.ID,
			Type:       string(doc.Type),
			Title:      doc.Title(),
			UploadDate: doc.UploadDate,
			ExpiryDate: doc.ExpiryDate,
			Archived:   doc.Archived,
		})
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"documents": out})
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
