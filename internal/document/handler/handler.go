package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"caredocs/internal/document"
	"caredocs/internal/document/service"
	"caredocs/internal/platform/metrics"
	"caredocs/internal/platform/middleware"
	dErrors "caredocs/pkg/domain-errors"
	"caredocs/pkg/domain"
	"caredocs/pkg/platform/httputil"
	"caredocs/pkg/requestcontext"
)

// Service defines the interface for document lifecycle operations.
type Service interface {
	Upload(ctx context.Context, req service.UploadRequest) (*document.Document, error)
	Edit(ctx context.Context, id domain.DocumentID, req service.EditRequest) (*document.Document, error)
	Archive(ctx context.Context, id domain.DocumentID) (*document.Document, error)
	Unarchive(ctx context.Context, id domain.DocumentID) (*document.Document, error)
	Delete(ctx context.Context, id domain.DocumentID) error
}

// Handler handles document lifecycle endpoints.
type Handler struct {
	logger       *slog.Logger
	documents    Service
	metrics      *metrics.Metrics
	jwtValidator middleware.JWTValidator
}

// New creates a new document Handler.
func New(
	documents Service,
	logger *slog.Logger,
	metrics *metrics.Metrics,
	jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		documents:    documents,
		metrics:      metrics,
		jwtValidator: jwtValidator,
	}
}

// Register registers the document routes with the chi router. The shared
// middleware chain (recovery, request id, request time, logging, timeout)
// belongs to the parent router; only document-specific middleware is added.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.Latency(h.metrics))
		if h.jwtValidator != nil {
			r.Use(middleware.RequireAuth(h.jwtValidator, h.logger))
		}
		r.Post("/clients/{clientID}/documents", h.handleUpload)
		r.Patch("/documents/{documentID}", h.handleEdit)
		r.Post("/documents/{documentID}/archive", h.handleArchive)
		r.Post("/documents/{documentID}/unarchive", h.handleUnarchive)
		r.Delete("/documents/{documentID}", h.handleDelete)
	})
}

type uploadPayload struct {
	Type        string     `json:"type"`
	FolderID    string     `json:"folder_id"`
	CustomTitle string     `json:"custom_title"`
	Source      string     `json:"source"`
	FileName    string     `json:"file_name"`
	SizeBytes   int64      `json:"size_bytes"`
	StorageRef  string     `json:"storage_ref"`
	LinkName    string     `json:"link_name"`
	LinkURL     string     `json:"link_url"`
	UploadDate  *time.Time `json:"upload_date"`
	ExpiryDate  *time.Time `json:"expiry_date"`
}

type editPayload struct {
	UploadDate  *time.Time `json:"upload_date"`
	ExpiryDate  *time.Time `json:"expiry_date"`
	ClearExpiry bool       `json:"clear_expiry"`
	CustomTitle *string    `json:"custom_title"`
	Type        *string    `json:"type"`
	FolderID    *string    `json:"folder_id"`
}

type documentResponse struct {
	ID               domain.DocumentID `json:"id"`
	ClientID         domain.ClientID   `json:"client_id"`
	Type             string            `json:"type"`
	Source           string            `json:"source"`
	Title            string            `json:"title"`
	FileName         string            `json:"file_name"`
	StorageRef       string            `json:"storage_ref"`
	UploadDate       time.Time         `json:"upload_date"`
	ExpiryDate       *time.Time        `json:"expiry_date,omitempty"`
	FolderID         string            `json:"folder_id,omitempty"`
	Archived         bool              `json:"archived"`
	OriginalFolderID string            `json:"original_folder_id,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

func toResponse(doc *document.Document) documentResponse {
	return documentResponse{
		ID:               doc.ID,
		ClientID:         doc.ClientID,
		Type:             string(doc.Type),
		Source:           string(doc.Source),
		Title:            doc.Title(),
		FileName:         doc.FileName,
		StorageRef:       doc.StorageRef,
		UploadDate:       doc.UploadDate,
		ExpiryDate:       doc.ExpiryDate,
		FolderID:         string(doc.FolderID),
		Archived:         doc.Archived,
		OriginalFolderID: string(doc.OriginalFolderID),
		CreatedAt:        doc.CreatedAt,
	}
}

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, err := domain.ParseClientID(chi.URLParam(r, "clientID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var payload uploadPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.WarnContext(ctx, "invalid upload request body",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	doc, err := h.documents.Upload(ctx, service.UploadRequest{
		ClientID:    clientID,
		Type:        domain.DocumentType(payload.Type),
		FolderID:    domain.FolderID(payload.FolderID),
		CustomTitle: payload.CustomTitle,
		Source:      document.Source(payload.Source),
		FileName:    payload.FileName,
		SizeBytes:   payload.SizeBytes,
		StorageRef:  payload.StorageRef,
		LinkName:    payload.LinkName,
		LinkURL:     payload.LinkURL,
		UploadDate:  payload.UploadDate,
		ExpiryDate:  payload.ExpiryDate,
	})
	if err != nil {
		h.writeServiceError(ctx, w, "failed to upload document", err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toResponse(doc))
}

func (h *Handler) handleEdit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := domain.ParseDocumentID(chi.URLParam(r, "documentID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var payload editPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	doc, err := h.documents.Edit(ctx, id, service.EditRequest{
		UploadDate:  payload.UploadDate,
		ExpiryDate:  payload.ExpiryDate,
		ClearExpiry: payload.ClearExpiry,
		CustomTitle: payload.CustomTitle,
		Type:        payload.Type,
		FolderID:    payload.FolderID,
	})
	if err != nil {
		h.writeServiceError(ctx, w, "failed to edit document", err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toResponse(doc))
}

func (h *Handler) handleArchive(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, "failed to archive document", h.documents.Archive)
}

func (h *Handler) handleUnarchive(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, "failed to unarchive document", h.documents.Unarchive)
}

func (h *Handler) handleTransition(
	w http.ResponseWriter,
	r *http.Request,
	logMsg string,
	op func(ctx context.Context, id domain.DocumentID) (*document.Document, error),
) {
	ctx := r.Context()

	id, err := domain.ParseDocumentID(chi.URLParam(r, "documentID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	doc, err := op(ctx, id)
	if err != nil {
		h.writeServiceError(ctx, w, logMsg, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toResponse(doc))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := domain.ParseDocumentID(chi.URLParam(r, "documentID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.documents.Delete(ctx, id); err != nil {
		h.writeServiceError(ctx, w, "failed to delete document", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
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
