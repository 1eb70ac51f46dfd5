package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"caredocs/internal/audit"
	"caredocs/internal/document"
	"caredocs/internal/taxonomy"
	dErrors "caredocs/pkg/domain-errors"
	"caredocs/pkg/domain"
	"caredocs/pkg/platform/sentinel"
	"caredocs/pkg/requestcontext"
)

// Service owns the evidence-artifact lifecycle: upload, edit, archive,
// unarchive, delete. It keeps orchestration out of handlers and the store
// free of policy. Status aggregation lives elsewhere; this service only
// mutates the document set.
type Service struct {
	store    document.Store
	catalog  *taxonomy.Catalog
	recorder audit.Recorder
	logger   *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditRecorder(recorder audit.Recorder) Option {
	return func(s *Service) {
		s.recorder = recorder
	}
}

func New(store document.Store, catalog *taxonomy.Catalog, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("document store is required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("taxonomy catalog is required")
	}

	svc := &Service{
		store:   store,
		catalog: catalog,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Upload validates the payload and creates the artifact record. Validation
// failures reject before any store mutation. A prior current document of the
// same type is never implicitly archived: callers replace explicitly, and a
// conflicting upload fails.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (*document.Document, error) {
	if req.ClientID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "client id is required")
	}
	if err := req.Validate(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, err.Error())
	}
	if err := s.checkPlacement(req.FolderID); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	doc := &document.Document{
		ID:          domain.NewDocumentID(),
		ClientID:    req.ClientID,
		Type:        req.Type,
		Source:      req.Source,
		FileName:    req.FileName,
		StorageRef:  req.StorageRef,
		UploadDate:  now,
		ExpiryDate:  req.ExpiryDate,
		CustomTitle: req.CustomTitle,
		FolderID:    req.FolderID,
		CreatedAt:   now,
	}
	if req.Source == document.SourceLink {
		doc.FileName = req.LinkName
		doc.StorageRef = req.LinkURL
	}
	if req.UploadDate != nil {
		doc.UploadDate = *req.UploadDate
	}

	if err := s.store.Create(ctx, doc); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict,
				"a current document already exists for this obligation; archive or delete it first")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "document store unavailable")
	}

	audit.Log(ctx, s.logger, s.recorder, audit.Event{
		ClientID: doc.ClientID,
		Action:   audit.ActionDocumentUploaded,
		Subject:  doc.ID.String(),
	})
	return doc, nil
}

// Edit updates dates and title in place. Type and folder placement are
// immutable; EditRequest.Validate rejects attempts to change them.
func (s *Service) Edit(ctx context.Context, id domain.DocumentID, req EditRequest) (*document.Document, error) {
	if err := req.Validate(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, err.Error())
	}

	doc, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.UploadDate != nil {
		doc.UploadDate = *req.UploadDate
	}
	if req.ExpiryDate != nil {
		doc.ExpiryDate = req.ExpiryDate
	}
	if req.ClearExpiry {
		doc.ExpiryDate = nil
	}
	if req.CustomTitle != nil {
		doc.CustomTitle = *req.CustomTitle
	}

	if err := s.store.Update(ctx, doc); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "document not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "document store unavailable")
	}

	audit.Log(ctx, s.logger, s.recorder, audit.Event{
		ClientID: doc.ClientID,
		Action:   audit.ActionDocumentEdited,
		Subject:  doc.ID.String(),
	})
	return doc, nil
}

// Archive soft-removes the document: it stops affecting aggregation and is
// visible only under the archive pseudo-folder until unarchived.
func (s *Service) Archive(ctx context.Context, id domain.DocumentID) (*document.Document, error) {
	doc, err := s.store.Archive(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, sentinel.ErrNotFound):
			return nil, dErrors.New(dErrors.CodeNotFound, "document not found")
		case errors.Is(err, sentinel.ErrInvalidState):
			return nil, dErrors.New(dErrors.CodeConflict, "document is already archived")
		default:
			return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "document store unavailable")
		}
	}

	audit.Log(ctx, s.logger, s.recorder, audit.Event{
		ClientID: doc.ClientID,
		Action:   audit.ActionDocumentArchived,
		Subject:  doc.ID.String(),
	})
	return doc, nil
}

// Unarchive restores the document to the folder it was archived from and
// resumes its effect on aggregation.
func (s *Service) Unarchive(ctx context.Context, id domain.DocumentID) (*document.Document, error) {
	doc, err := s.store.Unarchive(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, sentinel.ErrNotFound):
			return nil, dErrors.New(dErrors.CodeNotFound, "document not found")
		case errors.Is(err, sentinel.ErrInvalidState):
			return nil, dErrors.New(dErrors.CodeConflict, "document is not archived")
		case errors.Is(err, sentinel.ErrConflict):
			return nil, dErrors.New(dErrors.CodeConflict,
				"another current document exists for this obligation")
		default:
			return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "document store unavailable")
		}
	}

	audit.Log(ctx, s.logger, s.recorder, audit.Event{
		ClientID: doc.ClientID,
		Action:   audit.ActionDocumentUnarchived,
		Subject:  doc.ID.String(),
	})
	return doc, nil
}

// Delete removes the document permanently. No recovery path.
func (s *Service) Delete(ctx context.Context, id domain.DocumentID) error {
	doc, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "document not found")
		}
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "document store unavailable")
	}

	audit.Log(ctx, s.logger, s.recorder, audit.Event{
		ClientID: doc.ClientID,
		Action:   audit.ActionDocumentDeleted,
		Subject:  doc.ID.String(),
	})
	return nil
}

func (s *Service) get(ctx context.Context, id domain.DocumentID) (*document.Document, error) {
	doc, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "document not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "document store unavailable")
	}
	return doc, nil
}

// checkPlacement rejects placement into folders the taxonomy does not declare.
// The archive pseudo-folder is never a valid placement target; documents reach
// it only through Archive.
func (s *Service) checkPlacement(folderID domain.FolderID) error {
	if folderID == "" {
		return nil
	}
	if folderID == domain.ArchiveFolderID {
		return dErrors.New(dErrors.CodeInvalidInput, "cannot place documents into the archive pseudo-folder")
	}
	if _, ok := s.catalog.Folder(folderID); ok {
		return nil
	}
	// Subfolder placements are valid too.
	for _, folder := range s.catalog.Folders {
		for _, sub := range folder.Subfolders {
			if sub.ID == folderID {
				return nil
			}
		}
	}
	return dErrors.New(dErrors.CodeNotFound, "folder not found: "+folderID.String())
}
