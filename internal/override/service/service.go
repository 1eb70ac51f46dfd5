package service

import (
	"context"
	"fmt"
	"log/slog"

	"caredocs/internal/audit"
	"caredocs/internal/override"
	"caredocs/internal/taxonomy"
	dErrors "caredocs/pkg/domain-errors"
	"caredocs/pkg/domain"
	"caredocs/pkg/requestcontext"
)

// Service manages per-client exceptions: the not-required toggle on tracked
// obligations and folder rename/hide customizations. All writes are
// idempotent upserts; re-applying the current state succeeds and records no
// spurious state change.
type Service struct {
	store    override.Store
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

func New(store override.Store, catalog *taxonomy.Catalog, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("override store is required")
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

// SetNotRequired excludes one tracked obligation from the client's compliance
// evaluation. The document type must be tracked somewhere in the taxonomy;
// ad-hoc multi-artifact types carry no obligation to exclude.
func (s *Service) SetNotRequired(ctx context.Context, clientID domain.ClientID, docType domain.DocumentType, reason string) (*override.ComplianceOverride, error) {
	if err := s.checkTracked(docType); err != nil {
		return nil, err
	}

	ov := override.ComplianceOverride{
		ClientID:    clientID,
		Type:        docType,
		NotRequired: true,
		Reason:      reason,
		UpdatedAt:   requestcontext.Now(ctx),
	}
	if err := s.store.UpsertComplianceOverride(ctx, ov); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "override store unavailable")
	}

	audit.Log(ctx, s.logger, s.recorder, audit.Event{
		ClientID: clientID,
		Action:   audit.ActionMarkedNotRequired,
		Subject:  docType.String(),
		Reason:   reason,
	})
	return &ov, nil
}

// SetRequired reverts an obligation to the taxonomy default. The reason
// captured on exclusion is cleared; the upserted record with NotRequired false
// is equivalent to no record at all. Reverting an obligation that was never
// excluded is a no-op that still succeeds.
func (s *Service) SetRequired(ctx context.Context, clientID domain.ClientID, docType domain.DocumentType) (*override.ComplianceOverride, error) {
	if err := s.checkTracked(docType); err != nil {
		return nil, err
	}

	ov := override.ComplianceOverride{
		ClientID:    clientID,
		Type:        docType,
		NotRequired: false,
		UpdatedAt:   requestcontext.Now(ctx),
	}
	if err := s.store.UpsertComplianceOverride(ctx, ov); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "override store unavailable")
	}

	audit.Log(ctx, s.logger, s.recorder, audit.Event{
		ClientID: clientID,
		Action:   audit.ActionMarkedRequired,
		Subject:  docType.String(),
	})
	return &ov, nil
}

// CustomizeFolderRequest carries a partial folder customization. Nil fields
// leave the corresponding aspect of any existing override untouched.
type CustomizeFolderRequest struct {
	CustomName *string
	Hidden     *bool
}

// CustomizeFolder renames or hides one folder for one client. Partial updates
// merge into the existing override record; setting CustomName to the empty
// string restores the taxonomy display name.
func (s *Service) CustomizeFolder(ctx context.Context, clientID domain.ClientID, folderID domain.FolderID, req CustomizeFolderRequest) (*override.FolderOverride, error) {
	if folderID == domain.ArchiveFolderID {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "the archive pseudo-folder cannot be customized")
	}
	if _, ok := s.catalog.Folder(folderID); !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "folder not found: "+folderID.String())
	}

	existing, err := s.store.FolderOverrides(ctx, clientID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "override store unavailable")
	}

	ov := existing[folderID]
	ov.ClientID = clientID
	ov.FolderID = folderID
	if req.CustomName != nil {
		ov.CustomName = *req.CustomName
	}
	if req.Hidden != nil {
		ov.Hidden = req.Hidden
	}
	ov.UpdatedAt = requestcontext.Now(ctx)

	if err := s.store.UpsertFolderOverride(ctx, ov); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "override store unavailable")
	}

	audit.Log(ctx, s.logger, s.recorder, audit.Event{
		ClientID: clientID,
		Action:   audit.ActionFolderCustomized,
		Subject:  folderID.String(),
	})
	return &ov, nil
}

// ComplianceOverrides lists the client's per-obligation overrides. Records
// with NotRequired false are included; callers wanting the active exclusion
// set use override.NotRequiredSet.
func (s *Service) ComplianceOverrides(ctx context.Context, clientID domain.ClientID) (map[domain.DocumentType]override.ComplianceOverride, error) {
	out, err := s.store.ComplianceOverrides(ctx, clientID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "override store unavailable")
	}
	return out, nil
}

// FolderOverrides lists the client's folder customizations.
func (s *Service) FolderOverrides(ctx context.Context, clientID domain.ClientID) (map[domain.FolderID]override.FolderOverride, error) {
	out, err := s.store.FolderOverrides(ctx, clientID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "override store unavailable")
	}
	return out, nil
}

func (s *Service) checkTracked(docType domain.DocumentType) error {
	if docType == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "document type is required")
	}
	if _, ok := s.catalog.FrequencyOf(docType); !ok {
		return dErrors.New(dErrors.CodeNotFound, "no tracked document named "+docType.String())
	}
	return nil
}
