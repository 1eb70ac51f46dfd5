// Package status answers the read-side questions: what is this folder's
// compliance state for this client, what is the client's overall state, and
// which documents sit in which folder. It joins the document store, the
// override store, and the taxonomy into one snapshot and hands evaluation to
// the pure compliance engine.
package status

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"caredocs/internal/compliance"
	"caredocs/internal/compliance/metrics"
	"caredocs/internal/document"
	"caredocs/internal/override"
	"caredocs/internal/taxonomy"
	dErrors "caredocs/pkg/domain-errors"
	"caredocs/pkg/domain"
	"caredocs/pkg/requestcontext"
)

// Service evaluates compliance over live store data. All answers derive from
// one consistent snapshot per request; a store failure aborts the evaluation
// with an unavailable error and never degrades into a good-looking status.
type Service struct {
	documents document.Store
	overrides override.Store
	catalog   *taxonomy.Catalog
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(documents document.Store, overrides override.Store, catalog *taxonomy.Catalog, opts ...Option) (*Service, error) {
	if documents == nil {
		return nil, fmt.Errorf("document store is required")
	}
	if overrides == nil {
		return nil, fmt.Errorf("override store is required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("taxonomy catalog is required")
	}

	svc := &Service{
		documents: documents,
		overrides: overrides,
		catalog:   catalog,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// snapshot is one client's store data at a single point in time.
type snapshot struct {
	now             time.Time
	documents       []*document.Document
	current         map[domain.DocumentType]*document.Document
	notRequired     map[domain.DocumentType]bool
	folderOverrides map[domain.FolderID]override.FolderOverride
}

// takeSnapshot fetches the client's documents and both override kinds in
// parallel. Any fetch failure fails the whole snapshot.
func (s *Service) takeSnapshot(ctx context.Context, clientID domain.ClientID) (*snapshot, error) {
	snap := &snapshot{now: requestcontext.Now(ctx)}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		docs, err := s.documents.ListByClient(gctx, clientID)
		if err != nil {
			return fmt.Errorf("list documents: %w", err)
		}
		snap.documents = docs
		return nil
	})
	g.Go(func() error {
		ovs, err := s.overrides.ComplianceOverrides(gctx, clientID)
		if err != nil {
			return fmt.Errorf("fetch compliance overrides: %w", err)
		}
		snap.notRequired = override.NotRequiredSet(ovs)
		return nil
	})
	g.Go(func() error {
		ovs, err := s.overrides.FolderOverrides(gctx, clientID)
		if err != nil {
			return fmt.Errorf("fetch folder overrides: %w", err)
		}
		snap.folderOverrides = ovs
		return nil
	})
	if err := g.Wait(); err != nil {
		if s.metrics != nil {
			s.metrics.IncrementSnapshotFailures()
		}
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "compliance snapshot failed",
				"client_id", clientID,
				"error", err,
			)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "compliance data unavailable")
	}

	snap.current = document.CurrentByType(snap.documents)
	return snap, nil
}

// FolderReport evaluates one folder with its per-obligation breakdown. The
// archive pseudo-folder carries no obligations and always reports none.
func (s *Service) FolderReport(ctx context.Context, clientID domain.ClientID, folderID domain.FolderID) (compliance.FolderReport, error) {
	if folderID == domain.ArchiveFolderID {
		return compliance.FolderReport{FolderID: folderID, Status: compliance.StatusNone}, nil
	}
	folder, ok := s.catalog.Folder(folderID)
	if !ok {
		return compliance.FolderReport{}, dErrors.New(dErrors.CodeNotFound, "folder not found: "+folderID.String())
	}

	snap, err := s.takeSnapshot(ctx, clientID)
	if err != nil {
		return compliance.FolderReport{}, err
	}

	report := compliance.EvaluateFolder(snap.now, folder, snap.current, snap.notRequired)
	if s.metrics != nil {
		s.metrics.ObserveFolderEvaluation(string(report.Status))
	}
	return report, nil
}

// FolderStatus is FolderReport without the breakdown.
func (s *Service) FolderStatus(ctx context.Context, clientID domain.ClientID, folderID domain.FolderID) (compliance.Status, error) {
	report, err := s.FolderReport(ctx, clientID, folderID)
	if err != nil {
		return "", err
	}
	return report.Status, nil
}

// OverallStatus reduces the client's visible folders into the client-level
// status. A folder hidden for the client drops out of the overall along with
// its obligations; the per-folder status remains queryable directly.
func (s *Service) OverallStatus(ctx context.Context, clientID domain.ClientID) (compliance.Status, error) {
	snap, err := s.takeSnapshot(ctx, clientID)
	if err != nil {
		return "", err
	}

	overall := s.overallFromSnapshot(snap)
	if s.metrics != nil {
		s.metrics.ObserveOverallEvaluation(string(overall))
	}
	return overall, nil
}

func (s *Service) overallFromSnapshot(snap *snapshot) compliance.Status {
	visible := override.VisibleFolders(s.catalog, snap.folderOverrides)
	statuses := make([]compliance.Status, 0, len(visible))
	for _, rf := range visible {
		statuses = append(statuses, compliance.FolderStatus(snap.now, rf.Folder, snap.current, snap.notRequired))
	}
	return compliance.OverallStatus(statuses)
}

// FolderView is one entry in a client's folder listing.
type FolderView struct {
	ID            domain.FolderID   `json:"id"`
	Name          string            `json:"name"`
	Status        compliance.Status `json:"status"`
	DocumentCount int               `json:"document_count"`
}

// ClientView is the client's whole documentation surface in one response.
// TaxonomyVersion lets callers detect a catalog change between deployments.
type ClientView struct {
	ClientID        domain.ClientID   `json:"client_id"`
	TaxonomyVersion string            `json:"taxonomy_version"`
	Overall         compliance.Status `json:"overall_status"`
	Folders         []FolderView      `json:"folders"`
}

// ClientView lists the client's visible folders in taxonomy order with
// per-folder status and document count, the archive pseudo-folder last, and
// the overall status. One snapshot backs everything, so the folder statuses
// and the overall always agree.
func (s *Service) ClientView(ctx context.Context, clientID domain.ClientID) (*ClientView, error) {
	snap, err := s.takeSnapshot(ctx, clientID)
	if err != nil {
		return nil, err
	}

	view := &ClientView{
		ClientID:        clientID,
		TaxonomyVersion: s.catalog.Version,
		Overall:         s.overallFromSnapshot(snap),
	}
	for _, rf := range override.VisibleFolders(s.catalog, snap.folderOverrides) {
		st := compliance.FolderStatus(snap.now, rf.Folder, snap.current, snap.notRequired)
		if s.metrics != nil {
			s.metrics.ObserveFolderEvaluation(string(st))
		}
		view.Folders = append(view.Folders, FolderView{
			ID:            rf.Folder.ID,
			Name:          rf.Name,
			Status:        st,
			DocumentCount: countInFolder(snap.documents, rf.Folder),
		})
	}
	view.Folders = append(view.Folders, FolderView{
		ID:            domain.ArchiveFolderID,
		Name:          "Archive",
		Status:        compliance.StatusNone,
		DocumentCount: countArchived(snap.documents),
	})

	if s.metrics != nil {
		s.metrics.ObserveOverallEvaluation(string(view.Overall))
	}
	return view, nil
}

// DocumentsInFolder lists the client's documents shown under one folder. The
// archive pseudo-folder lists every archived document regardless of where it
// was archived from.
func (s *Service) DocumentsInFolder(ctx context.Context, clientID domain.ClientID, folderID domain.FolderID) ([]*document.Document, error) {
	if folderID == domain.ArchiveFolderID {
		docs, err := s.documents.ListByClient(ctx, clientID)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "document store unavailable")
		}
		out := make([]*document.Document, 0)
		for _, doc := range docs {
			if doc.Archived {
				out = append(out, doc)
			}
		}
		return out, nil
	}

	folder, ok := s.catalog.Folder(folderID)
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "folder not found: "+folderID.String())
	}

	docs, err := s.documents.ListByClient(ctx, clientID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "document store unavailable")
	}
	out := make([]*document.Document, 0)
	for _, doc := range docs {
		if document.InFolder(doc, folder) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func countInFolder(docs []*document.Document, folder taxonomy.Folder) int {
	n := 0
	for _, doc := range docs {
		if document.InFolder(doc, folder) {
			n++
		}
	}
	return n
}

func countArchived(docs []*document.Document) int {
	n := 0
	for _, doc := range docs {
		if doc.Archived {
			n++
		}
	}
	return n
}
