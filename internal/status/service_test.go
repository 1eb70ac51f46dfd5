package status

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caredocs/internal/audit"
	"caredocs/internal/compliance"
	"caredocs/internal/document"
	docservice "caredocs/internal/document/service"
	"caredocs/internal/override"
	ovservice "caredocs/internal/override/service"
	"caredocs/internal/taxonomy"
	dErrors "caredocs/pkg/domain-errors"
	"caredocs/pkg/domain"
	"caredocs/pkg/requestcontext"
	"caredocs/pkg/testutil"
)

const testCatalogYAML = `
version: "2026.1"
folders:
  - id: service-agreement
    name: Service Agreement
    tracked:
      - name: Service Agreement
        frequency: annual
  - id: care-plans
    name: Care Plans
    tracked:
      - name: Care Plan Summary
        frequency: annual
  - id: risk-assessments
    name: Risk Assessments
    multiple_artifacts: true
`

var testNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

type fixture struct {
	status    *Service
	documents *document.InMemoryStore
	overrides *override.InMemoryStore
	docSvc    *docservice.Service
	ovSvc     *ovservice.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	catalog, err := taxonomy.Parse([]byte(testCatalogYAML))
	require.NoError(t, err)

	docs := document.NewInMemoryStore()
	ovs := override.NewInMemoryStore()
	recorder := audit.NewRecorder(audit.NewInMemoryStore())

	statusSvc, err := New(docs, ovs, catalog)
	require.NoError(t, err)
	docSvc, err := docservice.New(docs, catalog, docservice.WithAuditRecorder(recorder))
	require.NoError(t, err)
	ovSvc, err := ovservice.New(ovs, catalog, ovservice.WithAuditRecorder(recorder))
	require.NoError(t, err)

	return &fixture{
		status:    statusSvc,
		documents: docs,
		overrides: ovs,
		docSvc:    docSvc,
		ovSvc:     ovSvc,
	}
}

func testContext() context.Context {
	return requestcontext.WithTime(context.Background(), testNow)
}

func upload(t *testing.T, fx *fixture, clientID domain.ClientID, docType domain.DocumentType, folderID domain.FolderID, expiry *time.Time) *document.Document {
	t.Helper()

	doc, err := fx.docSvc.Upload(testContext(), docservice.UploadRequest{
		ClientID:   clientID,
		Type:       docType,
		FolderID:   folderID,
		Source:     document.SourceBinary,
		FileName:   "evidence.pdf",
		SizeBytes:  1024,
		StorageRef: "blobs/" + string(docType),
		ExpiryDate: expiry,
	})
	require.NoError(t, err)
	return doc
}

func days(n int) *time.Time {
	d := testNow.AddDate(0, 0, n)
	return &d
}

// Scenario: one tracked annual obligation moving through its whole status
// arc as documents and overrides change.
func TestService_FolderStatus_TrackedLifecycle(t *testing.T) {
	fx := newFixture(t)
	clientID := domain.NewClientID()
	ctx := testContext()

	testutil.Given(t, "no upload and no override", func(t *testing.T) {
		st, err := fx.status.FolderStatus(ctx, clientID, "service-agreement")
		require.NoError(t, err)
		assert.Equal(t, compliance.StatusOverdue, st)
	})

	doc := upload(t, fx, clientID, "Service Agreement", "service-agreement", days(400))

	testutil.Given(t, "a current document due in 400 days", func(t *testing.T) {
		st, err := fx.status.FolderStatus(ctx, clientID, "service-agreement")
		require.NoError(t, err)
		assert.Equal(t, compliance.StatusCompliant, st)
	})

	testutil.Given(t, "the due date edited to 10 days out", func(t *testing.T) {
		_, err := fx.docSvc.Edit(ctx, doc.ID, docservice.EditRequest{ExpiryDate: days(10)})
		require.NoError(t, err)

		st, err := fx.status.FolderStatus(ctx, clientID, "service-agreement")
		require.NoError(t, err)
		assert.Equal(t, compliance.StatusDueSoon, st)
	})

	testutil.Given(t, "the obligation marked not required", func(t *testing.T) {
		_, err := fx.ovSvc.SetNotRequired(ctx, clientID, "Service Agreement", "self-managed")
		require.NoError(t, err)

		st, err := fx.status.FolderStatus(ctx, clientID, "service-agreement")
		require.NoError(t, err)
		assert.Equal(t, compliance.StatusNotRequired, st)
	})

	testutil.Given(t, "the override cleared again", func(t *testing.T) {
		_, err := fx.ovSvc.SetRequired(ctx, clientID, "Service Agreement")
		require.NoError(t, err)

		st, err := fx.status.FolderStatus(ctx, clientID, "service-agreement")
		require.NoError(t, err)
		assert.Equal(t, compliance.StatusDueSoon, st, "document state is unchanged by the override round-trip")
	})
}

// Scenario: multi-artifact folders never evaluate, but their document count
// still honors both placement and the legacy name rule.
func TestService_MultiArtifactFolder(t *testing.T) {
	fx := newFixture(t)
	clientID := domain.NewClientID()
	ctx := testContext()

	upload(t, fx, clientID, "Fire Safety Assessment", "risk-assessments", nil)

	// Legacy records carried the folder display name in the type and no
	// explicit placement.
	legacy := &document.Document{
		ID:         domain.NewDocumentID(),
		ClientID:   clientID,
		Type:       "Risk Assessments: Moving and Handling",
		Source:     document.SourceBinary,
		FileName:   "mh.pdf",
		StorageRef: "blobs/mh",
		UploadDate: testNow.AddDate(-1, 0, 0),
		CreatedAt:  testNow.AddDate(-1, 0, 0),
	}
	require.NoError(t, fx.documents.Create(ctx, legacy))

	st, err := fx.status.FolderStatus(ctx, clientID, "risk-assessments")
	require.NoError(t, err)
	assert.Equal(t, compliance.StatusNone, st)

	docs, err := fx.status.DocumentsInFolder(ctx, clientID, "risk-assessments")
	require.NoError(t, err)
	assert.Len(t, docs, 2, "placed and legacy-matched documents both count")

	view, err := fx.status.ClientView(ctx, clientID)
	require.NoError(t, err)
	for _, fv := range view.Folders {
		if fv.ID == "risk-assessments" {
			assert.Equal(t, 2, fv.DocumentCount)
		}
	}
}

// Scenario: the overall status is the most severe folder status, and excluding
// the overdue folder's items lifts the client to compliant.
func TestService_OverallStatus(t *testing.T) {
	fx := newFixture(t)
	clientID := domain.NewClientID()
	ctx := testContext()

	// care-plans compliant, service-agreement overdue, risk-assessments none.
	upload(t, fx, clientID, "Care Plan Summary", "care-plans", days(200))

	overall, err := fx.status.OverallStatus(ctx, clientID)
	require.NoError(t, err)
	assert.Equal(t, compliance.StatusOverdue, overall)

	_, err = fx.ovSvc.SetNotRequired(ctx, clientID, "Service Agreement", "not applicable")
	require.NoError(t, err)

	overall, err = fx.status.OverallStatus(ctx, clientID)
	require.NoError(t, err)
	assert.Equal(t, compliance.StatusCompliant, overall)
}

func TestService_OverallStatus_FullyExcepted(t *testing.T) {
	fx := newFixture(t)
	clientID := domain.NewClientID()
	ctx := testContext()

	_, err := fx.ovSvc.SetNotRequired(ctx, clientID, "Service Agreement", "")
	require.NoError(t, err)
	_, err = fx.ovSvc.SetNotRequired(ctx, clientID, "Care Plan Summary", "")
	require.NoError(t, err)

	overall, err := fx.status.OverallStatus(ctx, clientID)
	require.NoError(t, err)
	assert.Equal(t, compliance.StatusNone, overall, "a fully-excepted client is not reported compliant")
}

func TestService_ArchivePseudoFolder(t *testing.T) {
	fx := newFixture(t)
	clientID := domain.NewClientID()
	ctx := testContext()

	doc := upload(t, fx, clientID, "Service Agreement", "service-agreement", days(200))

	testutil.Given(t, "the only evidence archived", func(t *testing.T) {
		_, err := fx.docSvc.Archive(ctx, doc.ID)
		require.NoError(t, err)

		testutil.Then(t, "the source folder treats the obligation as missing", func(t *testing.T) {
			st, err := fx.status.FolderStatus(ctx, clientID, "service-agreement")
			require.NoError(t, err)
			assert.Equal(t, compliance.StatusOverdue, st)

			docs, err := fx.status.DocumentsInFolder(ctx, clientID, "service-agreement")
			require.NoError(t, err)
			assert.Empty(t, docs)
		})

		testutil.Then(t, "the archive pseudo-folder lists it without evaluating", func(t *testing.T) {
			docs, err := fx.status.DocumentsInFolder(ctx, clientID, domain.ArchiveFolderID)
			require.NoError(t, err)
			require.Len(t, docs, 1)
			assert.Equal(t, doc.ID, docs[0].ID)

			st, err := fx.status.FolderStatus(ctx, clientID, domain.ArchiveFolderID)
			require.NoError(t, err)
			assert.Equal(t, compliance.StatusNone, st)
		})

		testutil.Then(t, "the client view appends the archive last", func(t *testing.T) {
			view, err := fx.status.ClientView(ctx, clientID)
			require.NoError(t, err)

			last := view.Folders[len(view.Folders)-1]
			assert.Equal(t, domain.ArchiveFolderID, last.ID)
			assert.Equal(t, 1, last.DocumentCount)
		})
	})
}

func TestService_ClientView_Customizations(t *testing.T) {
	fx := newFixture(t)
	clientID := domain.NewClientID()
	ctx := testContext()

	name := "Agreements"
	_, err := fx.ovSvc.CustomizeFolder(ctx, clientID, "service-agreement", ovservice.CustomizeFolderRequest{
		CustomName: &name,
	})
	require.NoError(t, err)

	hidden := true
	_, err = fx.ovSvc.CustomizeFolder(ctx, clientID, "care-plans", ovservice.CustomizeFolderRequest{
		Hidden: &hidden,
	})
	require.NoError(t, err)

	view, err := fx.status.ClientView(ctx, clientID)
	require.NoError(t, err)
	assert.Equal(t, "2026.1", view.TaxonomyVersion)

	var ids []domain.FolderID
	for _, fv := range view.Folders {
		ids = append(ids, fv.ID)
		if fv.ID == "service-agreement" {
			assert.Equal(t, "Agreements", fv.Name)
		}
	}
	assert.NotContains(t, ids, domain.FolderID("care-plans"), "hidden folders are not listed")

	testutil.Then(t, "hidden folders drop out of the overall", func(t *testing.T) {
		overall, err := fx.status.OverallStatus(ctx, clientID)
		require.NoError(t, err)
		assert.Equal(t, compliance.StatusOverdue, overall, "service-agreement is still visible and overdue")

		_, err = fx.ovSvc.CustomizeFolder(ctx, clientID, "service-agreement", ovservice.CustomizeFolderRequest{
			Hidden: &hidden,
		})
		require.NoError(t, err)

		overall, err = fx.status.OverallStatus(ctx, clientID)
		require.NoError(t, err)
		assert.Equal(t, compliance.StatusNone, overall, "only risk-assessments remains visible")
	})
}

func TestService_UnknownFolder(t *testing.T) {
	fx := newFixture(t)
	clientID := domain.NewClientID()

	_, err := fx.status.FolderStatus(testContext(), clientID, "no-such-folder")
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeNotFound, dErrors.CodeOf(err))

	_, err = fx.status.DocumentsInFolder(testContext(), clientID, "no-such-folder")
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeNotFound, dErrors.CodeOf(err))
}

// failingDocumentStore simulates a backend outage on the read path.
type failingDocumentStore struct {
	document.Store
}

func (failingDocumentStore) ListByClient(context.Context, domain.ClientID) ([]*document.Document, error) {
	return nil, errors.New("connection refused")
}

func TestService_StoreOutageNeverDegrades(t *testing.T) {
	catalog, err := taxonomy.Parse([]byte(testCatalogYAML))
	require.NoError(t, err)

	svc, err := New(failingDocumentStore{}, override.NewInMemoryStore(), catalog)
	require.NoError(t, err)

	clientID := domain.NewClientID()

	_, err = svc.FolderStatus(testContext(), clientID, "service-agreement")
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeUnavailable, dErrors.CodeOf(err))

	_, err = svc.OverallStatus(testContext(), clientID)
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeUnavailable, dErrors.CodeOf(err))

	_, err = svc.ClientView(testContext(), clientID)
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeUnavailable, dErrors.CodeOf(err))
}
