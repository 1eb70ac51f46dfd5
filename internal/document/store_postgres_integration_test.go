//go:build integration

package document

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"caredocs/pkg/domain"
	"caredocs/pkg/platform/sentinel"
	"caredocs/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	ctx       context.Context
	container *containers.PostgresContainer
	store     *PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	s.container = containers.NewPostgresContainer(s.T())
	s.store = NewPostgres(s.container.DB)
	s.Require().NoError(s.store.EnsureSchema(s.ctx))
}

func (s *PostgresStoreSuite) TearDownSuite() {
	s.container.Terminate(s.ctx)
}

func (s *PostgresStoreSuite) newDoc(clientID domain.ClientID, docType domain.DocumentType) *Document {
	return &Document{
		ID:         domain.NewDocumentID(),
		ClientID:   clientID,
		Type:       docType,
		Source:     SourceBinary,
		FileName:   "evidence.pdf",
		StorageRef: "blobs/evidence",
		UploadDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		FolderID:   "health",
		CreatedAt:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *PostgresStoreSuite) TestCreateAndGet() {
	clientID := domain.NewClientID()
	doc := s.newDoc(clientID, "Health Action Plan")
	expiry := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)
	doc.ExpiryDate = &expiry

	s.Require().NoError(s.store.Create(s.ctx, doc))

	got, err := s.store.Get(s.ctx, doc.ID)
	s.Require().NoError(err)
	s.Equal(doc.ID, got.ID)
	s.Equal(doc.Type, got.Type)
	s.Require().NotNil(got.ExpiryDate)
	s.True(got.ExpiryDate.Equal(expiry))
}

func (s *PostgresStoreSuite) TestPartialUniqueIndexAllowsArchivedDuplicates() {
	clientID := domain.NewClientID()

	first := s.newDoc(clientID, "Medication List")
	s.Require().NoError(s.store.Create(s.ctx, first))

	// A second current document for the same obligation conflicts.
	err := s.store.Create(s.ctx, s.newDoc(clientID, "Medication List"))
	s.Require().ErrorIs(err, sentinel.ErrConflict)

	// Archiving frees the slot.
	_, err = s.store.Archive(s.ctx, first.ID)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Create(s.ctx, s.newDoc(clientID, "Medication List")))

	// Unarchiving now conflicts with the replacement.
	_, err = s.store.Unarchive(s.ctx, first.ID)
	s.Require().ErrorIs(err, sentinel.ErrConflict)
}

func (s *PostgresStoreSuite) TestArchiveRoundTrip() {
	clientID := domain.NewClientID()
	doc := s.newDoc(clientID, "Hospital Passport")
	s.Require().NoError(s.store.Create(s.ctx, doc))

	archived, err := s.store.Archive(s.ctx, doc.ID)
	s.Require().NoError(err)
	s.True(archived.Archived)
	s.Equal(domain.FolderID("health"), archived.OriginalFolderID)

	_, err = s.store.Archive(s.ctx, doc.ID)
	s.Require().ErrorIs(err, sentinel.ErrInvalidState)

	restored, err := s.store.Unarchive(s.ctx, doc.ID)
	s.Require().NoError(err)
	s.False(restored.Archived)
	s.Equal(domain.FolderID("health"), restored.FolderID)

	_, err = s.store.Unarchive(s.ctx, doc.ID)
	s.Require().ErrorIs(err, sentinel.ErrInvalidState)
}

func (s *PostgresStoreSuite) TestUpdateAndDelete() {
	clientID := domain.NewClientID()
	doc := s.newDoc(clientID, "Care Plan Summary")
	s.Require().NoError(s.store.Create(s.ctx, doc))

	doc.CustomTitle = "Reviewed plan"
	s.Require().NoError(s.store.Update(s.ctx, doc))

	got, err := s.store.Get(s.ctx, doc.ID)
	s.Require().NoError(err)
	s.Equal("Reviewed plan", got.CustomTitle)

	s.Require().NoError(s.store.Delete(s.ctx, doc.ID))
	_, err = s.store.Get(s.ctx, doc.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestListByClient() {
	clientID := domain.NewClientID()
	s.Require().NoError(s.store.Create(s.ctx, s.newDoc(clientID, "Health Action Plan")))
	s.Require().NoError(s.store.Create(s.ctx, s.newDoc(clientID, "Care Plan Summary")))
	s.Require().NoError(s.store.Create(s.ctx, s.newDoc(domain.NewClientID(), "Health Action Plan")))

	docs, err := s.store.ListByClient(s.ctx, clientID)
	s.Require().NoError(err)
	s.Len(docs, 2)
}
