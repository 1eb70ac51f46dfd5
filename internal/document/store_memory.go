package document

import (
	"context"
	"sync"

	"caredocs/pkg/domain"
	"caredocs/pkg/platform/sentinel"
)

// InMemoryStore keeps documents in process memory. Used in tests and for
// single-node deployments without Postgres.
type InMemoryStore struct {
	mu   sync.RWMutex
	docs map[domain.DocumentID]*Document
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{docs: make(map[domain.DocumentID]*Document)}
}

func (s *InMemoryStore) Create(_ context.Context, doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.docs[doc.ID]; exists {
		return sentinel.ErrConflict
	}
	if !doc.Archived {
		for _, existing := range s.docs {
			if !existing.Archived && existing.ClientID == doc.ClientID && existing.Type == doc.Type {
				return sentinel.ErrConflict
			}
		}
	}
	stored := *doc
	s.docs[doc.ID] = &stored
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, id domain.DocumentID) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *doc
	return &copied, nil
}

func (s *InMemoryStore) ListByClient(_ context.Context, clientID domain.ClientID) ([]*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Document
	for _, doc := range s.docs {
		if doc.ClientID == clientID {
			copied := *doc
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *InMemoryStore) Update(_ context.Context, doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.docs[doc.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	existing.UploadDate = doc.UploadDate
	existing.ExpiryDate = doc.ExpiryDate
	existing.CustomTitle = doc.CustomTitle
	return nil
}

func (s *InMemoryStore) Archive(_ context.Context, id domain.DocumentID) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if doc.Archived {
		return nil, sentinel.ErrInvalidState
	}
	doc.Archived = true
	doc.OriginalFolderID = doc.FolderID
	copied := *doc
	return &copied, nil
}

func (s *InMemoryStore) Unarchive(_ context.Context, id domain.DocumentID) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if !doc.Archived {
		return nil, sentinel.ErrInvalidState
	}
	for _, existing := range s.docs {
		if existing.ID != doc.ID && !existing.Archived &&
			existing.ClientID == doc.ClientID && existing.Type == doc.Type {
			return nil, sentinel.ErrConflict
		}
	}
	doc.Archived = false
	doc.FolderID = doc.OriginalFolderID
	doc.OriginalFolderID = ""
	copied := *doc
	return &copied, nil
}

func (s *InMemoryStore) Delete(_ context.Context, id domain.DocumentID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}
