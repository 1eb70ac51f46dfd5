package override

import (
	"context"
	"sync"

	"caredocs/pkg/domain"
)

type complianceKey struct {
	client domain.ClientID
	doc    domain.DocumentType
}

type folderKey struct {
	client domain.ClientID
	folder domain.FolderID
}

// InMemoryStore keeps overrides in process memory.
type InMemoryStore struct {
	mu         sync.RWMutex
	compliance map[complianceKey]ComplianceOverride
	folders    map[folderKey]FolderOverride
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		compliance: make(map[complianceKey]ComplianceOverride),
		folders:    make(map[folderKey]FolderOverride),
	}
}

func (s *InMemoryStore) ComplianceOverrides(_ context.Context, clientID domain.ClientID) (map[domain.DocumentType]ComplianceOverride, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[domain.DocumentType]ComplianceOverride)
	for key, ov := range s.compliance {
		if key.client == clientID {
			out[key.doc] = ov
		}
	}
	return out, nil
}

func (s *InMemoryStore) UpsertComplianceOverride(_ context.Context, ov ComplianceOverride) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.compliance[complianceKey{client: ov.ClientID, doc: ov.Type}] = ov
	return nil
}

func (s *InMemoryStore) FolderOverrides(_ context.Context, clientID domain.ClientID) (map[domain.FolderID]FolderOverride, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[domain.FolderID]FolderOverride)
	for key, ov := range s.folders {
		if key.client == clientID {
			out[key.folder] = ov
		}
	}
	return out, nil
}

func (s *InMemoryStore) UpsertFolderOverride(_ context.Context, ov FolderOverride) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.folders[folderKey{client: ov.ClientID, folder: ov.FolderID}] = ov
	return nil
}
