package override

import (
	"context"

	"caredocs/pkg/domain"
)

// Store persists per-client overrides. Writes are upserts by key: re-applying
// the current state never creates duplicate records and never errors.
type Store interface {
	// ComplianceOverrides returns the client's document overrides keyed by
	// document type. Missing clients yield an empty map, not an error.
	ComplianceOverrides(ctx context.Context, clientID domain.ClientID) (map[domain.DocumentType]ComplianceOverride, error)

	// UpsertComplianceOverride creates or replaces the record for
	// (ov.ClientID, ov.Type).
	UpsertComplianceOverride(ctx context.Context, ov ComplianceOverride) error

	// FolderOverrides returns the client's folder overrides keyed by folder id.
	FolderOverrides(ctx context.Context, clientID domain.ClientID) (map[domain.FolderID]FolderOverride, error)

	// UpsertFolderOverride creates or replaces the record for
	// (ov.ClientID, ov.FolderID).
	UpsertFolderOverride(ctx context.Context, ov FolderOverride) error
}
