// Package override holds per-client exceptions layered over the shared
// taxonomy: not-required flags for tracked documents and rename/hide
// customizations for folders. Overrides are sparse overlays - absence of a
// record always means the taxonomy default, and the taxonomy itself is never
// mutated or cloned per client.
package override

import (
	"time"

	"caredocs/pkg/domain"
)

// ComplianceOverride marks one obligation not required for one client.
// Keyed by (ClientID, Type); at most one record per key.
type ComplianceOverride struct {
	ClientID    domain.ClientID
	Type        domain.DocumentType
	NotRequired bool
	// Reason is free text captured on the not-required toggle; cleared when
	// the obligation becomes required again.
	Reason    string
	UpdatedAt time.Time
}

// FolderOverride customizes one folder's presentation for one client.
// Keyed by (ClientID, FolderID).
type FolderOverride struct {
	ClientID domain.ClientID
	FolderID domain.FolderID
	// CustomName overrides the taxonomy display name; empty means default.
	CustomName string
	// Hidden overrides visibility; nil means the taxonomy default applies.
	// The zero value therefore behaves exactly like an absent record.
	Hidden    *bool
	UpdatedAt time.Time
}
