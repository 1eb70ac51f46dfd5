package override

import (
	"caredocs/internal/taxonomy"
	"caredocs/pkg/domain"
)

// ResolvedFolder pairs a taxonomy folder with its per-client display name.
type ResolvedFolder struct {
	Folder taxonomy.Folder
	Name   string
}

// ResolvedName returns the client-facing folder name: the override's custom
// name when set, else the taxonomy display name. A nil override means default.
func ResolvedName(folder taxonomy.Folder, ov *FolderOverride) string {
	if ov != nil && ov.CustomName != "" {
		return ov.CustomName
	}
	return folder.Name
}

// IsVisible reports whether the folder is shown to the client. An override
// with an explicit hidden value wins; otherwise the taxonomy default applies.
// An absent record and a zero-valued record behave identically.
func IsVisible(folder taxonomy.Folder, ov *FolderOverride) bool {
	if ov != nil && ov.Hidden != nil {
		return !*ov.Hidden
	}
	return !folder.DefaultHidden
}

// VisibleFolders filters the catalog by visibility and resolves names,
// preserving taxonomy declaration order. Overrides never reorder folders.
func VisibleFolders(catalog *taxonomy.Catalog, overrides map[domain.FolderID]FolderOverride) []ResolvedFolder {
	out := make([]ResolvedFolder, 0, len(catalog.Folders))
	for _, folder := range catalog.Folders {
		ov := lookup(overrides, folder.ID)
		if !IsVisible(folder, ov) {
			continue
		}
		out = append(out, ResolvedFolder{
			Folder: folder,
			Name:   ResolvedName(folder, ov),
		})
	}
	return out
}

// NotRequiredSet projects the active not-required flags out of a client's
// compliance overrides, the shape the aggregation engine consumes.
func NotRequiredSet(overrides map[domain.DocumentType]ComplianceOverride) map[domain.DocumentType]bool {
	out := make(map[domain.DocumentType]bool, len(overrides))
	for docType, ov := range overrides {
		if ov.NotRequired {
			out[docType] = true
		}
	}
	return out
}

func lookup(overrides map[domain.FolderID]FolderOverride, id domain.FolderID) *FolderOverride {
	if ov, ok := overrides[id]; ok {
		return &ov
	}
	return nil
}
