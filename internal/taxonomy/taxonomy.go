// Package taxonomy defines the static catalog of documentation obligations: a
// two-level folder tree whose leaves are either tracked documents with a
// recurrence frequency or free-form multi-artifact collections.
//
// The catalog is loaded once at process start and is read-only afterwards.
// Per-client exceptions never mutate it; they are overlaid at read time by the
// override resolver.
package taxonomy

import (
	"caredocs/pkg/domain"
)

// Kind tags the folder variant so callers can switch exhaustively instead of
// branching on field presence.
type Kind string

const (
	// KindTracked folders declare their own tracked documents and no subfolders.
	KindTracked Kind = "tracked"
	// KindMultiArtifact folders hold any number of free-form artifacts and
	// track nothing; their aggregate status is always none.
	KindMultiArtifact Kind = "multi-artifact"
	// KindComposite folders nest subfolders (one level) and may declare
	// tracked documents of their own.
	KindComposite Kind = "composite"
)

// TrackedDocument is a taxonomy-declared obligation.
type TrackedDocument struct {
	Name      domain.DocumentType
	Frequency Frequency
}

// Subfolder is a nested folder. Nesting stops here: subfolders declare tracked
// documents only, never further subfolders.
type Subfolder struct {
	ID      domain.FolderID
	Name    string
	Tracked []TrackedDocument
}

// Folder is one entry of the taxonomy tree.
type Folder struct {
	ID            domain.FolderID
	Name          string
	Kind          Kind
	DefaultHidden bool
	Tracked       []TrackedDocument
	Subfolders    []Subfolder
}

// FlattenTracked returns the folder's own tracked documents together with
// those of all its subfolders. Order follows declaration order; aggregation
// does not depend on it.
func (f Folder) FlattenTracked() []TrackedDocument {
	out := make([]TrackedDocument, 0, len(f.Tracked))
	out = append(out, f.Tracked...)
	for _, sub := range f.Subfolders {
		out = append(out, sub.Tracked...)
	}
	return out
}

// Catalog is the immutable taxonomy supplied at process start. Folders keeps
// declaration order; every caller-facing listing preserves it.
type Catalog struct {
	Version string
	Folders []Folder

	byID   map[domain.FolderID]int
	byName map[domain.DocumentType]Frequency
}

// Folder looks a folder up by id.
func (c *Catalog) Folder(id domain.FolderID) (Folder, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Folder{}, false
	}
	return c.Folders[idx], true
}

// FrequencyOf returns the recurrence frequency of a tracked document name
// anywhere in the catalog. The second return is false for ad-hoc types that
// no folder tracks.
func (c *Catalog) FrequencyOf(name domain.DocumentType) (Frequency, bool) {
	f, ok := c.byName[name]
	return f, ok
}

// index builds the lookup maps. Called once by the loader; the catalog is not
// modified afterwards.
func (c *Catalog) index() {
	c.byID = make(map[domain.FolderID]int, len(c.Folders))
	c.byName = make(map[domain.DocumentType]Frequency)
	for i, folder := range c.Folders {
		c.byID[folder.ID] = i
		for _, td := range folder.FlattenTracked() {
			if _, exists := c.byName[td.Name]; !exists {
				c.byName[td.Name] = td.Frequency
			}
		}
	}
}
