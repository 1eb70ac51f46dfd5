// Package document holds the evidence-artifact model and its stores. An
// artifact is either an uploaded file or an external link; at most one
// non-archived artifact exists per (client, document type) and that record is
// the "current" evidence for the obligation.
package document

import (
	"time"

	"caredocs/pkg/domain"
)

// Source distinguishes uploaded binaries from external link references.
type Source string

const (
	SourceBinary Source = "binary"
	SourceLink   Source = "link"
)

// Document is one evidence artifact.
type Document struct {
	ID       domain.DocumentID
	ClientID domain.ClientID
	Type     domain.DocumentType
	Source   Source

	// FileName is the original file name for binary artifacts and the
	// display name for link artifacts.
	FileName string
	// StorageRef is the blob-store key for binary artifacts and the URL for
	// link artifacts. The blob store itself is an external collaborator.
	StorageRef string

	UploadDate time.Time
	// ExpiryDate, when set, overrides the due date computed from UploadDate
	// and the tracked document's frequency.
	ExpiryDate  *time.Time
	CustomTitle string

	// FolderID is the explicit placement, empty for records created before
	// placement existed (see InFolder for the compatibility rule).
	FolderID domain.FolderID

	Archived bool
	// OriginalFolderID is set only while archived and restores placement on
	// unarchive.
	OriginalFolderID domain.FolderID

	CreatedAt time.Time
}

// Title returns the caller-facing display title.
func (d Document) Title() string {
	if d.CustomTitle != "" {
		return d.CustomTitle
	}
	return d.FileName
}

// CurrentByType maps the non-archived documents of one client by obligation.
// With the one-current-per-type invariant the mapping is unambiguous.
func CurrentByType(docs []*Document) map[domain.DocumentType]*Document {
	out := make(map[domain.DocumentType]*Document, len(docs))
	for _, doc := range docs {
		if !doc.Archived {
			out[doc.Type] = doc
		}
	}
	return out
}
