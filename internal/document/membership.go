package document

import (
	"strings"

	"caredocs/internal/taxonomy"
	"caredocs/pkg/domain"
)

// InFolder reports whether doc is shown under folder. Archived documents
// belong to the archive pseudo-folder and nowhere else, regardless of
// placement; callers list those with doc.Archived directly.
func InFolder(doc *Document, folder taxonomy.Folder) bool {
	if doc.Archived {
		return false
	}

	switch folder.Kind {
	case taxonomy.KindMultiArtifact:
		return doc.FolderID == folder.ID || legacyNameMatch(doc.Type, folder.Name)
	default:
		if doc.FolderID == folder.ID {
			return true
		}
		for _, sub := range folder.Subfolders {
			if doc.FolderID == sub.ID {
				return true
			}
		}
		if doc.FolderID != "" {
			// Explicitly placed elsewhere.
			return false
		}
		for _, td := range folder.FlattenTracked() {
			if td.Name == doc.Type {
				return true
			}
		}
		return false
	}
}

// legacyNameMatch is the compatibility rule for multi-artifact records created
// before explicit folder placement existed: those carried the folder's display
// name in their document type, either exactly or as a "Name: artifact" prefix.
// Every call site must go through this function; the rule is not to be
// re-implemented inline.
func legacyNameMatch(docType domain.DocumentType, displayName string) bool {
	s := string(docType)
	return s == displayName || strings.HasPrefix(s, displayName+":")
}
