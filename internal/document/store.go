package document

import (
	"context"

	"caredocs/pkg/domain"
)

// Store persists evidence artifacts. Implementations return sentinel errors
// (pkg/platform/sentinel) for infrastructure facts; services translate them
// into domain errors.
type Store interface {
	// Create inserts a new document. Returns sentinel.ErrConflict when a
	// non-archived document already exists for the same (client, type).
	Create(ctx context.Context, doc *Document) error

	// Get returns the document or sentinel.ErrNotFound.
	Get(ctx context.Context, id domain.DocumentID) (*Document, error)

	// ListByClient returns every document of the client, archived included.
	// Callers take this as the evaluation snapshot.
	ListByClient(ctx context.Context, clientID domain.ClientID) ([]*Document, error)

	// Update replaces the mutable fields (upload date, expiry date, custom
	// title) of an existing document. Returns sentinel.ErrNotFound when the
	// id does not exist.
	Update(ctx context.Context, doc *Document) error

	// Archive soft-removes the document from folder aggregation: sets the
	// archived flag and records the placement at archive time. Returns
	// sentinel.ErrInvalidState when already archived.
	Archive(ctx context.Context, id domain.DocumentID) (*Document, error)

	// Unarchive restores the document to its original folder. Returns
	// sentinel.ErrInvalidState when not archived and sentinel.ErrConflict
	// when another current document of the same type appeared meanwhile.
	Unarchive(ctx context.Context, id domain.DocumentID) (*Document, error)

	// Delete removes the document permanently. No recovery path.
	Delete(ctx context.Context, id domain.DocumentID) error
}
