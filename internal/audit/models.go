// Package audit records an append-only trail of mutating operations: who did
// what to which client's documentation, and why. The trail never schedules or
// reminds; it only records.
package audit

import (
	"time"

	"caredocs/pkg/domain"
)

// Action names one auditable operation.
type Action string

const (
	ActionDocumentUploaded   Action = "document_uploaded"
	ActionDocumentEdited     Action = "document_edited"
	ActionDocumentArchived   Action = "document_archived"
	ActionDocumentUnarchived Action = "document_unarchived"
	ActionDocumentDeleted    Action = "document_deleted"
	ActionMarkedNotRequired  Action = "obligation_marked_not_required"
	ActionMarkedRequired     Action = "obligation_marked_required"
	ActionFolderCustomized   Action = "folder_customized"
)

// Event is one audit trail entry.
type Event struct {
	ID       string          `json:"id"`
	ClientID domain.ClientID `json:"client_id"`
	Action   Action          `json:"action"`
	// Subject identifies what was acted on: a document id, a document type,
	// or a folder id, depending on the action.
	Subject string `json:"subject"`
	// Reason carries caller-supplied context, e.g. why an obligation was
	// marked not required.
	Reason    string    `json:"reason,omitempty"`
	ActorID   string    `json:"actor_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
