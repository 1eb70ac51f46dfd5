package compliance

import (
	"time"

	"caredocs/internal/document"
	"caredocs/internal/taxonomy"
)

// DueSoonWindow is how far ahead of a due date an obligation turns due-soon.
// Fixed by policy, not configurable per document type.
const DueSoonWindow = 30 * 24 * time.Hour

// EvaluateStatus maps a due date to a status. Total: every input yields one of
// none, overdue, due-soon, compliant.
func EvaluateStatus(now time.Time, dueDate *time.Time) Status {
	switch {
	case dueDate == nil:
		return StatusNone
	case dueDate.Before(now):
		return StatusOverdue
	case dueDate.Before(now.Add(DueSoonWindow)):
		return StatusDueSoon
	default:
		return StatusCompliant
	}
}

// DueDate is the one canonical due-date derivation: an explicit expiry date
// wins; otherwise the upload date plus the frequency offset; as-needed
// documents never fall due. Every caller goes through here - passing raw
// completion dates into EvaluateStatus directly is what this exists to stop.
func DueDate(doc *document.Document, frequency taxonomy.Frequency) *time.Time {
	if doc.ExpiryDate != nil {
		return doc.ExpiryDate
	}
	if due, ok := frequency.NextDue(doc.UploadDate); ok {
		return &due
	}
	return nil
}
