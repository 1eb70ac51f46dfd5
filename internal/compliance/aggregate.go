package compliance

import (
	"time"

	"caredocs/internal/document"
	"caredocs/internal/taxonomy"
	"caredocs/pkg/domain"
)

// ItemStatus is the evaluated state of one tracked obligation for one client.
type ItemStatus struct {
	Name        domain.DocumentType
	Status      Status
	DueDate     *time.Time
	NotRequired bool
	HasDocument bool
}

// FolderReport is the aggregate of one folder for one client, with the
// per-item breakdown that produced it.
type FolderReport struct {
	FolderID domain.FolderID
	Status   Status
	Items    []ItemStatus
}

// EvaluateFolder aggregates a folder's tracked documents (own and subfolders')
// for one client.
//
// Rules, in order:
//  1. nothing tracked (multi-artifact folders) reduces to none
//  2. items under an active not-required override are excluded
//  3. a required item with no current document is overdue - valid input,
//     never an error
//  4. every item excluded reduces to not-required
//  5. otherwise the included items reduce by fixed severity priority
func EvaluateFolder(
	now time.Time,
	folder taxonomy.Folder,
	current map[domain.DocumentType]*document.Document,
	notRequired map[domain.DocumentType]bool,
) FolderReport {
	report := FolderReport{FolderID: folder.ID, Status: StatusNone}

	tracked := folder.FlattenTracked()
	if len(tracked) == 0 {
		return report
	}

	excluded := 0
	for _, td := range tracked {
		item := ItemStatus{Name: td.Name}

		if notRequired[td.Name] {
			item.NotRequired = true
			item.Status = StatusNotRequired
			excluded++
			report.Items = append(report.Items, item)
			continue
		}

		if doc := current[td.Name]; doc != nil {
			item.HasDocument = true
			item.DueDate = DueDate(doc, td.Frequency)
			item.Status = EvaluateStatus(now, item.DueDate)
		} else {
			item.Status = StatusOverdue
		}
		report.Status = Reduce(report.Status, item.Status)
		report.Items = append(report.Items, item)
	}

	if excluded == len(tracked) {
		report.Status = StatusNotRequired
	}
	return report
}

// FolderStatus is EvaluateFolder without the breakdown.
func FolderStatus(
	now time.Time,
	folder taxonomy.Folder,
	current map[domain.DocumentType]*document.Document,
	notRequired map[domain.DocumentType]bool,
) Status {
	return EvaluateFolder(now, folder, current, notRequired).Status
}

// OverallStatus reduces per-folder statuses into the client-level status.
// not-required and none rank equal lowest here; a client whose folders are
// all excepted or empty reports none, never compliant.
func OverallStatus(folderStatuses []Status) Status {
	return ReduceAll(folderStatuses)
}
