// Package compliance evaluates obligation statuses and aggregates them across
// the folder taxonomy. Everything here is pure domain logic - no I/O, no side
// effects; functions receive a fixed "now" and a snapshot of store data and
// return the same result for the same inputs.
package compliance

// Status is the compliance state of one obligation, one folder, or one client.
type Status string

const (
	// StatusNone means nothing is evaluated: no due date, or nothing tracked.
	StatusNone Status = "none"
	// StatusCompliant means evidence exists and its due date is comfortably ahead.
	StatusCompliant Status = "compliant"
	// StatusDueSoon means the due date falls within the renewal window.
	StatusDueSoon Status = "due-soon"
	// StatusOverdue means the due date passed, or a required obligation has no
	// current evidence at all.
	StatusOverdue Status = "overdue"
	// StatusNotRequired marks an obligation excepted for the client, and a
	// folder whose every tracked item is excepted. EvaluateStatus never
	// returns it; it enters only through overrides during aggregation.
	StatusNotRequired Status = "not-required"
)

// severity is the fixed reduction priority. not-required and none share the
// lowest rank: neither may ever mask a worse state.
var severity = map[Status]int{
	StatusOverdue:     3,
	StatusDueSoon:     2,
	StatusCompliant:   1,
	StatusNone:        0,
	StatusNotRequired: 0,
}

// Reduce returns the most severe of the two statuses.
func Reduce(a, b Status) Status {
	if severity[b] > severity[a] {
		return b
	}
	return a
}

// ReduceAll folds a set of statuses into the most severe one. An empty set
// reduces to none.
func ReduceAll(statuses []Status) Status {
	out := StatusNone
	for _, st := range statuses {
		out = Reduce(out, st)
	}
	return out
}
