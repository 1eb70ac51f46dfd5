package taxonomy

import (
	"time"

	dErrors "caredocs/pkg/domain-errors"
)

// Frequency is the recurrence cadence of a tracked document.
// Invariant: the value must be one of the supported frequencies.
//
// Usage: construct via ParseFrequency at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type Frequency string

const (
	FrequencyAnnual     Frequency = "annual"
	FrequencySixMonthly Frequency = "6-monthly"
	FrequencyAsNeeded   Frequency = "as-needed"
)

// validFrequencies is the single source of truth for valid frequencies.
var validFrequencies = map[Frequency]bool{
	FrequencyAnnual:     true,
	FrequencySixMonthly: true,
	FrequencyAsNeeded:   true,
}

// Renewal offsets are fixed by policy, not configurable per document type.
const (
	annualOffsetDays     = 365
	sixMonthlyOffsetDays = 182
)

// ParseFrequency constructs a Frequency from external input.
func ParseFrequency(s string) (Frequency, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "frequency cannot be empty")
	}
	f := Frequency(s)
	if !f.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid frequency: "+s)
	}
	return f, nil
}

// IsValid checks if the frequency is one of the supported enum values.
func (f Frequency) IsValid() bool {
	return validFrequencies[f]
}

// NextDue returns the due date implied by an upload on the given date.
// The second return is false for as-needed documents, which never fall due.
func (f Frequency) NextDue(uploadDate time.Time) (time.Time, bool) {
	switch f {
	case FrequencyAnnual:
		return uploadDate.AddDate(0, 0, annualOffsetDays), true
	case FrequencySixMonthly:
		return uploadDate.AddDate(0, 0, sixMonthlyOffsetDays), true
	default:
		return time.Time{}, false
	}
}

// String returns the string representation of the frequency.
func (f Frequency) String() string {
	return string(f)
}
