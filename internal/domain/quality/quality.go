// Package quality defines the closed severity and judgement enums shared by the
// defect, sampling, and measurement domains.
package quality

import "strings"

// Severity classifies a defect occurrence.
type Severity string

const (
	SeverityMinor    Severity = "MINOR"
	SeverityMajor    Severity = "MAJOR"
	SeverityCritical Severity = "CRITICAL"
	SeverityNone     Severity = "NONE"
)

// Categories lists the severities that carry independent accept/reject thresholds.
var Categories = []Severity{SeverityMinor, SeverityMajor, SeverityCritical}

// ParseSeverity maps free-form catalog input onto the closed enum.
func ParseSeverity(raw string) (Severity, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "MINOR":
		return SeverityMinor, true
	case "MAJOR":
		return SeverityMajor, true
	case "CRITICAL":
		return SeverityCritical, true
	case "NONE", "":
		return SeverityNone, true
	}
	return SeverityNone, false
}

// Status is the single judgement enum. Indeterminate means no reading was
// available; NotApplicable means no plan or tolerance covered the case. Neither
// is ever rendered as a pass or a fail.
type Status string

const (
	StatusPass          Status = "PASS"
	StatusFail          Status = "FAIL"
	StatusIndeterminate Status = "INDETERMINATE"
	StatusNotApplicable Status = "NOT_APPLICABLE"
)

// Counts holds per-severity defect unit counts.
type Counts struct {
	Minor    int `json:"minor"`
	Major    int `json:"major"`
	Critical int `json:"critical"`
}

// For returns the count for a category severity.
func (c Counts) For(sev Severity) int {
	switch sev {
	case SeverityMinor:
		return c.Minor
	case SeverityMajor:
		return c.Major
	case SeverityCritical:
		return c.Critical
	}
	return 0
}

// Add credits n units to a category severity. SeverityNone is ignored.
func (c *Counts) Add(sev Severity, n int) {
	switch sev {
	case SeverityMinor:
		c.Minor += n
	case SeverityMajor:
		c.Major += n
	case SeverityCritical:
		c.Critical += n
	}
}
