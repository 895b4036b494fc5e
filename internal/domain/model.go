package domain

// Issue represents a single rule violation found during validation.
type Issue struct {
	Category string `json:"category"`
	Field    string `json:"field"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

const (
	CategoryRequired = "required"
	CategoryType     = "type"
	CategoryNaming   = "naming"
	CategoryDomain   = "domain"
)

// FieldEvent is the field placeholder for issues that apply to the event as a
// whole rather than a single field.
const FieldEvent = "$event"

// ValidationResult is the ordered list of issues from one validation pass.
// Passed is true iff no issue has severity error.
type ValidationResult struct {
	Passed bool    `json:"passed"`
	Issues []Issue `json:"issues"`
}

// Counts returns the number of error and warning issues.
func (r ValidationResult) Counts() (errors, warnings int) {
	for _, issue := range r.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}

// ScanReport wraps one validation result with scan metadata for callers.
type ScanReport struct {
	ID         string           `json:"id"`
	Timestamp  string           `json:"timestamp"`
	Event      string           `json:"event,omitempty"`
	CommitHash string           `json:"commit_hash,omitempty"`
	Errors     int              `json:"errors"`
	Warnings   int              `json:"warnings"`
	Result     ValidationResult `json:"result"`
}

// ScanEntry is one line of scan history.
type ScanEntry struct {
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	Event      string `json:"event,omitempty"`
	Passed     bool   `json:"passed"`
	Errors     int    `json:"errors"`
	Warnings   int    `json:"warnings"`
}
