package models

// CheckStatus is the outcome of a single validation check.
type CheckStatus string

const (
	StatusSuccess CheckStatus = "success"
	StatusError   CheckStatus = "error"
)

// CheckResult is the outcome of one named validation check.
type CheckResult struct {
	Status  CheckStatus `json:"status" yaml:"status"`
	Title   string      `json:"title" yaml:"title"`
	Message string      `json:"message" yaml:"message"`
}

// ValidationReport is the full result of validating one receipt.
// Results are ordered: required fields, date format, amount, tax rate,
// duplicate detection. The report is a snapshot; it holds no references
// to external state.
type ValidationReport struct {
	Passed  bool          `json:"passed" yaml:"passed"`
	Results []CheckResult `json:"results" yaml:"results"`
}

// Add appends a check result, flipping Passed on error without halting
// later checks.
func (r *ValidationReport) Add(result CheckResult) {
	r.Results = append(r.Results, result)
	if result.Status == StatusError {
		r.Passed = false
	}
}
