package validation

import (
	"strings"
	"time"
)

// ReportRequest captures the raw CLI inputs for one report invocation
// before entity resolution happens.
type ReportRequest struct {
	Project  string
	Customer string
	User     string
	Year     int
	Week     int
	NumDays  int
}

// ReportRequestValidator validates report requests at the entry point
type ReportRequestValidator struct{}

// NewReportRequestValidator creates a new report request validator
func NewReportRequestValidator() *ReportRequestValidator {
	return &ReportRequestValidator{}
}

// Validate checks a report request. A request without any scope criterion
// is rejected before any network activity happens.
func (rv *ReportRequestValidator) Validate(req ReportRequest) error {
	validationError := NewValidationError()

	if !rv.HasScope(req) {
		validationError.AddRequiredError("scope filter (--project, --customer or --user)")
	}

	if req.Year < 1970 || req.Year > time.Now().Year()+1 {
		validationError.AddInvalidRangeError("year", req.Year, "must be a plausible calendar year")
	}

	// ISO 8601 weeks run 1..53
	if req.Week < 1 || req.Week > 53 {
		validationError.AddInvalidRangeError("week", req.Week, "must be between 1 and 53")
	}

	if req.NumDays < 1 {
		validationError.AddInvalidValueError("num_days", req.NumDays, "must be at least 1")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// HasScope reports whether at least one scope criterion is present
func (rv *ReportRequestValidator) HasScope(req ReportRequest) bool {
	return strings.TrimSpace(req.Project) != "" ||
		strings.TrimSpace(req.Customer) != "" ||
		strings.TrimSpace(req.User) != ""
}
