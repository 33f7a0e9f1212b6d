package domain

import (
	"strings"
)

// Filter narrows which tasks qualify for a report. All fields are
// optional, but at least one must be set before a report is requested;
// enforcement happens at the CLI entry point.
type Filter struct {
	Project  *Project
	Customer *Customer
	User     *User
}

// HasScope reports whether at least one criterion is set
func (f Filter) HasScope() bool {
	return f.Project != nil || f.Customer != nil || f.User != nil
}

// Describe returns a human-readable description of the filter for report
// headers, e.g. "project Acme, user alice"
func (f Filter) Describe() string {
	var parts []string
	if f.Project != nil {
		parts = append(parts, "project "+f.Project.Name)
	}
	if f.Customer != nil {
		parts = append(parts, "customer "+f.Customer.Name)
	}
	if f.User != nil {
		parts = append(parts, "user "+f.User.Login)
	}
	if len(parts) == 0 {
		return "everything"
	}
	return strings.Join(parts, ", ")
}
