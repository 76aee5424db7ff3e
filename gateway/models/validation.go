package models

import "strings"

// ValidationResult is the outcome of validating one payment request. Errors
// keeps the individual messages in rule order; Message joins them only at
// the boundary where a single string is needed.
type ValidationResult struct {
	Success bool
	Errors  []string
}

func (r ValidationResult) Message() string {
	return strings.Join(r.Errors, "\n")
}
