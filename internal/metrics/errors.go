// Package metrics provides the immutable portfolio metric store with its queries, aggregations and formatters.
package metrics

import (
	"fmt"
	"strings"
)

// LoadError represents an error during file I/O or JSON parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Violation is a single integrity problem found in the backing data
type Violation struct {
	Index   int    // position of the record in the document, -1 for document level problems
	Field   string // json field name
	Message string
}

// IntegrityError represents backing data that decodes but breaks the metric invariants
type IntegrityError struct {
	Violations []Violation
}

func (e *IntegrityError) Error() string {
	var sb strings.Builder
	sb.WriteString("integrity error:")
	for _, v := range e.Violations {
		if v.Index >= 0 {
			sb.WriteString(fmt.Sprintf("\n  metrics[%d].%s: %s", v.Index, v.Field, v.Message))
		} else {
			sb.WriteString(fmt.Sprintf("\n  %s: %s", v.Field, v.Message))
		}
	}
	return sb.String()
}
