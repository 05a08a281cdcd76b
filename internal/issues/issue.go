// Package issues provides the non-fatal findings reported while generating
// code from mapped schemas.
package issues

import (
	"fmt"
)

// Severity ranks an issue. Info < Warning < Critical.
type Severity int

const (
	// SeverityInfo notes a choice the generator made on the caller's behalf.
	SeverityInfo Severity = iota
	// SeverityWarning marks output that is valid but loses type information.
	SeverityWarning
	// SeverityCritical marks a schema that could not be generated at all.
	SeverityCritical
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Issue is a single finding.
type Issue struct {
	// Path locates the schema, e.g. "$[0].properties[2]"
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity Severity
	// Field is the Go identifier the issue concerns, if any
	Field string
	// Value is the problematic value (optional)
	Value any
}

// String returns a formatted representation of the issue, prefixed with a
// symbol for its severity.
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case SeverityCritical:
		symbol = "✗"
	case SeverityWarning:
		symbol = "⚠"
	case SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	result := fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
	if i.Field != "" {
		result += fmt.Sprintf(" (%s)", i.Field)
	}
	return result
}

// Counts tallies issues by severity.
type Counts struct {
	Info     int
	Warning  int
	Critical int
}

// Count returns the number of issues at each severity.
func Count(list []Issue) Counts {
	var c Counts
	for _, i := range list {
		switch i.Severity {
		case SeverityInfo:
			c.Info++
		case SeverityWarning:
			c.Warning++
		case SeverityCritical:
			c.Critical++
		}
	}
	return c
}
