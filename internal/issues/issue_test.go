package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		expected string
	}{
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityCritical, "critical"},
		{Severity(-1), "unknown"},
		{Severity(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.severity.String())
		})
	}
}

func TestIssueString(t *testing.T) {
	tests := []struct {
		name     string
		issue    Issue
		expected string
	}{
		{
			name:     "warning with field",
			issue:    Issue{Path: "$[0].properties[1]", Message: "mixed item types", Severity: SeverityWarning, Field: "Tags"},
			expected: "⚠ $[0].properties[1]: mixed item types (Tags)",
		},
		{
			name:     "critical",
			issue:    Issue{Path: "$[2]", Message: "unsupported kind", Severity: SeverityCritical},
			expected: "✗ $[2]: unsupported kind",
		},
		{
			name:     "info",
			issue:    Issue{Path: "$[1]", Message: "renamed", Severity: SeverityInfo},
			expected: "ℹ $[1]: renamed",
		},
		{
			name:     "unknown severity",
			issue:    Issue{Path: "$", Message: "odd", Severity: Severity(42)},
			expected: "? $: odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.issue.String())
		})
	}
}

func TestCount(t *testing.T) {
	c := Count([]Issue{
		{Severity: SeverityInfo},
		{Severity: SeverityWarning},
		{Severity: SeverityWarning},
		{Severity: SeverityCritical},
	})
	assert.Equal(t, Counts{Info: 1, Warning: 2, Critical: 1}, c)
	assert.Equal(t, Counts{}, Count(nil))
}
