// Package cliutil provides output helpers for the schemaview command line.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/erraggy/schemaview/internal/issues"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteIssues prints one line per issue followed by a severity summary.
// Info issues are skipped when includeInfo is false. Nothing is written
// for an empty list.
func WriteIssues(w io.Writer, list []issues.Issue, includeInfo bool) {
	if len(list) == 0 {
		return
	}
	for _, issue := range list {
		if issue.Severity == issues.SeverityInfo && !includeInfo {
			continue
		}
		Writef(w, "%s\n", issue)
	}
	c := issues.Count(list)
	Writef(w, "%d critical, %d warning(s), %d info\n", c.Critical, c.Warning, c.Info)
}
