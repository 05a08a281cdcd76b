package generator

import (
	"fmt"
	"go/token"

	"github.com/erraggy/schemaview"
	"github.com/erraggy/schemaview/internal/issues"
	"github.com/erraggy/schemaview/mapper"
	"github.com/erraggy/schemaview/schemaerrors"
)

const (
	// DefaultPackageName is the package clause used when none is given.
	DefaultPackageName = "schemas"
	// DefaultFileName is the name of the generated file.
	DefaultFileName = "types.go"
)

// GenerateIssue represents a single generation issue or limitation
type GenerateIssue = issues.Issue

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (without directory)
	Name string
	// Content is the formatted Go source
	Content []byte
}

// GenerateResult contains the results of generating Go types.
type GenerateResult struct {
	// Files contains all generated files
	Files []GeneratedFile
	// PackageName is the package clause of the generated files
	PackageName string
	// Types lists the declared type names in output order
	Types []string
	// Issues contains all generation issues in discovery order
	Issues []GenerateIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if generation completed without critical issues
	Success bool
}

// HasCriticalIssues returns true if there are any critical issues
func (r *GenerateResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetFile returns the generated file with the given name, or nil.
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Option configures Generate.
type Option func(*config) error

type config struct {
	packageName string
	sourceName  string
	fileName    string
}

// WithPackageName sets the package clause of the generated file.
func WithPackageName(name string) Option {
	return func(c *config) error {
		if !token.IsIdentifier(name) || name == "_" {
			return &schemaerrors.ConfigError{
				Option:  "package",
				Value:   name,
				Message: "must be a valid Go package name",
			}
		}
		c.packageName = name
		return nil
	}
}

// WithSourceName records the input document name in the generated header.
func WithSourceName(name string) Option {
	return func(c *config) error {
		c.sourceName = name
		return nil
	}
}

// WithFileName sets the name of the generated file.
func WithFileName(name string) Option {
	return func(c *config) error {
		if name == "" {
			return &schemaerrors.ConfigError{Option: "file name", Message: "must not be empty"}
		}
		c.fileName = name
		return nil
	}
}

// Generate produces Go type declarations for schemas, one root type per
// schema in input order.
func Generate(schemas []*mapper.Schema, opts ...Option) (*GenerateResult, error) {
	cfg := &config{
		packageName: DefaultPackageName,
		fileName:    DefaultFileName,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	b := newBuilder()
	for i, s := range schemas {
		if s == nil {
			b.report(issues.SeverityCritical, fmt.Sprintf("$[%d]", i), "", "nil schema skipped")
			continue
		}
		b.root(i, s)
	}

	src, err := executeTemplate("types.go.tmpl", fileData{
		Version:     schemaview.Version(),
		Source:      cfg.sourceName,
		PackageName: cfg.packageName,
		Types:       b.types,
	})
	if err != nil {
		return nil, fmt.Errorf("generator: failed to execute template: %w", err)
	}
	if formatted, ferr := formatAndFixImports(cfg.fileName, src); ferr != nil {
		b.report(issues.SeverityWarning, "$", cfg.fileName, "output left unformatted: %v", ferr)
	} else {
		src = formatted
	}

	result := &GenerateResult{
		Files:       []GeneratedFile{{Name: cfg.fileName, Content: src}},
		PackageName: cfg.packageName,
		Types:       make([]string, 0, len(b.types)),
		Issues:      b.issues,
	}
	for _, t := range b.types {
		result.Types = append(result.Types, t.Name)
	}
	counts := issues.Count(result.Issues)
	result.InfoCount = counts.Info
	result.WarningCount = counts.Warning
	result.CriticalCount = counts.Critical
	result.Success = result.CriticalCount == 0
	return result, nil
}
