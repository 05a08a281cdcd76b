package generator

import (
	"bytes"
	"embed"
	"text/template"

	"golang.org/x/tools/imports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").
	Funcs(templateFuncs).
	ParseFS(templateFS, "templates/*.tmpl"))

// templateFuncs provides custom functions for templates
var templateFuncs = template.FuncMap{
	"backquote": func(s string) string { return "`" + s + "`" },
}

// fileData is the data passed to types.go.tmpl.
type fileData struct {
	Version     string
	Source      string
	PackageName string
	Types       []*typeDecl
}

// executeTemplate executes a template by name and returns the raw bytes.
func executeTemplate(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatAndFixImports formats Go source code and adds or removes imports
// the way goimports does.
func formatAndFixImports(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}
