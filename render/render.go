package render

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	"os"
	"path/filepath"
	texttemplate "text/template"

	"github.com/erraggy/schemaview"
	"github.com/erraggy/schemaview/mapper"
	"github.com/erraggy/schemaview/schemaerrors"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Format selects the template engine.
type Format string

const (
	// FormatHTML executes the template with html/template escaping.
	FormatHTML Format = "html"
	// FormatText executes the template as plain text.
	FormatText Format = "text"
)

// DefaultTitle is the report title used when none is configured.
const DefaultTitle = "Data Structures"

var defaultTemplates = map[Format]string{
	FormatHTML: "templates/schemas.html.tmpl",
	FormatText: "templates/schemas.txt.tmpl",
}

// Data is the value passed to templates.
type Data struct {
	// Title is the report title.
	Title string
	// Schemas are the mapped schemas in root-input order.
	Schemas []*mapper.Schema
	// SchemasJSON is Schemas encoded as indented JSON.
	SchemasJSON string
	// Version is the schemaview version that produced the report.
	Version string
}

// executor is satisfied by both html/template and text/template.
type executor interface {
	Execute(w io.Writer, data any) error
}

// Renderer executes a parsed report template.
type Renderer struct {
	tmpl  executor
	name  string
	title string
}

// Option configures a Renderer.
type Option func(*config) error

type config struct {
	format       Format
	title        string
	templatePath string
	templateText *string
}

// WithFormat selects HTML (default) or text output.
func WithFormat(f Format) Option {
	return func(cfg *config) error {
		if _, ok := defaultTemplates[f]; !ok {
			return &schemaerrors.ConfigError{Option: "format", Value: string(f), Message: "expected html or text"}
		}
		cfg.format = f
		return nil
	}
}

// WithTitle sets the report title.
func WithTitle(title string) Option {
	return func(cfg *config) error {
		cfg.title = title
		return nil
	}
}

// WithTemplateFile uses the template at path instead of the embedded one.
func WithTemplateFile(path string) Option {
	return func(cfg *config) error {
		if path == "" {
			return &schemaerrors.ConfigError{Option: "template", Message: "path cannot be empty"}
		}
		cfg.templatePath = path
		return nil
	}
}

// WithTemplateText uses the given template source instead of the embedded one.
func WithTemplateText(text string) Option {
	return func(cfg *config) error {
		cfg.templateText = &text
		return nil
	}
}

// New parses the configured template and returns a Renderer.
func New(opts ...Option) (*Renderer, error) {
	cfg := &config{format: FormatHTML, title: DefaultTitle}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("render: invalid options: %w", err)
		}
	}
	if cfg.templatePath != "" && cfg.templateText != nil {
		return nil, fmt.Errorf("render: invalid options: %w", &schemaerrors.ConfigError{
			Option:  "template",
			Message: "WithTemplateFile and WithTemplateText are mutually exclusive",
		})
	}

	name, text, err := loadTemplate(cfg)
	if err != nil {
		return nil, err
	}

	var tmpl executor
	switch cfg.format {
	case FormatText:
		tmpl, err = texttemplate.New(name).Funcs(templateFuncs()).Parse(text)
	default:
		tmpl, err = htmltemplate.New(name).Funcs(templateFuncs()).Parse(text)
	}
	if err != nil {
		return nil, &schemaerrors.RenderError{Template: name, Message: "parsing template", Cause: err}
	}

	return &Renderer{tmpl: tmpl, name: name, title: cfg.title}, nil
}

func loadTemplate(cfg *config) (name, text string, err error) {
	switch {
	case cfg.templateText != nil:
		return "inline", *cfg.templateText, nil
	case cfg.templatePath != "":
		data, err := os.ReadFile(cfg.templatePath)
		if err != nil {
			return "", "", fmt.Errorf("render: reading template: %w", err)
		}
		return filepath.Base(cfg.templatePath), string(data), nil
	default:
		path := defaultTemplates[cfg.format]
		data, err := templateFS.ReadFile(path)
		if err != nil {
			return "", "", fmt.Errorf("render: reading embedded template: %w", err)
		}
		return filepath.Base(path), string(data), nil
	}
}

// Render writes the report for schemas to w.
func (r *Renderer) Render(w io.Writer, schemas []*mapper.Schema) error {
	data, err := r.data(schemas)
	if err != nil {
		return err
	}
	if err := r.tmpl.Execute(w, data); err != nil {
		return &schemaerrors.RenderError{Template: r.name, Message: "executing template", Cause: err}
	}
	return nil
}

// RenderBytes returns the report for schemas. Nothing is returned when the
// template fails part way.
func (r *Renderer) RenderBytes(schemas []*mapper.Schema) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, schemas); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) data(schemas []*mapper.Schema) (*Data, error) {
	encoded, err := JSON(schemas)
	if err != nil {
		return nil, err
	}
	return &Data{
		Title:       r.title,
		Schemas:     schemas,
		SchemasJSON: string(encoded),
		Version:     schemaview.Version(),
	}, nil
}
