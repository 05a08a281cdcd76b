package refract

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"sigs.k8s.io/yaml"

	"github.com/erraggy/schemaview/schemaerrors"
)

// DefaultDrafterTimeout bounds a single drafter invocation.
const DefaultDrafterTimeout = 30 * time.Second

// Parser decodes refract documents from JSON, YAML, or (through drafter)
// API Blueprint source.
type Parser struct {
	// DrafterPath is the drafter executable used for API Blueprint input.
	// Defaults to "drafter" looked up on PATH.
	DrafterPath string
	// DrafterTimeout bounds each drafter run. Zero means DefaultDrafterTimeout.
	DrafterTimeout time.Duration
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		DrafterPath:    DefaultDrafterPath,
		DrafterTimeout: DefaultDrafterTimeout,
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	return OrNop(p.Logger)
}

// Result contains a decoded refract document and metadata about its source.
//
// Callers should treat Result as read-only; the pipeline never mutates Root.
type Result struct {
	// SourcePath is the input path, or ParseReader.<ext>/ParseBytes.<ext>
	// when the document did not come from a file
	SourcePath string
	// SourceFormat is the detected format of the input
	SourceFormat SourceFormat
	// Root is the top-level element, usually a parseResult
	Root *Element
	// Warnings holds warning annotations reported by the API description parser
	Warnings []string
	// SourceSize is the input size in bytes
	SourceSize int64
	// LoadTime is the time spent reading the input
	LoadTime time.Duration
}

// Parse reads and decodes the document at path.
func (p *Parser) Parse(path string) (*Result, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(path)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("refract: failed to read file: %w", err)
	}

	format := detectFormatFromPath(path)
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}

	res, err := p.decode(data, format, path)
	if err != nil {
		return nil, err
	}
	res.SourcePath = path
	res.LoadTime = loadTime
	res.SourceSize = int64(len(data))
	return res, nil
}

// ParseReader decodes a document read from r.
// Note: SourcePath is set to ParseReader.<format>.
func (p *Parser) ParseReader(r io.Reader) (*Result, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("refract: failed to read data: %w", err)
	}
	res, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	res.SourcePath = "ParseReader." + res.SourceFormat.Extension()
	return res, nil
}

// ParseBytes decodes a document held in memory.
// Note: SourcePath is set to ParseBytes.<format>.
func (p *Parser) ParseBytes(data []byte) (*Result, error) {
	format := detectFormatFromContent(data)
	res, err := p.decode(data, format, "")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseBytes." + format.Extension()
	res.SourceSize = int64(len(data))
	return res, nil
}

// ParseFormat decodes data using an explicit format instead of detection.
func (p *Parser) ParseFormat(data []byte, format SourceFormat) (*Result, error) {
	res, err := p.decode(data, format, "")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseBytes." + format.Extension()
	res.SourceSize = int64(len(data))
	return res, nil
}

func (p *Parser) decode(data []byte, format SourceFormat, path string) (*Result, error) {
	res := &Result{SourceFormat: format}

	jsonData := data
	switch format {
	case SourceFormatJSON:
	case SourceFormatYAML:
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, &schemaerrors.ParseError{Path: path, Message: "invalid YAML", Cause: err}
		}
		jsonData = converted
	case SourceFormatBlueprint:
		timeout := p.DrafterTimeout
		if timeout <= 0 {
			timeout = DefaultDrafterTimeout
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		p.log().Debug("running drafter", "path", path, "drafter", p.DrafterPath)
		out, err := ParseBlueprint(ctx, data, p.DrafterPath)
		if err != nil {
			return nil, err
		}
		jsonData = out
	default:
		return nil, &schemaerrors.ParseError{Path: path, Message: "empty or unrecognized input"}
	}

	var root Element
	if err := json.Unmarshal(jsonData, &root); err != nil {
		return nil, &schemaerrors.ParseError{Path: path, Message: "invalid refract document", Cause: err}
	}
	if root.Element == "" {
		return nil, &schemaerrors.ParseError{Path: path, Message: "root is not a refract element"}
	}
	res.Root = &root

	warnings, err := checkAnnotations(&root, path)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		p.log().Warn("parser warning", "path", path, "warning", w)
	}
	res.Warnings = warnings
	p.log().Debug("decoded refract document", "path", path, "format", string(format), "root", root.Element)
	return res, nil
}

// checkAnnotations inspects the annotations of a parseResult root. The first
// error annotation fails the parse; warnings are returned for reporting.
func checkAnnotations(root *Element, path string) ([]string, error) {
	if root.Element != KindParseResult {
		return nil, nil
	}
	var warnings []string
	for _, child := range root.Content.Items() {
		if child.Kind() != KindAnnotation {
			continue
		}
		text, _ := child.Content.String()
		switch {
		case child.HasClass(ClassError):
			return nil, &schemaerrors.ParseError{Path: path, Message: strings.TrimSpace(text)}
		case child.HasClass(ClassWarning):
			warnings = append(warnings, strings.TrimSpace(text))
		}
	}
	return warnings, nil
}
