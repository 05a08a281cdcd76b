package render

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/schemaview/mapper"
)

// JSON encodes schemas as two-space indented JSON. A nil list encodes as [].
func JSON(schemas []*mapper.Schema) ([]byte, error) {
	if schemas == nil {
		schemas = []*mapper.Schema{}
	}
	data, err := json.MarshalIndent(schemas, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: encoding JSON: %w", err)
	}
	return data, nil
}

// YAML encodes schemas as YAML.
func YAML(schemas []*mapper.Schema) ([]byte, error) {
	if schemas == nil {
		schemas = []*mapper.Schema{}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(schemas); err != nil {
		return nil, fmt.Errorf("render: encoding YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("render: encoding YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// Structured encodes schemas in the named data format, "json" or "yaml".
func Structured(schemas []*mapper.Schema, format string) ([]byte, error) {
	switch format {
	case "json":
		return JSON(schemas)
	case "yaml", "yml":
		return YAML(schemas)
	default:
		return nil, fmt.Errorf("render: unsupported data format %q (expected json or yaml)", format)
	}
}
