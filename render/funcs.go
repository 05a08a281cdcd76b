package render

import (
	"strings"

	json "github.com/goccy/go-json"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/schemaview/mapper"
)

// templateFuncs returns the helper functions available to every template.
func templateFuncs() map[string]any {
	titleCaser := cases.Title(language.English, cases.NoLower)

	return map[string]any{
		"title":    titleCaser.String,
		"join":     func(parts []string, sep string) string { return strings.Join(parts, sep) },
		"required": requiredLabel,
		"example":  exampleText,
	}
}

func requiredLabel(s *mapper.Schema) string {
	switch {
	case s == nil || s.Required == nil:
		return ""
	case *s.Required:
		return "required"
	default:
		return "optional"
	}
}

func exampleText(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
