package mapper

import (
	"strings"

	"github.com/erraggy/schemaview/refract"
)

// TypeDisplay derives the human-readable type summary for a node of the given
// kind with the given mapped properties:
//
//   - enum: always "enum"
//   - no properties: the kind itself
//   - object: the unique property names, e.g. "{a, b, c}"
//   - one property: "[name]", or "[type]" when it has no name
//   - several properties: "[type]" when they share one type, else "[]"
func TypeDisplay(kind string, properties []*Schema) string {
	if kind == refract.KindEnum || len(properties) == 0 {
		return kind
	}

	if kind == refract.KindObject {
		return "{" + strings.Join(UniqueNames(properties), ", ") + "}"
	}

	var item string
	if len(properties) == 1 {
		item = properties[0].Name
		if item == "" {
			item = properties[0].Type
		}
	} else if types := UniqueTypes(properties); len(types) == 1 {
		item = types[0]
	}
	return "[" + item + "]"
}

// UniqueNames returns the non-empty property names with later duplicates
// dropped, in first-seen order.
func UniqueNames(properties []*Schema) []string {
	return unique(properties, func(s *Schema) string { return s.Name })
}

// UniqueTypes returns the property types with later duplicates dropped, in
// first-seen order.
func UniqueTypes(properties []*Schema) []string {
	return unique(properties, func(s *Schema) string { return s.Type })
}

func unique(properties []*Schema, field func(*Schema) string) []string {
	seen := make(map[string]bool, len(properties))
	out := make([]string, 0, len(properties))
	for _, p := range properties {
		if p == nil {
			continue
		}
		v := field(p)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
