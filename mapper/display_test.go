package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func named(names ...string) []*Schema {
	out := make([]*Schema, len(names))
	for i, n := range names {
		out[i] = &Schema{Name: n, Type: "string"}
	}
	return out
}

func typed(types ...string) []*Schema {
	out := make([]*Schema, len(types))
	for i, t := range types {
		out[i] = &Schema{Type: t}
	}
	return out
}

func TestTypeDisplay(t *testing.T) {
	tests := []struct {
		name       string
		kind       string
		properties []*Schema
		want       string
	}{
		{name: "primitive", kind: "string", want: "string"},
		{name: "enum without options", kind: "enum", want: "enum"},
		{name: "enum with options", kind: "enum", properties: typed("string", "string"), want: "enum"},
		{name: "empty object", kind: "object", want: "object"},
		{name: "empty array", kind: "array", properties: []*Schema{}, want: "array"},
		{name: "object unique names", kind: "object", properties: named("a", "b", "a", "c"), want: "{a, b, c}"},
		{name: "object skips unnamed", kind: "object", properties: append(named("a"), &Schema{Type: "number"}), want: "{a}"},
		{name: "array single unnamed", kind: "array", properties: typed("number"), want: "[number]"},
		{name: "array single named", kind: "array", properties: []*Schema{{Name: "User", Type: "object"}}, want: "[User]"},
		{name: "array common type", kind: "array", properties: typed("string", "string", "string"), want: "[string]"},
		{name: "array mixed types", kind: "array", properties: typed("number", "string"), want: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeDisplay(tt.kind, tt.properties))
		})
	}
}

func TestUniqueNames(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, UniqueNames(named("b", "a", "b", "c", "a")))
	assert.Empty(t, UniqueNames(nil))
}

func TestUniqueTypes(t *testing.T) {
	assert.Equal(t, []string{"number", "string"}, UniqueTypes(typed("number", "string", "number")))
	assert.Equal(t, []string{"object"}, UniqueTypes([]*Schema{nil, {Type: "object"}}))
}
