package mapper

import (
	"bytes"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// Schema is the normalized description of one data structure or one of its
// parts. Schemas own their properties exclusively and are not modified after
// Map returns.
type Schema struct {
	// Name is the type name of a named object, or the key of a member.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Type is the underlying element kind.
	Type string `json:"type" yaml:"type"`
	// TypeDisplay is a short human-readable summary of the shape.
	TypeDisplay string `json:"typeDisplay" yaml:"typeDisplay"`
	// Description is free text from the element metadata.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Required is set on members, and on objects that declare type attributes.
	// Nil means the flag does not apply.
	Required *bool `json:"required,omitempty" yaml:"required,omitempty"`
	// Example is a representative literal value.
	Example any `json:"example,omitempty" yaml:"example,omitempty"`
	// Properties are the mapped children of objects, arrays and enums.
	Properties []*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// IsRequired reports whether Required is set and true.
func (s *Schema) IsRequired() bool {
	return s != nil && s.Required != nil && *s.Required
}

// ExampleField is one key/value pair of an ExampleObject.
type ExampleField struct {
	Key   string
	Value any
}

// ExampleObject is an object-valued example. It keeps the field order of the
// source document when encoded as JSON or YAML.
type ExampleObject []ExampleField

// Get returns the value of the first field named key.
func (o ExampleObject) Get(key string) (any, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// MarshalJSON implements json.Marshaler.
func (o ExampleObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler.
func (o ExampleObject) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range o {
		key := &yaml.Node{}
		if err := key.Encode(f.Key); err != nil {
			return nil, err
		}
		value := &yaml.Node{}
		if err := value.Encode(f.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}
