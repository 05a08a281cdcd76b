package mapper

import (
	"fmt"
	"strconv"

	"github.com/erraggy/schemaview/refract"
	"github.com/erraggy/schemaview/schemaerrors"
)

// MaxNodes is the largest number of schema nodes Map produces for one
// structure. Named types shared at every level of a document expand
// exponentially; mapping stops with a SizeLimitError instead.
const MaxNodes = 100_000

// Map converts one dereferenced structure into a Schema.
func Map(e *refract.Element) (*Schema, error) {
	return MapAt(e, "$")
}

// MapAt is Map with an explicit location for error reporting.
func MapAt(e *refract.Element, path string) (*Schema, error) {
	m := &mapping{limit: MaxNodes}
	return m.node(e, path)
}

// mapping counts the schema nodes produced for one structure.
type mapping struct {
	nodes int
	limit int
}

// MapAll maps every structure in order. The first failure aborts the whole
// pass and no schemas are returned.
func MapAll(structures []*refract.Element) ([]*Schema, error) {
	schemas := make([]*Schema, 0, len(structures))
	for i, e := range structures {
		s, err := MapAt(e, "$["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}

func (m *mapping) node(e *refract.Element, path string) (*Schema, error) {
	m.nodes++
	if m.nodes > m.limit {
		return nil, &schemaerrors.SizeLimitError{Limit: m.limit, Path: path}
	}

	v, err := classify(e, path)
	if err != nil {
		return nil, err
	}

	switch v := v.(type) {
	case objectVariant:
		return m.object(v, path)
	case memberVariant:
		return m.member(v, path)
	case collectionVariant:
		return m.collection(v, path)
	case primitiveVariant:
		return mapPrimitive(v), nil
	default:
		return nil, &schemaerrors.UnknownElementError{
			Element: e.Element,
			Path:    path,
			Message: fmt.Sprintf("unhandled variant %T", v),
		}
	}
}

func (m *mapping) object(v objectVariant, path string) (*Schema, error) {
	properties, err := m.list(v.e.Content.Items(), path)
	if err != nil {
		return nil, err
	}

	s := &Schema{
		Name:        v.e.Ref(),
		Type:        v.e.Element,
		TypeDisplay: TypeDisplay(v.e.Element, properties),
		Description: v.e.Description(),
		Properties:  properties,
	}
	if len(v.e.TypeAttributes()) > 0 {
		s.Required = boolPtr(v.e.HasTypeAttribute("required"))
	}
	return s, nil
}

func (m *mapping) member(v memberVariant, path string) (*Schema, error) {
	value, err := m.node(v.value, path+".value")
	if err != nil {
		return nil, err
	}

	return &Schema{
		Name:        v.key,
		Type:        value.Type,
		TypeDisplay: TypeDisplay(value.Type, value.Properties),
		Description: v.e.Description(),
		Required:    boolPtr(v.e.HasTypeAttribute("required")),
		Example:     value.Example,
		Properties:  value.Properties,
	}, nil
}

func (m *mapping) collection(v collectionVariant, path string) (*Schema, error) {
	items := v.e.Content.Items()
	if enums := v.e.Enumerations(); v.e.Element == refract.KindEnum && len(enums) > 0 {
		items = enums
	}
	properties, err := m.list(items, path)
	if err != nil {
		return nil, err
	}

	example, ok := ownSample(v.e)
	if !ok {
		if value := v.e.Content.Element(); value != nil {
			// API Elements 1.0 enums hold the selected value as their content.
			example, ok = plainValue(value), true
		}
	}
	if !ok && len(properties) > 0 {
		example = properties[0].Example
	}

	return &Schema{
		Type:        v.e.Element,
		TypeDisplay: TypeDisplay(v.e.Element, properties),
		Example:     example,
		Properties:  properties,
	}, nil
}

func mapPrimitive(v primitiveVariant) *Schema {
	example := v.e.Content.Value()
	if example == nil {
		example, _ = ownSample(v.e)
	}
	return &Schema{
		Type:        v.e.Element,
		TypeDisplay: TypeDisplay(v.e.Element, nil),
		Example:     example,
	}
}

// list maps items as properties in order.
func (m *mapping) list(items []*refract.Element, path string) ([]*Schema, error) {
	if len(items) == 0 {
		return nil, nil
	}
	properties := make([]*Schema, 0, len(items))
	for i, item := range items {
		p, err := m.node(item, path+".properties["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, nil
}

func boolPtr(b bool) *bool {
	return &b
}
