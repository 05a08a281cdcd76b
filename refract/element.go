package refract

import (
	"bytes"
	"fmt"
	"slices"

	json "github.com/goccy/go-json"
)

// Element is a node of a refract document: a tagged value with optional
// metadata and attributes. The Element field holds the node kind, either one
// of the base kinds or the identifier of a named type.
type Element struct {
	Element    string      `json:"element"`
	Meta       *Meta       `json:"meta,omitempty"`
	Attributes *Attributes `json:"attributes,omitempty"`
	Content    Content     `json:"content"`
}

// Meta holds element metadata. Values may be plain JSON strings (refract 0.6)
// or string elements (API Elements 1.0); both decode the same way.
type Meta struct {
	ID          StringValue `json:"id,omitempty"`
	Ref         StringValue `json:"ref,omitempty"`
	Title       StringValue `json:"title,omitempty"`
	Description StringValue `json:"description,omitempty"`
	Classes     StringList  `json:"classes,omitempty"`
}

// Attributes holds element attributes relevant to schema display.
type Attributes struct {
	TypeAttributes StringList  `json:"typeAttributes,omitempty"`
	Samples        Samples     `json:"samples,omitempty"`
	Enumerations   ElementList `json:"enumerations,omitempty"`
}

// Kind returns the element kind, or "" for a nil element.
func (e *Element) Kind() string {
	if e == nil {
		return ""
	}
	return e.Element
}

// ID returns meta.id.
func (e *Element) ID() string {
	if e == nil || e.Meta == nil {
		return ""
	}
	return string(e.Meta.ID)
}

// Ref returns meta.ref, the name of the type this element was resolved from.
func (e *Element) Ref() string {
	if e == nil || e.Meta == nil {
		return ""
	}
	return string(e.Meta.Ref)
}

// Description returns meta.description.
func (e *Element) Description() string {
	if e == nil || e.Meta == nil {
		return ""
	}
	return string(e.Meta.Description)
}

// Classes returns meta.classes.
func (e *Element) Classes() []string {
	if e == nil || e.Meta == nil {
		return nil
	}
	return e.Meta.Classes
}

// HasClass reports whether meta.classes contains class.
func (e *Element) HasClass(class string) bool {
	return slices.Contains(e.Classes(), class)
}

// TypeAttributes returns attributes.typeAttributes, or nil when the element
// declares none.
func (e *Element) TypeAttributes() []string {
	if e == nil || e.Attributes == nil {
		return nil
	}
	return e.Attributes.TypeAttributes
}

// HasTypeAttribute reports whether attributes.typeAttributes contains name.
func (e *Element) HasTypeAttribute(name string) bool {
	return slices.Contains(e.TypeAttributes(), name)
}

// Samples returns attributes.samples.
func (e *Element) Samples() []*Element {
	if e == nil || e.Attributes == nil {
		return nil
	}
	return e.Attributes.Samples
}

// Enumerations returns attributes.enumerations, the options of an API
// Elements 1.0 enum.
func (e *Element) Enumerations() []*Element {
	if e == nil || e.Attributes == nil {
		return nil
	}
	return e.Attributes.Enumerations
}

// HasBody reports whether e carries a structural definition: present content
// or, for an enum, its enumerations.
func (e *Element) HasBody() bool {
	if e == nil {
		return false
	}
	return e.Content.IsPresent() || len(e.Enumerations()) > 0
}

// Clone returns a deep copy of e. Clone of nil is nil.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	out := &Element{Element: e.Element, Content: e.Content.clone()}
	if e.Meta != nil {
		m := *e.Meta
		m.Classes = slices.Clone(e.Meta.Classes)
		out.Meta = &m
	}
	if e.Attributes != nil {
		a := Attributes{TypeAttributes: slices.Clone(e.Attributes.TypeAttributes)}
		if e.Attributes.Samples != nil {
			a.Samples = Samples(cloneElements(e.Attributes.Samples))
		}
		if e.Attributes.Enumerations != nil {
			a.Enumerations = cloneElements(e.Attributes.Enumerations)
		}
		out.Attributes = &a
	}
	return out
}

func cloneElements(list []*Element) []*Element {
	out := make([]*Element, len(list))
	for i, e := range list {
		out[i] = e.Clone()
	}
	return out
}

// MarshalJSON implements json.Marshaler, omitting content when it is absent.
func (e *Element) MarshalJSON() ([]byte, error) {
	type plain struct {
		Element    string      `json:"element"`
		Meta       *Meta       `json:"meta,omitempty"`
		Attributes *Attributes `json:"attributes,omitempty"`
		Content    *Content    `json:"content,omitempty"`
	}
	p := plain{Element: e.Element, Meta: e.Meta, Attributes: e.Attributes}
	if e.Content.kind != ContentNone {
		c := e.Content
		p.Content = &c
	}
	return json.Marshal(p)
}

// StringValue is a string that decodes from either a JSON string or a
// string element such as {"element": "string", "content": "User"}.
type StringValue string

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '{' {
		var wrapped struct {
			Content any `json:"content"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return fmt.Errorf("refract: decoding string element: %w", err)
		}
		*s = StringValue(scalarText(wrapped.Content))
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("refract: decoding string value: %w", err)
	}
	*s = StringValue(scalarText(v))
	return nil
}

// StringList is a list of strings that decodes from a JSON array of strings,
// an array of string elements, or an array element wrapping either.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	var raw []json.RawMessage
	if data[0] == '{' {
		var wrapped struct {
			Content []json.RawMessage `json:"content"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return fmt.Errorf("refract: decoding array element: %w", err)
		}
		raw = wrapped.Content
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("refract: decoding string list: %w", err)
	}
	out := make(StringList, 0, len(raw))
	for _, item := range raw {
		var s StringValue
		if err := s.UnmarshalJSON(item); err != nil {
			return err
		}
		out = append(out, string(s))
	}
	*l = out
	return nil
}

// Samples is the list of example values attached to an element. Each sample
// is an element; bare JSON literals are wrapped in an element without a kind.
type Samples []*Element

// UnmarshalJSON implements json.Unmarshaler.
func (s *Samples) UnmarshalJSON(data []byte) error {
	items, err := decodeElementList(data, "samples")
	if err != nil {
		return err
	}
	*s = items
	return nil
}

// ElementList is a list of elements that decodes from a JSON array or from an
// array element wrapping one.
type ElementList []*Element

// UnmarshalJSON implements json.Unmarshaler.
func (l *ElementList) UnmarshalJSON(data []byte) error {
	items, err := decodeElementList(data, "element list")
	if err != nil {
		return err
	}
	*l = items
	return nil
}

// decodeElementList decodes a plain array or an {"element": "array"} wrapper.
// Bare JSON literals become elements without a kind.
func decodeElementList(data []byte, what string) ([]*Element, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	var raw []json.RawMessage
	if data[0] == '{' {
		var wrapped struct {
			Content []json.RawMessage `json:"content"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, fmt.Errorf("refract: decoding %s element: %w", what, err)
		}
		raw = wrapped.Content
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("refract: decoding %s: %w", what, err)
	}
	out := make([]*Element, 0, len(raw))
	for _, item := range raw {
		item = bytes.TrimSpace(item)
		if len(item) > 0 && item[0] == '{' {
			var e Element
			if err := json.Unmarshal(item, &e); err != nil {
				return nil, err
			}
			out = append(out, &e)
			continue
		}
		var v any
		if err := json.Unmarshal(item, &v); err != nil {
			return nil, fmt.Errorf("refract: decoding %s literal: %w", what, err)
		}
		out = append(out, &Element{Content: ScalarContent(v)})
	}
	return out, nil
}

func scalarText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
