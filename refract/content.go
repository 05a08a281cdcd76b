package refract

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// ContentKind identifies which variant a Content holds.
type ContentKind int

const (
	// ContentNone means the element carries no content key at all.
	ContentNone ContentKind = iota
	// ContentNull is an explicit JSON null.
	ContentNull
	// ContentScalar is a string, number, or boolean literal.
	ContentScalar
	// ContentElement is a single nested element.
	ContentElement
	// ContentSequence is an ordered list of nested elements.
	ContentSequence
	// ContentPair is a member's key/value pair.
	ContentPair
)

// String returns a string representation of the content kind.
func (k ContentKind) String() string {
	switch k {
	case ContentNone:
		return "none"
	case ContentNull:
		return "null"
	case ContentScalar:
		return "scalar"
	case ContentElement:
		return "element"
	case ContentSequence:
		return "sequence"
	case ContentPair:
		return "pair"
	default:
		return fmt.Sprintf("ContentKind(%d)", int(k))
	}
}

// KeyValue is the content of a member element.
type KeyValue struct {
	Key   *Element `json:"key"`
	Value *Element `json:"value,omitempty"`
}

// Content is the payload of an element. Its shape depends on the element kind:
// primitives carry a scalar, collections a sequence, members a key/value pair,
// and dataStructure wrappers either a single element or a sequence.
//
// The zero value is ContentNone.
type Content struct {
	kind  ContentKind
	value any
	elem  *Element
	items []*Element
	pair  *KeyValue
}

// ScalarContent returns content holding a literal value.
func ScalarContent(v any) Content {
	if v == nil {
		return Content{kind: ContentNull}
	}
	return Content{kind: ContentScalar, value: v}
}

// ElementContent returns content holding a single nested element.
func ElementContent(e *Element) Content {
	return Content{kind: ContentElement, elem: e}
}

// SequenceContent returns content holding an ordered list of elements.
// A nil list still yields a (present) empty sequence.
func SequenceContent(items ...*Element) Content {
	if items == nil {
		items = []*Element{}
	}
	return Content{kind: ContentSequence, items: items}
}

// PairContent returns member content.
func PairContent(key, value *Element) Content {
	return Content{kind: ContentPair, pair: &KeyValue{Key: key, Value: value}}
}

// Kind returns the variant held by c.
func (c Content) Kind() ContentKind { return c.kind }

// IsSequence reports whether c holds a list of elements.
func (c Content) IsSequence() bool { return c.kind == ContentSequence }

// Items returns the nested elements of a sequence, or nil.
func (c Content) Items() []*Element {
	if c.kind != ContentSequence {
		return nil
	}
	return c.items
}

// Element returns the nested element, or nil.
func (c Content) Element() *Element {
	if c.kind != ContentElement {
		return nil
	}
	return c.elem
}

// Pair returns the member key/value pair, or nil.
func (c Content) Pair() *KeyValue {
	if c.kind != ContentPair {
		return nil
	}
	return c.pair
}

// Value returns the scalar literal, or nil.
func (c Content) Value() any {
	if c.kind != ContentScalar {
		return nil
	}
	return c.value
}

// String returns the scalar as a string when it is one.
func (c Content) String() (string, bool) {
	s, ok := c.Value().(string)
	return s, ok
}

// IsPresent reports whether the element has a body. Missing and null content
// are absent, and so are the empty scalars "", 0 and false.
func (c Content) IsPresent() bool {
	switch c.kind {
	case ContentNone, ContentNull:
		return false
	case ContentScalar:
		switch v := c.value.(type) {
		case string:
			return v != ""
		case float64:
			return v != 0
		case int:
			return v != 0
		case int64:
			return v != 0
		case bool:
			return v
		}
		return true
	case ContentElement:
		return c.elem != nil
	case ContentPair:
		return c.pair != nil
	default:
		return true
	}
}

// clone returns a deep copy of c.
func (c Content) clone() Content {
	out := Content{kind: c.kind, value: c.value}
	switch c.kind {
	case ContentElement:
		out.elem = c.elem.Clone()
	case ContentSequence:
		out.items = make([]*Element, len(c.items))
		for i, item := range c.items {
			out.items[i] = item.Clone()
		}
	case ContentPair:
		if c.pair != nil {
			out.pair = &KeyValue{Key: c.pair.Key.Clone(), Value: c.pair.Value.Clone()}
		}
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (c Content) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case ContentScalar:
		return json.Marshal(c.value)
	case ContentElement:
		return json.Marshal(c.elem)
	case ContentSequence:
		return json.Marshal(c.items)
	case ContentPair:
		return json.Marshal(c.pair)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler. The variant is chosen from the
// JSON shape: arrays are sequences, objects with an "element" key are nested
// elements, objects with a "key" are member pairs, anything else is a scalar.
func (c *Content) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = Content{kind: ContentNull}
		return nil
	}

	switch data[0] {
	case '[':
		var items []*Element
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("refract: decoding content sequence: %w", err)
		}
		*c = SequenceContent(items...)
		return nil
	case '{':
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(data, &probe); err != nil {
			return fmt.Errorf("refract: decoding content object: %w", err)
		}
		if _, ok := probe["element"]; ok {
			var e Element
			if err := json.Unmarshal(data, &e); err != nil {
				return err
			}
			*c = ElementContent(&e)
			return nil
		}
		if _, ok := probe["key"]; ok {
			var kv KeyValue
			if err := json.Unmarshal(data, &kv); err != nil {
				return fmt.Errorf("refract: decoding member content: %w", err)
			}
			*c = Content{kind: ContentPair, pair: &kv}
			return nil
		}
		return fmt.Errorf("refract: content object is neither an element nor a key/value pair")
	default:
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("refract: decoding scalar content: %w", err)
		}
		*c = ScalarContent(v)
		return nil
	}
}
