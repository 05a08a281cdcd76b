package mapper

import (
	"fmt"

	"github.com/erraggy/schemaview/refract"
	"github.com/erraggy/schemaview/schemaerrors"
)

// variant is the closed set of element shapes the mapper understands. Only
// the types in this file implement it.
type variant interface {
	element() *refract.Element
}

type objectVariant struct{ e *refract.Element }

type memberVariant struct {
	e     *refract.Element
	key   string
	value *refract.Element
}

// collectionVariant covers array and enum.
type collectionVariant struct{ e *refract.Element }

// primitiveVariant covers boolean, number and string.
type primitiveVariant struct{ e *refract.Element }

func (v objectVariant) element() *refract.Element     { return v.e }
func (v memberVariant) element() *refract.Element     { return v.e }
func (v collectionVariant) element() *refract.Element { return v.e }
func (v primitiveVariant) element() *refract.Element  { return v.e }

// classify returns the variant for e, or an UnknownElementError.
func classify(e *refract.Element, path string) (variant, error) {
	if e == nil {
		return nil, &schemaerrors.UnknownElementError{Path: path, Message: "missing element"}
	}

	switch e.Element {
	case refract.KindObject:
		return objectVariant{e: e}, nil
	case refract.KindMember:
		pair := e.Content.Pair()
		if pair == nil || pair.Value == nil {
			return nil, &schemaerrors.UnknownElementError{Element: e.Element, Path: path, Message: "member has no value"}
		}
		return memberVariant{e: e, key: keyText(pair.Key), value: pair.Value}, nil
	case refract.KindArray, refract.KindEnum:
		return collectionVariant{e: e}, nil
	case refract.KindBoolean, refract.KindNumber, refract.KindString:
		return primitiveVariant{e: e}, nil
	default:
		return nil, &schemaerrors.UnknownElementError{Element: e.Element, Path: path}
	}
}

func keyText(key *refract.Element) string {
	if key == nil {
		return ""
	}
	switch v := key.Content.Value().(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
