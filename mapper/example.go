package mapper

import (
	"github.com/erraggy/schemaview/refract"
)

// ownSample returns the first declared sample of e as a plain value. The
// boolean is false when e declares no sample with content; a sample that is
// present is used even when it is a zero value.
func ownSample(e *refract.Element) (any, bool) {
	samples := e.Samples()
	if len(samples) == 0 || samples[0] == nil {
		return nil, false
	}
	switch samples[0].Content.Kind() {
	case refract.ContentNone, refract.ContentNull:
		return nil, false
	}
	return plainValue(samples[0]), true
}

// plainValue converts element content into plain Go values: scalars as is,
// sequences as []any, and objects of members as ExampleObject.
func plainValue(e *refract.Element) any {
	if e == nil {
		return nil
	}
	switch e.Content.Kind() {
	case refract.ContentScalar:
		return e.Content.Value()
	case refract.ContentElement:
		return plainValue(e.Content.Element())
	case refract.ContentPair:
		pair := e.Content.Pair()
		return ExampleObject{{Key: keyText(pair.Key), Value: plainValue(pair.Value)}}
	case refract.ContentSequence:
		items := e.Content.Items()
		if e.Element == refract.KindObject {
			obj := make(ExampleObject, 0, len(items))
			for _, item := range items {
				if pair := item.Content.Pair(); pair != nil {
					obj = append(obj, ExampleField{Key: keyText(pair.Key), Value: plainValue(pair.Value)})
				}
			}
			return obj
		}
		out := make([]any, 0, len(items))
		for _, item := range items {
			out = append(out, plainValue(item))
		}
		return out
	}
	return nil
}
