// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	json "github.com/goccy/go-json"
	"sigs.k8s.io/yaml"

	"github.com/erraggy/schemaview/refract"
)

// String creates a string element. A nil value leaves the content absent.
func String(v any) *refract.Element {
	return primitive(refract.KindString, v)
}

// Number creates a number element.
func Number(v float64) *refract.Element {
	return primitive(refract.KindNumber, v)
}

// Boolean creates a boolean element.
func Boolean(v bool) *refract.Element {
	return primitive(refract.KindBoolean, v)
}

func primitive(kind string, v any) *refract.Element {
	e := &refract.Element{Element: kind}
	if v != nil {
		e.Content = refract.ScalarContent(v)
	}
	return e
}

// Object creates an object element holding the given members.
func Object(members ...*refract.Element) *refract.Element {
	return &refract.Element{Element: refract.KindObject, Content: refract.SequenceContent(members...)}
}

// Array creates an array element holding the given items.
func Array(items ...*refract.Element) *refract.Element {
	return &refract.Element{Element: refract.KindArray, Content: refract.SequenceContent(items...)}
}

// Enum creates an enum element holding the given options.
func Enum(items ...*refract.Element) *refract.Element {
	return &refract.Element{Element: refract.KindEnum, Content: refract.SequenceContent(items...)}
}

// Member creates a member element with a string key. Type attributes such as
// "required" are attached to the member.
func Member(key string, value *refract.Element, typeAttributes ...string) *refract.Element {
	e := &refract.Element{
		Element: refract.KindMember,
		Content: refract.PairContent(String(key), value),
	}
	if len(typeAttributes) > 0 {
		e.Attributes = &refract.Attributes{TypeAttributes: typeAttributes}
	}
	return e
}

// Ref creates a bare reference to a named type.
func Ref(name string) *refract.Element {
	return &refract.Element{Element: name}
}

// Include creates a ref element that splices the members of a named type.
func Include(name string) *refract.Element {
	return &refract.Element{Element: refract.KindRef, Content: refract.ScalarContent(name)}
}

// Define sets meta.id on e and returns it.
func Define(id string, e *refract.Element) *refract.Element {
	meta(e).ID = refract.StringValue(id)
	return e
}

// Describe sets meta.description on e and returns it.
func Describe(description string, e *refract.Element) *refract.Element {
	meta(e).Description = refract.StringValue(description)
	return e
}

// Sample appends literal samples to e and returns it.
func Sample(e *refract.Element, samples ...any) *refract.Element {
	if e.Attributes == nil {
		e.Attributes = &refract.Attributes{}
	}
	for _, s := range samples {
		e.Attributes.Samples = append(e.Attributes.Samples, &refract.Element{Content: refract.ScalarContent(s)})
	}
	return e
}

func meta(e *refract.Element) *refract.Meta {
	if e.Meta == nil {
		e.Meta = &refract.Meta{}
	}
	return e.Meta
}

// DataStructure wraps a single element in a dataStructure.
func DataStructure(e *refract.Element) *refract.Element {
	return &refract.Element{Element: refract.KindDataStructure, Content: refract.ElementContent(e)}
}

// DataStructures wraps a sequence of elements in one dataStructure.
func DataStructures(items ...*refract.Element) *refract.Element {
	return &refract.Element{Element: refract.KindDataStructure, Content: refract.SequenceContent(items...)}
}

// Category creates a category element grouping the given children.
func Category(children ...*refract.Element) *refract.Element {
	return &refract.Element{Element: refract.KindCategory, Content: refract.SequenceContent(children...)}
}

// ParseResult creates a parseResult root holding the given children.
func ParseResult(children ...*refract.Element) *refract.Element {
	return &refract.Element{Element: refract.KindParseResult, Content: refract.SequenceContent(children...)}
}

// NewUsersDocument creates a document with one root input (User) and the
// definitions it needs: User references Address and Email.
func NewUsersDocument() *refract.Element {
	return ParseResult(
		Category(
			Category(DataStructure(Ref("User"))),
			DataStructures(
				Define("User", Object(
					Member("id", Sample(Number(42)), "required"),
					Member("name", String("John")),
					Member("email", Ref("Email")),
					Member("address", Ref("Address")),
				)),
				Define("Address", Object(
					Member("street", String("Main St"), "required"),
					Member("city", String("Prague")),
				)),
				Define("Email", String("john@example.com")),
			),
		),
	)
}

// NewDiamondDocument creates a document whose root input T0 has two members
// referencing T1, which has two members referencing T2, and so on down to
// T<depth>, a number. Fully expanded it holds 2^depth leaves.
func NewDiamondDocument(depth int) *refract.Element {
	defs := make([]*refract.Element, 0, depth+1)
	for i := range depth {
		next := "T" + strconv.Itoa(i+1)
		defs = append(defs, Define("T"+strconv.Itoa(i), Object(
			Member("left", Ref(next)),
			Member("right", Ref(next)),
		)))
	}
	defs = append(defs, Define("T"+strconv.Itoa(depth), Number(1)))
	return ParseResult(DataStructure(Ref("T0")), DataStructures(defs...))
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.json")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary JSON file: %v", err)
	}

	return tmpFile
}
