package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/schemaview/internal/testutil"
	"github.com/erraggy/schemaview/refract"
)

func TestPartition(t *testing.T) {
	input := testutil.Ref("User")
	user := testutil.Define("User", testutil.Object())
	email := testutil.Define("Email", testutil.String("a@b.c"))
	empty := testutil.Define("Empty", testutil.String(""))

	inputs, definitions := Partition([]*refract.Element{input, user, nil, email, empty})

	assert.Equal(t, []*refract.Element{input, empty}, inputs, "empty scalar content counts as no body")
	assert.Equal(t, []*refract.Element{user, email}, definitions)
}

func TestPartition_Enumerations(t *testing.T) {
	color := testutil.Define("Color", &refract.Element{
		Element:    refract.KindEnum,
		Attributes: &refract.Attributes{Enumerations: refract.ElementList{testutil.String("red")}},
	})
	input := testutil.Ref("Color")

	inputs, definitions := Partition([]*refract.Element{input, color})
	assert.Equal(t, []*refract.Element{input}, inputs)
	assert.Equal(t, []*refract.Element{color}, definitions)
}

func TestNewRegistry(t *testing.T) {
	t.Run("last definition wins", func(t *testing.T) {
		first := testutil.Define("User", testutil.Object(testutil.Member("a", testutil.String("x"))))
		second := testutil.Define("User", testutil.Object(testutil.Member("b", testutil.String("y"))))

		r := NewRegistry([]*refract.Element{first, second}, nil)

		got, ok := r.Get("User")
		require.True(t, ok)
		assert.Same(t, second, got)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("ids keep first declaration order", func(t *testing.T) {
		r := NewRegistry([]*refract.Element{
			testutil.Define("B", testutil.Object()),
			testutil.Define("A", testutil.Object()),
			testutil.Define("B", testutil.Array()),
		}, nil)

		assert.Equal(t, []string{"B", "A"}, r.IDs())
	})

	t.Run("definitions without id are skipped", func(t *testing.T) {
		r := NewRegistry([]*refract.Element{testutil.Object(), testutil.Define("A", testutil.Object())}, refract.NopLogger{})

		assert.Equal(t, []string{"A"}, r.IDs())
	})

	t.Run("unknown id", func(t *testing.T) {
		r := NewRegistry(nil, nil)

		_, ok := r.Get("Missing")
		assert.False(t, ok)
		assert.Equal(t, 0, r.Len())
		assert.Empty(t, r.IDs())
	})

	t.Run("nil registry", func(t *testing.T) {
		var r *Registry

		_, ok := r.Get("A")
		assert.False(t, ok)
		assert.Equal(t, 0, r.Len())
	})
}

func TestRegistry_All(t *testing.T) {
	r := NewRegistry([]*refract.Element{
		testutil.Define("A", testutil.Object()),
		testutil.Define("B", testutil.Object()),
		testutil.Define("C", testutil.Object()),
	}, nil)

	var seen []string
	for id := range r.All() {
		seen = append(seen, id)
		if id == "B" {
			break
		}
	}
	assert.Equal(t, []string{"A", "B"}, seen)
}
