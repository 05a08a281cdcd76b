package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/schemaview/internal/testutil"
	"github.com/erraggy/schemaview/refract"
)

func ids(elements []*refract.Element) []string {
	out := make([]string, len(elements))
	for i, e := range elements {
		if id := e.ID(); id != "" {
			out[i] = id
		} else {
			out[i] = e.Element
		}
	}
	return out
}

func TestCollectDataStructures(t *testing.T) {
	t.Run("document order across single and sequence forms", func(t *testing.T) {
		got := CollectDataStructures(testutil.NewUsersDocument())
		assert.Equal(t, []string{"User", "User", "Address", "Email"}, ids(got))
		assert.Equal(t, refract.ContentNone, got[0].Content.Kind(), "root input has no body")
	})

	t.Run("nil root", func(t *testing.T) {
		assert.Empty(t, CollectDataStructures(nil))
	})

	t.Run("scalar root contributes nothing", func(t *testing.T) {
		assert.Empty(t, CollectDataStructures(testutil.String("x")))
	})

	t.Run("does not descend below single-element content", func(t *testing.T) {
		root := &refract.Element{
			Element: "wrapper",
			Content: refract.ElementContent(testutil.DataStructure(testutil.Ref("Hidden"))),
		}
		assert.Empty(t, CollectDataStructures(root))
	})

	t.Run("does not descend into a data structure payload", func(t *testing.T) {
		nested := testutil.DataStructures(
			testutil.Define("Outer", testutil.Object()),
		)
		root := testutil.ParseResult(testutil.DataStructures(
			testutil.Define("A", &refract.Element{Element: refract.KindObject, Content: refract.SequenceContent(nested)}),
		))
		assert.Equal(t, []string{"A"}, ids(CollectDataStructures(root)))
	})

	t.Run("empty data structure contributes nothing", func(t *testing.T) {
		root := testutil.Category(&refract.Element{Element: refract.KindDataStructure})
		assert.Empty(t, CollectDataStructures(root))
	})

	t.Run("collects beyond the default depth limit", func(t *testing.T) {
		root := testutil.DataStructure(testutil.Ref("Deep"))
		for range DefaultMaxDepth + 10 {
			root = testutil.Category(root)
		}
		got := CollectDataStructures(root)
		require.Len(t, got, 1)
		assert.Equal(t, "Deep", got[0].Element)
	})
}

func TestCollectReferences(t *testing.T) {
	root := testutil.Object(
		testutil.Include("Base"),
		testutil.Member("email", testutil.Ref("Email")),
		testutil.Member("backup", testutil.Ref("Email")),
		testutil.Member("name", testutil.String("x")),
	)

	refs, err := CollectReferences(root)
	require.NoError(t, err)

	require.Len(t, refs.All, 3)
	assert.Equal(t, []string{"Base", "Email"}, refs.Names())
	assert.True(t, refs.All[0].Include)
	assert.Equal(t, "$.content[0]", refs.All[0].JSONPath)
	assert.Equal(t, "$.content[1].content.value", refs.All[1].JSONPath)
	assert.Len(t, refs.ByName["Email"], 2)
}
