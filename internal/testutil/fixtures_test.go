package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/schemaview/refract"
)

func TestMember(t *testing.T) {
	m := Member("id", Number(1), "required")

	assert.Equal(t, refract.KindMember, m.Element)
	pair := m.Content.Pair()
	require.NotNil(t, pair)
	key, ok := pair.Key.Content.String()
	assert.True(t, ok)
	assert.Equal(t, "id", key)
	assert.Equal(t, refract.KindNumber, pair.Value.Element)
	assert.True(t, m.HasTypeAttribute("required"))
}

func TestString(t *testing.T) {
	t.Run("with value", func(t *testing.T) {
		s := String("x")
		assert.True(t, s.Content.IsPresent())
	})
	t.Run("nil leaves content absent", func(t *testing.T) {
		s := String(nil)
		assert.Equal(t, refract.ContentNone, s.Content.Kind())
	})
}

func TestDefineAndDescribe(t *testing.T) {
	e := Describe("a user", Define("User", Object()))

	assert.Equal(t, "User", e.ID())
	assert.Equal(t, "a user", e.Description())
}

func TestSample(t *testing.T) {
	e := Sample(String(nil), "a", "b")

	require.Len(t, e.Samples(), 2)
	v, ok := e.Samples()[0].Content.String()
	assert.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestNewUsersDocument(t *testing.T) {
	doc := NewUsersDocument()

	assert.Equal(t, refract.KindParseResult, doc.Element)
	require.Len(t, doc.Content.Items(), 1)
	category := doc.Content.Items()[0]
	require.Len(t, category.Content.Items(), 2)
	assert.Len(t, category.Content.Items()[1].Content.Items(), 3)
}

// TestWriteTempJSON verifies that documents can be written to temporary JSON files
// and read back through the refract decoder.
func TestWriteTempJSON(t *testing.T) {
	path := WriteTempJSON(t, NewUsersDocument())

	assert.FileExists(t, path)
	assert.Equal(t, ".json", filepath.Ext(path))

	result, err := refract.ParseWithOptions(refract.WithFilePath(path))
	require.NoError(t, err)
	assert.Equal(t, refract.KindParseResult, result.Root.Element)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n", "JSON should be indented with newlines")
}

// TestWriteTempYAML verifies that documents can be written to temporary YAML files.
func TestWriteTempYAML(t *testing.T) {
	path := WriteTempYAML(t, NewUsersDocument())

	assert.FileExists(t, path)
	assert.Equal(t, ".yaml", filepath.Ext(path))

	result, err := refract.ParseWithOptions(refract.WithFilePath(path))
	require.NoError(t, err)
	assert.Equal(t, refract.KindParseResult, result.Root.Element)
}
