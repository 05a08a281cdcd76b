package commands

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupSchemasFlags(t *testing.T) {
	fs, flags := SetupSchemasFlags()
	assert.Equal(t, FormatJSON, flags.Format)

	require.NoError(t, fs.Parse([]string{"--format", "yaml", "--input-format", "json", "-"}))
	assert.Equal(t, FormatYAML, flags.Format)
	assert.Equal(t, "json", flags.InputFormat)
	assert.Equal(t, StdinFilePath, fs.Arg(0))
}

func TestHandleSchemas_JSON(t *testing.T) {
	var err error
	out := captureStdout(t, func() {
		err = HandleSchemas([]string{usersFixture})
	})
	require.NoError(t, err)

	var schemas []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schemas))
	require.Len(t, schemas, 1)
	assert.Equal(t, "User", schemas[0]["name"])
	assert.Equal(t, "{id, name, email, tags, address}", schemas[0]["typeDisplay"])
}

func TestHandleSchemas_YAML(t *testing.T) {
	var err error
	out := captureStdout(t, func() {
		err = HandleSchemas([]string{"--format", "yaml", usersFixture})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "name: User")
	assert.Contains(t, out, "typeDisplay:")
	assert.Contains(t, out, "{id, name, email, tags, address}")
}

func TestHandleSchemas_InvalidFormat(t *testing.T) {
	err := HandleSchemas([]string{"--format", "xml", usersFixture})
	require.Error(t, err)
	assert.False(t, IsUsageError(err))
}

func TestHandleSchemas_InvalidInputFormat(t *testing.T) {
	err := HandleSchemas([]string{"--input-format", "docx", usersFixture})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown input format")
}

func TestHandleSchemas_TooManyArgs(t *testing.T) {
	err := HandleSchemas([]string{"a.json", "b.json"})
	require.Error(t, err)
	assert.True(t, IsUsageError(err))
}
