package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/schemaview/generator"
)

func TestSetupGenerateFlags(t *testing.T) {
	fs, flags := SetupGenerateFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, generator.DefaultPackageName, flags.PackageName)
		assert.False(t, flags.Strict)
		assert.False(t, flags.NoWarnings)
	})

	t.Run("parse flags", func(t *testing.T) {
		require.NoError(t, fs.Parse([]string{"-p", "models", "--strict", "in.json", "out.go"}))
		assert.Equal(t, "models", flags.PackageName)
		assert.True(t, flags.Strict)
		assert.Equal(t, "out.go", fs.Arg(1))
	})
}

func TestHandleGenerate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "models", "users.go")

	require.NoError(t, HandleGenerate([]string{"--package", "models", usersFixture, out}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	src := string(data)
	assert.Contains(t, src, "package models")
	assert.Contains(t, src, "from users.json")
	assert.Contains(t, src, "type User struct")
}

func TestHandleGenerate_InvalidPackage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "types.go")
	err := HandleGenerate([]string{"--package", "not-a-package", usersFixture, out})
	require.Error(t, err)
	assert.NoFileExists(t, out)
}

func TestHandleGenerate_NoArgs(t *testing.T) {
	err := HandleGenerate([]string{})
	require.Error(t, err)
	assert.True(t, IsUsageError(err))
}

func TestHandleGenerate_Help(t *testing.T) {
	assert.NoError(t, HandleGenerate([]string{"--help"}))
}
