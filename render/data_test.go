package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/schemaview/mapper"
)

func TestJSON(t *testing.T) {
	data, err := JSON(sampleSchemas())
	require.NoError(t, err)

	assert.Contains(t, string(data), "\n  {\n    \"name\": \"User\"")
	assert.Contains(t, string(data), `"required": true`)
	assert.NotContains(t, string(data), `"example": null`)
}

func TestJSON_Nil(t *testing.T) {
	data, err := JSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestYAML(t *testing.T) {
	data, err := YAML(sampleSchemas())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "User", decoded[0]["name"])
	assert.Equal(t, "{id, tags}", decoded[0]["typeDisplay"])
	assert.Contains(t, string(data), "- name: id")
}

func TestStructured(t *testing.T) {
	schemas := []*mapper.Schema{{Type: "string", TypeDisplay: "string"}}

	j, err := Structured(schemas, "json")
	require.NoError(t, err)
	assert.Contains(t, string(j), `"typeDisplay": "string"`)

	y, err := Structured(schemas, "yaml")
	require.NoError(t, err)
	assert.Contains(t, string(y), "typeDisplay: string")

	_, err = Structured(schemas, "xml")
	assert.Error(t, err)
}

func TestTemplateFuncs(t *testing.T) {
	funcs := templateFuncs()

	title := funcs["title"].(func(string) string)
	assert.Equal(t, "Object", title("object"))
	assert.Equal(t, "TypeDisplay", title("typeDisplay"), "NoLower keeps inner capitals")

	join := funcs["join"].(func([]string, string) string)
	assert.Equal(t, "a, b", join([]string{"a", "b"}, ", "))

	assert.Equal(t, "", requiredLabel(&mapper.Schema{}))
	assert.Equal(t, "required", requiredLabel(&mapper.Schema{Required: boolPtr(true)}))
	assert.Equal(t, "optional", requiredLabel(&mapper.Schema{Required: boolPtr(false)}))

	assert.Equal(t, "", exampleText(nil))
	assert.Equal(t, "x", exampleText("x"))
	assert.Equal(t, "42", exampleText(float64(42)))
	assert.Equal(t, `["a","b"]`, exampleText([]any{"a", "b"}))
	assert.Equal(t, `{"k":1}`, exampleText(mapper.ExampleObject{{Key: "k", Value: 1}}))
}
