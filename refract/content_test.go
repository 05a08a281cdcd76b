package refract

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContent_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		kind ContentKind
	}{
		{name: "string scalar", json: `"John"`, kind: ContentScalar},
		{name: "number scalar", json: `42`, kind: ContentScalar},
		{name: "boolean scalar", json: `true`, kind: ContentScalar},
		{name: "null", json: `null`, kind: ContentNull},
		{name: "sequence", json: `[{"element": "string"}]`, kind: ContentSequence},
		{name: "empty sequence", json: `[]`, kind: ContentSequence},
		{name: "single element", json: `{"element": "object"}`, kind: ContentElement},
		{name: "member pair", json: `{"key": {"element": "string", "content": "id"}, "value": {"element": "number"}}`, kind: ContentPair},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Content
			require.NoError(t, json.Unmarshal([]byte(tt.json), &c))
			assert.Equal(t, tt.kind, c.Kind())
		})
	}
}

func TestContent_UnmarshalJSON_InvalidObject(t *testing.T) {
	var c Content
	err := json.Unmarshal([]byte(`{"foo": 1}`), &c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither an element nor a key/value pair")
}

func TestContent_Accessors(t *testing.T) {
	t.Run("sequence", func(t *testing.T) {
		a := &Element{Element: KindString}
		c := SequenceContent(a)
		assert.True(t, c.IsSequence())
		assert.Equal(t, []*Element{a}, c.Items())
		assert.Nil(t, c.Element())
		assert.Nil(t, c.Pair())
		assert.Nil(t, c.Value())
	})

	t.Run("pair", func(t *testing.T) {
		key := &Element{Element: KindString, Content: ScalarContent("id")}
		value := &Element{Element: KindNumber}
		c := PairContent(key, value)
		require.NotNil(t, c.Pair())
		assert.Same(t, key, c.Pair().Key)
		assert.Same(t, value, c.Pair().Value)
		assert.Nil(t, c.Items())
	})

	t.Run("scalar string", func(t *testing.T) {
		s, ok := ScalarContent("x").String()
		assert.True(t, ok)
		assert.Equal(t, "x", s)

		_, ok = ScalarContent(1.5).String()
		assert.False(t, ok)
	})

	t.Run("nil scalar is null", func(t *testing.T) {
		assert.Equal(t, ContentNull, ScalarContent(nil).Kind())
	})

	t.Run("nil sequence is present and empty", func(t *testing.T) {
		c := SequenceContent()
		assert.True(t, c.IsPresent())
		assert.NotNil(t, c.Items())
		assert.Empty(t, c.Items())
	})
}

func TestContent_IsPresent(t *testing.T) {
	tests := []struct {
		name    string
		content Content
		want    bool
	}{
		{name: "none", content: Content{}, want: false},
		{name: "null", content: ScalarContent(nil), want: false},
		{name: "empty string", content: ScalarContent(""), want: false},
		{name: "zero", content: ScalarContent(float64(0)), want: false},
		{name: "false", content: ScalarContent(false), want: false},
		{name: "text", content: ScalarContent("a"), want: true},
		{name: "number", content: ScalarContent(float64(3)), want: true},
		{name: "true", content: ScalarContent(true), want: true},
		{name: "empty sequence", content: SequenceContent(), want: true},
		{name: "element", content: ElementContent(&Element{Element: KindString}), want: true},
		{name: "nil element", content: ElementContent(nil), want: false},
		{name: "pair", content: PairContent(nil, nil), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.content.IsPresent())
		})
	}
}

func TestContent_MarshalJSON(t *testing.T) {
	e := &Element{
		Element: KindMember,
		Content: PairContent(
			&Element{Element: KindString, Content: ScalarContent("id")},
			&Element{Element: KindNumber, Content: ScalarContent(float64(1))},
		),
	}
	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"element":"member","content":{"key":{"element":"string","content":"id"},"value":{"element":"number","content":1}}}`,
		string(data))

	data, err = json.Marshal(&Element{Element: "User"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"element":"User"}`, string(data))
}

func TestContentKind_String(t *testing.T) {
	assert.Equal(t, "sequence", ContentSequence.String())
	assert.Equal(t, "pair", ContentPair.String())
	assert.Equal(t, "ContentKind(99)", ContentKind(99).String())
}
