package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToTypeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user", "User"},
		{"user_name", "UserName"},
		{"user-id", "UserID"},
		{"api key", "APIKey"},
		{"HTTPStatus", "HTTPStatus"},
		{"", "Type"},
		{"---", "Type"},
		{"type", "Type_"},
		{"dark blue", "DarkBlue"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, toTypeName(tt.input))
		})
	}
}

func TestEscapeReservedWord(t *testing.T) {
	assert.Equal(t, "range_", escapeReservedWord("range"))
	assert.Equal(t, "Map_", escapeReservedWord("Map"))
	assert.Equal(t, "User", escapeReservedWord("User"))
}

func TestCleanDescription(t *testing.T) {
	assert.Equal(t, "a b c", cleanDescription("  a\n b\t\tc  "))

	long := cleanDescription(strings.Repeat("x", 300))
	assert.Len(t, long, maxDescriptionLength)
	assert.True(t, strings.HasSuffix(long, "..."))
}

func TestUniqueNames(t *testing.T) {
	u := uniqueNames{}

	name, renamed := u.claim("Pet")
	assert.Equal(t, "Pet", name)
	assert.False(t, renamed)

	name, renamed = u.claim("Pet")
	assert.Equal(t, "Pet2", name)
	assert.True(t, renamed)

	u.claim("Pet3")
	name, _ = u.claim("Pet")
	assert.Equal(t, "Pet4", name)
}
