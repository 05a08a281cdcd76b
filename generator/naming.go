package generator

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxDescriptionLength is the maximum length for descriptions in Go comments
// before truncation.
const maxDescriptionLength = 200

// goReservedWords contains Go keywords that cannot be used as identifiers.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// initialisms are words written in all caps in Go identifiers.
var initialisms = map[string]string{
	"api": "API", "id": "ID", "uuid": "UUID", "url": "URL", "uri": "URI",
	"http": "HTTP", "json": "JSON", "xml": "XML", "ip": "IP", "sku": "SKU",
}

var titleCaser = cases.Title(language.Und, cases.NoLower)

// escapeReservedWord appends an underscore to names that collide with a Go
// keyword. The check is case-insensitive so "Type" and "Range" are escaped too.
func escapeReservedWord(name string) string {
	if goReservedWords[strings.ToLower(name)] {
		return name + "_"
	}
	return name
}

// toTypeName converts a schema name to an exported Go identifier. Runs of
// letters and digits become title-cased words; everything else separates
// words.
func toTypeName(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return "Type"
	}

	var b strings.Builder
	for _, w := range words {
		if upper, ok := initialisms[strings.ToLower(w)]; ok {
			b.WriteString(upper)
			continue
		}
		b.WriteString(titleCaser.String(w))
	}

	name := b.String()
	if first := []rune(name)[0]; !unicode.IsLetter(first) {
		name = "T" + name
	}
	return escapeReservedWord(name)
}

// toFieldName converts a member key to a Go field name.
func toFieldName(s string) string {
	return toTypeName(s)
}

// cleanDescription prepares a description for a single-line Go comment.
// It removes newlines, trims whitespace, and truncates long descriptions.
func cleanDescription(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if runes := []rune(s); len(runes) > maxDescriptionLength {
		s = string(runes[:maxDescriptionLength-3]) + "..."
	}
	return s
}

// uniqueNames hands out identifiers, suffixing repeats with 2, 3, ...
type uniqueNames map[string]int

func (u uniqueNames) claim(name string) (string, bool) {
	n := u[name]
	u[name] = n + 1
	if n == 0 {
		return name, false
	}
	for {
		n++
		candidate := name + itoa(n)
		if u[candidate] == 0 {
			u[candidate] = 1
			return candidate, true
		}
	}
}
