package generator

import (
	"fmt"
	"strconv"

	"github.com/erraggy/schemaview/internal/issues"
	"github.com/erraggy/schemaview/mapper"
	"github.com/erraggy/schemaview/refract"
)

// typeKind selects how a declaration is rendered.
type typeKind string

const (
	kindStruct typeKind = "struct"
	kindNamed  typeKind = "named"
	kindEnum   typeKind = "enum"
)

type typeDecl struct {
	Name       string
	Comment    string
	Kind       typeKind
	Underlying string
	Fields     []fieldDecl
	Consts     []constDecl
}

type fieldDecl struct {
	Name    string
	Type    string
	Tag     string
	Comment string
}

type constDecl struct {
	Name  string
	Value string
}

// builder accumulates declarations for one generated file. structs maps
// the names of referenced data structures to their declared struct types.
type builder struct {
	types   []*typeDecl
	names   uniqueNames
	structs map[string]string
	issues  []issues.Issue
}

func newBuilder() *builder {
	return &builder{
		names:   uniqueNames{},
		structs: make(map[string]string),
	}
}

func (b *builder) report(sev issues.Severity, path, field, format string, args ...any) {
	b.issues = append(b.issues, issues.Issue{
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
		Severity: sev,
		Field:    field,
	})
}

// declareName reserves a type name, reporting any rename.
func (b *builder) declareName(name, path string) string {
	got, renamed := b.names.claim(name)
	if renamed {
		b.report(issues.SeverityInfo, path, got, "type name %s already used, renamed", name)
	}
	return got
}

// root declares the type for a root schema.
func (b *builder) root(index int, s *mapper.Schema) {
	path := "$[" + strconv.Itoa(index) + "]"
	name := s.Name
	if name == "" {
		name = "Schema" + strconv.Itoa(index+1)
		b.report(issues.SeverityInfo, path, toTypeName(name), "anonymous %s named %s", s.Type, toTypeName(name))
	}
	typeName := toTypeName(name)

	switch s.Type {
	case refract.KindObject:
		if existing, ok := b.structs[typeName]; ok {
			b.report(issues.SeverityInfo, path, existing, "type %s already generated", existing)
			return
		}
		if len(s.Properties) == 0 {
			b.types = append(b.types, &typeDecl{
				Name:       b.declareName(typeName, path),
				Comment:    cleanDescription(s.Description),
				Kind:       kindNamed,
				Underlying: "map[string]any",
			})
			return
		}
		b.structs[typeName] = b.structType(b.declareName(typeName, path), s, path)
	case refract.KindArray:
		decl := &typeDecl{Name: b.declareName(typeName, path), Comment: cleanDescription(s.Description), Kind: kindNamed}
		b.types = append(b.types, decl)
		decl.Underlying = "[]" + b.itemType(decl.Name+"Item", s, path)
	case refract.KindEnum:
		b.enumType(b.declareName(typeName, path), s, path)
	case refract.KindString, refract.KindNumber, refract.KindBoolean:
		b.types = append(b.types, &typeDecl{
			Name:       b.declareName(typeName, path),
			Comment:    cleanDescription(s.Description),
			Kind:       kindNamed,
			Underlying: primitiveType(s.Type),
		})
	default:
		b.report(issues.SeverityCritical, path, typeName, "unsupported schema type %q, skipped", s.Type)
	}
}

// structType declares a struct for an object schema and returns its name.
func (b *builder) structType(name string, s *mapper.Schema, path string) string {
	decl := &typeDecl{Name: name, Comment: cleanDescription(s.Description), Kind: kindStruct}
	b.types = append(b.types, decl)

	fields := uniqueNames{}
	for j, p := range s.Properties {
		propPath := path + ".properties[" + strconv.Itoa(j) + "]"
		if p.Name == "" {
			b.report(issues.SeverityWarning, propPath, name, "unnamed %s property skipped", p.Type)
			continue
		}
		fieldName, renamed := fields.claim(toFieldName(p.Name))
		if renamed {
			b.report(issues.SeverityWarning, propPath, fieldName, "duplicate member %q renamed", p.Name)
		}

		typ, isStruct := b.goType(name+fieldName, p, propPath)
		if isStruct && !p.IsRequired() {
			typ = "*" + typ
		}

		tag := p.Name
		if !p.IsRequired() {
			tag += ",omitempty"
		}
		decl.Fields = append(decl.Fields, fieldDecl{
			Name:    fieldName,
			Type:    typ,
			Tag:     `json:"` + tag + `"`,
			Comment: cleanDescription(p.Description),
		})
	}
	return name
}

// goType returns the Go type for a nested schema. hint names any type that
// has to be declared for it. The boolean reports a struct type.
func (b *builder) goType(hint string, s *mapper.Schema, path string) (string, bool) {
	switch s.Type {
	case refract.KindString, refract.KindNumber, refract.KindBoolean:
		return primitiveType(s.Type), false
	case refract.KindObject:
		if len(s.Properties) == 0 {
			return "map[string]any", false
		}
		return b.structType(b.declareName(hint, path), s, path), true
	case refract.KindArray:
		return "[]" + b.itemType(hint+"Item", s, path), false
	case refract.KindEnum:
		return b.enumType(b.declareName(hint, path), s, path), false
	default:
		b.report(issues.SeverityWarning, path, hint, "unsupported schema type %q mapped to any", s.Type)
		return "any", false
	}
}

// itemType returns the element type of an array schema.
func (b *builder) itemType(hint string, s *mapper.Schema, path string) string {
	if len(s.Properties) == 0 {
		return "any"
	}
	if types := mapper.UniqueTypes(s.Properties); len(types) != 1 {
		b.report(issues.SeverityWarning, path, hint, "array items of mixed types %v mapped to any", types)
		return "any"
	}

	item := s.Properties[0]
	itemPath := path + ".properties[0]"
	if item.Type == refract.KindObject && item.Name != "" {
		name := toTypeName(item.Name)
		if existing, ok := b.structs[name]; ok {
			return existing
		}
		if len(item.Properties) > 0 {
			b.structs[name] = b.structType(b.declareName(name, itemPath), item, itemPath)
			return b.structs[name]
		}
	}
	typ, _ := b.goType(hint, item, itemPath)
	return typ
}

// enumType declares a named type for an enum schema with one constant per
// option that carries a literal value.
func (b *builder) enumType(name string, s *mapper.Schema, path string) string {
	decl := &typeDecl{Name: name, Comment: cleanDescription(s.Description), Kind: kindEnum, Underlying: "string"}
	b.types = append(b.types, decl)

	types := mapper.UniqueTypes(s.Properties)
	switch {
	case len(types) == 1 && isPrimitive(types[0]):
		decl.Underlying = primitiveType(types[0])
	case len(types) > 1:
		b.report(issues.SeverityWarning, path, name, "enum options of mixed types %v, constants omitted", types)
		decl.Underlying = "any"
		return name
	}

	consts := uniqueNames{}
	for _, p := range s.Properties {
		literal, suffix, ok := goLiteral(p.Example)
		if !ok {
			continue
		}
		constName, _ := consts.claim(name + toTypeName(suffix))
		decl.Consts = append(decl.Consts, constDecl{Name: constName, Value: literal})
	}
	return name
}

func isPrimitive(kind string) bool {
	switch kind {
	case refract.KindString, refract.KindNumber, refract.KindBoolean:
		return true
	}
	return false
}

func primitiveType(kind string) string {
	switch kind {
	case refract.KindNumber:
		return "float64"
	case refract.KindBoolean:
		return "bool"
	default:
		return "string"
	}
}

// goLiteral renders an example value as a Go constant literal, along with the
// text used to name the constant.
func goLiteral(v any) (literal, suffix string, ok bool) {
	switch v := v.(type) {
	case string:
		return strconv.Quote(v), v, true
	case float64:
		s := strconv.FormatFloat(v, 'g', -1, 64)
		return s, s, true
	case bool:
		s := strconv.FormatBool(v)
		return s, s, true
	default:
		return "", "", false
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
