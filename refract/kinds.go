package refract

// Element kinds defined by the refract base vocabulary and API Elements.
const (
	KindNull          = "null"
	KindBoolean       = "boolean"
	KindNumber        = "number"
	KindString        = "string"
	KindArray         = "array"
	KindObject        = "object"
	KindMember        = "member"
	KindEnum          = "enum"
	KindRef           = "ref"
	KindSelect        = "select"
	KindOption        = "option"
	KindExtend        = "extend"
	KindDataStructure = "dataStructure"

	KindParseResult = "parseResult"
	KindAnnotation  = "annotation"
	KindCategory    = "category"
)

// Annotation classes reported by drafter in a parseResult.
const (
	ClassError   = "error"
	ClassWarning = "warning"
)

var baseKinds = map[string]bool{
	KindNull:          true,
	KindBoolean:       true,
	KindNumber:        true,
	KindString:        true,
	KindArray:         true,
	KindObject:        true,
	KindMember:        true,
	KindEnum:          true,
	KindRef:           true,
	KindSelect:        true,
	KindOption:        true,
	KindExtend:        true,
	KindDataStructure: true,
}

// IsBaseKind reports whether kind is part of the refract base vocabulary.
// Any other kind names a user-defined type and is a reference to it.
func IsBaseKind(kind string) bool {
	return baseKinds[kind]
}
