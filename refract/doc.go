// Package refract models the refract element tree produced by API Blueprint
// parsers (drafter) and decodes it from JSON or YAML.
//
// An [Element] is a tagged node: its Element field names the kind ("object",
// "member", "string", ...) or, for type references, the identifier of a named
// data structure. Its [Content] holds one of several shapes depending on the
// kind: a scalar literal, a nested element, a sequence of elements, or a
// member's key/value pair.
//
// Both refract dialects seen in practice are accepted. Refract 0.6 uses plain
// values in meta and attributes:
//
//	{"element": "object", "meta": {"id": "User"}, "content": [...]}
//
// API Elements 1.0 wraps them in elements:
//
//	{"element": "object", "meta": {"id": {"element": "string", "content": "User"}}, "content": [...]}
//
// # Parsing
//
//	result, err := refract.ParseWithOptions(refract.WithFilePath("api.json"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Root.Element) // "parseResult"
//
// YAML input is converted to JSON before decoding so that both formats share
// a single decoder. API Blueprint input (.apib, .md) is handed to the drafter
// executable; see [ParseBlueprint]. Error annotations in a parseResult fail the
// parse with a [schemaerrors.ParseError]; warning annotations are returned in
// [Result.Warnings].
package refract
