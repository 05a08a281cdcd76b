// Package generator creates Go type definitions from mapped schemas.
//
// Every root schema becomes one named Go type. Objects become structs whose
// fields follow the member order of the source document; nested objects
// become their own struct types named after the enclosing type and field.
//
// # Quick Start
//
//	res, err := pipeline.Process(ctx, refract.WithFilePath("api.json"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := generator.Generate(res.Schemas, generator.WithPackageName("models"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := result.WriteFiles("./models"); err != nil {
//		log.Fatal(err)
//	}
//
// # Type Mapping
//
// Schema types are mapped to Go types as follows:
//   - string → string
//   - number → float64
//   - boolean → bool
//   - array → []T, where T is the common item type, or []any for mixed items
//   - enum → a named type over the common option type, with one constant per option
//   - object → struct, or map[string]any when it has no members
//
// Members without the required flag get the omitempty JSON option, and
// optional nested structs are pointers. Choices that lose type information
// are reported as issues on the result rather than failing the run.
package generator
