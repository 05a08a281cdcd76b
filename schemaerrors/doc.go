// Package schemaerrors provides structured error types for the schemaview library.
//
// Import path: github.com/erraggy/schemaview/schemaerrors
//
// Every failure of the normalization pipeline surfaces as one of these types so
// that callers can tell them apart with [errors.Is] and [errors.As]. The pipeline
// never returns a partial schema list together with an error.
//
// # Error Types
//
//   - [ParseError]: refract JSON/YAML decoding failures, drafter failures, error annotations
//   - [UnknownElementError]: an element kind the schema mapper does not recognize
//   - [UnresolvedReferenceError]: a named type that is not defined in the document
//   - [CyclicReferenceError]: a named type that (transitively) references itself
//   - [ConfigError]: invalid configuration or input options
//   - [RenderError]: template parsing or execution failures
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrUnknownElement]: Matches any [UnknownElementError]
//   - [ErrReference]: Matches [UnresolvedReferenceError] and [CyclicReferenceError]
//   - [ErrUnresolvedReference]: Matches any [UnresolvedReferenceError]
//   - [ErrCyclicReference]: Matches any [CyclicReferenceError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrRender]: Matches any [RenderError]
//
// # Usage Examples
//
//	schemas, err := pipeline.Run(ctx, root)
//	if errors.Is(err, schemaerrors.ErrCyclicReference) {
//	    // The document defines recursive named types
//	}
//
//	var refErr *schemaerrors.UnresolvedReferenceError
//	if errors.As(err, &refErr) {
//	    fmt.Printf("undefined type %s (via %v)\n", refErr.Ref, refErr.Chain)
//	}
package schemaerrors
