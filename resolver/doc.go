// Package resolver substitutes named-type references in refract data
// structures with the structures they name.
//
// Data structures collected from a document fall into two groups. Those with a
// body are definitions: [NewRegistry] folds them, in order, into an immutable
// [Registry] keyed by meta.id, where a later definition replaces an earlier
// one with the same identifier. Those without a body are root inputs, bare
// references to a named type; [Resolve] dereferences each of them against the
// registry and returns one self-contained structure per input.
//
// # References
//
// An element whose kind is not a refract base kind (see [refract.IsBaseKind])
// refers to the named type of that kind. Dereferencing merges the definition
// with the referencing element: the kind comes from the definition, the
// definition's items come before the element's own, and the element's meta
// and attributes take precedence. The result records the referenced name in
// meta.ref. An element of kind "ref" inside a collection includes the named
// definition by splicing its items in place.
//
// Dereferencing is transitive. Every reference reachable from a root input is
// substituted, so the output contains no named-type references.
//
// # Errors
//
// A reference to an identifier that the registry does not hold fails with
// [schemaerrors.UnresolvedReferenceError]. A chain that reaches an identifier
// it is still resolving fails with [schemaerrors.CyclicReferenceError]. In
// both cases no partial result is returned.
package resolver
