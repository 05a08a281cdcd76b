// Package pipeline runs the full normalization of a refract document:
// collecting data structures, resolving named-type references, and mapping
// each root input to a [mapper.Schema].
//
// The core is a pure batch transform over an in-memory tree. [Process] adds
// the input phase in front of it: the document is read and decoded
// completely before any resolution starts, and the caller writes the result
// afterwards. Nothing in the core holds a file or process handle.
//
// Root inputs are independent once the registry is built, so [WithConcurrency]
// may map them in parallel. The output order always equals the root-input
// order, and the first failure aborts the run without a partial result.
package pipeline
