package schemaerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates the input document could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrUnknownElement indicates an element kind the mapper cannot handle.
	ErrUnknownElement = errors.New("unknown element")

	// ErrReference indicates any named-type reference failure.
	ErrReference = errors.New("reference error")

	// ErrUnresolvedReference indicates a reference to an undefined named type.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrCyclicReference indicates a named type that references itself.
	ErrCyclicReference = errors.New("cyclic reference")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrRender indicates a template failure.
	ErrRender = errors.New("render error")

	// ErrSizeLimit indicates a mapped structure larger than the mapper allows.
	ErrSizeLimit = errors.New("size limit exceeded")
)

// ParseError represents a failure to decode a refract document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// UnknownElementError reports an element whose kind is not one of the
// variants the schema mapper dispatches on.
type UnknownElementError struct {
	// Element is the offending element kind (may be empty)
	Element string
	// Path is the location of the element in the mapped tree, e.g. "$[0].properties[2]"
	Path string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *UnknownElementError) Error() string {
	msg := "unknown element"
	if e.Element != "" {
		msg += ": " + e.Element
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as UnknownElementError has no underlying cause.
func (e *UnknownElementError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *UnknownElementError) Is(target error) bool {
	return target == ErrUnknownElement
}

// UnresolvedReferenceError reports a reference to an identifier that no
// data structure in the document defines.
type UnresolvedReferenceError struct {
	// Ref is the identifier that could not be found
	Ref string
	// Chain lists the identifiers being resolved when the failure occurred,
	// outermost first
	Chain []string
}

// Error returns a human-readable error message.
func (e *UnresolvedReferenceError) Error() string {
	msg := "unresolved reference: " + e.Ref
	if len(e.Chain) > 0 {
		msg += " (via " + strings.Join(e.Chain, " -> ") + ")"
	}
	return msg
}

// Unwrap returns nil as UnresolvedReferenceError has no underlying cause.
func (e *UnresolvedReferenceError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
// Matches ErrUnresolvedReference and ErrReference.
func (e *UnresolvedReferenceError) Is(target error) bool {
	return target == ErrUnresolvedReference || target == ErrReference
}

// CyclicReferenceError reports a reference chain that revisits an identifier
// that is still being resolved.
type CyclicReferenceError struct {
	// Ref is the identifier that closed the cycle
	Ref string
	// Chain lists the identifiers in resolution order, outermost first
	Chain []string
}

// Error returns a human-readable error message.
func (e *CyclicReferenceError) Error() string {
	msg := "cyclic reference: " + e.Ref
	if len(e.Chain) > 0 {
		msg += " (" + strings.Join(append(append([]string{}, e.Chain...), e.Ref), " -> ") + ")"
	}
	return msg
}

// Unwrap returns nil as CyclicReferenceError has no underlying cause.
func (e *CyclicReferenceError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
// Matches ErrCyclicReference and ErrReference.
func (e *CyclicReferenceError) Is(target error) bool {
	return target == ErrCyclicReference || target == ErrReference
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// RenderError represents a failure to parse or execute an output template.
type RenderError struct {
	// Template is the template name or file path
	Template string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *RenderError) Error() string {
	msg := "render error"
	if e.Template != "" {
		msg += " in " + e.Template
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *RenderError) Is(target error) bool {
	return target == ErrRender
}

// SizeLimitError reports a structure whose mapped form would exceed the node
// limit, typically because shared named types expand exponentially.
type SizeLimitError struct {
	// Limit is the maximum number of schema nodes per root input
	Limit int
	// Path is the location where the limit was reached
	Path string
}

// Error returns a human-readable error message.
func (e *SizeLimitError) Error() string {
	msg := fmt.Sprintf("size limit exceeded: more than %d schema nodes", e.Limit)
	if e.Path != "" {
		msg += " at " + e.Path
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *SizeLimitError) Is(target error) bool {
	return target == ErrSizeLimit
}
