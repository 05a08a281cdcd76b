package walker

import (
	"context"

	"github.com/erraggy/schemaview/refract"
)

// WalkContext provides contextual information about the element being visited.
// It follows the http.Request pattern for context access.
type WalkContext struct {
	// JSONPath is the full JSON path to the current element.
	// Example: "$.content[0].content[2].content.value"
	JSONPath string

	// Depth is the nesting depth of the current element; the root is 0.
	Depth int

	// Parent is the element whose content holds the current element.
	// Nil for the root.
	Parent *refract.Element

	ctx context.Context
}

// Context returns the context.Context for cancellation and deadline propagation.
// Returns context.Background() if no context was set.
func (wc *WalkContext) Context() context.Context {
	if wc.ctx == nil {
		return context.Background()
	}
	return wc.ctx
}

// WithContext returns a shallow copy of WalkContext with the new context.
func (wc *WalkContext) WithContext(ctx context.Context) *WalkContext {
	wc2 := *wc
	wc2.ctx = ctx
	return &wc2
}

// IsRoot reports whether the current element is the walk root.
func (wc *WalkContext) IsRoot() bool {
	return wc.Parent == nil
}

// InMember reports whether the current element is a member's key or value.
func (wc *WalkContext) InMember() bool {
	return wc.Parent != nil && wc.Parent.Element == refract.KindMember
}

// child builds the context for an element nested in parent.
func (wc *WalkContext) child(parent *refract.Element, jsonPath string) *WalkContext {
	return &WalkContext{
		JSONPath: jsonPath,
		Depth:    wc.Depth + 1,
		Parent:   parent,
		ctx:      wc.ctx,
	}
}
