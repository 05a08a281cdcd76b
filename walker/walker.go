package walker

import (
	"context"
	"fmt"
	"strconv"

	"github.com/erraggy/schemaview/refract"
)

// DefaultMaxDepth is the nesting depth beyond which elements are skipped.
const DefaultMaxDepth = 1000

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// ElementHandler is called for every element in pre-order.
type ElementHandler func(wc *WalkContext, e *refract.Element) Action

// ElementPostHandler is called after an element's children have been walked.
// It is not called when the pre-visit handler returned SkipChildren or Stop.
type ElementPostHandler func(wc *WalkContext, e *refract.Element)

// SkippedHandler is called when an element is skipped because it lies deeper
// than the configured maximum depth.
type SkippedHandler func(wc *WalkContext, e *refract.Element)

// Walker traverses refract element trees and calls handlers for each node.
type Walker struct {
	onElement     ElementHandler
	onElementPost ElementPostHandler
	onSkipped     SkippedHandler

	maxDepth int
	userCtx  context.Context

	stopped bool
}

// New creates a new Walker with default settings.
func New() *Walker {
	return &Walker{
		maxDepth: DefaultMaxDepth,
	}
}

// Option configures the Walker.
type Option func(*Walker)

// WithElementHandler sets the pre-order handler.
func WithElementHandler(fn ElementHandler) Option {
	return func(w *Walker) { w.onElement = fn }
}

// WithElementPostHandler sets the post-order handler.
func WithElementPostHandler(fn ElementPostHandler) Option {
	return func(w *Walker) { w.onElementPost = fn }
}

// WithSkippedHandler sets the handler called for elements beyond the depth limit.
func WithSkippedHandler(fn SkippedHandler) Option {
	return func(w *Walker) { w.onSkipped = fn }
}

// WithMaxDepth sets the maximum nesting depth. The root is at depth 0.
// If depth is <= 0, the default is kept.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}

// WithContext sets the context for cancellation. The walk stops with the
// context's error once it is done, and handlers can read it via wc.Context().
func WithContext(ctx context.Context) Option {
	return func(w *Walker) { w.userCtx = ctx }
}

// Walk traverses the tree rooted at root, visiting elements in document order
// (pre-order, left to right). Member keys are visited before their values.
func Walk(root *refract.Element, opts ...Option) error {
	if root == nil {
		return fmt.Errorf("walker: nil root element")
	}

	w := New()
	for _, opt := range opts {
		opt(w)
	}
	w.stopped = false

	return w.walkElement(root, &WalkContext{JSONPath: "$", ctx: w.userCtx})
}

func (w *Walker) walkElement(e *refract.Element, wc *WalkContext) error {
	if e == nil || w.stopped {
		return nil
	}
	if err := wc.Context().Err(); err != nil {
		return fmt.Errorf("walker: %w", err)
	}
	if wc.Depth > w.maxDepth {
		if w.onSkipped != nil {
			w.onSkipped(wc, e)
		}
		return nil
	}

	if w.onElement != nil {
		if !w.handleAction(w.onElement(wc, e)) {
			return nil
		}
	}

	if err := w.walkChildren(e, wc); err != nil {
		return err
	}

	if w.onElementPost != nil && !w.stopped {
		w.onElementPost(wc, e)
	}
	return nil
}

func (w *Walker) walkChildren(e *refract.Element, wc *WalkContext) error {
	switch e.Content.Kind() {
	case refract.ContentElement:
		return w.walkElement(e.Content.Element(), wc.child(e, wc.JSONPath+".content"))
	case refract.ContentSequence:
		for i, item := range e.Content.Items() {
			if err := w.walkElement(item, wc.child(e, wc.JSONPath+".content["+strconv.Itoa(i)+"]")); err != nil {
				return err
			}
			if w.stopped {
				return nil
			}
		}
	case refract.ContentPair:
		pair := e.Content.Pair()
		if err := w.walkElement(pair.Key, wc.child(e, wc.JSONPath+".content.key")); err != nil {
			return err
		}
		return w.walkElement(pair.Value, wc.child(e, wc.JSONPath+".content.value"))
	}
	return nil
}

// handleAction processes the action returned by a handler.
// Returns true if walking should continue to children.
func (w *Walker) handleAction(action Action) bool {
	switch action {
	case Stop:
		w.stopped = true
		return false
	case SkipChildren:
		return false
	default:
		return true
	}
}
