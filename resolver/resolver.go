package resolver

import (
	"slices"

	"github.com/erraggy/schemaview/refract"
	"github.com/erraggy/schemaview/schemaerrors"
)

// Option configures Resolve.
type Option func(*config)

type config struct {
	logger refract.Logger
}

// WithLogger sets the logger used while building the registry.
func WithLogger(l refract.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Prepare partitions dataStructures into root inputs and definitions and folds
// the definitions into a Registry. Callers dereference each input against the
// registry, possibly in parallel.
func Prepare(dataStructures []*refract.Element, opts ...Option) (*Registry, []*refract.Element) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	inputs, definitions := Partition(dataStructures)
	return NewRegistry(definitions, cfg.logger), inputs
}

// Resolve is the sequential form of Prepare followed by Dereference: it
// returns one resolved structure per root input, in input order.
func Resolve(dataStructures []*refract.Element, opts ...Option) ([]*refract.Element, error) {
	registry, inputs := Prepare(dataStructures, opts...)

	resolved := make([]*refract.Element, 0, len(inputs))
	for _, input := range inputs {
		e, err := registry.Dereference(input)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, e)
	}
	return resolved, nil
}

// Dereference returns a copy of e in which every named-type reference has
// been replaced by its definition. Neither e nor the registry is modified.
//
// Each definition is expanded once per call. Substitutions of the same
// definition are distinct elements but share their nested elements, so the
// result must be treated as read-only.
//
// An element of a base kind without content passes through unchanged.
func (r *Registry) Dereference(e *refract.Element) (*refract.Element, error) {
	return r.deref(e, nil, expansions{})
}

// expansions holds the fully dereferenced definitions of one Dereference
// call, keyed by identifier. Entries are never modified once stored.
type expansions map[string]*refract.Element

// deref resolves e. chain holds the identifiers currently being expanded,
// outermost first.
func (r *Registry) deref(e *refract.Element, chain []string, memo expansions) (*refract.Element, error) {
	if e == nil {
		return nil, nil
	}

	if name := e.Element; name != "" && !refract.IsBaseKind(name) {
		base, err := r.expand(name, chain, memo)
		if err != nil {
			return nil, err
		}
		derived, err := r.derefChildren(e, chain, memo)
		if err != nil {
			return nil, err
		}
		return inherit(base, derived, name), nil
	}

	return r.derefChildren(e, chain, memo)
}

// expand looks up name and returns its fully dereferenced definition as a
// fresh top-level element the caller may modify.
func (r *Registry) expand(name string, chain []string, memo expansions) (*refract.Element, error) {
	if slices.Contains(chain, name) {
		return nil, &schemaerrors.CyclicReferenceError{Ref: name, Chain: slices.Clone(chain)}
	}
	if done, ok := memo[name]; ok {
		return shallowCopy(done), nil
	}
	def, ok := r.Get(name)
	if !ok {
		return nil, &schemaerrors.UnresolvedReferenceError{Ref: name, Chain: slices.Clone(chain)}
	}
	out, err := r.deref(def, append(slices.Clone(chain), name), memo)
	if err != nil {
		return nil, err
	}
	memo[name] = out
	return shallowCopy(out), nil
}

// shallowCopy copies e together with its meta and attributes. Nested
// elements are shared.
func shallowCopy(e *refract.Element) *refract.Element {
	out := *e
	if e.Meta != nil {
		m := *e.Meta
		out.Meta = &m
	}
	if e.Attributes != nil {
		a := *e.Attributes
		out.Attributes = &a
	}
	return &out
}

// derefChildren copies e with its nested elements dereferenced. Its own kind
// is left as is.
func (r *Registry) derefChildren(e *refract.Element, chain []string, memo expansions) (*refract.Element, error) {
	out := e.Clone()

	switch e.Content.Kind() {
	case refract.ContentElement:
		child, err := r.deref(e.Content.Element(), chain, memo)
		if err != nil {
			return nil, err
		}
		out.Content = refract.ElementContent(child)

	case refract.ContentSequence:
		items := make([]*refract.Element, 0, len(e.Content.Items()))
		for _, item := range e.Content.Items() {
			if item.Kind() == refract.KindRef {
				included, err := r.include(item, chain, memo)
				if err != nil {
					return nil, err
				}
				items = append(items, included...)
				continue
			}
			resolved, err := r.deref(item, chain, memo)
			if err != nil {
				return nil, err
			}
			items = append(items, resolved)
		}
		out.Content = refract.SequenceContent(items...)

	case refract.ContentPair:
		pair := e.Content.Pair()
		value, err := r.deref(pair.Value, chain, memo)
		if err != nil {
			return nil, err
		}
		out.Content = refract.PairContent(pair.Key.Clone(), value)
	}

	if enums := e.Enumerations(); len(enums) > 0 {
		options := make([]*refract.Element, 0, len(enums))
		for _, option := range enums {
			resolved, err := r.deref(option, chain, memo)
			if err != nil {
				return nil, err
			}
			options = append(options, resolved)
		}
		out.Attributes.Enumerations = options
	}

	return out, nil
}

// include returns the items a ref element splices into its collection. A
// definition holding a sequence contributes its items; any other definition
// contributes itself.
func (r *Registry) include(ref *refract.Element, chain []string, memo expansions) ([]*refract.Element, error) {
	name, ok := ref.Content.String()
	if !ok || name == "" {
		return []*refract.Element{ref.Clone()}, nil
	}
	def, err := r.expand(name, chain, memo)
	if err != nil {
		return nil, err
	}
	if def.Content.IsSequence() {
		return def.Content.Items(), nil
	}
	return []*refract.Element{inherit(def, &refract.Element{}, name)}, nil
}

// inherit merges a dereferenced definition (base) with the element that
// referenced it (derived). Both are fresh copies owned by the caller.
func inherit(base, derived *refract.Element, name string) *refract.Element {
	out := base

	switch {
	case base.Content.IsSequence() && derived.Content.IsSequence():
		items := slices.Concat(base.Content.Items(), derived.Content.Items())
		out.Content = refract.SequenceContent(items...)
	case derived.Content.IsPresent():
		out.Content = derived.Content
	}

	if derived.Meta != nil {
		if out.Meta == nil {
			out.Meta = &refract.Meta{}
		}
		overlayMeta(out.Meta, derived.Meta)
	}
	if derived.Attributes != nil {
		if out.Attributes == nil {
			out.Attributes = &refract.Attributes{}
		}
		if len(derived.Attributes.TypeAttributes) > 0 {
			out.Attributes.TypeAttributes = derived.Attributes.TypeAttributes
		}
		if len(derived.Attributes.Samples) > 0 {
			out.Attributes.Samples = derived.Attributes.Samples
		}
		if len(derived.Attributes.Enumerations) > 0 {
			out.Attributes.Enumerations = derived.Attributes.Enumerations
		}
	}

	if out.Meta == nil {
		out.Meta = &refract.Meta{}
	}
	out.Meta.Ref = refract.StringValue(name)
	return out
}

func overlayMeta(dst, src *refract.Meta) {
	if src.ID != "" {
		dst.ID = src.ID
	}
	if src.Title != "" {
		dst.Title = src.Title
	}
	if src.Description != "" {
		dst.Description = src.Description
	}
	if len(src.Classes) > 0 {
		dst.Classes = src.Classes
	}
}
