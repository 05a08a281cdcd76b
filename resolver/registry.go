package resolver

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/erraggy/schemaview/refract"
)

// Registry maps identifiers to data-structure definitions. It is built once
// by NewRegistry and never modified afterwards, so it is safe for concurrent
// readers.
type Registry struct {
	defs *orderedmap.OrderedMap[string, *refract.Element]
}

// NewRegistry folds definitions into a registry keyed by meta.id. A later
// definition with the same identifier replaces the earlier one but keeps its
// position. Definitions without an identifier are skipped.
func NewRegistry(definitions []*refract.Element, logger refract.Logger) *Registry {
	log := refract.OrNop(logger)
	defs := orderedmap.New[string, *refract.Element](orderedmap.WithCapacity[string, *refract.Element](len(definitions)))
	for _, def := range definitions {
		id := def.ID()
		if id == "" {
			log.Debug("skipping definition without id", "element", def.Kind())
			continue
		}
		if _, replaced := defs.Set(id, def); replaced {
			log.Debug("definition replaced by later declaration", "id", id)
		}
	}
	return &Registry{defs: defs}
}

// Get returns the definition registered under id.
func (r *Registry) Get(id string) (*refract.Element, bool) {
	if r == nil || r.defs == nil {
		return nil, false
	}
	return r.defs.Get(id)
}

// Len returns the number of registered identifiers.
func (r *Registry) Len() int {
	if r == nil || r.defs == nil {
		return 0
	}
	return r.defs.Len()
}

// IDs returns the registered identifiers in first-declaration order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, r.Len())
	for id := range r.All() {
		ids = append(ids, id)
	}
	return ids
}

// All iterates over identifiers and definitions in first-declaration order.
func (r *Registry) All() iter.Seq2[string, *refract.Element] {
	return func(yield func(string, *refract.Element) bool) {
		if r == nil || r.defs == nil {
			return
		}
		for pair := r.defs.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Partition splits collected data structures into root inputs (no body) and
// definitions (with a body), each in collection order. An enum whose options
// are held in enumerations has a body even without content.
func Partition(dataStructures []*refract.Element) (inputs, definitions []*refract.Element) {
	for _, ds := range dataStructures {
		if ds == nil {
			continue
		}
		if ds.HasBody() {
			definitions = append(definitions, ds)
		} else {
			inputs = append(inputs, ds)
		}
	}
	return inputs, definitions
}
