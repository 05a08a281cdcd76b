package walker

import (
	"math"

	"github.com/erraggy/schemaview/refract"
)

// CollectDataStructures walks the tree and returns the payload of every
// dataStructure element in document order.
//
// A dataStructure whose content is a sequence contributes each item; one
// holding a single element contributes that element. Traversal descends only
// through sequence content, so data structures nested below a member or a
// single-element wrapper are not collected. Malformed nodes contribute nothing.
func CollectDataStructures(root *refract.Element) []*refract.Element {
	var out []*refract.Element
	if root == nil {
		return out
	}

	_ = Walk(root,
		WithMaxDepth(math.MaxInt),
		WithElementHandler(func(_ *WalkContext, e *refract.Element) Action {
			if e.Element == refract.KindDataStructure {
				switch e.Content.Kind() {
				case refract.ContentSequence:
					for _, item := range e.Content.Items() {
						if item != nil {
							out = append(out, item)
						}
					}
				case refract.ContentElement:
					if el := e.Content.Element(); el != nil {
						out = append(out, el)
					}
				}
				return SkipChildren
			}
			if !e.Content.IsSequence() {
				return SkipChildren
			}
			return Continue
		}),
	)
	return out
}

// ReferenceInfo describes one named-type reference found in a tree.
type ReferenceInfo struct {
	// Name is the referenced identifier.
	Name string

	// JSONPath is the full JSON path to the referencing element.
	JSONPath string

	// Include is true for a ref element that splices a definition's members.
	Include bool
}

// ReferenceCollector holds references collected during a walk.
type ReferenceCollector struct {
	// All contains all references in traversal order.
	All []*ReferenceInfo

	// ByName groups references by the identifier they point at.
	ByName map[string][]*ReferenceInfo
}

// Names returns the distinct referenced identifiers in first-seen order.
func (c *ReferenceCollector) Names() []string {
	seen := make(map[string]bool, len(c.ByName))
	names := make([]string, 0, len(c.ByName))
	for _, ref := range c.All {
		if !seen[ref.Name] {
			seen[ref.Name] = true
			names = append(names, ref.Name)
		}
	}
	return names
}

// CollectReferences walks the tree and collects every element that refers to
// a named type: elements whose kind is not a base kind, and ref includes.
func CollectReferences(root *refract.Element) (*ReferenceCollector, error) {
	collector := &ReferenceCollector{
		All:    make([]*ReferenceInfo, 0),
		ByName: make(map[string][]*ReferenceInfo),
	}

	err := Walk(root,
		WithElementHandler(func(wc *WalkContext, e *refract.Element) Action {
			var info *ReferenceInfo
			switch {
			case e.Element == refract.KindRef:
				if name, ok := e.Content.String(); ok && name != "" {
					info = &ReferenceInfo{Name: name, JSONPath: wc.JSONPath, Include: true}
				}
			case e.Element != "" && !refract.IsBaseKind(e.Element):
				info = &ReferenceInfo{Name: e.Element, JSONPath: wc.JSONPath}
			}
			if info != nil {
				collector.All = append(collector.All, info)
				collector.ByName[info.Name] = append(collector.ByName[info.Name], info)
			}
			return Continue
		}),
	)
	if err != nil {
		return nil, err
	}
	return collector, nil
}
