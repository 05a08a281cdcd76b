// Package walker provides a traversal API for refract element trees.
//
// The walker visits every element of a parsed document in document order
// (pre-order, left to right), following sequence content, single nested
// elements, and member key/value pairs. Handlers inspect each element and
// steer the walk with an [Action].
//
// # Quick Start
//
// Collect the kind of every element:
//
//	result, _ := refract.ParseWithOptions(refract.WithFilePath("api.json"))
//
//	var kinds []string
//	err := walker.Walk(result.Root,
//	    walker.WithElementHandler(func(wc *walker.WalkContext, e *refract.Element) walker.Action {
//	        kinds = append(kinds, e.Element)
//	        return walker.Continue
//	    }),
//	)
//
// # Flow Control
//
// Handlers return an [Action] to control traversal:
//
//   - [Continue]: continue traversing children and siblings normally
//   - [SkipChildren]: skip all children of the current node, continue with siblings
//   - [Stop]: stop the entire walk immediately
//
// # WalkContext
//
// Every handler receives a [WalkContext] carrying the JSON path of the current
// element (for example "$.content[0].content[1].content.value"), its depth and
// its parent element. The context passed with [WithContext] is available via
// [WalkContext.Context] and is checked for cancellation before each element.
//
// # Depth Limit
//
// Elements deeper than [DefaultMaxDepth] are not visited. Use [WithMaxDepth]
// to change the limit and [WithSkippedHandler] to observe skipped elements.
//
// # Built-in Collectors
//
// [CollectDataStructures] extracts the payload of every dataStructure element,
// flattening single and sequence forms into one ordered list.
// [CollectReferences] gathers named-type references with their locations.
package walker
