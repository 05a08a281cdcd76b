// Package mapper converts dereferenced refract data structures into uniform,
// display-ready [Schema] records.
//
// Each element is classified into one of a closed set of variants before it
// is mapped:
//
//   - object: members become properties; the type display lists their
//     unique names, e.g. "{id, name, email}"
//   - member: a key/value pair; the mapped value is renamed to the key and
//     carries the member's description and required flag
//   - array, enum: items become properties; the type display summarizes the
//     item type, e.g. "[string]"
//   - boolean, number, string: leaves whose example is the literal content
//
// Any other kind fails with [schemaerrors.UnknownElementError]; the mapper
// never guesses a shape. Mapping errors carry the location of the failing
// node, such as "$[0].properties[2]".
//
// Input must already be dereferenced (see package resolver). A named-type
// reference that reaches the mapper is an unknown element.
package mapper
