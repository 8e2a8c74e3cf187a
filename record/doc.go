// Package record models dynamically-shaped records whose fields are looked
// up by name, the way collection pipelines address them (pluck, field
// selectors).
//
// The central capability is [Accessible]: Get(field) returns the value and a
// presence flag, never an error. [M] is the map-backed implementation with
// dot-notation paths for nested access:
//
//	m := record.M{"user": record.M{"name": "Alice"}}
//	m.Get("user.name")  // "Alice", true
//	m.Get("user.age")   // nil, false
//
// [Lookup] resolves a field on an arbitrary value — an Accessible, a
// record.M, or a raw map[string]any — reporting absence for everything else.
// Concrete record kinds in application code implement Accessible explicitly;
// the package deliberately avoids struct reflection.
package record
