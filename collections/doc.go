// Package collections provides a generic, ordered, uniquely-keyed
// Collection type with a fluent, chainable operator API, inspired by
// Laravel's Illuminate/Collections.
//
// # Overview
//
// The central type is [Collection][K, V]: an insertion-ordered map whose
// operators each return a new collection (or a terminal scalar), so whole
// transformations read as a single pipeline:
//
//	s, _ := collections.New("manage users", "manage posts", "manage comments").
//	    Implode("<br>")
//	// → "manage users<br>manage posts<br>manage comments"
//
// # Key preservation
//
// Every operator documents its key behavior. Filter, Reject, Map, Unique,
// Sort and Take preserve original keys; Values and Flatten renumber
// sequentially from 0; MapWithKeys and MapToGroups recompute keys entirely.
// Writing to an existing key (Put, FromPairs, Merge) overwrites the value at
// the key's original position; MapWithKeys alone repositions a duplicate to
// its own insertion point.
//
// # Immutability
//
// All operators — including Put, Forget and Push — return a new Collection,
// leaving the original unchanged. Collections are therefore safe to read
// from multiple goroutines and safe to alias across pipeline stages.
// Execution is eager: each operator fully materializes its result before
// the next begins.
//
// # Truthiness
//
// A zero-argument Filter() keeps values that [Truthy] classifies as truthy;
// nil, false, numeric zero, "", "0", and empty containers are dropped. The
// table is fixed and documented — it is part of the package's contract.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the key or value type are package-level functions:
// [Map], [MapWithKeys], [MapToGroups], [GroupBy], [KeyBy], [Pluck],
// [PluckBy], [Flatten], [Push], [Reduce], [Max], [Min], [Combine].
//
// # Macros (runtime extension)
//
// Register named pipeline steps at runtime via [RegisterMacro] and call
// them through [Collection.Macro]:
//
//	collections.RegisterMacro("evens", func(col any, _ ...any) any {
//	    c := col.(*collections.Collection[int, int])
//	    return c.Filter(func(n, _ int) bool { return n%2 == 0 })
//	})
//
//	evens, _ := collections.New(1, 2, 3, 4).Macro("evens")
//
// # Records and selectors
//
// Pluck and the [Field]/[FieldEquals] selector predicates resolve named
// fields through the record package's Accessible capability, so dynamically
// shaped values (decoded JSON, configuration trees) flow through pipelines
// without reflection on user structs.
package collections
