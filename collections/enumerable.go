package collections

// Enumerable is the interface satisfied by [Collection][K, V].
//
// Accept Enumerable in your own functions and interfaces so that consumers
// can substitute alternative implementations without depending on the
// concrete *Collection type.
//
// A minimal implementation only needs to provide these methods; the
// higher-level operators are built on top of this surface.
type Enumerable[K comparable, V any] interface {
	// All returns every pair, in order, as a plain Go slice.
	All() []Pair[K, V]

	// Count returns the number of pairs.
	Count() int

	// Each calls fn(value, key) for every pair in order; fn returning
	// false stops the iteration early.
	Each(fn func(V, K) bool) *Collection[K, V]

	// Filter returns a new collection containing only pairs for which
	// fns[0] returns true; without a predicate, truthy values are kept.
	Filter(fns ...func(V, K) bool) *Collection[K, V]

	// First returns the first value, optionally matching fns[0].
	// Returns the zero value and false when nothing matches.
	First(fns ...func(V, K) bool) (V, bool)

	// Get returns the value at key and a presence flag.
	Get(key K) (V, bool)

	// Has reports whether key is present.
	Has(key K) bool

	// IsEmpty reports whether the collection contains no pairs.
	IsEmpty() bool

	// IsNotEmpty reports whether the collection contains at least one pair.
	IsNotEmpty() bool

	// Keys returns the keys in iteration order.
	Keys() []K

	// Reject returns a new collection with pairs for which fn returns
	// true removed.
	Reject(fn func(V, K) bool) *Collection[K, V]

	// ToMap returns the pairs as a plain (unordered) Go map.
	ToMap() map[K]V
}
