package collections

import "fmt"

// Pair is one ordered key/value entry of a collection.
// It is the element type of [Collection.All] and the input of [FromPairs].
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// P is a shorthand constructor for a Pair, handy with [FromPairs]:
//
//	collections.FromPairs(
//	    collections.P("app", 1),
//	    collections.P("email", 2),
//	)
func P[K comparable, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// String returns a human-readable representation: "key: value".
func (p Pair[K, V]) String() string {
	return fmt.Sprintf("%v: %v", p.Key, p.Value)
}
