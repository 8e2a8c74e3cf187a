package collections

import (
	"reflect"

	"github.com/hasbyte1/go-keyed-collections/record"
)

// Field returns a Filter/Reject predicate that resolves the named field on
// each value (via [record.Lookup]) and keeps pairs whose field is truthy.
// It is the selector shorthand for the common "filter by a flag field"
// chain, replacing a hand-written closure:
//
//	tweets := items.Filter(collections.Field[int, record.M]("isTweet"))
//
// A value without the field is never kept.
func Field[K comparable, V any](name string) func(V, K) bool {
	return func(v V, _ K) bool {
		fv, ok := record.Lookup(v, name)
		return ok && Truthy(fv)
	}
}

// FieldEquals returns a predicate keeping pairs whose named field deeply
// equals want. A value without the field never matches.
func FieldEquals[K comparable, V any](name string, want any) func(V, K) bool {
	return func(v V, _ K) bool {
		fv, ok := record.Lookup(v, name)
		return ok && reflect.DeepEqual(fv, want)
	}
}
