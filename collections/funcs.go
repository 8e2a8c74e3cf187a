package collections

// This file contains package-level generic functions for operations that
// change the key type, the value type, or both. Go generics do not allow
// methods to introduce their own type parameters, so these operations must
// be stand-alone functions. They compose with method chains:
//
//	flat := collections.Flatten(
//	    collections.Pluck(configs, "elements"), 1)

import (
	"cmp"
	"reflect"

	"github.com/spf13/cast"

	"github.com/hasbyte1/go-keyed-collections/record"
)

// Map applies fn(value, key) to every pair and returns a new Collection[K, U]
// with the same keys in the same order.
//
//	lengths := collections.Map(words, func(w string, _ int) int {
//	    return len(w)
//	})
func Map[K comparable, V, U any](c *Collection[K, V], fn func(V, K) U) *Collection[K, U] {
	out := newWithCap[K, U](len(c.keys))
	for _, k := range c.keys {
		out.set(k, fn(c.items[k], k))
	}
	return out
}

// MapWithKeys builds a new collection whose keys and values are entirely
// determined by fn: each input pair produces exactly one output pair.
// Original keys are discarded unless fn reuses them deliberately.
//
// When two inputs produce the same output key, the later one wins and the
// pair sits at the position of its own insertion — unlike [Collection.Put],
// which overwrites in place.
//
//	byDate := collections.MapWithKeys(releases, func(r Release, _ int) (string, string) {
//	    return r.Date, r.Version
//	})
func MapWithKeys[K comparable, V any, K2 comparable, V2 any](c *Collection[K, V], fn func(V, K) (K2, V2)) *Collection[K2, V2] {
	out := newWithCap[K2, V2](len(c.keys))
	for _, k := range c.keys {
		k2, v2 := fn(c.items[k], k)
		out.setLate(k2, v2)
	}
	return out
}

// MapToGroups is MapWithKeys without the key-uniqueness requirement: every
// value mapped to the same group key is collected, in input order, into that
// group's slice. Group keys appear in first-appearance order.
//
//	byAuthor := collections.MapToGroups(posts, func(p Post, _ int) (string, string) {
//	    return p.Author, p.Title
//	})
func MapToGroups[K comparable, V any, G comparable, V2 any](c *Collection[K, V], fn func(V, K) (G, V2)) *Collection[G, []V2] {
	out := newWithCap[G, []V2](len(c.keys))
	for _, k := range c.keys {
		g, v2 := fn(c.items[k], k)
		out.set(g, append(out.items[g], v2))
	}
	return out
}

// GroupBy groups values by the key extracted by fn, keeping the values
// themselves as group members.
func GroupBy[K comparable, V any, G comparable](c *Collection[K, V], fn func(V, K) G) *Collection[G, []V] {
	return MapToGroups(c, func(v V, k K) (G, V) { return fn(v, k), v })
}

// KeyBy re-keys the collection by the key extracted by fn, keeping values.
// Duplicate keys follow MapWithKeys semantics: the later pair wins.
func KeyBy[K comparable, V any, K2 comparable](c *Collection[K, V], fn func(V, K) K2) *Collection[K2, V] {
	return MapWithKeys(c, func(v V, k K) (K2, V) { return fn(v, k), v })
}

// Pluck extracts the named field from each value, keeping keys and order.
//
// Fields are resolved with [record.Lookup], so values may be record.M maps,
// raw map[string]any, or anything implementing record.Accessible. A value
// without the field plucks as nil — never an error; chain Filter()
// afterwards to drop the misses.
//
//	titles := collections.Pluck(posts, "title")
func Pluck[K comparable, V any](c *Collection[K, V], field string) *Collection[K, any] {
	out := newWithCap[K, any](len(c.keys))
	for _, k := range c.keys {
		v, _ := record.Lookup(c.items[k], field)
		out.set(k, v)
	}
	return out
}

// PluckBy extracts the named field from each value and re-keys the result by
// the stringified value of the keyBy field from the same record. Duplicate
// keys overwrite in place at the first occurrence's position. A record
// missing the keyBy field keys as "".
//
//	emailsByName := collections.PluckBy(users, "email", "name")
func PluckBy[K comparable, V any](c *Collection[K, V], field, keyBy string) *Collection[string, any] {
	out := newWithCap[string, any](len(c.keys))
	for _, k := range c.keys {
		v, _ := record.Lookup(c.items[k], field)
		kv, _ := record.Lookup(c.items[k], keyBy)
		out.set(cast.ToString(kv), v)
	}
	return out
}

// Flatten collapses up to depth levels of nesting into a single collection,
// renumbering keys sequentially from 0. Value order is preserved depth-first,
// left-to-right. With depth = 1 exactly one level is flattened and deeper
// nesting survives as nested values; a negative depth flattens completely.
//
// A value counts as nested when it is a *Collection of any instantiation, a
// slice, or an array; everything else is a leaf.
func Flatten[K comparable](c *Collection[K, any], depth int) *Collection[int, any] {
	out := make([]any, 0, len(c.keys))
	var walk func(v any, depth int)
	walk = func(v any, depth int) {
		if depth != 0 {
			if elems, ok := nestedElements(v); ok {
				for _, e := range elems {
					walk(e, depth-1)
				}
				return
			}
		}
		out = append(out, v)
	}
	for _, k := range c.keys {
		walk(c.items[k], depth)
	}
	return FromSlice(out)
}

// nestedElements returns the ordered elements of a nested value, or false
// for a leaf.
func nestedElements(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if nested, ok := v.(interface{ listValues() []any }); ok {
		return nested.listValues(), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elems := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elems[i] = rv.Index(i).Interface()
		}
		return elems, true
	default:
		return nil, false
	}
}

// Push returns a new collection with values appended under fresh integer
// keys continuing from the current maximum key + 1 (0 for an empty
// collection). Keys can be sparse after Forget, so the next key is computed
// from the maximum, not the count. The next key is never below 0: a
// collection holding only negative keys (possible via FromPairs) appends
// at 0.
func Push[V any](c *Collection[int, V], values ...V) *Collection[int, V] {
	next := 0
	for _, k := range c.keys {
		if k+1 > next {
			next = k + 1
		}
	}
	out := c.clone()
	for _, v := range values {
		out.set(next, v)
		next++
	}
	return out
}

// Reduce reduces Collection[K, V] to a single value of type U.
//
//	total := collections.Reduce(orders, func(acc float64, o Order, _ int) float64 {
//	    return acc + o.Amount
//	}, 0.0)
func Reduce[K comparable, V, U any](c *Collection[K, V], fn func(U, V, K) U, initial U) U {
	result := initial
	for _, k := range c.keys {
		result = fn(result, c.items[k], k)
	}
	return result
}

// Max returns the greatest value by natural ordering.
// Returns the zero value and false for an empty collection — never an error.
func Max[K comparable, V cmp.Ordered](c *Collection[K, V]) (V, bool) {
	var zero V
	if len(c.keys) == 0 {
		return zero, false
	}
	best := c.items[c.keys[0]]
	for _, k := range c.keys[1:] {
		if c.items[k] > best {
			best = c.items[k]
		}
	}
	return best, true
}

// Min returns the smallest value by natural ordering.
// Returns the zero value and false for an empty collection.
func Min[K comparable, V cmp.Ordered](c *Collection[K, V]) (V, bool) {
	var zero V
	if len(c.keys) == 0 {
		return zero, false
	}
	best := c.items[c.keys[0]]
	for _, k := range c.keys[1:] {
		if c.items[k] < best {
			best = c.items[k]
		}
	}
	return best, true
}

// Combine builds a keyed collection from parallel key and value slices.
// Returns [ErrMismatchedLengths] when the slices differ in length.
// Duplicate keys overwrite in place.
func Combine[K comparable, V any](keys []K, values []V) (*Collection[K, V], error) {
	if len(keys) != len(values) {
		return nil, ErrMismatchedLengths
	}
	out := newWithCap[K, V](len(keys))
	for i, k := range keys {
		out.set(k, values[i])
	}
	return out, nil
}
