package collections

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// Collection is a generic, immutable-by-default ordered map of K to V.
//
// Unlike a plain Go map, a Collection remembers insertion order: iteration
// always yields pairs in the order they were added, and every operator
// documents whether it preserves, renumbers, or recomputes keys. Keys are
// unique; writing to an existing key overwrites the value at the key's
// original position rather than moving it.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged. This design is goroutine-safe for reads
// (multiple goroutines may read the same collection concurrently) and avoids
// accidental aliasing bugs in pipelines. Put, Forget and Push follow the
// same copy-on-write discipline: they return the modified copy, and the
// chain continues as if the change had always been present.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)                   // int keys 0..4
//	c := collections.FromSlice([]string{"a", "b", "c"})
//	c := collections.FromPairs(
//	    collections.P("app", appConf),
//	    collections.P("email", emailConf),
//	)
//	c := collections.Empty[string, int]()
//
// # Method chaining
//
//	s, _ := collections.New("manage users", "manage posts", "manage comments").
//	    Filter().
//	    Implode("<br>")
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters.
// Operations that change the key or value type are exposed as package-level
// functions in this package:
//
//	names := collections.Pluck(users, "name")
//	byDay := collections.MapToGroups(events, func(e Event, _ int) (string, Event) {
//	    return e.Day, e
//	})
//
// # Laravel equivalents
//
// The method names map 1-to-1 to Laravel's Collection methods where possible.
// Differences:
//   - Go callbacks receive (value, key) with the collection's key type.
//   - Missing lookups return (zero, false) instead of null.
//   - Type-transforming operations (Map, MapWithKeys, Pluck, Flatten, …)
//     are package-level functions.
type Collection[K comparable, V any] struct {
	keys  []K
	items map[K]V
}

// ─────────────────────────────────────────────────────────────────────────────
// Internal store primitives
// ─────────────────────────────────────────────────────────────────────────────

func newWithCap[K comparable, V any](n int) *Collection[K, V] {
	return &Collection[K, V]{keys: make([]K, 0, n), items: make(map[K]V, n)}
}

// set inserts or overwrites. An existing key keeps its original position.
func (c *Collection[K, V]) set(key K, value V) {
	if _, ok := c.items[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.items[key] = value
}

// setLate inserts or overwrites. An existing key is moved to the end, so the
// pair occupies the position of its own insertion. Used by MapWithKeys.
func (c *Collection[K, V]) setLate(key K, value V) {
	if _, ok := c.items[key]; ok {
		c.dropKey(key)
	}
	c.keys = append(c.keys, key)
	c.items[key] = value
}

func (c *Collection[K, V]) dropKey(key K) {
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
	delete(c.items, key)
}

func (c *Collection[K, V]) clone() *Collection[K, V] {
	out := newWithCap[K, V](len(c.keys))
	out.keys = append(out.keys, c.keys...)
	for k, v := range c.items {
		out.items[k] = v
	}
	return out
}

// listValues lets code in this package (Flatten, Truthy) peer into a
// collection of any instantiation without knowing its type parameters.
func (c *Collection[K, V]) listValues() []any {
	out := make([]any, len(c.keys))
	for i, k := range c.keys {
		out[i] = c.items[k]
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of values, keyed by
// sequential integers starting at 0.
func New[V any](values ...V) *Collection[int, V] {
	return FromSlice(values)
}

// FromSlice creates an integer-keyed Collection from a slice (the slice is
// copied). Keys run 0 … len(values)-1 in slice order.
func FromSlice[V any](values []V) *Collection[int, V] {
	out := newWithCap[int, V](len(values))
	for i, v := range values {
		out.set(i, v)
	}
	return out
}

// FromPairs creates a Collection from ordered key/value pairs.
// A duplicate key overwrites the earlier value at its original position.
func FromPairs[K comparable, V any](pairs ...Pair[K, V]) *Collection[K, V] {
	out := newWithCap[K, V](len(pairs))
	for _, p := range pairs {
		out.set(p.Key, p.Value)
	}
	return out
}

// FromMap creates a Collection from a Go map. Plain maps iterate in an
// unstable order, so entries are keyed in ascending key order to give the
// collection a deterministic one. Use [FromPairs] to control order exactly.
func FromMap[K cmp.Ordered, V any](m map[K]V) *Collection[K, V] {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	out := newWithCap[K, V](len(keys))
	for _, k := range keys {
		out.set(k, m[k])
	}
	return out
}

// Collect builds an integer-keyed Collection from an arbitrary source.
//
// Any slice or array is accepted; its elements become the values in element
// order. Everything else — including plain Go maps, whose iteration order is
// not stable — fails with [ErrInvalidSource]. Keyed sources go through
// [FromPairs] or [FromMap] instead.
func Collect(src any) (*Collection[int, any], error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil", ErrInvalidSource)
	}
	rv := reflect.ValueOf(src)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := newWithCap[int, any](rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.set(i, rv.Index(i).Interface())
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T is not iterable in a stable order", ErrInvalidSource, src)
	}
}

// Empty creates an empty Collection with key type K and value type V.
func Empty[K comparable, V any]() *Collection[K, V] {
	return newWithCap[K, V](0)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns the collection's pairs as a plain ordered slice, terminating
// the pipeline into a non-collection structure.
func (c *Collection[K, V]) All() []Pair[K, V] {
	out := make([]Pair[K, V], len(c.keys))
	for i, k := range c.keys {
		out[i] = Pair[K, V]{Key: k, Value: c.items[k]}
	}
	return out
}

// ToMap returns the collection as a plain Go map. Insertion order is lost;
// use [Collection.All] when order matters to the consumer.
func (c *Collection[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(c.keys))
	for k, v := range c.items {
		out[k] = v
	}
	return out
}

// Keys returns the collection's keys in iteration order.
func (c *Collection[K, V]) Keys() []K {
	out := make([]K, len(c.keys))
	copy(out, c.keys)
	return out
}

// Values discards all keys and returns a new collection renumbered with
// sequential integer keys from 0, preserving value order. Idempotent when
// applied to an already sequentially-keyed collection.
func (c *Collection[K, V]) Values() *Collection[int, V] {
	out := newWithCap[int, V](len(c.keys))
	for i, k := range c.keys {
		out.set(i, c.items[k])
	}
	return out
}

// ValueSlice returns the values alone, in iteration order.
func (c *Collection[K, V]) ValueSlice() []V {
	out := make([]V, len(c.keys))
	for i, k := range c.keys {
		out[i] = c.items[k]
	}
	return out
}

// Count returns the number of pairs in the collection.
func (c *Collection[K, V]) Count() int { return len(c.keys) }

// IsEmpty reports whether the collection contains no pairs.
func (c *Collection[K, V]) IsEmpty() bool { return len(c.keys) == 0 }

// IsNotEmpty reports whether the collection has at least one pair.
func (c *Collection[K, V]) IsNotEmpty() bool { return len(c.keys) > 0 }

// Get returns the value at key together with a presence flag.
// Returns the zero value and false when the key is absent.
func (c *Collection[K, V]) Get(key K) (V, bool) {
	v, ok := c.items[key]
	return v, ok
}

// Has reports whether key is present in the collection.
func (c *Collection[K, V]) Has(key K) bool {
	_, ok := c.items[key]
	return ok
}

// ToJSON serialises the collection. Sequentially int-keyed collections
// (keys exactly 0 … Count()-1) render as a JSON array; everything else as a
// JSON object with keys in iteration order.
func (c *Collection[K, V]) ToJSON() ([]byte, error) {
	return c.MarshalJSON()
}

// MarshalJSON implements [json.Marshaler]. See [Collection.ToJSON].
func (c *Collection[K, V]) MarshalJSON() ([]byte, error) {
	if c.sequential() {
		return json.Marshal(c.listValues())
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(cast.ToString(k))
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(c.items[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// sequential reports whether keys are exactly the ints 0 … len-1 in order.
func (c *Collection[K, V]) sequential() bool {
	for i, k := range c.keys {
		n, ok := any(k).(int)
		if !ok || n != i {
			return false
		}
	}
	return true
}

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[K, V]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(value, key) for every pair in order, for its side effects.
// Returning false from fn stops the iteration early. Each returns c
// unchanged so a chain can continue past it.
func (c *Collection[K, V]) Each(fn func(V, K) bool) *Collection[K, V] {
	for _, k := range c.keys {
		if !fn(c.items[k], k) {
			break
		}
	}
	return c
}

// Tap calls fn(c) for side-effects (e.g. debugging mid-chain) and returns
// c unchanged for further chaining.
func (c *Collection[K, V]) Tap(fn func(*Collection[K, V])) *Collection[K, V] {
	fn(c)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first value, optionally matching fns[0].
// Returns the zero value and false when the collection is empty or no pair
// satisfies the predicate.
func (c *Collection[K, V]) First(fns ...func(V, K) bool) (V, bool) {
	var zero V
	if len(fns) > 0 {
		for _, k := range c.keys {
			if fns[0](c.items[k], k) {
				return c.items[k], true
			}
		}
		return zero, false
	}
	if len(c.keys) == 0 {
		return zero, false
	}
	return c.items[c.keys[0]], true
}

// FirstOrFail returns the first value matching fn, or [ErrNoMatchingItems].
func (c *Collection[K, V]) FirstOrFail(fn func(V, K) bool) (V, error) {
	v, ok := c.First(fn)
	if !ok {
		return v, ErrNoMatchingItems
	}
	return v, nil
}

// Last returns the last value, optionally matching fns[0].
// Returns the zero value and false when the collection is empty or no pair
// satisfies the predicate.
func (c *Collection[K, V]) Last(fns ...func(V, K) bool) (V, bool) {
	var zero V
	if len(fns) > 0 {
		var found V
		matched := false
		for _, k := range c.keys {
			if fns[0](c.items[k], k) {
				found = c.items[k]
				matched = true
			}
		}
		return found, matched
	}
	if len(c.keys) == 0 {
		return zero, false
	}
	return c.items[c.keys[len(c.keys)-1]], true
}

// Contains reports whether at least one pair satisfies fn.
func (c *Collection[K, V]) Contains(fn func(V, K) bool) bool {
	for _, k := range c.keys {
		if fn(c.items[k], k) {
			return true
		}
	}
	return false
}

// Search returns the key of the first pair for which fn returns true.
// Returns the zero key and false when no pair matches.
func (c *Collection[K, V]) Search(fn func(V, K) bool) (K, bool) {
	for _, k := range c.keys {
		if fn(c.items[k], k) {
			return k, true
		}
	}
	var zero K
	return zero, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new collection with only the pairs for which
// fns[0](value, key) returns true, preserving original keys and relative
// order.
//
// Called without a predicate, Filter keeps truthy values only (see [Truthy]
// for the exact classification). A common use is dropping the nil and empty
// results a preceding map or pluck produced:
//
//	collections.Pluck(configs, "elements").Filter()
func (c *Collection[K, V]) Filter(fns ...func(V, K) bool) *Collection[K, V] {
	keep := func(v V, _ K) bool { return Truthy(v) }
	if len(fns) > 0 {
		keep = fns[0]
	}
	out := newWithCap[K, V](len(c.keys))
	for _, k := range c.keys {
		if keep(c.items[k], k) {
			out.set(k, c.items[k])
		}
	}
	return out
}

// Reject returns a new collection with pairs for which fn returns true
// removed, preserving original keys and relative order.
// It is the complement of [Collection.Filter].
func (c *Collection[K, V]) Reject(fn func(V, K) bool) *Collection[K, V] {
	return c.Filter(func(v V, k K) bool { return !fn(v, k) })
}

// Map returns a new Collection[K, any] with each value transformed by
// fn(value, key). Keys, order and cardinality are unchanged.
//
// For type-safe transformation to a concrete value type U, use the
// package-level [Map] function instead.
func (c *Collection[K, V]) Map(fn func(V, K) any) *Collection[K, any] {
	out := newWithCap[K, any](len(c.keys))
	for _, k := range c.keys {
		out.set(k, fn(c.items[k], k))
	}
	return out
}

// Reduce reduces the collection to a single value of the same type V.
//
// For reductions that change the type (V → U where V ≠ U), use the
// package-level [Reduce] function.
func (c *Collection[K, V]) Reduce(fn func(carry, value V) V, initial V) V {
	result := initial
	for _, k := range c.keys {
		result = fn(result, c.items[k])
	}
	return result
}

// Unique returns a new collection with later duplicates removed: the first
// pair per distinct identity wins and keeps its original key and position.
//
// fns[0] extracts the identity; without it values are compared by deep
// equality of their content (via a canonical encoding), so equal composite
// values deduplicate even when they are distinct Go values.
func (c *Collection[K, V]) Unique(fns ...func(V) any) *Collection[K, V] {
	ident := func(v V) any { return v }
	if len(fns) > 0 {
		ident = fns[0]
	}
	seen := make(map[string]struct{}, len(c.keys))
	return c.Filter(func(v V, _ K) bool {
		fp := identityKey(ident(v))
		if _, dup := seen[fp]; dup {
			return false
		}
		seen[fp] = struct{}{}
		return true
	})
}

// Reverse returns a new collection with pairs in reversed order.
// Key association is preserved.
func (c *Collection[K, V]) Reverse() *Collection[K, V] {
	out := newWithCap[K, V](len(c.keys))
	for i := len(c.keys) - 1; i >= 0; i-- {
		out.set(c.keys[i], c.items[c.keys[i]])
	}
	return out
}

// Sort returns a new collection with pairs ordered by the given less
// function over values. The sort is stable and key association is preserved.
func (c *Collection[K, V]) Sort(less func(a, b V) bool) *Collection[K, V] {
	keys := make([]K, len(c.keys))
	copy(keys, c.keys)
	sort.SliceStable(keys, func(i, j int) bool {
		return less(c.items[keys[i]], c.items[keys[j]])
	})
	out := newWithCap[K, V](len(keys))
	for _, k := range keys {
		out.set(k, c.items[k])
	}
	return out
}

// SortBy returns a new collection sorted ascending by the float64 value
// extracted by fn, preserving key association.
func (c *Collection[K, V]) SortBy(fn func(V) float64) *Collection[K, V] {
	return c.Sort(func(a, b V) bool { return fn(a) < fn(b) })
}

// SortByDesc returns a new collection sorted descending by fn.
func (c *Collection[K, V]) SortByDesc(fn func(V) float64) *Collection[K, V] {
	return c.Sort(func(a, b V) bool { return fn(a) > fn(b) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove
// ─────────────────────────────────────────────────────────────────────────────

// Put returns a new collection with value stored at key. An existing key
// keeps its original position; a new key is appended at the end.
func (c *Collection[K, V]) Put(key K, value V) *Collection[K, V] {
	out := c.clone()
	out.set(key, value)
	return out
}

// Forget returns a new collection with the pair at key removed.
// Returns c unchanged when the key is absent — never an error.
func (c *Collection[K, V]) Forget(key K) *Collection[K, V] {
	if _, ok := c.items[key]; !ok {
		return c
	}
	out := c.clone()
	out.dropKey(key)
	return out
}

// Merge returns a new collection with other's pairs applied on top of c's:
// new keys append in other's order, existing keys are overwritten in place.
func (c *Collection[K, V]) Merge(other *Collection[K, V]) *Collection[K, V] {
	out := c.clone()
	for _, k := range other.keys {
		out.set(k, other.items[k])
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Take returns at most n pairs from the start, keys preserved.
// A negative n takes pairs from the end (Take(-2) ≡ last two pairs).
func (c *Collection[K, V]) Take(n int) *Collection[K, V] {
	total := len(c.keys)
	start, end := 0, n
	if n < 0 {
		start, end = total+n, total
		if start < 0 {
			start = 0
		}
	} else if end > total {
		end = total
	}
	out := newWithCap[K, V](end - start)
	for _, k := range c.keys[start:end] {
		out.set(k, c.items[k])
	}
	return out
}

// Skip returns a new collection without the first n pairs, keys preserved.
func (c *Collection[K, V]) Skip(n int) *Collection[K, V] {
	if n < 0 {
		n = 0
	}
	if n >= len(c.keys) {
		return Empty[K, V]()
	}
	out := newWithCap[K, V](len(c.keys) - n)
	for _, k := range c.keys[n:] {
		out.set(k, c.items[k])
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// Sum returns the sum of all values using fn to extract numbers.
func (c *Collection[K, V]) Sum(fn func(V) float64) float64 {
	var sum float64
	for _, k := range c.keys {
		sum += fn(c.items[k])
	}
	return sum
}

// Average returns the arithmetic mean, or 0 for an empty collection.
func (c *Collection[K, V]) Average(fn func(V) float64) float64 {
	if len(c.keys) == 0 {
		return 0
	}
	return c.Sum(fn) / float64(len(c.keys))
}

// MaxBy returns the value with the largest number extracted by fn.
// Returns the zero value and false when the collection is empty.
func (c *Collection[K, V]) MaxBy(fn func(V) float64) (V, bool) {
	var zero V
	if len(c.keys) == 0 {
		return zero, false
	}
	best := c.items[c.keys[0]]
	bestVal := fn(best)
	for _, k := range c.keys[1:] {
		if v := fn(c.items[k]); v > bestVal {
			bestVal, best = v, c.items[k]
		}
	}
	return best, true
}

// MinBy returns the value with the smallest number extracted by fn.
// Returns the zero value and false when the collection is empty.
func (c *Collection[K, V]) MinBy(fn func(V) float64) (V, bool) {
	var zero V
	if len(c.keys) == 0 {
		return zero, false
	}
	best := c.items[c.keys[0]]
	bestVal := fn(best)
	for _, k := range c.keys[1:] {
		if v := fn(c.items[k]); v < bestVal {
			bestVal, best = v, c.items[k]
		}
	}
	return best, true
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

// Implode joins all values into a single string separated by sep.
//
// Numbers and strings pass through; other values must carry a string
// conversion (fmt.Stringer, error, …) or Implode fails with
// [ErrNotStringable]. An empty collection yields "".
func (c *Collection[K, V]) Implode(sep string) (string, error) {
	parts := make([]string, len(c.keys))
	for i, k := range c.keys {
		s, err := cast.ToStringE(c.items[k])
		if err != nil {
			return "", fmt.Errorf("%w: value %v at key %v", ErrNotStringable, c.items[k], k)
		}
		parts[i] = s
	}
	return strings.Join(parts, sep), nil
}

// ImplodeFunc joins all values using fn to stringify each one.
func (c *Collection[K, V]) ImplodeFunc(sep string, fn func(V) string) string {
	parts := make([]string, len(c.keys))
	for i, k := range c.keys {
		parts[i] = fn(c.items[k])
	}
	return strings.Join(parts, sep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Collection[K, V]) When(condition bool, fn func(*Collection[K, V]) *Collection[K, V]) *Collection[K, V] {
	if condition {
		return fn(c)
	}
	return c
}

// Unless calls fn(c) if condition is false; otherwise returns c.
func (c *Collection[K, V]) Unless(condition bool, fn func(*Collection[K, V]) *Collection[K, V]) *Collection[K, V] {
	return c.When(!condition, fn)
}
