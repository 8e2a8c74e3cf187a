package record

import "strings"

// Accessible is the capability implemented by record kinds whose fields can
// be looked up by name.
//
// Get returns the field's value and true, or the zero any and false when the
// field is absent. Implementations must never fail for a missing field —
// absence is an answer, not an error.
type Accessible interface {
	Get(field string) (any, bool)
}

// M is a map-backed record supporting dot-notation field paths.
//
// Example record:
//
//	m := record.M{
//	    "user": record.M{
//	        "name":    "Alice",
//	        "address": record.M{"city": "London"},
//	    },
//	}
//
//	m.Get("user.address.city")  → "London", true
//	m.Get("user.missing")       → nil, false
//
// Nested values may be record.M or plain map[string]any interchangeably.
type M map[string]any

// Get retrieves the value at a dot-notation field path.
// It implements [Accessible].
func (m M) Get(field string) (any, bool) {
	segments := strings.Split(field, ".")
	current := m
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		nested, ok := asMap(val)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// GetOr retrieves the value at field, or def when the field is absent.
func (m M) GetOr(field string, def any) any {
	if v, ok := m.Get(field); ok {
		return v
	}
	return def
}

// Set writes value at the dot-notation field path, creating intermediate
// maps as needed.
func (m M) Set(field string, value any) {
	segments := strings.SplitN(field, ".", 2)
	if len(segments) == 1 {
		m[field] = value
		return
	}
	seg, rest := segments[0], segments[1]
	nested, ok := asMap(m[seg])
	if !ok {
		nested = M{}
		m[seg] = nested
	}
	nested.Set(rest, value)
}

// Has reports whether the dot-notation field path exists.
func (m M) Has(field string) bool {
	_, ok := m.Get(field)
	return ok
}

// Forget removes the dot-notation field path.
// Absent paths are a no-op. Intermediate maps are not cleaned up.
func (m M) Forget(field string) {
	segments := strings.SplitN(field, ".", 2)
	if len(segments) == 1 {
		delete(m, field)
		return
	}
	seg, rest := segments[0], segments[1]
	nested, ok := asMap(m[seg])
	if !ok {
		return
	}
	nested.Forget(rest)
}

// Dot flattens the record into a single-level map using dot notation.
//
//	record.M{"a": record.M{"b": 1}}.Dot()  → record.M{"a.b": 1}
func (m M) Dot() M {
	out := M{}
	dotFlatten("", m, out)
	return out
}

func dotFlatten(prefix string, m M, out M) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := asMap(v); ok {
			dotFlatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}

// Undot expands a flat dot-notation record into a nested one.
//
//	record.Undot(record.M{"a.b": 1, "a.c": 2})
//	// → record.M{"a": record.M{"b": 1, "c": 2}}
func Undot(flat M) M {
	out := M{}
	for key, val := range flat {
		out.Set(key, val)
	}
	return out
}

// Lookup resolves a named field on an arbitrary value.
//
// Values implementing [Accessible] answer for themselves; record.M and plain
// map[string]any are resolved with dot-notation paths. Any other value has
// no fields, so every lookup on it is absent. Lookup never fails: missing
// fields report (nil, false).
func Lookup(v any, field string) (any, bool) {
	switch r := v.(type) {
	case Accessible:
		return r.Get(field)
	case map[string]any:
		return M(r).Get(field)
	default:
		return nil, false
	}
}

func asMap(v any) (M, bool) {
	switch t := v.(type) {
	case M:
		return t, true
	case map[string]any:
		return M(t), true
	default:
		return nil, false
	}
}
