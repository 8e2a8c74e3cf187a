package collections

import "errors"

// Sentinel errors returned by Collection operations.
var (
	// ErrInvalidSource is returned by Collect when the source cannot be
	// iterated in a stable order (anything that is not a slice or array,
	// including plain Go maps).
	ErrInvalidSource = errors.New("collections: source is not iterable in a stable order")

	// ErrNotStringable is returned by Implode when a value is neither a
	// number nor a string and carries no string conversion.
	ErrNotStringable = errors.New("collections: value is not stringable")

	// ErrNoMatchingItems is returned by FirstOrFail when no pair satisfies
	// the predicate.
	ErrNoMatchingItems = errors.New("collections: no items match the given condition")

	// ErrMismatchedLengths is returned by Combine when the key and value
	// slices have different lengths.
	ErrMismatchedLengths = errors.New("collections: keys and values must have the same length")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")
)
