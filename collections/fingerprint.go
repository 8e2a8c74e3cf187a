package collections

import (
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// identityKey returns a compact identity for v, used as the seen-set key in
// [Collection.Unique]'s deep-equality deduplication.
//
// Two canonical renderings feed the hash: the JSON encoding where one exists
// (deterministic: map keys are sorted) and the Go-syntax representation.
// JSON alone is not enough — encoding/json silently renders a struct whose
// fields are all unexported as {}, which would give every such value the
// same identity; the Go-syntax form sees those fields. The combined bytes
// are hashed with BLAKE2b-256 so that large composite values occupy
// constant map-key space. Two values with equal content produce the same
// identity even when they are distinct Go values.
func identityKey(v any) string {
	h, _ := blake2b.New256(nil)
	if b, err := json.Marshal(v); err == nil {
		h.Write(b)
	}
	fmt.Fprintf(h, "%#v", v)
	return string(h.Sum(nil))
}
