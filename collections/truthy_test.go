package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-keyed-collections/collections"
)

func TestTruthyClassification(t *testing.T) {
	falsy := []any{
		nil,
		false,
		0,
		int8(0),
		uint(0),
		0.0,
		float32(0),
		"",
		"0",
		[]int{},
		[]any{},
		map[string]int{},
		[0]int{},
		(*int)(nil),
		(chan int)(nil),
		collections.Empty[string, int](),
	}
	for _, v := range falsy {
		assert.True(t, collections.Falsy(v), "%#v should be falsy", v)
		assert.False(t, collections.Truthy(v), "%#v should not be truthy", v)
	}

	n := 0
	truthy := []any{
		true,
		1,
		-1,
		0.5,
		"a",
		"00", // only the exact string "0" is falsy
		"false",
		[]int{0},
		map[string]int{"a": 0},
		&n, // non-nil pointer, even to a zero value
		collections.New(1),
		struct{}{},
	}
	for _, v := range truthy {
		assert.True(t, collections.Truthy(v), "%#v should be truthy", v)
	}
}

func TestTruthyNestedCollection(t *testing.T) {
	// an empty collection stored as a value is dropped by Filter()
	c := collections.New[any](collections.Empty[int, int](), collections.New(1)).Filter()
	assert.Equal(t, []int{1}, c.Keys())
}
