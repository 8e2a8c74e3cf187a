package collections_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-keyed-collections/collections"
	"github.com/hasbyte1/go-keyed-collections/record"
)

func TestMapFuncPreservesKeys(t *testing.T) {
	c := collections.FromPairs(collections.P("a", 1), collections.P("b", 2))
	got := collections.Map(c, func(n int, _ string) string { return strconv.Itoa(n * 2) })
	assert.Equal(t, []string{"a", "b"}, got.Keys())
	assert.Equal(t, []string{"2", "4"}, got.ValueSlice())
}

func TestMapFusion(t *testing.T) {
	f := func(n, _ int) int { return n + 1 }
	g := func(n, _ int) int { return n * 3 }
	c := ints(1, 2, 3)
	stepped := collections.Map(collections.Map(c, f), g)
	fused := collections.Map(c, func(n, k int) int { return g(f(n, k), k) })
	assert.Equal(t, fused.Keys(), stepped.Keys())
	assert.Equal(t, fused.ValueSlice(), stepped.ValueSlice())
}

func TestMapMethodReturnsAny(t *testing.T) {
	got := ints(1, 2).Map(func(n, _ int) any { return n * 10 })
	assert.Equal(t, []any{10, 20}, got.ValueSlice())
	assert.Equal(t, []int{0, 1}, got.Keys())
}

// ─────────────────────────────────────────────────────────────────────────────
// MapWithKeys / MapToGroups
// ─────────────────────────────────────────────────────────────────────────────

func TestMapWithKeys(t *testing.T) {
	type release struct{ Date, Version string }
	c := collections.New(
		release{"", "0.9.0"},
		release{"2022-01-01", "1.0.0"},
	)
	keyed := collections.MapWithKeys(c, func(r release, _ int) (string, string) {
		return r.Date, r.Version
	})
	assert.Equal(t, []string{"", "2022-01-01"}, keyed.Keys())

	pruned := keyed.Forget("")
	assert.Equal(t, []string{"2022-01-01"}, pruned.Keys())
	v, _ := pruned.Get("2022-01-01")
	assert.Equal(t, "1.0.0", v)
}

func TestMapWithKeysDuplicateRepositions(t *testing.T) {
	c := collections.New("a1", "b1", "a2")
	keyed := collections.MapWithKeys(c, func(s string, _ int) (string, string) {
		return s[:1], s
	})
	// later "a" wins and sits at its own insertion point, after "b"
	assert.Equal(t, []string{"b", "a"}, keyed.Keys())
	v, _ := keyed.Get("a")
	assert.Equal(t, "a2", v)
}

func TestMapToGroups(t *testing.T) {
	type post struct{ Author, Title string }
	c := collections.New(
		post{"alice", "one"},
		post{"bob", "two"},
		post{"alice", "three"},
	)
	groups := collections.MapToGroups(c, func(p post, _ int) (string, string) {
		return p.Author, p.Title
	})
	assert.Equal(t, []string{"alice", "bob"}, groups.Keys(), "first-appearance order")
	alice, _ := groups.Get("alice")
	assert.Equal(t, []string{"one", "three"}, alice, "members in input order")
	bob, _ := groups.Get("bob")
	assert.Equal(t, []string{"two"}, bob)
}

func TestGroupBy(t *testing.T) {
	groups := collections.GroupBy(ints(1, 2, 3, 4), func(n, _ int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	odd, _ := groups.Get("odd")
	assert.Equal(t, []int{1, 3}, odd)
}

func TestKeyByLastWins(t *testing.T) {
	type user struct {
		ID   int
		Name string
	}
	byID := collections.KeyBy(
		collections.New(user{1, "old"}, user{2, "bob"}, user{1, "new"}),
		func(u user, _ int) int { return u.ID },
	)
	assert.Equal(t, 2, byID.Count())
	v, _ := byID.Get(1)
	assert.Equal(t, "new", v.Name)
}

// ─────────────────────────────────────────────────────────────────────────────
// Pluck / Flatten
// ─────────────────────────────────────────────────────────────────────────────

func TestPluck(t *testing.T) {
	users := collections.New(
		record.M{"name": "alice", "email": "a@x.io"},
		record.M{"name": "bob"},
	)
	names := collections.Pluck(users, "name")
	assert.Equal(t, []any{"alice", "bob"}, names.ValueSlice())

	emails := collections.Pluck(users, "email")
	assert.Equal(t, []any{"a@x.io", nil}, emails.ValueSlice(), "missing field plucks as nil")
	assert.Equal(t, []any{"a@x.io"}, emails.Filter().ValueSlice())
}

func TestPluckBy(t *testing.T) {
	users := collections.New(
		record.M{"name": "alice", "email": "a@x.io"},
		record.M{"name": "bob", "email": "b@x.io"},
	)
	byName := collections.PluckBy(users, "email", "name")
	assert.Equal(t, []string{"alice", "bob"}, byName.Keys())
	v, _ := byName.Get("bob")
	assert.Equal(t, "b@x.io", v)
}

func TestPluckByDuplicateKeyOverwritesInPlace(t *testing.T) {
	users := collections.New(
		record.M{"name": "alice", "email": "first@x.io"},
		record.M{"name": "bob", "email": "b@x.io"},
		record.M{"name": "alice", "email": "last@x.io"},
	)
	byName := collections.PluckBy(users, "email", "name")
	assert.Equal(t, []string{"alice", "bob"}, byName.Keys())
	v, _ := byName.Get("alice")
	assert.Equal(t, "last@x.io", v)
}

func TestPluckThenFlattenOneLevel(t *testing.T) {
	configs := collections.FromPairs(
		collections.P("app", record.M{"elements": []any{"e1"}}),
		collections.P("email", record.M{"elements": []any{"e2"}}),
	)
	flat := collections.Flatten(collections.Pluck(configs, "elements"), 1)
	assert.Equal(t, []int{0, 1}, flat.Keys())
	assert.Equal(t, []any{"e1", "e2"}, flat.ValueSlice())
}

func TestFlattenDepthOne(t *testing.T) {
	c := collections.New[any](
		[]any{1, []any{2, 3}},
		4,
	)
	flat := collections.Flatten(c, 1)
	assert.Equal(t, []any{1, []any{2, 3}, 4}, flat.ValueSlice(), "deeper nesting survives")
}

func TestFlattenFully(t *testing.T) {
	c := collections.New[any]([]any{1, []any{2, []any{3}}}, 4)
	flat := collections.Flatten(c, -1)
	assert.Equal(t, []any{1, 2, 3, 4}, flat.ValueSlice())
}

func TestFlattenNestedCollections(t *testing.T) {
	inner := collections.New("x", "y")
	c := collections.New[any](inner, "z")
	flat := collections.Flatten(c, 1)
	assert.Equal(t, []any{"x", "y", "z"}, flat.ValueSlice())
}

// ─────────────────────────────────────────────────────────────────────────────
// Push / Reduce / Max / Min / Combine
// ─────────────────────────────────────────────────────────────────────────────

func TestPushAppendsAfterMaxKey(t *testing.T) {
	c := collections.Push(ints(1, 2), 3, 4)
	assert.Equal(t, []int{0, 1, 2, 3}, c.Keys())
	assert.Equal(t, []int{1, 2, 3, 4}, c.ValueSlice())
}

func TestPushThenForgetRemovesExactlyThatItem(t *testing.T) {
	base := ints(1, 2)
	pushed := collections.Push(base, 7, 8) // 7 at key 2, 8 at key 3
	c := pushed.Forget(2)
	assert.Equal(t, []int{0, 1, 3}, c.Keys())
	v, _ := c.Get(3)
	assert.Equal(t, 8, v)
	assert.Equal(t, 2, base.Count(), "push does not touch the original")
}

func TestPushSparseKeys(t *testing.T) {
	c := collections.Push(ints(1, 2, 3).Forget(2), 9)
	// max key is still 1 after forgetting key 2
	assert.Equal(t, []int{0, 1, 2}, c.Keys())
	v, _ := c.Get(2)
	assert.Equal(t, 9, v)
}

func TestReduceFunc(t *testing.T) {
	s := collections.Reduce(ints(1, 2, 3), func(acc string, n, _ int) string {
		if acc == "" {
			return strconv.Itoa(n)
		}
		return acc + "," + strconv.Itoa(n)
	}, "")
	assert.Equal(t, "1,2,3", s)
}

func TestMaxNaturalOrdering(t *testing.T) {
	v, ok := collections.Max(ints(3, 9, 1))
	require.True(t, ok)
	assert.Equal(t, 9, v)

	s, ok := collections.Max(collections.New("pear", "apple", "plum"))
	require.True(t, ok)
	assert.Equal(t, "plum", s)
}

func TestMaxMinEmptyReturnNullMarker(t *testing.T) {
	_, ok := collections.Max(collections.Empty[int, int]())
	assert.False(t, ok)
	_, ok = collections.Min(collections.Empty[string, string]())
	assert.False(t, ok)
}

func TestCombine(t *testing.T) {
	c, err := collections.Combine([]string{"a", "b"}, []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, c.Keys())
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, c.ToMap())

	_, err = collections.Combine([]string{"a"}, []int{1, 2})
	assert.ErrorIs(t, err, collections.ErrMismatchedLengths)
}

// ─────────────────────────────────────────────────────────────────────────────
// Selectors
// ─────────────────────────────────────────────────────────────────────────────

func TestFieldSelector(t *testing.T) {
	items := collections.New(
		record.M{"text": "hello", "isTweet": true},
		record.M{"text": "draft", "isTweet": false},
		record.M{"text": "note"},
	)
	tweets := items.Filter(collections.Field[int, record.M]("isTweet"))
	assert.Equal(t, []int{0}, tweets.Keys())

	rest := items.Reject(collections.Field[int, record.M]("isTweet"))
	assert.Equal(t, []int{1, 2}, rest.Keys())
}

func TestFieldEqualsSelector(t *testing.T) {
	items := collections.New(
		record.M{"status": "open"},
		record.M{"status": "closed"},
	)
	open := items.Filter(collections.FieldEquals[int, record.M]("status", "open"))
	assert.Equal(t, 1, open.Count())
}
