package table_test

import (
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-table-utils/table"
)

// ─── Constructors ─────────────────────────────────────────────────────────────

func TestNew(t *testing.T) {
	tb := table.New(10, 20, 30)
	require.Equal(t, 3, tb.Len())
	require.Equal(t, []any{10, 20, 30}, tb.Values())
}

func TestEmpty(t *testing.T) {
	tb := table.Empty()
	require.True(t, tb.IsEmpty())
	require.Equal(t, 0, tb.Len())
	require.Equal(t, 0, tb.Size())
}

func TestFromMapPromotesArrayPart(t *testing.T) {
	tb := table.FromMap(map[any]any{
		1: "a", 2: "b", 3: "c", // contiguous → array part
		5:      "e", // gap at 4 → stays in hash part
		"name": "digger",
	})
	require.Equal(t, 3, tb.Len())
	require.Equal(t, 5, tb.Size())
	if diff := pretty.Diff([]any{"a", "b", "c"}, tb.Values()[:3]); len(diff) > 0 {
		t.Fatalf("array part mismatch: %v", diff)
	}
	v, ok := tb.Get(5)
	require.True(t, ok)
	require.Equal(t, "e", v)
}

// ─── Get / Set and the array-part border ──────────────────────────────────────

func TestGet(t *testing.T) {
	tb := table.New(10, 20, 30)
	tb.Set("k", "v")

	v, ok := tb.Get(2)
	require.True(t, ok)
	require.Equal(t, 20, v)

	v, ok = tb.Get("k")
	require.True(t, ok)
	require.Equal(t, "v", v)

	_, ok = tb.Get(4)
	require.False(t, ok)
	_, ok = tb.Get("missing")
	require.False(t, ok)
}

func TestSetAppendExtendsArrayPart(t *testing.T) {
	tb := table.New(1, 2)
	tb.Set(3, 3)
	require.Equal(t, 3, tb.Len())
}

func TestSetPromotesFromHashPart(t *testing.T) {
	tb := table.New(1, 2)
	tb.Set(4, 4) // gap at 3 → hash part
	tb.Set(5, 5)
	require.Equal(t, 2, tb.Len())

	tb.Set(3, 3) // fills the gap → 4 and 5 promote
	require.Equal(t, 5, tb.Len())
	require.Equal(t, []any{1, 2, 3, 4, 5}, tb.Values())
}

func TestSetNilDeletesAndDemotesTail(t *testing.T) {
	tb := table.New(1, 2, 3, 4, 5)
	tb.Set(3, nil)
	require.Equal(t, 2, tb.Len())
	require.Equal(t, 4, tb.Size()) // 4 and 5 moved to the hash part

	v, ok := tb.Get(5)
	require.True(t, ok)
	require.Equal(t, 5, v)

	tb.Set(3, 30) // refill → tail promotes back
	require.Equal(t, 5, tb.Len())
	require.Equal(t, []any{1, 2, 30, 4, 5}, tb.Values())
}

func TestSetNilDeletesHashKey(t *testing.T) {
	tb := table.Empty()
	tb.Set("k", 1)
	tb.Set("k", nil)
	require.True(t, tb.IsEmpty())
}

func TestAppend(t *testing.T) {
	tb := table.Empty()
	tb.Append(1, 2, 3)
	require.Equal(t, []any{1, 2, 3}, tb.Values())
}

// ─── Traversal views ──────────────────────────────────────────────────────────

func TestKeysAndEntries(t *testing.T) {
	tb := table.New("a", "b")
	tb.Set("x", 1)

	keys := tb.Keys()
	require.Len(t, keys, 3)
	require.Equal(t, 1, keys[0]) // array indices first, ascending
	require.Equal(t, 2, keys[1])
	require.Equal(t, "x", keys[2])

	entries := tb.Entries()
	require.Len(t, entries, 3)
	require.Equal(t, table.Entry{Key: 1, Value: "a"}, entries[0])
	require.Equal(t, "1: a", entries[0].String())
}

func TestStringArrayOnly(t *testing.T) {
	require.Equal(t, "{1, 2, 3}", table.New(1, 2, 3).String())
	require.Equal(t, "{}", table.Empty().String())
}
