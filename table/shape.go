package table

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-table-utils/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// IndexOf returns the smallest array-part index holding a value equal to
// item, with a presence flag. Equality is Go == (non-comparable values
// never match).
func (t *Table) IndexOf(item any) (int, bool) {
	i := arr.Search(t.arr, func(v any) bool { return rawEqual(v, item) })
	if i < 0 {
		return 0, false
	}
	return i + 1, true
}

// LastIndexOf returns the largest array-part index holding a value equal
// to item, scanning from the end, with a presence flag.
func (t *Table) LastIndexOf(item any) (int, bool) {
	i := arr.SearchLast(t.arr, func(v any) bool { return rawEqual(v, item) })
	if i < 0 {
		return 0, false
	}
	return i + 1, true
}

// FindFirstKey returns some key whose value equals item, with a presence
// flag. Among several matching hash keys the choice is unspecified;
// array-part matches are found first.
func (t *Table) FindFirstKey(item any) (any, bool) {
	for _, e := range t.Entries() {
		if rawEqual(e.Value, item) {
			return e.Key, true
		}
	}
	return nil, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Construction & shaping
// ─────────────────────────────────────────────────────────────────────────────

// Build constructs a table with an array part of length entries. When
// init is a func(int) any, entry i is init(i) (1-indexed); otherwise
// every entry is the literal init value. A non-positive length yields an
// empty table.
func Build(length int, init any) *Table {
	if length <= 0 {
		return Empty()
	}
	out := &Table{arr: make([]any, 0, length)}
	fn, callable := init.(func(int) any)
	for i := 1; i <= length; i++ {
		if callable {
			out.arr = append(out.arr, fn(i))
		} else {
			out.arr = append(out.arr, init)
		}
	}
	return out
}

// Slice returns a new table holding array-part values from a start index
// to an end index inclusive, both 1-indexed. Calling it with no bounds is
// an error ([ErrMissingBounds]).
//
// With a single bound n: a negative n selects the last |n| elements
// (window [Len()+n+1, Len()]); a non-negative n selects the window
// [0, n] — slot 0 sits before the first element of a 1-based table and
// contributes nothing, so this is effectively [1, n].
//
// With two bounds, each negative value translates as Len()+value — one
// less than the single-bound translation. The asymmetry is kept on
// purpose so existing automation scripts see unchanged windows.
func (t *Table) Slice(bounds ...int) (*Table, error) {
	var start, end int
	switch len(bounds) {
	case 0:
		return nil, ErrMissingBounds
	case 1:
		if n := bounds[0]; n < 0 {
			start, end = len(t.arr)+n+1, len(t.arr)
		} else {
			start, end = 0, n
		}
	default:
		start, end = bounds[0], bounds[1]
		if start < 0 {
			start = len(t.arr) + start
		}
		if end < 0 {
			end = len(t.arr) + end
		}
	}
	out := Empty()
	for i := start; i <= end; i++ {
		if i >= 1 && i <= len(t.arr) {
			out.arr = append(out.arr, t.arr[i-1])
		}
	}
	return out, nil
}

// Join concatenates the string form of every array-part value, separated
// by delim (default ", "). An empty array part joins to "".
func (t *Table) Join(delim ...string) string {
	d := ", "
	if len(delim) > 0 {
		d = delim[0]
	}
	parts := arr.Map(t.arr, func(v any, _ int) string { return fmt.Sprint(v) })
	return strings.Join(parts, d)
}

// Reverse returns a new table whose array part holds t's array-part
// values in reverse order. t is not mutated; its hash part is not
// carried over.
func (t *Table) Reverse() *Table {
	return &Table{arr: arr.Reverse(t.arr)}
}
