package table

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// IMap calls fn(value, index, t) for every array-part index in ascending
// order and appends each non-nil result to the array part of a new table.
// Nil results are dropped outright, so the output can be shorter than the
// input — there is no gap left behind.
func (t *Table) IMap(fn func(v any, i int, t *Table) any) *Table {
	out := Empty()
	for i, v := range t.arr {
		if r := fn(v, i+1, t); r != nil {
			out.arr = append(out.arr, r)
		}
	}
	return out
}

// Map calls fn(value, key, t) for every key (order unspecified) and
// assigns each non-nil result to the same key in a new table. A nil
// result omits the key. Note that omitting an array-part key splits the
// output's array part: integer keys past the gap land in its hash part.
func (t *Table) Map(fn func(v, k any, t *Table) any) *Table {
	out := Empty()
	for _, e := range t.Entries() {
		if r := fn(e.Value, e.Key, t); r != nil {
			out.Set(e.Key, r)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// IForEach calls fn(value, index, t) for every array-part index in
// ascending order.
func (t *Table) IForEach(fn func(v any, i int, t *Table)) {
	for i, v := range t.arr {
		fn(v, i+1, t)
	}
}

// ForEach calls fn(value, key, t) for every key, in unspecified order.
func (t *Table) ForEach(fn func(v, k any, t *Table)) {
	for _, e := range t.Entries() {
		fn(e.Value, e.Key, t)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Reduction
// ─────────────────────────────────────────────────────────────────────────────

// IReduce folds the array part in ascending index order:
// acc = fn(acc, value, index, t), starting from initial.
func (t *Table) IReduce(fn func(acc, v any, i int, t *Table) any, initial any) any {
	acc := initial
	for i, v := range t.arr {
		acc = fn(acc, v, i+1, t)
	}
	return acc
}

// Reduce folds every key in unspecified order:
// acc = fn(acc, value, key, t), starting from initial. Supply fn only
// when it is associative and commutative, or accept a non-deterministic
// fold order.
func (t *Table) Reduce(fn func(acc, v, k any, t *Table) any, initial any) any {
	acc := initial
	for _, e := range t.Entries() {
		acc = fn(acc, e.Value, e.Key, t)
	}
	return acc
}

// Sum returns the arithmetic sum of the array part, 0 when it is empty.
// It fails with [ErrNonNumeric] on the first value that is not a number.
func (t *Table) Sum() (float64, error) {
	var total float64
	for i, v := range t.arr {
		n, ok := toFloat(v)
		if !ok {
			return 0, fmt.Errorf("%w at index %d (%T)", ErrNonNumeric, i+1, v)
		}
		total += n
	}
	return total, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicate tests
// ─────────────────────────────────────────────────────────────────────────────

// IEvery reports whether fn(value, index, t) holds for every array-part
// value, walking ascending. It short-circuits on the first false result.
// True for an empty array part.
func (t *Table) IEvery(fn func(v any, i int, t *Table) bool) bool {
	for i, v := range t.arr {
		if !fn(v, i+1, t) {
			return false
		}
	}
	return true
}

// Every reports whether fn(value, key, t) holds for every key (order
// unspecified). It short-circuits on the first false result.
func (t *Table) Every(fn func(v, k any, t *Table) bool) bool {
	for _, e := range t.Entries() {
		if !fn(e.Value, e.Key, t) {
			return false
		}
	}
	return true
}

// IAny reports whether fn(value, index, t) holds for at least one
// array-part value, walking ascending. It short-circuits on the first
// true result. False for an empty array part.
func (t *Table) IAny(fn func(v any, i int, t *Table) bool) bool {
	for i, v := range t.arr {
		if fn(v, i+1, t) {
			return true
		}
	}
	return false
}

// Any reports whether fn(value, key, t) holds for at least one key
// (order unspecified). It short-circuits on the first true result.
func (t *Table) Any(fn func(v, k any, t *Table) bool) bool {
	for _, e := range t.Entries() {
		if fn(e.Value, e.Key, t) {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// IFilter returns a new table whose array part holds, in the original
// ascending order, only the values for which fn(value, index, t) is true.
// The result is densely re-indexed from 1; original indices are not kept.
func (t *Table) IFilter(fn func(v any, i int, t *Table) bool) *Table {
	out := Empty()
	for i, v := range t.arr {
		if fn(v, i+1, t) {
			out.arr = append(out.arr, v)
		}
	}
	return out
}

// Filter returns a new table holding, under their original keys, every
// entry for which fn(value, key, t) is true. Evaluation order is
// unspecified. Keys filtered out are simply absent — for array-part keys
// this splits the output the same way [Table.Map] does.
func (t *Table) Filter(fn func(v, k any, t *Table) bool) *Table {
	out := Empty()
	for _, e := range t.Entries() {
		if fn(e.Value, e.Key, t) {
			out.Set(e.Key, e.Value)
		}
	}
	return out
}
