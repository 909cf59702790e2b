package table

import (
	"fmt"
	"reflect"
	"strings"
)

// Table is a mutable, dynamically-typed container with a 1-indexed array
// part and an arbitrary-key hash part.
//
// The array part is the maximal contiguous run of integer keys 1..N; all
// other keys live in the hash part. Operations prefixed with I traverse
// the array part in ascending index order; unprefixed operations traverse
// every key in unspecified order (hash-part iteration rides on Go's map
// range order, which is deliberately randomized).
//
// A Table is not safe for concurrent mutation; the target runtime is
// single-threaded and the type carries no locking.
type Table struct {
	arr  []any
	hash map[any]any
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Table whose array part is the given values, in order.
// The variadic slice is adopted, not copied: New is the cheap "attach
// behavior to a literal" constructor.
func New(values ...any) *Table {
	return &Table{arr: values}
}

// Empty creates a Table with no entries.
func Empty() *Table {
	return &Table{}
}

// FromMap creates a Table that takes ownership of m. The maximal
// contiguous run of int keys 1..N is promoted into the array part; every
// remaining key stays in the hash part. m must not be used afterwards.
func FromMap(m map[any]any) *Table {
	t := &Table{hash: m}
	if t.hash == nil {
		t.hash = map[any]any{}
	}
	t.promote()
	return t
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the length of the array part.
func (t *Table) Len() int { return len(t.arr) }

// Size returns the total number of keys, array part included.
func (t *Table) Size() int { return len(t.arr) + len(t.hash) }

// IsEmpty reports whether the table has no entries at all.
func (t *Table) IsEmpty() bool { return t.Size() == 0 }

// Get returns the value stored under key together with a presence flag.
// Integer keys 1..Len() read the array part.
func (t *Table) Get(key any) (any, bool) {
	if i, ok := key.(int); ok && i >= 1 && i <= len(t.arr) {
		return t.arr[i-1], true
	}
	if !comparableValue(key) {
		return nil, false
	}
	v, ok := t.hash[key]
	return v, ok
}

// Keys returns every key: array-part indices 1..Len() first, then hash
// keys in unspecified order.
func (t *Table) Keys() []any {
	keys := make([]any, 0, t.Size())
	for i := range t.arr {
		keys = append(keys, i+1)
	}
	for k := range t.hash {
		keys = append(keys, k)
	}
	return keys
}

// Values returns every value, array part first in index order, then hash
// values in unspecified order.
func (t *Table) Values() []any {
	vals := make([]any, 0, t.Size())
	vals = append(vals, t.arr...)
	for _, v := range t.hash {
		vals = append(vals, v)
	}
	return vals
}

// Entries returns every key/value pair: the array part in ascending index
// order followed by the hash part in unspecified order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, t.Size())
	for i, v := range t.arr {
		entries = append(entries, Entry{Key: i + 1, Value: v})
	}
	for k, v := range t.hash {
		entries = append(entries, Entry{Key: k, Value: v})
	}
	return entries
}

// String renders the table for debugging, array part first.
// It implements [fmt.Stringer]. For colorized recursive output use the
// dump package.
func (t *Table) String() string {
	parts := make([]string, 0, t.Size())
	for _, v := range t.arr {
		parts = append(parts, fmt.Sprint(v))
	}
	for k, v := range t.hash {
		parts = append(parts, fmt.Sprintf("%v: %v", k, v))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Set stores value under key, maintaining the array-part border:
//
//   - an int key 1..Len() writes the array part in place;
//   - the int key Len()+1 appends, then promotes any int keys out of the
//     hash part that have become contiguous;
//   - a nil value deletes the key — a deletion inside the array part
//     truncates the array part at the gap and demotes the tail into the
//     hash part.
//
// Any other key writes the hash part.
func (t *Table) Set(key, value any) {
	if i, ok := key.(int); ok && i >= 1 {
		if value == nil {
			t.deleteIndex(i)
			return
		}
		switch {
		case i <= len(t.arr):
			t.arr[i-1] = value
			return
		case i == len(t.arr)+1:
			t.arr = append(t.arr, value)
			t.promote()
			return
		}
	}
	if !comparableValue(key) {
		return
	}
	if value == nil {
		delete(t.hash, key)
		return
	}
	if t.hash == nil {
		t.hash = map[any]any{}
	}
	t.hash[key] = value
}

// Append appends values to the end of the array part.
func (t *Table) Append(values ...any) {
	for _, v := range values {
		t.Set(len(t.arr)+1, v)
	}
}

// deleteIndex removes array index i, demoting everything past the new gap
// into the hash part so the array-part invariant holds.
func (t *Table) deleteIndex(i int) {
	if i > len(t.arr) {
		delete(t.hash, i)
		return
	}
	if tail := t.arr[i:]; len(tail) > 0 {
		if t.hash == nil {
			t.hash = map[any]any{}
		}
		for j, v := range tail {
			t.hash[i+1+j] = v
		}
	}
	t.arr = t.arr[:i-1]
}

// promote moves int keys out of the hash part while they extend the
// array part contiguously.
func (t *Table) promote() {
	for {
		next := len(t.arr) + 1
		v, ok := t.hash[next]
		if !ok {
			break
		}
		t.arr = append(t.arr, v)
		delete(t.hash, next)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Host value helpers
// ─────────────────────────────────────────────────────────────────────────────

// comparableValue reports whether v may be used with == (and as a map
// key) without panicking.
func comparableValue(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}

// rawEqual is the library's equality: Go == guarded against
// non-comparable dynamic types, which never match anything.
func rawEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !comparableValue(a) || !comparableValue(b) {
		return false
	}
	return a == b
}

// toFloat converts a numeric host value to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
