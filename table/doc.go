// Package table provides a dynamically-typed, 1-indexed table — an ordered
// array part fused with an arbitrary-key hash part — together with the
// higher-order iteration helpers automation scripts lean on: map, filter,
// reduce, predicate tests, slicing, joining and a few array builders.
//
// # The table shape
//
// A Table maps keys to values of any type. Keys that form a contiguous run
// of integers 1..N make up the "array part"; every other key lives in the
// "hash part". The split matters because it decides ordering:
//
//   - I-prefixed operations (IMap, IFilter, IReduce, …) walk the array part
//     only, in ascending index order.
//   - Unprefixed operations (Map, Filter, Reduce, …) walk every key, in
//     unspecified order.
//
// # Creating a table
//
//	t := table.New(10, 20, 30)             // array part 1..3
//	t := table.FromMap(map[any]any{
//	    1: "a", 2: "b", "name": "digger",  // 1,2 → array part
//	})
//	t := table.Empty()
//
// # Callbacks
//
// Transform callbacks receive (value, key-or-index, receiver) and return a
// replacement value. Returning nil drops the slot or key from the result,
// so "return nothing" and "filter this out" are the same thing:
//
//	evens := t.IMap(func(v any, i int, _ *table.Table) any {
//	    if v.(int)%2 == 0 {
//	        return v
//	    }
//	    return nil
//	})
//
// Predicate callbacks (IEvery, Any, IFilter, …) return bool instead.
//
// # Mutation and the array-part border
//
// Set maintains the array/hash split automatically: writing index N+1
// grows the array part (and promotes now-contiguous integer keys out of
// the hash part); writing nil deletes a key, and a deletion inside the
// array part demotes everything after the new gap into the hash part.
//
// # Macros (runtime extension)
//
// Scripts can register named table operations at runtime via
// [RegisterMacro] and invoke them with [Table.Macro].
package table
