// Package arr provides standalone generic helper functions for plain Go
// slices: the raw loops the table package builds its array-part
// operations on, usable directly by host code that works with []T
// instead of a full table.
//
// All helpers are generic (Go 1.18+) and operate on plain []T values —
// no wrapper type required:
//
//	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	idx   := arr.Search(names, func(s string) bool { return s == "digger" })
//	back  := arr.Reverse(evens)
//
// Transformation helpers never mutate their input; they return fresh
// slices.
package arr
