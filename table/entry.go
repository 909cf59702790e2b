package table

import "fmt"

// Entry holds one key/value pair of a Table. It is the element type
// produced by [Table.Entries].
type Entry struct {
	Key   any
	Value any
}

// String returns a human-readable representation: "key: value".
func (e Entry) String() string {
	return fmt.Sprintf("%v: %v", e.Key, e.Value)
}
