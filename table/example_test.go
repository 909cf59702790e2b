package table_test

import (
	"fmt"

	"github.com/hasbyte1/go-table-utils/table"
)

func ExampleNew() {
	t := table.New(1, 2, 3)
	sum, _ := t.Sum()
	fmt.Println(t.Len(), sum)
	// Output: 3 6
}

func ExampleTable_IMap() {
	doubled := table.New(1, 2, 3).IMap(func(v any, _ int, _ *table.Table) any {
		return v.(int) * 2
	})
	fmt.Println(doubled.Join())
	// Output: 2, 4, 6
}

func ExampleTable_IFilter() {
	odds := table.New(1, 2, 3, 4, 5).IFilter(func(v any, _ int, _ *table.Table) bool {
		return v.(int)%2 == 1
	})
	fmt.Println(odds.Join())
	// Output: 1, 3, 5
}

func ExampleTable_IReduce() {
	product := table.New(2, 3, 4).IReduce(func(acc, v any, _ int, _ *table.Table) any {
		return acc.(int) * v.(int)
	}, 1)
	fmt.Println(product)
	// Output: 24
}

func ExampleBuild() {
	squares := table.Build(4, func(i int) any { return i * i })
	fmt.Println(squares.Join())
	// Output: 1, 4, 9, 16
}

func ExampleTable_Slice() {
	t := table.New("a", "b", "c", "d", "e")
	mid, _ := t.Slice(2, 4)
	tail, _ := t.Slice(-2)
	fmt.Println(mid.Join() + " | " + tail.Join())
	// Output: b, c, d | d, e
}

func ExampleTable_IndexOf() {
	t := table.New(10, 20, 30)
	i, ok := t.IndexOf(20)
	fmt.Println(i, ok)
	_, ok = t.IndexOf(99)
	fmt.Println(ok)
	// Output:
	// 2 true
	// false
}
