package dump_test

import (
	"os"

	"github.com/hasbyte1/go-table-utils/dump"
	"github.com/hasbyte1/go-table-utils/table"
)

func ExamplePrinter_Print() {
	t := table.New(10, true)
	t.Set("name", "digger")

	// color disabled so the escapes don't clutter the output
	p := dump.Printer{Sink: &dump.ANSISink{W: os.Stdout}}
	p.Print(t)
	// Output:
	// {
	//   1: 10
	//   2: true
	//   name: "digger"
	// }
}

func ExamplePrinter_Print_nested() {
	t := table.New("fuel", table.New(64, 32))

	p := dump.Printer{Sink: &dump.ANSISink{W: os.Stdout}}
	p.Print(t)
	// Output:
	// {
	//   1: "fuel"
	//   2: {
	//     1: 64
	//     2: 32
	//   }
	// }
}
