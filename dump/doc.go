// Package dump renders tables as bracketed, indented, colorized text for
// diagnostics — one entry per line, recursing into nested tables.
//
// Output goes to a [Sink], a minimal two-method text/color destination
// injected into the [Printer]; nothing in the package touches a terminal
// directly. [ANSISink] is the stock Sink for ANSI terminals:
//
//	t := table.New(10, 20, 30)
//	t.Set("name", "digger")
//
//	dump.Stdout().Print(t)
//
// or, with an explicit sink:
//
//	p := dump.Printer{Sink: &dump.ANSISink{W: os.Stderr, Enabled: true}}
//	p.Print(t)
//
// Self-referential tables are safe to print: a table already being
// rendered higher up the recursion is not re-entered.
package dump
