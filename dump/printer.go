package dump

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
	"strconv"

	"github.com/hasbyte1/go-table-utils/table"
)

// Printer writes recursive textual renderings of tables to a Sink.
// The zero Indent means two spaces per nesting level.
//
// A Printer tracks which tables are being rendered by the in-flight Print
// call; it is not safe for concurrent use.
type Printer struct {
	Sink   Sink
	Indent string

	// tables currently on the render stack, by identity
	active map[*table.Table]struct{}
}

// Print writes t to the Sink: one entry per line, keys first, nested
// tables indented one level deeper. A table already being rendered
// higher up the recursion is written as "{...}" instead of re-entered,
// so cyclic structures terminate. The render stack is unwound on every
// exit path, including a panicking Sink, so no table stays marked.
func (p *Printer) Print(t *table.Table) {
	if p.active == nil {
		p.active = make(map[*table.Table]struct{})
	}
	indent := p.Indent
	if indent == "" {
		indent = "  "
	}
	p.printTable(t, "", indent)
	p.Sink.SetColor(ColorDefault)
	p.Sink.WriteText("\n")
}

func (p *Printer) printTable(t *table.Table, prefix, indent string) {
	p.active[t] = struct{}{}
	defer delete(p.active, t)

	p.Sink.WriteText("{\n")
	inner := prefix + indent
	for _, e := range t.Entries() {
		p.Sink.WriteText(inner)
		p.writeKey(e.Key)
		p.Sink.WriteText(": ")
		p.writeValue(e.Value, inner, indent)
		p.Sink.WriteText("\n")
	}
	p.Sink.WriteText(prefix + "}")
}

// writeKey renders a key: bare for ints and purely alphanumeric strings,
// quoted-bracket form for everything else.
func (p *Printer) writeKey(key any) {
	p.Sink.SetColor(ColorKey)
	switch k := key.(type) {
	case int:
		p.Sink.WriteText(strconv.Itoa(k))
	case string:
		if bareKey(k) {
			p.Sink.WriteText(k)
		} else {
			p.Sink.WriteText("[" + strconv.Quote(k) + "]")
		}
	default:
		p.Sink.WriteText("[" + fmt.Sprint(key) + "]")
	}
	p.Sink.SetColor(ColorDefault)
}

func (p *Printer) writeValue(val any, prefix, indent string) {
	switch v := val.(type) {
	case *table.Table:
		if _, busy := p.active[v]; busy {
			// cycle edge: skip, don't re-enter
			p.colored(ColorTable, "{...}")
			return
		}
		p.printTable(v, prefix, indent)
	case string:
		p.colored(ColorString, strconv.Quote(v))
	case bool:
		if v {
			p.colored(ColorTrue, "true")
		} else {
			p.colored(ColorFalse, "false")
		}
	default:
		rv := reflect.ValueOf(val)
		switch {
		case rv.Kind() == reflect.Func:
			p.colored(ColorFunc, strconv.Quote(funcLabel(rv)))
		case numericKind(rv.Kind()):
			p.colored(ColorNumber, fmt.Sprint(val))
		default:
			p.colored(ColorDefault, fmt.Sprint(val))
		}
	}
}

func (p *Printer) colored(c Color, text string) {
	p.Sink.SetColor(c)
	p.Sink.WriteText(text)
	p.Sink.SetColor(ColorDefault)
}

// bareKey reports whether s renders without the quoted-bracket form:
// non-empty and purely alphanumeric.
func bareKey(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// funcLabel resolves a function value to "<file> ln.<line>".
func funcLabel(rv reflect.Value) string {
	pc := rv.Pointer()
	f := runtime.FuncForPC(pc)
	if f == nil {
		return "func"
	}
	file, line := f.FileLine(pc)
	return fmt.Sprintf("%s ln.%d", filepath.Base(file), line)
}

func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
