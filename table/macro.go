package table

import (
	"fmt"
	"sync"
)

// MacroFunc is the function signature for a registered macro: a named
// table operation installed at runtime, typically by the host script
// environment during startup.
type MacroFunc func(t *Table, args ...any) any

// macroRegistry is the package-level, goroutine-safe macro store.
var macroRegistry struct {
	mu     sync.RWMutex
	macros map[string]MacroFunc
}

func init() {
	macroRegistry.macros = make(map[string]MacroFunc)
}

// RegisterMacro adds a named macro to the global registry, replacing any
// macro already registered under name. Safe to call from multiple
// goroutines.
//
// Example — register a macro that keeps only even integers:
//
//	table.RegisterMacro("evens", func(t *table.Table, _ ...any) any {
//	    return t.IFilter(func(v any, _ int, _ *table.Table) bool {
//	        n, ok := v.(int)
//	        return ok && n%2 == 0
//	    })
//	})
//
//	res, _ := table.New(1, 2, 3, 4).Macro("evens")
func RegisterMacro(name string, fn MacroFunc) {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros[name] = fn
}

// HasMacro reports whether a macro with the given name is registered.
func HasMacro(name string) bool {
	macroRegistry.mu.RLock()
	defer macroRegistry.mu.RUnlock()
	_, ok := macroRegistry.macros[name]
	return ok
}

// FlushMacros removes all registered macros.
// Intended for use in tests.
func FlushMacros() {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros = make(map[string]MacroFunc)
}

// CallMacro calls the named macro on t, forwarding args.
// Returns (nil, ErrMacroNotFound) if no macro is registered under name.
func CallMacro(name string, t *Table, args ...any) (any, error) {
	macroRegistry.mu.RLock()
	fn, ok := macroRegistry.macros[name]
	macroRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	return fn(t, args...), nil
}

// Macro calls the named registered macro on t, forwarding args.
// This is a convenience wrapper around the package-level [CallMacro].
func (t *Table) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, t, args...)
}
