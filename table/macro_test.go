package table_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-table-utils/table"
)

func TestMacroRegistration(t *testing.T) {
	defer table.FlushMacros()

	require.False(t, table.HasMacro("evens"))
	table.RegisterMacro("evens", func(tb *table.Table, _ ...any) any {
		return tb.IFilter(func(v any, _ int, _ *table.Table) bool {
			n, ok := v.(int)
			return ok && n%2 == 0
		})
	})
	require.True(t, table.HasMacro("evens"))

	res, err := table.New(1, 2, 3, 4).Macro("evens")
	require.NoError(t, err)
	require.Equal(t, []any{2, 4}, res.(*table.Table).Values())
}

func TestMacroArgsForwarded(t *testing.T) {
	defer table.FlushMacros()

	table.RegisterMacro("nth", func(tb *table.Table, args ...any) any {
		v, _ := tb.Get(args[0].(int))
		return v
	})
	res, err := table.New("a", "b", "c").Macro("nth", 2)
	require.NoError(t, err)
	require.Equal(t, "b", res)
}

func TestMacroNotFound(t *testing.T) {
	defer table.FlushMacros()

	_, err := table.New(1).Macro("missing")
	require.ErrorIs(t, err, table.ErrMacroNotFound)
}

func TestFlushMacros(t *testing.T) {
	table.RegisterMacro("tmp", func(tb *table.Table, _ ...any) any { return nil })
	table.FlushMacros()
	require.False(t, table.HasMacro("tmp"))
}
