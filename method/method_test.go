package method

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mipi54/flext/atom"
	"github.com/mipi54/flext/errors"
	"github.com/mipi54/flext/symbol"
)

func TestAddValidatesSignature(t *testing.T) {
	tbl := NewTable()

	err := tbl.Add(0, "set", nil, ArgFloat)
	assert.Error(t, err, "nil handler rejected")

	err = tbl.Add(0, "set", func(*symbol.Symbol, []atom.Atom) bool { return true },
		ArgGimme, ArgFloat)
	assert.Error(t, err, "variadic marker must be last")
	assert.True(t, errors.IsInvalid(err))
}

func TestArgNullTerminatesSignature(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.Add(0, "set",
		func(_ *symbol.Symbol, args []atom.Atom) bool { return len(args) == 1 },
		ArgFloat, ArgNull, ArgSymbol))

	// Effective signature is (float): the markers after ArgNull are cut.
	ok := tbl.Dispatch(0, symbol.Intern("set"), []atom.Atom{atom.MakeFloat(1)})
	assert.True(t, ok)
}

func TestFrozenTableRejectsRegistration(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.AddBang(0, func() bool { return true }))
	tbl.Freeze()

	err := tbl.AddBang(0, func() bool { return true })
	require.Error(t, err)
	assert.True(t, errors.IsState(err))
	assert.Equal(t, 1, tbl.Len(), "frozen table unchanged")
}

func TestAddCopiesSignature(t *testing.T) {
	tbl := NewTable()
	sig := []Arg{ArgFloat}
	require.NoError(t, tbl.Add(0, "set",
		func(*symbol.Symbol, []atom.Atom) bool { return true }, sig...))
	sig[0] = ArgSymbol

	ok := tbl.Dispatch(0, symbol.Intern("set"), []atom.Atom{atom.MakeFloat(1)})
	assert.True(t, ok, "table must own its signature storage")
}
