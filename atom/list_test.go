package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floats(vals ...float64) []Atom {
	out := make([]Atom, len(vals))
	for i, v := range vals {
		out[i] = MakeFloat(v)
	}
	return out
}

func TestNewListCopiesInput(t *testing.T) {
	src := floats(1, 2, 3)
	l := NewList(src...)
	src[0].SetFloat(99)
	assert.Equal(t, 1.0, l.At(0).Float(), "list must not alias caller storage")
}

func TestEmptyListHasNoStorage(t *testing.T) {
	l := NewList()
	assert.Equal(t, 0, l.Count())
	assert.Nil(t, l.Atoms())

	l.Append(MakeInt(1))
	l.Clear()
	assert.Nil(t, l.Atoms(), "Clear releases storage")
}

func TestAppendPrepend(t *testing.T) {
	l := NewList(MakeFloat(2))
	l.Append(MakeFloat(3))
	l.Prepend(MakeFloat(1))
	require.Equal(t, 3, l.Count())
	for i, want := range []float64{1, 2, 3} {
		assert.Equal(t, want, l.At(i).Float())
	}
}

func TestAppendPrependList(t *testing.T) {
	l := NewList(floats(3, 4)...)
	l.AppendList(NewList(floats(5, 6)...))
	l.PrependList(NewList(floats(1, 2)...))
	require.Equal(t, 6, l.Count())
	for i, want := range []float64{1, 2, 3, 4, 5, 6} {
		assert.Equal(t, want, l.At(i).Float())
	}

	// Appending an empty list is a no-op.
	before := l.Count()
	l.AppendList(NewList())
	assert.Equal(t, before, l.Count())
}

func TestGetPartFullRangeDeepCopies(t *testing.T) {
	l := NewList(floats(1, 2, 3)...)
	part := l.GetPart(0, l.Count())

	require.Equal(t, l.Count(), part.Count())
	for i := 0; i < l.Count(); i++ {
		assert.Equal(t, l.At(i).Float(), part.At(i).Float())
	}

	// Mutating the copy never affects the original.
	part.At(1).SetFloat(42)
	assert.Equal(t, 2.0, l.At(1).Float())
}

func TestGetPartClamping(t *testing.T) {
	l := NewList(floats(1, 2, 3)...)

	p1 := l.GetPart(1, 5)
	assert.Equal(t, 2, p1.Count())
	p2 := l.GetPart(5, 2)
	assert.Equal(t, 0, p2.Count())
	p3 := l.GetPart(0, -1)
	assert.Equal(t, 0, p3.Count())

	mid := l.GetPart(1, 1)
	require.Equal(t, 1, mid.Count())
	assert.Equal(t, 2.0, mid.At(0).Float())
}

func TestPartReducesInPlace(t *testing.T) {
	l := NewList(floats(1, 2, 3, 4)...)
	l.Part(1, 2)
	require.Equal(t, 2, l.Count())
	assert.Equal(t, 2.0, l.At(0).Float())
	assert.Equal(t, 3.0, l.At(1).Float())
}

func TestSetDeepCopies(t *testing.T) {
	src := floats(7, 8)
	var l List
	l.Set(src)
	src[1].SetFloat(0)
	assert.Equal(t, 8.0, l.At(1).Float())
}

func TestCloneIndependence(t *testing.T) {
	l := NewList(floats(1, 2)...)
	c := l.Clone()
	c.At(0).SetFloat(9)
	assert.Equal(t, 1.0, l.At(0).Float())
}

func TestAnythingHeaderAndArgs(t *testing.T) {
	any := NewAnythingString("set", floats(1, 2)...)
	assert.Equal(t, "set", any.Header().Name())
	assert.Equal(t, 2, any.Count())

	clone := any.CloneAnything()
	clone.At(0).SetFloat(99)
	assert.Equal(t, 1.0, any.At(0).Float())
	assert.Same(t, any.Header(), clone.Header())
}
