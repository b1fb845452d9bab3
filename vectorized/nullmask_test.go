package vectorized

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNullMaskAbsentVsEmpty(t *testing.T) {
	var absent *NullMask
	require.True(t, absent.IsEmpty())
	require.False(t, absent.Contains(0))
	require.Equal(t, 0, absent.Cardinality())
	require.Nil(t, absent.Rows())
	require.Nil(t, absent.Normalize())
	require.Nil(t, absent.Clone())

	empty := NewNullMask()
	require.True(t, empty.IsEmpty())
	require.Nil(t, empty.Normalize(), "empty present masks normalize to absent")
}

func TestNullMaskRows(t *testing.T) {
	mask := NullMaskOf(4, 1, 9)
	require.Equal(t, []int{1, 4, 9}, mask.Rows())
	require.True(t, mask.Contains(4))
	require.False(t, mask.Contains(2))
	require.Equal(t, 3, mask.Cardinality())
	require.NotNil(t, mask.Normalize())
}

func TestNullMaskRange(t *testing.T) {
	mask := NullMaskOfRange(5)
	require.Equal(t, []int{0, 1, 2, 3, 4}, mask.Rows())
}

func TestNullMaskUnion(t *testing.T) {
	mask := NullMaskOf(1)
	mask.Or(NullMaskOf(3))
	mask.Or(nil) // absent operand is a no-op
	require.Equal(t, []int{1, 3}, mask.Rows())
}

func TestNullMaskCloneIndependent(t *testing.T) {
	mask := NullMaskOf(2)
	clone := mask.Clone()
	clone.Add(5)
	require.False(t, mask.Contains(5))
	require.True(t, clone.Contains(5))
}
