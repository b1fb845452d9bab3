package vectorized

import (
	"testing"

	"github.com/VenkatDatta/pinot/columnar"
	"github.com/stretchr/testify/require"
)

func TestDistinctReachesLimitMidBlock(t *testing.T) {
	expr, err := NewIdentifierTransform("col", columnar.INT64, true)
	require.NoError(t, err)
	exec := NewInt64DistinctOnlyExecutor(expr, 2, false)

	// Distinct count hits 2 on the second row; the duplicate and the 3
	// afterward must not be folded in.
	done, err := exec.Process(int64Block(t, "col", []int64{1, 2, 2, 3}, nil))
	require.NoError(t, err)
	require.True(t, done)
	require.Equal(t, 2, exec.ValueCount())
	require.ElementsMatch(t, []int64{1, 2}, exec.Values())
}

func TestDistinctNullOccupiesOneSlot(t *testing.T) {
	expr, err := NewIdentifierTransform("col", columnar.INT64, true)
	require.NoError(t, err)
	exec := NewInt64DistinctOnlyExecutor(expr, 3, true)

	// Limit 3 with a null row: the null takes one slot, so two distinct
	// non-null values terminate, and the placeholder never enters the set.
	block := int64Block(t, "col", []int64{1, columnar.NullInt64, 1, 3}, NullMaskOf(1))
	done, err := exec.Process(block)
	require.NoError(t, err)
	require.True(t, done)
	require.True(t, exec.HasNull())
	require.Equal(t, 2, exec.ValueCount())
	require.ElementsMatch(t, []int64{1, 3}, exec.Values())
}

func TestDistinctBelowLimitKeepsGoing(t *testing.T) {
	expr, err := NewIdentifierTransform("col", columnar.INT64, true)
	require.NoError(t, err)
	exec := NewInt64DistinctOnlyExecutor(expr, 10, false)

	done, err := exec.Process(int64Block(t, "col", []int64{1, 2, 2}, nil))
	require.NoError(t, err)
	require.False(t, done)
	done, err = exec.Process(int64Block(t, "col", []int64{2, 3}, nil))
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, 3, exec.ValueCount())
}

func TestDistinctMultiValue(t *testing.T) {
	expr, err := NewIdentifierTransform("col", columnar.INT32, false)
	require.NoError(t, err)

	t.Run("every element counts", func(t *testing.T) {
		exec := NewInt32DistinctOnlyExecutor(expr, 2, false)
		block := NewValueBlock(2)
		block.AddColumn("col", NewInt32ColumnMV([][]int32{{1, 2}, {3}}, nil))
		// The bound is hit at the second element of row 0.
		done, err := exec.Process(block)
		require.NoError(t, err)
		require.True(t, done)
		require.Equal(t, 2, exec.ValueCount())
		require.ElementsMatch(t, []int32{1, 2}, exec.Values())
	})

	t.Run("null handling flag is ignored for MV", func(t *testing.T) {
		exec := NewInt32DistinctOnlyExecutor(expr, 10, true)
		block := NewValueBlock(2)
		block.AddColumn("col", NewInt32ColumnMV([][]int32{{1}, {2}}, NullMaskOf(0)))
		done, err := exec.Process(block)
		require.NoError(t, err)
		require.False(t, done)
		require.False(t, exec.HasNull())
		require.Equal(t, 2, exec.ValueCount())
	})
}

func TestDistinctStringsSorted(t *testing.T) {
	expr, err := NewIdentifierTransform("col", columnar.STRING, true)
	require.NoError(t, err)
	exec := NewStringDistinctOnlyExecutor(expr, 10, false)

	block := NewValueBlock(3)
	block.AddColumn("col", NewStringColumnSV([]string{"pear", "apple", "pear"}, nil))
	done, err := exec.Process(block)
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, []string{"apple", "pear"}, SortedStrings(exec))
}

func TestDistinctAcrossBlocksWithNull(t *testing.T) {
	expr, err := NewIdentifierTransform("col", columnar.FLOAT64, true)
	require.NoError(t, err)
	exec := NewFloat64DistinctOnlyExecutor(expr, 3, true)

	block := NewValueBlock(2)
	block.AddColumn("col", NewFloat64ColumnSV([]float64{1.5, columnar.NullFloat64}, NullMaskOf(1)))
	done, err := exec.Process(block)
	require.NoError(t, err)
	require.False(t, done)
	require.True(t, exec.HasNull())

	// hasNull from the first block lowers the effective limit for the second.
	next := NewValueBlock(1)
	next.AddColumn("col", NewFloat64ColumnSV([]float64{2.5}, nil))
	done, err = exec.Process(next)
	require.NoError(t, err)
	require.True(t, done)
	require.Equal(t, 2, exec.ValueCount())
}

func TestDistinctSurfacesConversionError(t *testing.T) {
	expr, err := NewIdentifierTransform("col", columnar.STRING, true)
	require.NoError(t, err)

	t.Run("SV", func(t *testing.T) {
		exec := NewInt32DistinctOnlyExecutor(expr, 10, false)
		block := NewValueBlock(2)
		block.AddColumn("col", NewStringColumnSV([]string{"1", "oops"}, nil))
		done, err := exec.Process(block)
		require.ErrorIs(t, err, columnar.ErrConversion)
		require.False(t, done)
		// The batch aborts whole; not even the convertible row lands.
		require.Equal(t, 0, exec.ValueCount())
	})

	t.Run("SV with null handling", func(t *testing.T) {
		exec := NewInt32DistinctOnlyExecutor(expr, 10, true)
		block := NewValueBlock(2)
		block.AddColumn("col", NewStringColumnSV([]string{"oops", "2"}, NullMaskOf(0)))
		_, err := exec.Process(block)
		require.ErrorIs(t, err, columnar.ErrConversion)
		require.Equal(t, 0, exec.ValueCount())
	})

	t.Run("MV", func(t *testing.T) {
		mvExpr, err := NewIdentifierTransform("col", columnar.STRING, false)
		require.NoError(t, err)
		exec := NewInt32DistinctOnlyExecutor(mvExpr, 10, false)
		block := NewValueBlock(1)
		block.AddColumn("col", NewStringColumnMV([][]string{{"3", "oops"}}, nil))
		_, err = exec.Process(block)
		require.ErrorIs(t, err, columnar.ErrConversion)
		require.Equal(t, 0, exec.ValueCount())
	})

	t.Run("prior blocks survive a failed batch", func(t *testing.T) {
		exec := NewInt32DistinctOnlyExecutor(expr, 10, false)
		good := NewValueBlock(1)
		good.AddColumn("col", NewStringColumnSV([]string{"7"}, nil))
		done, err := exec.Process(good)
		require.NoError(t, err)
		require.False(t, done)

		bad := NewValueBlock(1)
		bad.AddColumn("col", NewStringColumnSV([]string{"oops"}, nil))
		_, err = exec.Process(bad)
		require.ErrorIs(t, err, columnar.ErrConversion)
		require.Equal(t, 1, exec.ValueCount())
		require.ElementsMatch(t, []int32{7}, exec.Values())
	})
}
