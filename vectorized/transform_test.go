package vectorized

import (
	"errors"
	"math"
	"testing"

	"github.com/VenkatDatta/pinot/columnar"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func int64Block(t *testing.T, column string, values []int64, nulls *NullMask) *ValueBlock {
	t.Helper()
	block := NewValueBlock(len(values))
	block.AddColumn(column, NewInt64ColumnSV(values, nulls))
	return block
}

func TestIdentityMaterialization(t *testing.T) {
	t.Run("int64 SV", func(t *testing.T) {
		expr, err := NewIdentifierTransform("col", columnar.INT64, true)
		require.NoError(t, err)
		block := int64Block(t, "col", []int64{1, 2, 3}, nil)
		values, err := expr.TransformToInt64ValuesSV(block)
		require.NoError(t, err)
		require.Equal(t, []int64{1, 2, 3}, values)
	})

	t.Run("string SV", func(t *testing.T) {
		expr, err := NewIdentifierTransform("col", columnar.STRING, true)
		require.NoError(t, err)
		block := NewValueBlock(2)
		block.AddColumn("col", NewStringColumnSV([]string{"a", "b"}, nil))
		values, err := expr.TransformToStringValuesSV(block)
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b"}, values)
	})

	t.Run("float64 MV", func(t *testing.T) {
		expr, err := NewIdentifierTransform("col", columnar.FLOAT64, false)
		require.NoError(t, err)
		block := NewValueBlock(2)
		block.AddColumn("col", NewFloat64ColumnMV([][]float64{{1.5, 2.5}, {}}, nil))
		values, err := expr.TransformToFloat64ValuesMV(block)
		require.NoError(t, err)
		require.Equal(t, [][]float64{{1.5, 2.5}, {}}, values)
	})

	t.Run("timestamp reads through INT64 stored type", func(t *testing.T) {
		expr, err := NewIdentifierTransform("ts", columnar.TIMESTAMP, true)
		require.NoError(t, err)
		block := int64Block(t, "ts", []int64{1700000000000}, nil)
		values, err := expr.TransformToInt64ValuesSV(block)
		require.NoError(t, err)
		require.Equal(t, int64(1700000000000), values[0])
	})
}

func TestDerivedMaterialization(t *testing.T) {
	t.Run("int64 to int32 wraps", func(t *testing.T) {
		expr, err := NewIdentifierTransform("col", columnar.INT64, true)
		require.NoError(t, err)
		block := int64Block(t, "col", []int64{1 << 32, 7, -1}, nil)
		values, err := expr.TransformToInt32ValuesSV(block)
		require.NoError(t, err)
		require.Equal(t, []int32{0, 7, -1}, values)
	})

	t.Run("int32 to string", func(t *testing.T) {
		expr, err := NewIdentifierTransform("col", columnar.INT32, true)
		require.NoError(t, err)
		block := NewValueBlock(2)
		block.AddColumn("col", NewInt32ColumnSV([]int32{-5, 12}, nil))
		values, err := expr.TransformToStringValuesSV(block)
		require.NoError(t, err)
		require.Equal(t, []string{"-5", "12"}, values)
	})

	t.Run("string to float64", func(t *testing.T) {
		expr, err := NewIdentifierTransform("col", columnar.STRING, true)
		require.NoError(t, err)
		block := NewValueBlock(2)
		block.AddColumn("col", NewStringColumnSV([]string{"2.5", "-1"}, nil))
		values, err := expr.TransformToFloat64ValuesSV(block)
		require.NoError(t, err)
		require.Equal(t, []float64{2.5, -1}, values)
	})

	t.Run("unparsable string aborts the batch", func(t *testing.T) {
		expr, err := NewIdentifierTransform("col", columnar.STRING, true)
		require.NoError(t, err)
		block := NewValueBlock(2)
		block.AddColumn("col", NewStringColumnSV([]string{"1", "oops"}, nil))
		_, err = expr.TransformToInt32ValuesSV(block)
		require.ErrorIs(t, err, columnar.ErrConversion)
	})

	t.Run("decimal to bytes round trips", func(t *testing.T) {
		expr, err := NewIdentifierTransform("col", columnar.DECIMAL, true)
		require.NoError(t, err)
		v := decimal.RequireFromString("12.34")
		block := NewValueBlock(1)
		block.AddColumn("col", NewDecimalColumnSV([]decimal.Decimal{v}, nil))
		values, err := expr.TransformToBytesValuesSV(block)
		require.NoError(t, err)
		decoded, err := columnar.DeserializeDecimal(values[0])
		require.NoError(t, err)
		require.True(t, decoded.Equal(v))
	})

	t.Run("MV derivation preserves row shapes", func(t *testing.T) {
		expr, err := NewIdentifierTransform("col", columnar.INT64, false)
		require.NoError(t, err)
		block := NewValueBlock(3)
		block.AddColumn("col", NewInt64ColumnMV([][]int64{{1 << 32, 2}, {}, {3}}, nil))
		values, err := expr.TransformToInt32ValuesMV(block)
		require.NoError(t, err)
		require.Equal(t, [][]int32{{0, 2}, {}, {3}}, values)
	})

	t.Run("float truncates toward zero", func(t *testing.T) {
		expr, err := NewIdentifierTransform("col", columnar.FLOAT64, true)
		require.NoError(t, err)
		block := NewValueBlock(2)
		block.AddColumn("col", NewFloat64ColumnSV([]float64{-3.9, 3.9}, nil))
		values, err := expr.TransformToInt64ValuesSV(block)
		require.NoError(t, err)
		require.Equal(t, []int64{-3, 3}, values)
	})
}

func TestIllegalConversion(t *testing.T) {
	t.Run("int64 has no bytes form", func(t *testing.T) {
		expr, err := NewIdentifierTransform("col", columnar.INT64, true)
		require.NoError(t, err)
		block := int64Block(t, "col", []int64{1}, nil)
		_, err = expr.TransformToBytesValuesSV(block)
		require.ErrorIs(t, err, ErrIllegalConversion)
	})

	t.Run("bytes has no numeric form", func(t *testing.T) {
		expr, err := NewIdentifierTransform("col", columnar.BYTES, true)
		require.NoError(t, err)
		block := NewValueBlock(1)
		block.AddColumn("col", NewBytesColumnSV([][]byte{{0x01}}, nil))
		_, err = expr.TransformToInt32ValuesSV(block)
		require.ErrorIs(t, err, ErrIllegalConversion)
	})

	t.Run("SV column has no MV form of its own type", func(t *testing.T) {
		expr, err := NewIdentifierTransform("col", columnar.INT64, true)
		require.NoError(t, err)
		block := int64Block(t, "col", []int64{1}, nil)
		_, err = expr.TransformToInt64ValuesMV(block)
		require.ErrorIs(t, err, ErrIllegalConversion)
	})
}

func TestScratchBufferReuse(t *testing.T) {
	expr, err := NewIdentifierTransform("col", columnar.INT64, true)
	require.NoError(t, err)

	first, err := expr.TransformToInt32ValuesSV(int64Block(t, "col", []int64{1, 2, 3, 4, 5}, nil))
	require.NoError(t, err)
	require.Len(t, first, 5)

	second, err := expr.TransformToInt32ValuesSV(int64Block(t, "col", []int64{9, 8, 7}, nil))
	require.NoError(t, err)
	require.Len(t, second, 3)
	require.Same(t, &first[0], &second[0], "smaller batch must reuse the grown buffer")
	require.Equal(t, []int32{9, 8, 7}, second)
}

func TestNullMaskDerivation(t *testing.T) {
	t.Run("leaf reports its column mask", func(t *testing.T) {
		expr, err := NewIdentifierTransform("col", columnar.INT64, true)
		require.NoError(t, err)
		block := int64Block(t, "col", []int64{1, columnar.NullInt64, 3}, NullMaskOf(1))
		mask := expr.GetNullMask(block)
		require.Equal(t, []int{1}, mask.Rows())
	})

	t.Run("all non-null is absent, not empty", func(t *testing.T) {
		expr, err := NewIdentifierTransform("col", columnar.INT64, true)
		require.NoError(t, err)
		mask := expr.GetNullMask(int64Block(t, "col", []int64{1, 2}, nil))
		require.Nil(t, mask)
	})

	t.Run("union of argument masks", func(t *testing.T) {
		left, err := NewIdentifierTransform("a", columnar.INT64, true)
		require.NoError(t, err)
		right, err := NewIdentifierTransform("b", columnar.INT64, true)
		require.NoError(t, err)
		combined, err := NewTransformCore(
			MetadataFor(columnar.INT64, true),
			NativeProducers{Int64SV: func(block *ValueBlock) ([]int64, error) {
				return left.TransformToInt64ValuesSV(block)
			}},
			[]TransformFunction{left, right}, nil)
		require.NoError(t, err)

		block := NewValueBlock(4)
		block.AddColumn("a", NewInt64ColumnSV([]int64{1, columnar.NullInt64, 3, 4}, NullMaskOf(1)))
		block.AddColumn("b", NewInt64ColumnSV([]int64{1, 2, columnar.NullInt64, 4}, NullMaskOf(2)))
		mask := combined.GetNullMask(block)
		require.Equal(t, []int{1, 2}, mask.Rows())
	})

	t.Run("zero arguments and no native mask is absent", func(t *testing.T) {
		literal, err := NewTransformCore(
			MetadataFor(columnar.INT64, true),
			NativeProducers{Int64SV: func(block *ValueBlock) ([]int64, error) {
				out := make([]int64, block.RowCount())
				return out, nil
			}},
			nil, nil)
		require.NoError(t, err)
		require.Nil(t, literal.GetNullMask(NewValueBlock(3)))
	})
}

func TestMaskedMaterialization(t *testing.T) {
	t.Run("native type pairs values with mask", func(t *testing.T) {
		expr, err := NewIdentifierTransform("col", columnar.INT64, true)
		require.NoError(t, err)
		block := int64Block(t, "col", []int64{1, columnar.NullInt64, 3}, NullMaskOf(1))
		values, mask, err := expr.TransformToInt64ValuesSVWithNull(block)
		require.NoError(t, err)
		require.Equal(t, []int64{1, columnar.NullInt64, 3}, values)
		require.Equal(t, []int{1}, mask.Rows())
	})

	t.Run("derived type forwards source mask unchanged", func(t *testing.T) {
		expr, err := NewIdentifierTransform("col", columnar.FLOAT64, true)
		require.NoError(t, err)
		block := NewValueBlock(3)
		block.AddColumn("col", NewFloat64ColumnSV([]float64{1, columnar.NullFloat64, 3}, NullMaskOf(1)))

		values, mask, err := expr.TransformToInt32ValuesSVWithNull(block)
		require.NoError(t, err)
		require.Equal(t, 1, mask.Cardinality())
		require.True(t, mask.Contains(1))
		// The null slot holds the coerced FLOAT64 placeholder (-Inf
		// clamped then wrapped), not the INT32 placeholder. Consumers
		// must consult the mask, not the value.
		require.Equal(t, int32(0), values[1])
		require.NotEqual(t, columnar.NullInt32, values[1])
	})

	t.Run("derived mask is absent when source has no nulls", func(t *testing.T) {
		expr, err := NewIdentifierTransform("col", columnar.INT64, true)
		require.NoError(t, err)
		block := int64Block(t, "col", []int64{1, 2}, nil)
		_, mask, err := expr.TransformToStringValuesSVWithNull(block)
		require.NoError(t, err)
		require.Nil(t, mask)
	})
}

func TestUnknownTypeMaterialization(t *testing.T) {
	core, err := NewTransformCore(MetadataFor(columnar.UNKNOWN, true), NativeProducers{}, nil, nil)
	require.NoError(t, err)
	block := NewValueBlock(3)

	t.Run("fills typed placeholders", func(t *testing.T) {
		int32Values, err := core.TransformToInt32ValuesSV(block)
		require.NoError(t, err)
		require.Equal(t, []int32{columnar.NullInt32, columnar.NullInt32, columnar.NullInt32}, int32Values)

		stringValues, err := core.TransformToStringValuesSV(block)
		require.NoError(t, err)
		require.Equal(t, []string{"null", "null", "null"}, stringValues)

		floatValues, err := core.TransformToFloat64ValuesSV(block)
		require.NoError(t, err)
		require.True(t, math.IsInf(floatValues[0], -1))
	})

	t.Run("masked request marks every row null", func(t *testing.T) {
		_, mask, err := core.TransformToInt64ValuesSVWithNull(block)
		require.NoError(t, err)
		require.Equal(t, []int{0, 1, 2}, mask.Rows())
	})

	t.Run("MV fills empty rows", func(t *testing.T) {
		mvCore, err := NewTransformCore(MetadataFor(columnar.UNKNOWN, false), NativeProducers{}, nil, nil)
		require.NoError(t, err)
		values, mask, err := mvCore.TransformToStringValuesMVWithNull(block)
		require.NoError(t, err)
		require.Equal(t, [][]string{{}, {}, {}}, values)
		require.Equal(t, []int{0, 1, 2}, mask.Rows())
	})
}

func TestConstructionValidation(t *testing.T) {
	t.Run("missing native producer", func(t *testing.T) {
		_, err := NewTransformCore(MetadataFor(columnar.INT32, true), NativeProducers{}, nil, nil)
		require.ErrorIs(t, err, ErrMissingNativeProducer)
	})

	t.Run("wrong cardinality producer does not count", func(t *testing.T) {
		producers := NativeProducers{Int32MV: func(*ValueBlock) ([][]int32, error) { return nil, nil }}
		_, err := NewTransformCore(MetadataFor(columnar.INT32, true), producers, nil, nil)
		require.ErrorIs(t, err, ErrMissingNativeProducer)
	})

	t.Run("dictionary transform needs dict id producer", func(t *testing.T) {
		_, err := NewTransformCore(NewResultMetadata(columnar.STRING, true, true), NativeProducers{}, nil,
			columnar.NewStringDictionary([]string{"a"}))
		require.ErrorIs(t, err, ErrMissingNativeProducer)
	})

	t.Run("UNKNOWN needs no producer", func(t *testing.T) {
		_, err := NewTransformCore(MetadataFor(columnar.UNKNOWN, true), NativeProducers{}, nil, nil)
		require.NoError(t, err)
	})
}

func TestDictionaryMaterialization(t *testing.T) {
	dict := columnar.NewStringDictionary([]string{"10", "20", "oops"})

	newExpr := func(t *testing.T) *IdentifierTransform {
		t.Helper()
		expr, err := NewDictionaryIdentifierTransform("col", columnar.STRING, dict)
		require.NoError(t, err)
		return expr
	}

	dictBlock := func(ids []int32, nulls *NullMask) *ValueBlock {
		block := NewValueBlock(len(ids))
		block.AddColumn("col", NewInt32ColumnSV(ids, nulls))
		return block
	}

	t.Run("decodes through the dictionary", func(t *testing.T) {
		values, err := newExpr(t).TransformToStringValuesSV(dictBlock([]int32{1, 0, 1}, nil))
		require.NoError(t, err)
		require.Equal(t, []string{"20", "10", "20"}, values)
	})

	t.Run("cross-type decode bypasses derivation", func(t *testing.T) {
		values, err := newExpr(t).TransformToInt64ValuesSV(dictBlock([]int32{0, 1}, nil))
		require.NoError(t, err)
		require.Equal(t, []int64{10, 20}, values)
	})

	t.Run("undecodable entry surfaces conversion error", func(t *testing.T) {
		_, err := newExpr(t).TransformToInt64ValuesSV(dictBlock([]int32{2}, nil))
		require.ErrorIs(t, err, columnar.ErrConversion)
	})

	t.Run("dict ids pass through", func(t *testing.T) {
		ids, err := newExpr(t).TransformToDictIdsSV(dictBlock([]int32{1, 2}, nil))
		require.NoError(t, err)
		require.Equal(t, []int{1, 2}, ids)
	})
}

func TestDictIdsUnsupportedOnPlainTransform(t *testing.T) {
	expr, err := NewIdentifierTransform("col", columnar.INT64, true)
	require.NoError(t, err)
	_, err = expr.TransformToDictIdsSV(int64Block(t, "col", []int64{1}, nil))
	require.ErrorIs(t, err, ErrUnsupportedOperation)
	_, err = expr.TransformToDictIdsMV(int64Block(t, "col", []int64{1}, nil))
	require.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestMissingColumnFailsCleanly(t *testing.T) {
	expr, err := NewIdentifierTransform("absent", columnar.INT64, true)
	require.NoError(t, err)
	_, err = expr.TransformToInt64ValuesSV(NewValueBlock(2))
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrIllegalConversion))
}
