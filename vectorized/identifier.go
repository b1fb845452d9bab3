package vectorized

import (
	"fmt"

	"github.com/VenkatDatta/pinot/columnar"
	"github.com/shopspring/decimal"
)

// IdentifierTransform is the leaf expression: a direct read of one
// column from the block. It produces values in the column's own stored
// type and cardinality and reports the column's own null mask; every
// other representation is derived by the embedded core.
type IdentifierTransform struct {
	*TransformCore
	column string
}

// NewIdentifierTransform builds a column read for a plain (raw-encoded)
// column of the given type and cardinality.
func NewIdentifierTransform(column string, dataType columnar.DataType, singleValue bool) (*IdentifierTransform, error) {
	producers := identifierProducers(column, dataType.StoredType(), singleValue)
	core, err := NewTransformCore(MetadataFor(dataType, singleValue), producers, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("identifier %q: %w", column, err)
	}
	return &IdentifierTransform{TransformCore: core, column: column}, nil
}

// NewDictionaryIdentifierTransform builds a column read for a
// dictionary-encoded single-valued column. The block carries the
// column's dictionary ids as an INT32 value set; values materialize by
// decoding those ids through the dictionary.
func NewDictionaryIdentifierTransform(column string, dataType columnar.DataType, dict columnar.Dictionary) (*IdentifierTransform, error) {
	producers := NativeProducers{
		NullMask: columnMask(column),
		DictIdsSV: func(block *ValueBlock) ([]int, error) {
			vs, err := columnSet(block, column)
			if err != nil {
				return nil, err
			}
			raw := vs.GetInt32ValuesSV()
			dictIds := make([]int, block.RowCount())
			for i := 0; i < block.RowCount(); i++ {
				dictIds[i] = int(raw[i])
			}
			return dictIds, nil
		},
	}
	core, err := NewTransformCore(NewResultMetadata(dataType, true, true), producers, nil, dict)
	if err != nil {
		return nil, fmt.Errorf("identifier %q: %w", column, err)
	}
	return &IdentifierTransform{TransformCore: core, column: column}, nil
}

// Column returns the column name this transform reads.
func (t *IdentifierTransform) Column() string {
	return t.column
}

func columnSet(block *ValueBlock, column string) (BlockValueSet, error) {
	vs := block.GetValueSet(column)
	if vs == nil {
		return nil, fmt.Errorf("vectorized: column %q not in block", column)
	}
	return vs, nil
}

func columnMask(column string) func(*ValueBlock) *NullMask {
	return func(block *ValueBlock) *NullMask {
		vs := block.GetValueSet(column)
		if vs == nil {
			return nil
		}
		return vs.GetNullMask()
	}
}

func identifierProducers(column string, stored columnar.DataType, singleValue bool) NativeProducers {
	p := NativeProducers{NullMask: columnMask(column)}
	if singleValue {
		switch stored {
		case columnar.INT32:
			p.Int32SV = func(block *ValueBlock) ([]int32, error) {
				vs, err := columnSet(block, column)
				if err != nil {
					return nil, err
				}
				return vs.GetInt32ValuesSV(), nil
			}
		case columnar.INT64:
			p.Int64SV = func(block *ValueBlock) ([]int64, error) {
				vs, err := columnSet(block, column)
				if err != nil {
					return nil, err
				}
				return vs.GetInt64ValuesSV(), nil
			}
		case columnar.FLOAT32:
			p.Float32SV = func(block *ValueBlock) ([]float32, error) {
				vs, err := columnSet(block, column)
				if err != nil {
					return nil, err
				}
				return vs.GetFloat32ValuesSV(), nil
			}
		case columnar.FLOAT64:
			p.Float64SV = func(block *ValueBlock) ([]float64, error) {
				vs, err := columnSet(block, column)
				if err != nil {
					return nil, err
				}
				return vs.GetFloat64ValuesSV(), nil
			}
		case columnar.DECIMAL:
			p.DecimalSV = func(block *ValueBlock) ([]decimal.Decimal, error) {
				vs, err := columnSet(block, column)
				if err != nil {
					return nil, err
				}
				return vs.GetDecimalValuesSV(), nil
			}
		case columnar.STRING:
			p.StringSV = func(block *ValueBlock) ([]string, error) {
				vs, err := columnSet(block, column)
				if err != nil {
					return nil, err
				}
				return vs.GetStringValuesSV(), nil
			}
		case columnar.BYTES:
			p.BytesSV = func(block *ValueBlock) ([][]byte, error) {
				vs, err := columnSet(block, column)
				if err != nil {
					return nil, err
				}
				return vs.GetBytesValuesSV(), nil
			}
		}
		return p
	}
	switch stored {
	case columnar.INT32:
		p.Int32MV = func(block *ValueBlock) ([][]int32, error) {
			vs, err := columnSet(block, column)
			if err != nil {
				return nil, err
			}
			return vs.GetInt32ValuesMV(), nil
		}
	case columnar.INT64:
		p.Int64MV = func(block *ValueBlock) ([][]int64, error) {
			vs, err := columnSet(block, column)
			if err != nil {
				return nil, err
			}
			return vs.GetInt64ValuesMV(), nil
		}
	case columnar.FLOAT32:
		p.Float32MV = func(block *ValueBlock) ([][]float32, error) {
			vs, err := columnSet(block, column)
			if err != nil {
				return nil, err
			}
			return vs.GetFloat32ValuesMV(), nil
		}
	case columnar.FLOAT64:
		p.Float64MV = func(block *ValueBlock) ([][]float64, error) {
			vs, err := columnSet(block, column)
			if err != nil {
				return nil, err
			}
			return vs.GetFloat64ValuesMV(), nil
		}
	case columnar.DECIMAL:
		p.DecimalMV = func(block *ValueBlock) ([][]decimal.Decimal, error) {
			vs, err := columnSet(block, column)
			if err != nil {
				return nil, err
			}
			return vs.GetDecimalValuesMV(), nil
		}
	case columnar.STRING:
		p.StringMV = func(block *ValueBlock) ([][]string, error) {
			vs, err := columnSet(block, column)
			if err != nil {
				return nil, err
			}
			return vs.GetStringValuesMV(), nil
		}
	case columnar.BYTES:
		p.BytesMV = func(block *ValueBlock) ([][][]byte, error) {
			vs, err := columnSet(block, column)
			if err != nil {
				return nil, err
			}
			return vs.GetBytesValuesMV(), nil
		}
	}
	return p
}
