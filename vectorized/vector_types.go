package vectorized

import (
	"github.com/VenkatDatta/pinot/columnar"
	"github.com/shopspring/decimal"
)

// Constants for vectorized execution
const (
	DefaultBatchSize = 4096 // Optimal batch size for most operations
	MaxBatchSize     = 65536
	MinBatchSize     = 64
)

// BlockValueSet exposes one column's values for one batch. Single-valued
// columns have one scalar per row; multi-valued columns have an
// independent variable-length sequence per row. Callers pick the getter
// matching the column's stored type and cardinality.
type BlockValueSet interface {
	DataType() columnar.DataType
	IsSingleValue() bool

	GetInt32ValuesSV() []int32
	GetInt64ValuesSV() []int64
	GetFloat32ValuesSV() []float32
	GetFloat64ValuesSV() []float64
	GetDecimalValuesSV() []decimal.Decimal
	GetStringValuesSV() []string
	GetBytesValuesSV() [][]byte

	GetInt32ValuesMV() [][]int32
	GetInt64ValuesMV() [][]int64
	GetFloat32ValuesMV() [][]float32
	GetFloat64ValuesMV() [][]float64
	GetDecimalValuesMV() [][]decimal.Decimal
	GetStringValuesMV() [][]string
	GetBytesValuesMV() [][][]byte

	// GetNullMask returns the column's null rows for this batch, nil if
	// the column provably has none.
	GetNullMask() *NullMask
}

// ValueBlock is a fixed window of rows flowing through the pipeline,
// with a BlockValueSet per referenced column.
type ValueBlock struct {
	numRows   int
	valueSets map[string]BlockValueSet
}

// NewValueBlock creates a block spanning numRows rows.
func NewValueBlock(numRows int) *ValueBlock {
	return &ValueBlock{
		numRows:   numRows,
		valueSets: make(map[string]BlockValueSet),
	}
}

// RowCount returns the number of rows in the block.
func (b *ValueBlock) RowCount() int {
	return b.numRows
}

// AddColumn registers a column's value set under its name.
func (b *ValueBlock) AddColumn(name string, valueSet BlockValueSet) {
	b.valueSets[name] = valueSet
}

// GetValueSet returns the value set for a column, nil if absent.
func (b *ValueBlock) GetValueSet(column string) BlockValueSet {
	return b.valueSets[column]
}

// ColumnValueSet is the in-memory BlockValueSet implementation backed by
// typed slices. Only the slice matching the declared type and
// cardinality is populated; the other getters return nil.
type ColumnValueSet struct {
	dataType    columnar.DataType
	singleValue bool
	nullMask    *NullMask

	int32SV   []int32
	int64SV   []int64
	float32SV []float32
	float64SV []float64
	decimalSV []decimal.Decimal
	stringSV  []string
	bytesSV   [][]byte

	int32MV   [][]int32
	int64MV   [][]int64
	float32MV [][]float32
	float64MV [][]float64
	decimalMV [][]decimal.Decimal
	stringMV  [][]string
	bytesMV   [][][]byte
}

// NewInt32ColumnSV wraps a single-valued int32 column.
func NewInt32ColumnSV(values []int32, nulls *NullMask) *ColumnValueSet {
	return &ColumnValueSet{dataType: columnar.INT32, singleValue: true, int32SV: values, nullMask: nulls.Normalize()}
}

// NewInt64ColumnSV wraps a single-valued int64 column.
func NewInt64ColumnSV(values []int64, nulls *NullMask) *ColumnValueSet {
	return &ColumnValueSet{dataType: columnar.INT64, singleValue: true, int64SV: values, nullMask: nulls.Normalize()}
}

// NewFloat32ColumnSV wraps a single-valued float32 column.
func NewFloat32ColumnSV(values []float32, nulls *NullMask) *ColumnValueSet {
	return &ColumnValueSet{dataType: columnar.FLOAT32, singleValue: true, float32SV: values, nullMask: nulls.Normalize()}
}

// NewFloat64ColumnSV wraps a single-valued float64 column.
func NewFloat64ColumnSV(values []float64, nulls *NullMask) *ColumnValueSet {
	return &ColumnValueSet{dataType: columnar.FLOAT64, singleValue: true, float64SV: values, nullMask: nulls.Normalize()}
}

// NewDecimalColumnSV wraps a single-valued decimal column.
func NewDecimalColumnSV(values []decimal.Decimal, nulls *NullMask) *ColumnValueSet {
	return &ColumnValueSet{dataType: columnar.DECIMAL, singleValue: true, decimalSV: values, nullMask: nulls.Normalize()}
}

// NewStringColumnSV wraps a single-valued string column.
func NewStringColumnSV(values []string, nulls *NullMask) *ColumnValueSet {
	return &ColumnValueSet{dataType: columnar.STRING, singleValue: true, stringSV: values, nullMask: nulls.Normalize()}
}

// NewBytesColumnSV wraps a single-valued bytes column.
func NewBytesColumnSV(values [][]byte, nulls *NullMask) *ColumnValueSet {
	return &ColumnValueSet{dataType: columnar.BYTES, singleValue: true, bytesSV: values, nullMask: nulls.Normalize()}
}

// NewInt32ColumnMV wraps a multi-valued int32 column.
func NewInt32ColumnMV(values [][]int32, nulls *NullMask) *ColumnValueSet {
	return &ColumnValueSet{dataType: columnar.INT32, singleValue: false, int32MV: values, nullMask: nulls.Normalize()}
}

// NewInt64ColumnMV wraps a multi-valued int64 column.
func NewInt64ColumnMV(values [][]int64, nulls *NullMask) *ColumnValueSet {
	return &ColumnValueSet{dataType: columnar.INT64, singleValue: false, int64MV: values, nullMask: nulls.Normalize()}
}

// NewFloat32ColumnMV wraps a multi-valued float32 column.
func NewFloat32ColumnMV(values [][]float32, nulls *NullMask) *ColumnValueSet {
	return &ColumnValueSet{dataType: columnar.FLOAT32, singleValue: false, float32MV: values, nullMask: nulls.Normalize()}
}

// NewFloat64ColumnMV wraps a multi-valued float64 column.
func NewFloat64ColumnMV(values [][]float64, nulls *NullMask) *ColumnValueSet {
	return &ColumnValueSet{dataType: columnar.FLOAT64, singleValue: false, float64MV: values, nullMask: nulls.Normalize()}
}

// NewDecimalColumnMV wraps a multi-valued decimal column.
func NewDecimalColumnMV(values [][]decimal.Decimal, nulls *NullMask) *ColumnValueSet {
	return &ColumnValueSet{dataType: columnar.DECIMAL, singleValue: false, decimalMV: values, nullMask: nulls.Normalize()}
}

// NewStringColumnMV wraps a multi-valued string column.
func NewStringColumnMV(values [][]string, nulls *NullMask) *ColumnValueSet {
	return &ColumnValueSet{dataType: columnar.STRING, singleValue: false, stringMV: values, nullMask: nulls.Normalize()}
}

// NewBytesColumnMV wraps a multi-valued bytes column.
func NewBytesColumnMV(values [][][]byte, nulls *NullMask) *ColumnValueSet {
	return &ColumnValueSet{dataType: columnar.BYTES, singleValue: false, bytesMV: values, nullMask: nulls.Normalize()}
}

func (c *ColumnValueSet) DataType() columnar.DataType { return c.dataType }
func (c *ColumnValueSet) IsSingleValue() bool         { return c.singleValue }

func (c *ColumnValueSet) GetInt32ValuesSV() []int32             { return c.int32SV }
func (c *ColumnValueSet) GetInt64ValuesSV() []int64             { return c.int64SV }
func (c *ColumnValueSet) GetFloat32ValuesSV() []float32         { return c.float32SV }
func (c *ColumnValueSet) GetFloat64ValuesSV() []float64         { return c.float64SV }
func (c *ColumnValueSet) GetDecimalValuesSV() []decimal.Decimal { return c.decimalSV }
func (c *ColumnValueSet) GetStringValuesSV() []string           { return c.stringSV }
func (c *ColumnValueSet) GetBytesValuesSV() [][]byte            { return c.bytesSV }

func (c *ColumnValueSet) GetInt32ValuesMV() [][]int32             { return c.int32MV }
func (c *ColumnValueSet) GetInt64ValuesMV() [][]int64             { return c.int64MV }
func (c *ColumnValueSet) GetFloat32ValuesMV() [][]float32         { return c.float32MV }
func (c *ColumnValueSet) GetFloat64ValuesMV() [][]float64         { return c.float64MV }
func (c *ColumnValueSet) GetDecimalValuesMV() [][]decimal.Decimal { return c.decimalMV }
func (c *ColumnValueSet) GetStringValuesMV() [][]string           { return c.stringMV }
func (c *ColumnValueSet) GetBytesValuesMV() [][][]byte            { return c.bytesMV }

func (c *ColumnValueSet) GetNullMask() *NullMask { return c.nullMask }
