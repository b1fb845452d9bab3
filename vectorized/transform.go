package vectorized

import (
	"errors"
	"fmt"

	"github.com/VenkatDatta/pinot/columnar"
	"github.com/shopspring/decimal"
)

var (
	// ErrMissingNativeProducer is returned at construction time when a
	// transform is built without a producer for its native stored type.
	ErrMissingNativeProducer = errors.New("vectorized: transform has no native producer")

	// ErrUnsupportedOperation is returned when a dictionary-only
	// operation is requested on a non-dictionary transform. It marks a
	// planning defect, never a data condition, and is not retried.
	ErrUnsupportedOperation = errors.New("vectorized: unsupported operation")

	// ErrIllegalConversion is returned when the requested type has no
	// derivation path from the transform's native stored type.
	ErrIllegalConversion = errors.New("vectorized: illegal conversion")
)

// TransformFunction is the contract every column expression exposes to
// the rest of the engine: immutable result metadata, a null mask per
// batch, and materialization of its values in any stored type and
// cardinality, with or without the null mask.
type TransformFunction interface {
	GetResultMetadata() ResultMetadata
	GetNullMask(block *ValueBlock) *NullMask

	TransformToDictIdsSV(block *ValueBlock) ([]int, error)
	TransformToDictIdsMV(block *ValueBlock) ([][]int, error)

	TransformToInt32ValuesSV(block *ValueBlock) ([]int32, error)
	TransformToInt64ValuesSV(block *ValueBlock) ([]int64, error)
	TransformToFloat32ValuesSV(block *ValueBlock) ([]float32, error)
	TransformToFloat64ValuesSV(block *ValueBlock) ([]float64, error)
	TransformToDecimalValuesSV(block *ValueBlock) ([]decimal.Decimal, error)
	TransformToStringValuesSV(block *ValueBlock) ([]string, error)
	TransformToBytesValuesSV(block *ValueBlock) ([][]byte, error)

	TransformToInt32ValuesSVWithNull(block *ValueBlock) ([]int32, *NullMask, error)
	TransformToInt64ValuesSVWithNull(block *ValueBlock) ([]int64, *NullMask, error)
	TransformToFloat32ValuesSVWithNull(block *ValueBlock) ([]float32, *NullMask, error)
	TransformToFloat64ValuesSVWithNull(block *ValueBlock) ([]float64, *NullMask, error)
	TransformToDecimalValuesSVWithNull(block *ValueBlock) ([]decimal.Decimal, *NullMask, error)
	TransformToStringValuesSVWithNull(block *ValueBlock) ([]string, *NullMask, error)
	TransformToBytesValuesSVWithNull(block *ValueBlock) ([][]byte, *NullMask, error)

	TransformToInt32ValuesMV(block *ValueBlock) ([][]int32, error)
	TransformToInt64ValuesMV(block *ValueBlock) ([][]int64, error)
	TransformToFloat32ValuesMV(block *ValueBlock) ([][]float32, error)
	TransformToFloat64ValuesMV(block *ValueBlock) ([][]float64, error)
	TransformToDecimalValuesMV(block *ValueBlock) ([][]decimal.Decimal, error)
	TransformToStringValuesMV(block *ValueBlock) ([][]string, error)
	TransformToBytesValuesMV(block *ValueBlock) ([][][]byte, error)

	TransformToInt32ValuesMVWithNull(block *ValueBlock) ([][]int32, *NullMask, error)
	TransformToInt64ValuesMVWithNull(block *ValueBlock) ([][]int64, *NullMask, error)
	TransformToFloat32ValuesMVWithNull(block *ValueBlock) ([][]float32, *NullMask, error)
	TransformToFloat64ValuesMVWithNull(block *ValueBlock) ([][]float64, *NullMask, error)
	TransformToDecimalValuesMVWithNull(block *ValueBlock) ([][]decimal.Decimal, *NullMask, error)
	TransformToStringValuesMVWithNull(block *ValueBlock) ([][]string, *NullMask, error)
	TransformToBytesValuesMVWithNull(block *ValueBlock) ([][][]byte, *NullMask, error)
}

// NativeProducers holds the value-producing functions an expression
// computes directly. Exactly the field matching the expression's native
// stored type and cardinality must be set; every other representation is
// derived from it by the TransformCore.
type NativeProducers struct {
	Int32SV   func(*ValueBlock) ([]int32, error)
	Int64SV   func(*ValueBlock) ([]int64, error)
	Float32SV func(*ValueBlock) ([]float32, error)
	Float64SV func(*ValueBlock) ([]float64, error)
	DecimalSV func(*ValueBlock) ([]decimal.Decimal, error)
	StringSV  func(*ValueBlock) ([]string, error)
	BytesSV   func(*ValueBlock) ([][]byte, error)

	Int32MV   func(*ValueBlock) ([][]int32, error)
	Int64MV   func(*ValueBlock) ([][]int64, error)
	Float32MV func(*ValueBlock) ([][]float32, error)
	Float64MV func(*ValueBlock) ([][]float64, error)
	DecimalMV func(*ValueBlock) ([][]decimal.Decimal, error)
	StringMV  func(*ValueBlock) ([][]string, error)
	BytesMV   func(*ValueBlock) ([][][]byte, error)

	// NullMask overrides the default argument-union null derivation for
	// expressions that track nulls natively (e.g. direct column reads).
	NullMask func(*ValueBlock) *NullMask

	// DictIdsSV / DictIdsMV supply dictionary ids for dictionary-encoded
	// expressions; leaving them nil makes the dict-id operations fail
	// with ErrUnsupportedOperation.
	DictIdsSV func(*ValueBlock) ([]int, error)
	DictIdsMV func(*ValueBlock) ([][]int, error)
}

func (p *NativeProducers) has(stored columnar.DataType, singleValue bool) bool {
	if singleValue {
		switch stored {
		case columnar.INT32:
			return p.Int32SV != nil
		case columnar.INT64:
			return p.Int64SV != nil
		case columnar.FLOAT32:
			return p.Float32SV != nil
		case columnar.FLOAT64:
			return p.Float64SV != nil
		case columnar.DECIMAL:
			return p.DecimalSV != nil
		case columnar.STRING:
			return p.StringSV != nil
		case columnar.BYTES:
			return p.BytesSV != nil
		}
		return false
	}
	switch stored {
	case columnar.INT32:
		return p.Int32MV != nil
	case columnar.INT64:
		return p.Int64MV != nil
	case columnar.FLOAT32:
		return p.Float32MV != nil
	case columnar.FLOAT64:
		return p.Float64MV != nil
	case columnar.DECIMAL:
		return p.DecimalMV != nil
	case columnar.STRING:
		return p.StringMV != nil
	case columnar.BYTES:
		return p.BytesMV != nil
	}
	return false
}

// TransformCore is the materialization engine shared by all transform
// functions. An expression supplies the one representation it computes
// natively; the core derives every other stored type from it, decodes
// through the dictionary when one is present, and fills null
// placeholders for UNKNOWN-typed columns.
//
// A core owns one grow-only scratch buffer per requested type and
// cardinality, reused across batches. Instances are confined to a
// single goroutine; shard work by giving each worker its own core.
type TransformCore struct {
	metadata   ResultMetadata
	producers  NativeProducers
	arguments  []TransformFunction
	dictionary columnar.Dictionary

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

var _ TransformFunction = (*TransformCore)(nil)

// NewTransformCore builds the engine for one expression instance. The
// producer matching the metadata's stored type and cardinality must be
// present unless the type is UNKNOWN or the expression is
// dictionary-encoded; failing loudly here is what rules out the
// unbounded mutual recursion a default-forwarding design would allow.
func NewTransformCore(metadata ResultMetadata, producers NativeProducers, arguments []TransformFunction, dictionary columnar.Dictionary) (*TransformCore, error) {
	if metadata.HasDictionary() {
		if dictionary == nil {
			return nil, fmt.Errorf("%w: metadata declares dictionary encoding but no dictionary given", ErrMissingNativeProducer)
		}
		if metadata.IsSingleValue() && producers.DictIdsSV == nil {
			return nil, fmt.Errorf("%w: dictionary-encoded SV transform needs a dict-id producer", ErrMissingNativeProducer)
		}
		if !metadata.IsSingleValue() && producers.DictIdsMV == nil {
			return nil, fmt.Errorf("%w: dictionary-encoded MV transform needs a dict-id producer", ErrMissingNativeProducer)
		}
	} else {
		if dictionary != nil {
			return nil, fmt.Errorf("vectorized: dictionary given but metadata declares none")
		}
		stored := metadata.DataType().StoredType()
		if stored != columnar.UNKNOWN && !producers.has(stored, metadata.IsSingleValue()) {
			cardinality := "SV"
			if !metadata.IsSingleValue() {
				cardinality = "MV"
			}
			return nil, fmt.Errorf("%w: native type %s %s", ErrMissingNativeProducer, metadata.DataType(), cardinality)
		}
	}
	return &TransformCore{
		metadata:   metadata,
		producers:  producers,
		arguments:  arguments,
		dictionary: dictionary,
	}, nil
}

// GetResultMetadata returns the transform's immutable result metadata.
func (t *TransformCore) GetResultMetadata() ResultMetadata {
	return t.metadata
}

// GetNullMask returns the rows that are null for this batch: the union
// of the argument transforms' masks, or the expression's own mask when
// it tracks nulls natively. All-absent inputs yield the absent (nil)
// mask, never an empty present one. Leaf expressions with no arguments
// and no native mask have no nulls.
func (t *TransformCore) GetNullMask(block *ValueBlock) *NullMask {
	if t.producers.NullMask != nil {
		return t.producers.NullMask(block).Normalize()
	}
	if len(t.arguments) == 0 {
		return nil
	}
	mask := NewNullMask()
	for _, arg := range t.arguments {
		mask.Or(arg.GetNullMask(block))
	}
	return mask.Normalize()
}

// TransformToDictIdsSV returns one dictionary id per row. Only valid for
// dictionary-encoded transforms.
func (t *TransformCore) TransformToDictIdsSV(block *ValueBlock) ([]int, error) {
	if t.producers.DictIdsSV == nil {
		return nil, fmt.Errorf("%w: dictionary ids requested on non-dictionary transform", ErrUnsupportedOperation)
	}
	return t.producers.DictIdsSV(block)
}

// TransformToDictIdsMV returns one dictionary id sequence per row. Only
// valid for dictionary-encoded transforms.
func (t *TransformCore) TransformToDictIdsMV(block *ValueBlock) ([][]int, error) {
	if t.producers.DictIdsMV == nil {
		return nil, fmt.Errorf("%w: dictionary ids requested on non-dictionary transform", ErrUnsupportedOperation)
	}
	return t.producers.DictIdsMV(block)
}

func (t *TransformCore) initInt32SV(length int) {
	if t.int32SV == nil || len(t.int32SV) < length {
		t.int32SV = make([]int32, length)
	}
}

func (t *TransformCore) initInt64SV(length int) {
	if t.int64SV == nil || len(t.int64SV) < length {
		t.int64SV = make([]int64, length)
	}
}

func (t *TransformCore) initFloat32SV(length int) {
	if t.float32SV == nil || len(t.float32SV) < length {
		t.float32SV = make([]float32, length)
	}
}

func (t *TransformCore) initFloat64SV(length int) {
	if t.float64SV == nil || len(t.float64SV) < length {
		t.float64SV = make([]float64, length)
	}
}

func (t *TransformCore) initDecimalSV(length int) {
	if t.decimalSV == nil || len(t.decimalSV) < length {
		t.decimalSV = make([]decimal.Decimal, length)
	}
}

func (t *TransformCore) initStringSV(length int) {
	if t.stringSV == nil || len(t.stringSV) < length {
		t.stringSV = make([]string, length)
	}
}

func (t *TransformCore) initBytesSV(length int) {
	if t.bytesSV == nil || len(t.bytesSV) < length {
		t.bytesSV = make([][]byte, length)
	}
}

func (t *TransformCore) initInt32MV(length int) {
	if t.int32MV == nil || len(t.int32MV) < length {
		t.int32MV = make([][]int32, length)
	}
}

func (t *TransformCore) initInt64MV(length int) {
	if t.int64MV == nil || len(t.int64MV) < length {
		t.int64MV = make([][]int64, length)
	}
}

func (t *TransformCore) initFloat32MV(length int) {
	if t.float32MV == nil || len(t.float32MV) < length {
		t.float32MV = make([][]float32, length)
	}
}

func (t *TransformCore) initFloat64MV(length int) {
	if t.float64MV == nil || len(t.float64MV) < length {
		t.float64MV = make([][]float64, length)
	}
}

func (t *TransformCore) initDecimalMV(length int) {
	if t.decimalMV == nil || len(t.decimalMV) < length {
		t.decimalMV = make([][]decimal.Decimal, length)
	}
}

func (t *TransformCore) initStringMV(length int) {
	if t.stringMV == nil || len(t.stringMV) < length {
		t.stringMV = make([][]string, length)
	}
}

func (t *TransformCore) initBytesMV(length int) {
	if t.bytesMV == nil || len(t.bytesMV) < length {
		t.bytesMV = make([][][]byte, length)
	}
}

func (t *TransformCore) stored() columnar.DataType {
	return t.metadata.DataType().StoredType()
}

func (t *TransformCore) illegal(cardinality, target string) error {
	return fmt.Errorf("%w: cannot read %s %s as %s", ErrIllegalConversion, cardinality, t.metadata.DataType(), target)
}

// Single-valued materialization.

// TransformToInt32ValuesSV materializes one int32 per row.
func (t *TransformCore) TransformToInt32ValuesSV(block *ValueBlock) ([]int32, error) {
	length := block.RowCount()
	t.initInt32SV(length)
	if t.dictionary != nil {
		dictIds, err := t.TransformToDictIdsSV(block)
		if err != nil {
			return nil, err
		}
		if err := t.dictionary.ReadInt32Values(dictIds, length, t.int32SV); err != nil {
			return nil, err
		}
		return t.int32SV[:length], nil
	}
	if t.stored() == columnar.INT32 && t.metadata.IsSingleValue() {
		return t.producers.Int32SV(block)
	}
	switch t.stored() {
	case columnar.INT64:
		src, err := t.TransformToInt64ValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyInt64ToInt32(src, t.int32SV, length)
	case columnar.FLOAT32:
		src, err := t.TransformToFloat32ValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyFloat32ToInt32(src, t.int32SV, length)
	case columnar.FLOAT64:
		src, err := t.TransformToFloat64ValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyFloat64ToInt32(src, t.int32SV, length)
	case columnar.DECIMAL:
		src, err := t.TransformToDecimalValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyDecimalToInt32(src, t.int32SV, length)
	case columnar.STRING:
		src, err := t.TransformToStringValuesSV(block)
		if err != nil {
			return nil, err
		}
		if err := CopyStringToInt32(src, t.int32SV, length); err != nil {
			return nil, err
		}
	case columnar.UNKNOWN:
		for i := 0; i < length; i++ {
			t.int32SV[i] = columnar.NullInt32
		}
	default:
		return nil, t.illegal("SV", "INT32")
	}
	return t.int32SV[:length], nil
}

// TransformToInt32ValuesSVWithNull materializes int32 values plus the
// null mask. Cross-type requests forward the source type's mask
// unchanged and coerce only the values.
func (t *TransformCore) TransformToInt32ValuesSVWithNull(block *ValueBlock) ([]int32, *NullMask, error) {
	length := block.RowCount()
	t.initInt32SV(length)
	var mask *NullMask
	switch t.stored() {
	case columnar.INT32:
		values, err := t.TransformToInt32ValuesSV(block)
		if err != nil {
			return nil, nil, err
		}
		mask = t.GetNullMask(block)
		return values, mask, nil
	case columnar.INT64:
		src, srcMask, err := t.TransformToInt64ValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyInt64ToInt32(src, t.int32SV, length)
	case columnar.FLOAT32:
		src, srcMask, err := t.TransformToFloat32ValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyFloat32ToInt32(src, t.int32SV, length)
	case columnar.FLOAT64:
		src, srcMask, err := t.TransformToFloat64ValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyFloat64ToInt32(src, t.int32SV, length)
	case columnar.DECIMAL:
		src, srcMask, err := t.TransformToDecimalValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyDecimalToInt32(src, t.int32SV, length)
	case columnar.STRING:
		src, srcMask, err := t.TransformToStringValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		if err := CopyStringToInt32(src, t.int32SV, length); err != nil {
			return nil, nil, err
		}
	case columnar.UNKNOWN:
		mask = NullMaskOfRange(length)
		for i := 0; i < length; i++ {
			t.int32SV[i] = columnar.NullInt32
		}
	default:
		return nil, nil, t.illegal("SV", "INT32")
	}
	return t.int32SV[:length], mask, nil
}

// TransformToInt64ValuesSV materializes one int64 per row.
func (t *TransformCore) TransformToInt64ValuesSV(block *ValueBlock) ([]int64, error) {
	length := block.RowCount()
	t.initInt64SV(length)
	if t.dictionary != nil {
		dictIds, err := t.TransformToDictIdsSV(block)
		if err != nil {
			return nil, err
		}
		if err := t.dictionary.ReadInt64Values(dictIds, length, t.int64SV); err != nil {
			return nil, err
		}
		return t.int64SV[:length], nil
	}
	if t.stored() == columnar.INT64 && t.metadata.IsSingleValue() {
		return t.producers.Int64SV(block)
	}
	switch t.stored() {
	case columnar.INT32:
		src, err := t.TransformToInt32ValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyInt32ToInt64(src, t.int64SV, length)
	case columnar.FLOAT32:
		src, err := t.TransformToFloat32ValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyFloat32ToInt64(src, t.int64SV, length)
	case columnar.FLOAT64:
		src, err := t.TransformToFloat64ValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyFloat64ToInt64(src, t.int64SV, length)
	case columnar.DECIMAL:
		src, err := t.TransformToDecimalValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyDecimalToInt64(src, t.int64SV, length)
	case columnar.STRING:
		src, err := t.TransformToStringValuesSV(block)
		if err != nil {
			return nil, err
		}
		if err := CopyStringToInt64(src, t.int64SV, length); err != nil {
			return nil, err
		}
	case columnar.UNKNOWN:
		for i := 0; i < length; i++ {
			t.int64SV[i] = columnar.NullInt64
		}
	default:
		return nil, t.illegal("SV", "INT64")
	}
	return t.int64SV[:length], nil
}

// TransformToInt64ValuesSVWithNull materializes int64 values plus the
// null mask.
func (t *TransformCore) TransformToInt64ValuesSVWithNull(block *ValueBlock) ([]int64, *NullMask, error) {
	length := block.RowCount()
	t.initInt64SV(length)
	var mask *NullMask
	switch t.stored() {
	case columnar.INT64:
		values, err := t.TransformToInt64ValuesSV(block)
		if err != nil {
			return nil, nil, err
		}
		mask = t.GetNullMask(block)
		return values, mask, nil
	case columnar.INT32:
		src, srcMask, err := t.TransformToInt32ValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyInt32ToInt64(src, t.int64SV, length)
	case columnar.FLOAT32:
		src, srcMask, err := t.TransformToFloat32ValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyFloat32ToInt64(src, t.int64SV, length)
	case columnar.FLOAT64:
		src, srcMask, err := t.TransformToFloat64ValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyFloat64ToInt64(src, t.int64SV, length)
	case columnar.DECIMAL:
		src, srcMask, err := t.TransformToDecimalValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyDecimalToInt64(src, t.int64SV, length)
	case columnar.STRING:
		src, srcMask, err := t.TransformToStringValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		if err := CopyStringToInt64(src, t.int64SV, length); err != nil {
			return nil, nil, err
		}
	case columnar.UNKNOWN:
		mask = NullMaskOfRange(length)
		for i := 0; i < length; i++ {
			t.int64SV[i] = columnar.NullInt64
		}
	default:
		return nil, nil, t.illegal("SV", "INT64")
	}
	return t.int64SV[:length], mask, nil
}

// TransformToFloat32ValuesSV materializes one float32 per row.
func (t *TransformCore) TransformToFloat32ValuesSV(block *ValueBlock) ([]float32, error) {
	length := block.RowCount()
	t.initFloat32SV(length)
	if t.dictionary != nil {
		dictIds, err := t.TransformToDictIdsSV(block)
		if err != nil {
			return nil, err
		}
		if err := t.dictionary.ReadFloat32Values(dictIds, length, t.float32SV); err != nil {
			return nil, err
		}
		return t.float32SV[:length], nil
	}
	if t.stored() == columnar.FLOAT32 && t.metadata.IsSingleValue() {
		return t.producers.Float32SV(block)
	}
	switch t.stored() {
	case columnar.INT32:
		src, err := t.TransformToInt32ValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyInt32ToFloat32(src, t.float32SV, length)
	case columnar.INT64:
		src, err := t.TransformToInt64ValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyInt64ToFloat32(src, t.float32SV, length)
	case columnar.FLOAT64:
		src, err := t.TransformToFloat64ValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyFloat64ToFloat32(src, t.float32SV, length)
	case columnar.DECIMAL:
		src, err := t.TransformToDecimalValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyDecimalToFloat32(src, t.float32SV, length)
	case columnar.STRING:
		src, err := t.TransformToStringValuesSV(block)
		if err != nil {
			return nil, err
		}
		if err := CopyStringToFloat32(src, t.float32SV, length); err != nil {
			return nil, err
		}
	case columnar.UNKNOWN:
		for i := 0; i < length; i++ {
			t.float32SV[i] = columnar.NullFloat32
		}
	default:
		return nil, t.illegal("SV", "FLOAT32")
	}
	return t.float32SV[:length], nil
}

// TransformToFloat32ValuesSVWithNull materializes float32 values plus
// the null mask.
func (t *TransformCore) TransformToFloat32ValuesSVWithNull(block *ValueBlock) ([]float32, *NullMask, error) {
	length := block.RowCount()
	t.initFloat32SV(length)
	var mask *NullMask
	switch t.stored() {
	case columnar.FLOAT32:
		values, err := t.TransformToFloat32ValuesSV(block)
		if err != nil {
			return nil, nil, err
		}
		mask = t.GetNullMask(block)
		return values, mask, nil
	case columnar.INT32:
		src, srcMask, err := t.TransformToInt32ValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyInt32ToFloat32(src, t.float32SV, length)
	case columnar.INT64:
		src, srcMask, err := t.TransformToInt64ValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyInt64ToFloat32(src, t.float32SV, length)
	case columnar.FLOAT64:
		src, srcMask, err := t.TransformToFloat64ValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyFloat64ToFloat32(src, t.float32SV, length)
	case columnar.DECIMAL:
		src, srcMask, err := t.TransformToDecimalValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyDecimalToFloat32(src, t.float32SV, length)
	case columnar.STRING:
		src, srcMask, err := t.TransformToStringValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		if err := CopyStringToFloat32(src, t.float32SV, length); err != nil {
			return nil, nil, err
		}
	case columnar.UNKNOWN:
		mask = NullMaskOfRange(length)
		for i := 0; i < length; i++ {
			t.float32SV[i] = columnar.NullFloat32
		}
	default:
		return nil, nil, t.illegal("SV", "FLOAT32")
	}
	return t.float32SV[:length], mask, nil
}

// TransformToFloat64ValuesSV materializes one float64 per row.
func (t *TransformCore) TransformToFloat64ValuesSV(block *ValueBlock) ([]float64, error) {
	length := block.RowCount()
	t.initFloat64SV(length)
	if t.dictionary != nil {
		dictIds, err := t.TransformToDictIdsSV(block)
		if err != nil {
			return nil, err
		}
		if err := t.dictionary.ReadFloat64Values(dictIds, length, t.float64SV); err != nil {
			return nil, err
		}
		return t.float64SV[:length], nil
	}
	if t.stored() == columnar.FLOAT64 && t.metadata.IsSingleValue() {
		return t.producers.Float64SV(block)
	}
	switch t.stored() {
	case columnar.INT32:
		src, err := t.TransformToInt32ValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyInt32ToFloat64(src, t.float64SV, length)
	case columnar.INT64:
		src, err := t.TransformToInt64ValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyInt64ToFloat64(src, t.float64SV, length)
	case columnar.FLOAT32:
		src, err := t.TransformToFloat32ValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyFloat32ToFloat64(src, t.float64SV, length)
	case columnar.DECIMAL:
		src, err := t.TransformToDecimalValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyDecimalToFloat64(src, t.float64SV, length)
	case columnar.STRING:
		src, err := t.TransformToStringValuesSV(block)
		if err != nil {
			return nil, err
		}
		if err := CopyStringToFloat64(src, t.float64SV, length); err != nil {
			return nil, err
		}
	case columnar.UNKNOWN:
		for i := 0; i < length; i++ {
			t.float64SV[i] = columnar.NullFloat64
		}
	default:
		return nil, t.illegal("SV", "FLOAT64")
	}
	return t.float64SV[:length], nil
}

// TransformToFloat64ValuesSVWithNull materializes float64 values plus
// the null mask.
func (t *TransformCore) TransformToFloat64ValuesSVWithNull(block *ValueBlock) ([]float64, *NullMask, error) {
	length := block.RowCount()
	t.initFloat64SV(length)
	var mask *NullMask
	switch t.stored() {
	case columnar.FLOAT64:
		values, err := t.TransformToFloat64ValuesSV(block)
		if err != nil {
			return nil, nil, err
		}
		mask = t.GetNullMask(block)
		return values, mask, nil
	case columnar.INT32:
		src, srcMask, err := t.TransformToInt32ValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyInt32ToFloat64(src, t.float64SV, length)
	case columnar.INT64:
		src, srcMask, err := t.TransformToInt64ValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyInt64ToFloat64(src, t.float64SV, length)
	case columnar.FLOAT32:
		src, srcMask, err := t.TransformToFloat32ValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyFloat32ToFloat64(src, t.float64SV, length)
	case columnar.DECIMAL:
		src, srcMask, err := t.TransformToDecimalValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyDecimalToFloat64(src, t.float64SV, length)
	case columnar.STRING:
		src, srcMask, err := t.TransformToStringValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		if err := CopyStringToFloat64(src, t.float64SV, length); err != nil {
			return nil, nil, err
		}
	case columnar.UNKNOWN:
		mask = NullMaskOfRange(length)
		for i := 0; i < length; i++ {
			t.float64SV[i] = columnar.NullFloat64
		}
	default:
		return nil, nil, t.illegal("SV", "FLOAT64")
	}
	return t.float64SV[:length], mask, nil
}

// TransformToDecimalValuesSV materializes one decimal per row.
func (t *TransformCore) TransformToDecimalValuesSV(block *ValueBlock) ([]decimal.Decimal, error) {
	length := block.RowCount()
	t.initDecimalSV(length)
	if t.dictionary != nil {
		dictIds, err := t.TransformToDictIdsSV(block)
		if err != nil {
			return nil, err
		}
		if err := t.dictionary.ReadDecimalValues(dictIds, length, t.decimalSV); err != nil {
			return nil, err
		}
		return t.decimalSV[:length], nil
	}
	if t.stored() == columnar.DECIMAL && t.metadata.IsSingleValue() {
		return t.producers.DecimalSV(block)
	}
	switch t.stored() {
	case columnar.INT32:
		src, err := t.TransformToInt32ValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyInt32ToDecimal(src, t.decimalSV, length)
	case columnar.INT64:
		src, err := t.TransformToInt64ValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyInt64ToDecimal(src, t.decimalSV, length)
	case columnar.FLOAT32:
		src, err := t.TransformToFloat32ValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyFloat32ToDecimal(src, t.decimalSV, length)
	case columnar.FLOAT64:
		src, err := t.TransformToFloat64ValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyFloat64ToDecimal(src, t.decimalSV, length)
	case columnar.STRING:
		src, err := t.TransformToStringValuesSV(block)
		if err != nil {
			return nil, err
		}
		if err := CopyStringToDecimal(src, t.decimalSV, length); err != nil {
			return nil, err
		}
	case columnar.BYTES:
		src, err := t.TransformToBytesValuesSV(block)
		if err != nil {
			return nil, err
		}
		if err := CopyBytesToDecimal(src, t.decimalSV, length); err != nil {
			return nil, err
		}
	case columnar.UNKNOWN:
		for i := 0; i < length; i++ {
			t.decimalSV[i] = columnar.NullDecimal
		}
	default:
		return nil, t.illegal("SV", "DECIMAL")
	}
	return t.decimalSV[:length], nil
}

// TransformToDecimalValuesSVWithNull materializes decimal values plus
// the null mask.
func (t *TransformCore) TransformToDecimalValuesSVWithNull(block *ValueBlock) ([]decimal.Decimal, *NullMask, error) {
	length := block.RowCount()
	t.initDecimalSV(length)
	var mask *NullMask
	switch t.stored() {
	case columnar.DECIMAL:
		values, err := t.TransformToDecimalValuesSV(block)
		if err != nil {
			return nil, nil, err
		}
		mask = t.GetNullMask(block)
		return values, mask, nil
	case columnar.INT32:
		src, srcMask, err := t.TransformToInt32ValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyInt32ToDecimal(src, t.decimalSV, length)
	case columnar.INT64:
		src, srcMask, err := t.TransformToInt64ValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyInt64ToDecimal(src, t.decimalSV, length)
	case columnar.FLOAT32:
		src, srcMask, err := t.TransformToFloat32ValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyFloat32ToDecimal(src, t.decimalSV, length)
	case columnar.FLOAT64:
		src, srcMask, err := t.TransformToFloat64ValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyFloat64ToDecimal(src, t.decimalSV, length)
	case columnar.STRING:
		src, srcMask, err := t.TransformToStringValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		if err := CopyStringToDecimal(src, t.decimalSV, length); err != nil {
			return nil, nil, err
		}
	case columnar.BYTES:
		src, srcMask, err := t.TransformToBytesValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		if err := CopyBytesToDecimal(src, t.decimalSV, length); err != nil {
			return nil, nil, err
		}
	case columnar.UNKNOWN:
		mask = NullMaskOfRange(length)
		for i := 0; i < length; i++ {
			t.decimalSV[i] = columnar.NullDecimal
		}
	default:
		return nil, nil, t.illegal("SV", "DECIMAL")
	}
	return t.decimalSV[:length], mask, nil
}

// TransformToStringValuesSV materializes one string per row.
func (t *TransformCore) TransformToStringValuesSV(block *ValueBlock) ([]string, error) {
	length := block.RowCount()
	t.initStringSV(length)
	if t.dictionary != nil {
		dictIds, err := t.TransformToDictIdsSV(block)
		if err != nil {
			return nil, err
		}
		if err := t.dictionary.ReadStringValues(dictIds, length, t.stringSV); err != nil {
			return nil, err
		}
		return t.stringSV[:length], nil
	}
	if t.stored() == columnar.STRING && t.metadata.IsSingleValue() {
		return t.producers.StringSV(block)
	}
	switch t.stored() {
	case columnar.INT32:
		src, err := t.TransformToInt32ValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyInt32ToString(src, t.stringSV, length)
	case columnar.INT64:
		src, err := t.TransformToInt64ValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyInt64ToString(src, t.stringSV, length)
	case columnar.FLOAT32:
		src, err := t.TransformToFloat32ValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyFloat32ToString(src, t.stringSV, length)
	case columnar.FLOAT64:
		src, err := t.TransformToFloat64ValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyFloat64ToString(src, t.stringSV, length)
	case columnar.DECIMAL:
		src, err := t.TransformToDecimalValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyDecimalToString(src, t.stringSV, length)
	case columnar.BYTES:
		src, err := t.TransformToBytesValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyBytesToString(src, t.stringSV, length)
	case columnar.UNKNOWN:
		for i := 0; i < length; i++ {
			t.stringSV[i] = columnar.NullString
		}
	default:
		return nil, t.illegal("SV", "STRING")
	}
	return t.stringSV[:length], nil
}

// TransformToStringValuesSVWithNull materializes string values plus the
// null mask.
func (t *TransformCore) TransformToStringValuesSVWithNull(block *ValueBlock) ([]string, *NullMask, error) {
	length := block.RowCount()
	t.initStringSV(length)
	var mask *NullMask
	switch t.stored() {
	case columnar.STRING:
		values, err := t.TransformToStringValuesSV(block)
		if err != nil {
			return nil, nil, err
		}
		mask = t.GetNullMask(block)
		return values, mask, nil
	case columnar.INT32:
		src, srcMask, err := t.TransformToInt32ValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyInt32ToString(src, t.stringSV, length)
	case columnar.INT64:
		src, srcMask, err := t.TransformToInt64ValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyInt64ToString(src, t.stringSV, length)
	case columnar.FLOAT32:
		src, srcMask, err := t.TransformToFloat32ValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyFloat32ToString(src, t.stringSV, length)
	case columnar.FLOAT64:
		src, srcMask, err := t.TransformToFloat64ValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyFloat64ToString(src, t.stringSV, length)
	case columnar.DECIMAL:
		src, srcMask, err := t.TransformToDecimalValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyDecimalToString(src, t.stringSV, length)
	case columnar.BYTES:
		src, srcMask, err := t.TransformToBytesValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyBytesToString(src, t.stringSV, length)
	case columnar.UNKNOWN:
		mask = NullMaskOfRange(length)
		for i := 0; i < length; i++ {
			t.stringSV[i] = columnar.NullString
		}
	default:
		return nil, nil, t.illegal("SV", "STRING")
	}
	return t.stringSV[:length], mask, nil
}

// TransformToBytesValuesSV materializes one byte slice per row.
func (t *TransformCore) TransformToBytesValuesSV(block *ValueBlock) ([][]byte, error) {
	length := block.RowCount()
	t.initBytesSV(length)
	if t.dictionary != nil {
		dictIds, err := t.TransformToDictIdsSV(block)
		if err != nil {
			return nil, err
		}
		if err := t.dictionary.ReadBytesValues(dictIds, length, t.bytesSV); err != nil {
			return nil, err
		}
		return t.bytesSV[:length], nil
	}
	if t.stored() == columnar.BYTES && t.metadata.IsSingleValue() {
		return t.producers.BytesSV(block)
	}
	switch t.stored() {
	case columnar.DECIMAL:
		src, err := t.TransformToDecimalValuesSV(block)
		if err != nil {
			return nil, err
		}
		CopyDecimalToBytes(src, t.bytesSV, length)
	case columnar.STRING:
		src, err := t.TransformToStringValuesSV(block)
		if err != nil {
			return nil, err
		}
		if err := CopyStringToBytes(src, t.bytesSV, length); err != nil {
			return nil, err
		}
	case columnar.UNKNOWN:
		for i := 0; i < length; i++ {
			t.bytesSV[i] = columnar.NullBytes()
		}
	default:
		return nil, t.illegal("SV", "BYTES")
	}
	return t.bytesSV[:length], nil
}

// TransformToBytesValuesSVWithNull materializes byte-slice values plus
// the null mask.
func (t *TransformCore) TransformToBytesValuesSVWithNull(block *ValueBlock) ([][]byte, *NullMask, error) {
	length := block.RowCount()
	t.initBytesSV(length)
	var mask *NullMask
	switch t.stored() {
	case columnar.BYTES:
		values, err := t.TransformToBytesValuesSV(block)
		if err != nil {
			return nil, nil, err
		}
		mask = t.GetNullMask(block)
		return values, mask, nil
	case columnar.DECIMAL:
		src, srcMask, err := t.TransformToDecimalValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyDecimalToBytes(src, t.bytesSV, length)
	case columnar.STRING:
		src, srcMask, err := t.TransformToStringValuesSVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		if err := CopyStringToBytes(src, t.bytesSV, length); err != nil {
			return nil, nil, err
		}
	case columnar.UNKNOWN:
		mask = NullMaskOfRange(length)
		for i := 0; i < length; i++ {
			t.bytesSV[i] = columnar.NullBytes()
		}
	default:
		return nil, nil, t.illegal("SV", "BYTES")
	}
	return t.bytesSV[:length], mask, nil
}

// Multi-valued materialization. Dictionary decode allocates one fresh
// typed sequence per row; derivation preserves each row's length.

// TransformToInt32ValuesMV materializes one int32 sequence per row.
func (t *TransformCore) TransformToInt32ValuesMV(block *ValueBlock) ([][]int32, error) {
	length := block.RowCount()
	t.initInt32MV(length)
	if t.dictionary != nil {
		dictIdsMV, err := t.TransformToDictIdsMV(block)
		if err != nil {
			return nil, err
		}
		for i := 0; i < length; i++ {
			dictIds := dictIdsMV[i]
			values := make([]int32, len(dictIds))
			if err := t.dictionary.ReadInt32Values(dictIds, len(dictIds), values); err != nil {
				return nil, err
			}
			t.int32MV[i] = values
		}
		return t.int32MV[:length], nil
	}
	if t.stored() == columnar.INT32 && !t.metadata.IsSingleValue() {
		return t.producers.Int32MV(block)
	}
	switch t.stored() {
	case columnar.INT64:
		src, err := t.TransformToInt64ValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyInt64ToInt32MV(src, t.int32MV, length)
	case columnar.FLOAT32:
		src, err := t.TransformToFloat32ValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyFloat32ToInt32MV(src, t.int32MV, length)
	case columnar.FLOAT64:
		src, err := t.TransformToFloat64ValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyFloat64ToInt32MV(src, t.int32MV, length)
	case columnar.DECIMAL:
		src, err := t.TransformToDecimalValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyDecimalToInt32MV(src, t.int32MV, length)
	case columnar.STRING:
		src, err := t.TransformToStringValuesMV(block)
		if err != nil {
			return nil, err
		}
		if err := CopyStringToInt32MV(src, t.int32MV, length); err != nil {
			return nil, err
		}
	case columnar.UNKNOWN:
		for i := 0; i < length; i++ {
			t.int32MV[i] = []int32{}
		}
	default:
		return nil, t.illegal("MV", "INT32")
	}
	return t.int32MV[:length], nil
}

// TransformToInt32ValuesMVWithNull materializes int32 sequences plus the
// null mask.
func (t *TransformCore) TransformToInt32ValuesMVWithNull(block *ValueBlock) ([][]int32, *NullMask, error) {
	length := block.RowCount()
	t.initInt32MV(length)
	var mask *NullMask
	switch t.stored() {
	case columnar.INT32:
		values, err := t.TransformToInt32ValuesMV(block)
		if err != nil {
			return nil, nil, err
		}
		mask = t.GetNullMask(block)
		return values, mask, nil
	case columnar.INT64:
		src, srcMask, err := t.TransformToInt64ValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyInt64ToInt32MV(src, t.int32MV, length)
	case columnar.FLOAT32:
		src, srcMask, err := t.TransformToFloat32ValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyFloat32ToInt32MV(src, t.int32MV, length)
	case columnar.FLOAT64:
		src, srcMask, err := t.TransformToFloat64ValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyFloat64ToInt32MV(src, t.int32MV, length)
	case columnar.DECIMAL:
		src, srcMask, err := t.TransformToDecimalValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyDecimalToInt32MV(src, t.int32MV, length)
	case columnar.STRING:
		src, srcMask, err := t.TransformToStringValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		if err := CopyStringToInt32MV(src, t.int32MV, length); err != nil {
			return nil, nil, err
		}
	case columnar.UNKNOWN:
		mask = NullMaskOfRange(length)
		for i := 0; i < length; i++ {
			t.int32MV[i] = []int32{}
		}
	default:
		return nil, nil, t.illegal("MV", "INT32")
	}
	return t.int32MV[:length], mask, nil
}

// TransformToInt64ValuesMV materializes one int64 sequence per row.
func (t *TransformCore) TransformToInt64ValuesMV(block *ValueBlock) ([][]int64, error) {
	length := block.RowCount()
	t.initInt64MV(length)
	if t.dictionary != nil {
		dictIdsMV, err := t.TransformToDictIdsMV(block)
		if err != nil {
			return nil, err
		}
		for i := 0; i < length; i++ {
			dictIds := dictIdsMV[i]
			values := make([]int64, len(dictIds))
			if err := t.dictionary.ReadInt64Values(dictIds, len(dictIds), values); err != nil {
				return nil, err
			}
			t.int64MV[i] = values
		}
		return t.int64MV[:length], nil
	}
	if t.stored() == columnar.INT64 && !t.metadata.IsSingleValue() {
		return t.producers.Int64MV(block)
	}
	switch t.stored() {
	case columnar.INT32:
		src, err := t.TransformToInt32ValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyInt32ToInt64MV(src, t.int64MV, length)
	case columnar.FLOAT32:
		src, err := t.TransformToFloat32ValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyFloat32ToInt64MV(src, t.int64MV, length)
	case columnar.FLOAT64:
		src, err := t.TransformToFloat64ValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyFloat64ToInt64MV(src, t.int64MV, length)
	case columnar.DECIMAL:
		src, err := t.TransformToDecimalValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyDecimalToInt64MV(src, t.int64MV, length)
	case columnar.STRING:
		src, err := t.TransformToStringValuesMV(block)
		if err != nil {
			return nil, err
		}
		if err := CopyStringToInt64MV(src, t.int64MV, length); err != nil {
			return nil, err
		}
	case columnar.UNKNOWN:
		for i := 0; i < length; i++ {
			t.int64MV[i] = []int64{}
		}
	default:
		return nil, t.illegal("MV", "INT64")
	}
	return t.int64MV[:length], nil
}

// TransformToInt64ValuesMVWithNull materializes int64 sequences plus the
// null mask.
func (t *TransformCore) TransformToInt64ValuesMVWithNull(block *ValueBlock) ([][]int64, *NullMask, error) {
	length := block.RowCount()
	t.initInt64MV(length)
	var mask *NullMask
	switch t.stored() {
	case columnar.INT64:
		values, err := t.TransformToInt64ValuesMV(block)
		if err != nil {
			return nil, nil, err
		}
		mask = t.GetNullMask(block)
		return values, mask, nil
	case columnar.INT32:
		src, srcMask, err := t.TransformToInt32ValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyInt32ToInt64MV(src, t.int64MV, length)
	case columnar.FLOAT32:
		src, srcMask, err := t.TransformToFloat32ValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyFloat32ToInt64MV(src, t.int64MV, length)
	case columnar.FLOAT64:
		src, srcMask, err := t.TransformToFloat64ValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyFloat64ToInt64MV(src, t.int64MV, length)
	case columnar.DECIMAL:
		src, srcMask, err := t.TransformToDecimalValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyDecimalToInt64MV(src, t.int64MV, length)
	case columnar.STRING:
		src, srcMask, err := t.TransformToStringValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		if err := CopyStringToInt64MV(src, t.int64MV, length); err != nil {
			return nil, nil, err
		}
	case columnar.UNKNOWN:
		mask = NullMaskOfRange(length)
		for i := 0; i < length; i++ {
			t.int64MV[i] = []int64{}
		}
	default:
		return nil, nil, t.illegal("MV", "INT64")
	}
	return t.int64MV[:length], mask, nil
}

// TransformToFloat32ValuesMV materializes one float32 sequence per row.
func (t *TransformCore) TransformToFloat32ValuesMV(block *ValueBlock) ([][]float32, error) {
	length := block.RowCount()
	t.initFloat32MV(length)
	if t.dictionary != nil {
		dictIdsMV, err := t.TransformToDictIdsMV(block)
		if err != nil {
			return nil, err
		}
		for i := 0; i < length; i++ {
			dictIds := dictIdsMV[i]
			values := make([]float32, len(dictIds))
			if err := t.dictionary.ReadFloat32Values(dictIds, len(dictIds), values); err != nil {
				return nil, err
			}
			t.float32MV[i] = values
		}
		return t.float32MV[:length], nil
	}
	if t.stored() == columnar.FLOAT32 && !t.metadata.IsSingleValue() {
		return t.producers.Float32MV(block)
	}
	switch t.stored() {
	case columnar.INT32:
		src, err := t.TransformToInt32ValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyInt32ToFloat32MV(src, t.float32MV, length)
	case columnar.INT64:
		src, err := t.TransformToInt64ValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyInt64ToFloat32MV(src, t.float32MV, length)
	case columnar.FLOAT64:
		src, err := t.TransformToFloat64ValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyFloat64ToFloat32MV(src, t.float32MV, length)
	case columnar.DECIMAL:
		src, err := t.TransformToDecimalValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyDecimalToFloat32MV(src, t.float32MV, length)
	case columnar.STRING:
		src, err := t.TransformToStringValuesMV(block)
		if err != nil {
			return nil, err
		}
		if err := CopyStringToFloat32MV(src, t.float32MV, length); err != nil {
			return nil, err
		}
	case columnar.UNKNOWN:
		for i := 0; i < length; i++ {
			t.float32MV[i] = []float32{}
		}
	default:
		return nil, t.illegal("MV", "FLOAT32")
	}
	return t.float32MV[:length], nil
}

// TransformToFloat32ValuesMVWithNull materializes float32 sequences plus
// the null mask.
func (t *TransformCore) TransformToFloat32ValuesMVWithNull(block *ValueBlock) ([][]float32, *NullMask, error) {
	length := block.RowCount()
	t.initFloat32MV(length)
	var mask *NullMask
	switch t.stored() {
	case columnar.FLOAT32:
		values, err := t.TransformToFloat32ValuesMV(block)
		if err != nil {
			return nil, nil, err
		}
		mask = t.GetNullMask(block)
		return values, mask, nil
	case columnar.INT32:
		src, srcMask, err := t.TransformToInt32ValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyInt32ToFloat32MV(src, t.float32MV, length)
	case columnar.INT64:
		src, srcMask, err := t.TransformToInt64ValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyInt64ToFloat32MV(src, t.float32MV, length)
	case columnar.FLOAT64:
		src, srcMask, err := t.TransformToFloat64ValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyFloat64ToFloat32MV(src, t.float32MV, length)
	case columnar.DECIMAL:
		src, srcMask, err := t.TransformToDecimalValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyDecimalToFloat32MV(src, t.float32MV, length)
	case columnar.STRING:
		src, srcMask, err := t.TransformToStringValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		if err := CopyStringToFloat32MV(src, t.float32MV, length); err != nil {
			return nil, nil, err
		}
	case columnar.UNKNOWN:
		mask = NullMaskOfRange(length)
		for i := 0; i < length; i++ {
			t.float32MV[i] = []float32{}
		}
	default:
		return nil, nil, t.illegal("MV", "FLOAT32")
	}
	return t.float32MV[:length], mask, nil
}

// TransformToFloat64ValuesMV materializes one float64 sequence per row.
func (t *TransformCore) TransformToFloat64ValuesMV(block *ValueBlock) ([][]float64, error) {
	length := block.RowCount()
	t.initFloat64MV(length)
	if t.dictionary != nil {
		dictIdsMV, err := t.TransformToDictIdsMV(block)
		if err != nil {
			return nil, err
		}
		for i := 0; i < length; i++ {
			dictIds := dictIdsMV[i]
			values := make([]float64, len(dictIds))
			if err := t.dictionary.ReadFloat64Values(dictIds, len(dictIds), values); err != nil {
				return nil, err
			}
			t.float64MV[i] = values
		}
		return t.float64MV[:length], nil
	}
	if t.stored() == columnar.FLOAT64 && !t.metadata.IsSingleValue() {
		return t.producers.Float64MV(block)
	}
	switch t.stored() {
	case columnar.INT32:
		src, err := t.TransformToInt32ValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyInt32ToFloat64MV(src, t.float64MV, length)
	case columnar.INT64:
		src, err := t.TransformToInt64ValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyInt64ToFloat64MV(src, t.float64MV, length)
	case columnar.FLOAT32:
		src, err := t.TransformToFloat32ValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyFloat32ToFloat64MV(src, t.float64MV, length)
	case columnar.DECIMAL:
		src, err := t.TransformToDecimalValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyDecimalToFloat64MV(src, t.float64MV, length)
	case columnar.STRING:
		src, err := t.TransformToStringValuesMV(block)
		if err != nil {
			return nil, err
		}
		if err := CopyStringToFloat64MV(src, t.float64MV, length); err != nil {
			return nil, err
		}
	case columnar.UNKNOWN:
		for i := 0; i < length; i++ {
			t.float64MV[i] = []float64{}
		}
	default:
		return nil, t.illegal("MV", "FLOAT64")
	}
	return t.float64MV[:length], nil
}

// TransformToFloat64ValuesMVWithNull materializes float64 sequences plus
// the null mask.
func (t *TransformCore) TransformToFloat64ValuesMVWithNull(block *ValueBlock) ([][]float64, *NullMask, error) {
	length := block.RowCount()
	t.initFloat64MV(length)
	var mask *NullMask
	switch t.stored() {
	case columnar.FLOAT64:
		values, err := t.TransformToFloat64ValuesMV(block)
		if err != nil {
			return nil, nil, err
		}
		mask = t.GetNullMask(block)
		return values, mask, nil
	case columnar.INT32:
		src, srcMask, err := t.TransformToInt32ValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyInt32ToFloat64MV(src, t.float64MV, length)
	case columnar.INT64:
		src, srcMask, err := t.TransformToInt64ValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyInt64ToFloat64MV(src, t.float64MV, length)
	case columnar.FLOAT32:
		src, srcMask, err := t.TransformToFloat32ValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyFloat32ToFloat64MV(src, t.float64MV, length)
	case columnar.DECIMAL:
		src, srcMask, err := t.TransformToDecimalValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyDecimalToFloat64MV(src, t.float64MV, length)
	case columnar.STRING:
		src, srcMask, err := t.TransformToStringValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		if err := CopyStringToFloat64MV(src, t.float64MV, length); err != nil {
			return nil, nil, err
		}
	case columnar.UNKNOWN:
		mask = NullMaskOfRange(length)
		for i := 0; i < length; i++ {
			t.float64MV[i] = []float64{}
		}
	default:
		return nil, nil, t.illegal("MV", "FLOAT64")
	}
	return t.float64MV[:length], mask, nil
}

// TransformToDecimalValuesMV materializes one decimal sequence per row.
func (t *TransformCore) TransformToDecimalValuesMV(block *ValueBlock) ([][]decimal.Decimal, error) {
	length := block.RowCount()
	t.initDecimalMV(length)
	if t.dictionary != nil {
		dictIdsMV, err := t.TransformToDictIdsMV(block)
		if err != nil {
			return nil, err
		}
		for i := 0; i < length; i++ {
			dictIds := dictIdsMV[i]
			values := make([]decimal.Decimal, len(dictIds))
			if err := t.dictionary.ReadDecimalValues(dictIds, len(dictIds), values); err != nil {
				return nil, err
			}
			t.decimalMV[i] = values
		}
		return t.decimalMV[:length], nil
	}
	if t.stored() == columnar.DECIMAL && !t.metadata.IsSingleValue() {
		return t.producers.DecimalMV(block)
	}
	switch t.stored() {
	case columnar.INT32:
		src, err := t.TransformToInt32ValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyInt32ToDecimalMV(src, t.decimalMV, length)
	case columnar.INT64:
		src, err := t.TransformToInt64ValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyInt64ToDecimalMV(src, t.decimalMV, length)
	case columnar.FLOAT32:
		src, err := t.TransformToFloat32ValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyFloat32ToDecimalMV(src, t.decimalMV, length)
	case columnar.FLOAT64:
		src, err := t.TransformToFloat64ValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyFloat64ToDecimalMV(src, t.decimalMV, length)
	case columnar.STRING:
		src, err := t.TransformToStringValuesMV(block)
		if err != nil {
			return nil, err
		}
		if err := CopyStringToDecimalMV(src, t.decimalMV, length); err != nil {
			return nil, err
		}
	case columnar.BYTES:
		src, err := t.TransformToBytesValuesMV(block)
		if err != nil {
			return nil, err
		}
		if err := CopyBytesToDecimalMV(src, t.decimalMV, length); err != nil {
			return nil, err
		}
	case columnar.UNKNOWN:
		for i := 0; i < length; i++ {
			t.decimalMV[i] = []decimal.Decimal{}
		}
	default:
		return nil, t.illegal("MV", "DECIMAL")
	}
	return t.decimalMV[:length], nil
}

// TransformToDecimalValuesMVWithNull materializes decimal sequences plus
// the null mask.
func (t *TransformCore) TransformToDecimalValuesMVWithNull(block *ValueBlock) ([][]decimal.Decimal, *NullMask, error) {
	length := block.RowCount()
	t.initDecimalMV(length)
	var mask *NullMask
	switch t.stored() {
	case columnar.DECIMAL:
		values, err := t.TransformToDecimalValuesMV(block)
		if err != nil {
			return nil, nil, err
		}
		mask = t.GetNullMask(block)
		return values, mask, nil
	case columnar.INT32:
		src, srcMask, err := t.TransformToInt32ValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyInt32ToDecimalMV(src, t.decimalMV, length)
	case columnar.INT64:
		src, srcMask, err := t.TransformToInt64ValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyInt64ToDecimalMV(src, t.decimalMV, length)
	case columnar.FLOAT32:
		src, srcMask, err := t.TransformToFloat32ValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyFloat32ToDecimalMV(src, t.decimalMV, length)
	case columnar.FLOAT64:
		src, srcMask, err := t.TransformToFloat64ValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyFloat64ToDecimalMV(src, t.decimalMV, length)
	case columnar.STRING:
		src, srcMask, err := t.TransformToStringValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		if err := CopyStringToDecimalMV(src, t.decimalMV, length); err != nil {
			return nil, nil, err
		}
	case columnar.BYTES:
		src, srcMask, err := t.TransformToBytesValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		if err := CopyBytesToDecimalMV(src, t.decimalMV, length); err != nil {
			return nil, nil, err
		}
	case columnar.UNKNOWN:
		mask = NullMaskOfRange(length)
		for i := 0; i < length; i++ {
			t.decimalMV[i] = []decimal.Decimal{}
		}
	default:
		return nil, nil, t.illegal("MV", "DECIMAL")
	}
	return t.decimalMV[:length], mask, nil
}

// TransformToStringValuesMV materializes one string sequence per row.
func (t *TransformCore) TransformToStringValuesMV(block *ValueBlock) ([][]string, error) {
	length := block.RowCount()
	t.initStringMV(length)
	if t.dictionary != nil {
		dictIdsMV, err := t.TransformToDictIdsMV(block)
		if err != nil {
			return nil, err
		}
		for i := 0; i < length; i++ {
			dictIds := dictIdsMV[i]
			values := make([]string, len(dictIds))
			if err := t.dictionary.ReadStringValues(dictIds, len(dictIds), values); err != nil {
				return nil, err
			}
			t.stringMV[i] = values
		}
		return t.stringMV[:length], nil
	}
	if t.stored() == columnar.STRING && !t.metadata.IsSingleValue() {
		return t.producers.StringMV(block)
	}
	switch t.stored() {
	case columnar.INT32:
		src, err := t.TransformToInt32ValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyInt32ToStringMV(src, t.stringMV, length)
	case columnar.INT64:
		src, err := t.TransformToInt64ValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyInt64ToStringMV(src, t.stringMV, length)
	case columnar.FLOAT32:
		src, err := t.TransformToFloat32ValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyFloat32ToStringMV(src, t.stringMV, length)
	case columnar.FLOAT64:
		src, err := t.TransformToFloat64ValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyFloat64ToStringMV(src, t.stringMV, length)
	case columnar.DECIMAL:
		src, err := t.TransformToDecimalValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyDecimalToStringMV(src, t.stringMV, length)
	case columnar.BYTES:
		src, err := t.TransformToBytesValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyBytesToStringMV(src, t.stringMV, length)
	case columnar.UNKNOWN:
		for i := 0; i < length; i++ {
			t.stringMV[i] = []string{}
		}
	default:
		return nil, t.illegal("MV", "STRING")
	}
	return t.stringMV[:length], nil
}

// TransformToStringValuesMVWithNull materializes string sequences plus
// the null mask.
func (t *TransformCore) TransformToStringValuesMVWithNull(block *ValueBlock) ([][]string, *NullMask, error) {
	length := block.RowCount()
	t.initStringMV(length)
	var mask *NullMask
	switch t.stored() {
	case columnar.STRING:
		values, err := t.TransformToStringValuesMV(block)
		if err != nil {
			return nil, nil, err
		}
		mask = t.GetNullMask(block)
		return values, mask, nil
	case columnar.INT32:
		src, srcMask, err := t.TransformToInt32ValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyInt32ToStringMV(src, t.stringMV, length)
	case columnar.INT64:
		src, srcMask, err := t.TransformToInt64ValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyInt64ToStringMV(src, t.stringMV, length)
	case columnar.FLOAT32:
		src, srcMask, err := t.TransformToFloat32ValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyFloat32ToStringMV(src, t.stringMV, length)
	case columnar.FLOAT64:
		src, srcMask, err := t.TransformToFloat64ValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyFloat64ToStringMV(src, t.stringMV, length)
	case columnar.DECIMAL:
		src, srcMask, err := t.TransformToDecimalValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyDecimalToStringMV(src, t.stringMV, length)
	case columnar.BYTES:
		src, srcMask, err := t.TransformToBytesValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyBytesToStringMV(src, t.stringMV, length)
	case columnar.UNKNOWN:
		mask = NullMaskOfRange(length)
		for i := 0; i < length; i++ {
			t.stringMV[i] = []string{}
		}
	default:
		return nil, nil, t.illegal("MV", "STRING")
	}
	return t.stringMV[:length], mask, nil
}

// TransformToBytesValuesMV materializes one byte-slice sequence per row.
func (t *TransformCore) TransformToBytesValuesMV(block *ValueBlock) ([][][]byte, error) {
	length := block.RowCount()
	t.initBytesMV(length)
	if t.dictionary != nil {
		dictIdsMV, err := t.TransformToDictIdsMV(block)
		if err != nil {
			return nil, err
		}
		for i := 0; i < length; i++ {
			dictIds := dictIdsMV[i]
			values := make([][]byte, len(dictIds))
			if err := t.dictionary.ReadBytesValues(dictIds, len(dictIds), values); err != nil {
				return nil, err
			}
			t.bytesMV[i] = values
		}
		return t.bytesMV[:length], nil
	}
	if t.stored() == columnar.BYTES && !t.metadata.IsSingleValue() {
		return t.producers.BytesMV(block)
	}
	switch t.stored() {
	case columnar.DECIMAL:
		src, err := t.TransformToDecimalValuesMV(block)
		if err != nil {
			return nil, err
		}
		CopyDecimalToBytesMV(src, t.bytesMV, length)
	case columnar.STRING:
		src, err := t.TransformToStringValuesMV(block)
		if err != nil {
			return nil, err
		}
		if err := CopyStringToBytesMV(src, t.bytesMV, length); err != nil {
			return nil, err
		}
	case columnar.UNKNOWN:
		for i := 0; i < length; i++ {
			t.bytesMV[i] = [][]byte{}
		}
	default:
		return nil, t.illegal("MV", "BYTES")
	}
	return t.bytesMV[:length], nil
}

// TransformToBytesValuesMVWithNull materializes byte-slice sequences
// plus the null mask.
func (t *TransformCore) TransformToBytesValuesMVWithNull(block *ValueBlock) ([][][]byte, *NullMask, error) {
	length := block.RowCount()
	t.initBytesMV(length)
	var mask *NullMask
	switch t.stored() {
	case columnar.BYTES:
		values, err := t.TransformToBytesValuesMV(block)
		if err != nil {
			return nil, nil, err
		}
		mask = t.GetNullMask(block)
		return values, mask, nil
	case columnar.DECIMAL:
		src, srcMask, err := t.TransformToDecimalValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		CopyDecimalToBytesMV(src, t.bytesMV, length)
	case columnar.STRING:
		src, srcMask, err := t.TransformToStringValuesMVWithNull(block)
		if err != nil {
			return nil, nil, err
		}
		mask = srcMask
		if err := CopyStringToBytesMV(src, t.bytesMV, length); err != nil {
			return nil, nil, err
		}
	case columnar.UNKNOWN:
		mask = NullMaskOfRange(length)
		for i := 0; i < length; i++ {
			t.bytesMV[i] = [][]byte{}
		}
	default:
		return nil, nil, t.illegal("MV", "BYTES")
	}
	return t.bytesMV[:length], mask, nil
}
