package columnar

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// Dictionary is the id-to-value table of a dictionary-encoded column.
// Each Read*Values call decodes dictIds[0:length] into out[0:length],
// converting from the dictionary's stored type to the requested type.
// Ids beyond length are never touched.
type Dictionary interface {
	Length() int
	DataType() DataType

	ReadInt32Values(dictIds []int, length int, out []int32) error
	ReadInt64Values(dictIds []int, length int, out []int64) error
	ReadFloat32Values(dictIds []int, length int, out []float32) error
	ReadFloat64Values(dictIds []int, length int, out []float64) error
	ReadDecimalValues(dictIds []int, length int, out []decimal.Decimal) error
	ReadStringValues(dictIds []int, length int, out []string) error
	ReadBytesValues(dictIds []int, length int, out [][]byte) error
}

// Int32Dictionary maps dictionary ids to int32 values.
type Int32Dictionary struct {
	values []int32
}

func NewInt32Dictionary(values []int32) *Int32Dictionary {
	return &Int32Dictionary{values: values}
}

func (d *Int32Dictionary) Length() int        { return len(d.values) }
func (d *Int32Dictionary) DataType() DataType { return INT32 }

func (d *Int32Dictionary) ReadInt32Values(dictIds []int, length int, out []int32) error {
	for i := 0; i < length; i++ {
		out[i] = d.values[dictIds[i]]
	}
	return nil
}

func (d *Int32Dictionary) ReadInt64Values(dictIds []int, length int, out []int64) error {
	for i := 0; i < length; i++ {
		out[i] = int64(d.values[dictIds[i]])
	}
	return nil
}

func (d *Int32Dictionary) ReadFloat32Values(dictIds []int, length int, out []float32) error {
	for i := 0; i < length; i++ {
		out[i] = float32(d.values[dictIds[i]])
	}
	return nil
}

func (d *Int32Dictionary) ReadFloat64Values(dictIds []int, length int, out []float64) error {
	for i := 0; i < length; i++ {
		out[i] = float64(d.values[dictIds[i]])
	}
	return nil
}

func (d *Int32Dictionary) ReadDecimalValues(dictIds []int, length int, out []decimal.Decimal) error {
	for i := 0; i < length; i++ {
		out[i] = decimal.NewFromInt32(d.values[dictIds[i]])
	}
	return nil
}

func (d *Int32Dictionary) ReadStringValues(dictIds []int, length int, out []string) error {
	for i := 0; i < length; i++ {
		out[i] = StringFromInt32(d.values[dictIds[i]])
	}
	return nil
}

func (d *Int32Dictionary) ReadBytesValues(dictIds []int, length int, out [][]byte) error {
	return fmt.Errorf("%w: INT32 dictionary as BYTES", ErrConversion)
}

// Int64Dictionary maps dictionary ids to int64 values.
type Int64Dictionary struct {
	values []int64
}

func NewInt64Dictionary(values []int64) *Int64Dictionary {
	return &Int64Dictionary{values: values}
}

func (d *Int64Dictionary) Length() int        { return len(d.values) }
func (d *Int64Dictionary) DataType() DataType { return INT64 }

func (d *Int64Dictionary) ReadInt32Values(dictIds []int, length int, out []int32) error {
	for i := 0; i < length; i++ {
		out[i] = Int32FromInt64(d.values[dictIds[i]])
	}
	return nil
}

func (d *Int64Dictionary) ReadInt64Values(dictIds []int, length int, out []int64) error {
	for i := 0; i < length; i++ {
		out[i] = d.values[dictIds[i]]
	}
	return nil
}

func (d *Int64Dictionary) ReadFloat32Values(dictIds []int, length int, out []float32) error {
	for i := 0; i < length; i++ {
		out[i] = float32(d.values[dictIds[i]])
	}
	return nil
}

func (d *Int64Dictionary) ReadFloat64Values(dictIds []int, length int, out []float64) error {
	for i := 0; i < length; i++ {
		out[i] = float64(d.values[dictIds[i]])
	}
	return nil
}

func (d *Int64Dictionary) ReadDecimalValues(dictIds []int, length int, out []decimal.Decimal) error {
	for i := 0; i < length; i++ {
		out[i] = decimal.NewFromInt(d.values[dictIds[i]])
	}
	return nil
}

func (d *Int64Dictionary) ReadStringValues(dictIds []int, length int, out []string) error {
	for i := 0; i < length; i++ {
		out[i] = StringFromInt64(d.values[dictIds[i]])
	}
	return nil
}

func (d *Int64Dictionary) ReadBytesValues(dictIds []int, length int, out [][]byte) error {
	return fmt.Errorf("%w: INT64 dictionary as BYTES", ErrConversion)
}

// Float32Dictionary maps dictionary ids to float32 values.
type Float32Dictionary struct {
	values []float32
}

func NewFloat32Dictionary(values []float32) *Float32Dictionary {
	return &Float32Dictionary{values: values}
}

func (d *Float32Dictionary) Length() int        { return len(d.values) }
func (d *Float32Dictionary) DataType() DataType { return FLOAT32 }

func (d *Float32Dictionary) ReadInt32Values(dictIds []int, length int, out []int32) error {
	for i := 0; i < length; i++ {
		out[i] = Int32FromFloat32(d.values[dictIds[i]])
	}
	return nil
}

func (d *Float32Dictionary) ReadInt64Values(dictIds []int, length int, out []int64) error {
	for i := 0; i < length; i++ {
		out[i] = Int64FromFloat32(d.values[dictIds[i]])
	}
	return nil
}

func (d *Float32Dictionary) ReadFloat32Values(dictIds []int, length int, out []float32) error {
	for i := 0; i < length; i++ {
		out[i] = d.values[dictIds[i]]
	}
	return nil
}

func (d *Float32Dictionary) ReadFloat64Values(dictIds []int, length int, out []float64) error {
	for i := 0; i < length; i++ {
		out[i] = float64(d.values[dictIds[i]])
	}
	return nil
}

func (d *Float32Dictionary) ReadDecimalValues(dictIds []int, length int, out []decimal.Decimal) error {
	for i := 0; i < length; i++ {
		out[i] = DecimalFromFloat32(d.values[dictIds[i]])
	}
	return nil
}

func (d *Float32Dictionary) ReadStringValues(dictIds []int, length int, out []string) error {
	for i := 0; i < length; i++ {
		out[i] = StringFromFloat32(d.values[dictIds[i]])
	}
	return nil
}

func (d *Float32Dictionary) ReadBytesValues(dictIds []int, length int, out [][]byte) error {
	return fmt.Errorf("%w: FLOAT32 dictionary as BYTES", ErrConversion)
}

// Float64Dictionary maps dictionary ids to float64 values.
type Float64Dictionary struct {
	values []float64
}

func NewFloat64Dictionary(values []float64) *Float64Dictionary {
	return &Float64Dictionary{values: values}
}

func (d *Float64Dictionary) Length() int        { return len(d.values) }
func (d *Float64Dictionary) DataType() DataType { return FLOAT64 }

func (d *Float64Dictionary) ReadInt32Values(dictIds []int, length int, out []int32) error {
	for i := 0; i < length; i++ {
		out[i] = Int32FromFloat64(d.values[dictIds[i]])
	}
	return nil
}

func (d *Float64Dictionary) ReadInt64Values(dictIds []int, length int, out []int64) error {
	for i := 0; i < length; i++ {
		out[i] = Int64FromFloat64(d.values[dictIds[i]])
	}
	return nil
}

func (d *Float64Dictionary) ReadFloat32Values(dictIds []int, length int, out []float32) error {
	for i := 0; i < length; i++ {
		out[i] = float32(d.values[dictIds[i]])
	}
	return nil
}

func (d *Float64Dictionary) ReadFloat64Values(dictIds []int, length int, out []float64) error {
	for i := 0; i < length; i++ {
		out[i] = d.values[dictIds[i]]
	}
	return nil
}

func (d *Float64Dictionary) ReadDecimalValues(dictIds []int, length int, out []decimal.Decimal) error {
	for i := 0; i < length; i++ {
		out[i] = DecimalFromFloat64(d.values[dictIds[i]])
	}
	return nil
}

func (d *Float64Dictionary) ReadStringValues(dictIds []int, length int, out []string) error {
	for i := 0; i < length; i++ {
		out[i] = StringFromFloat64(d.values[dictIds[i]])
	}
	return nil
}

func (d *Float64Dictionary) ReadBytesValues(dictIds []int, length int, out [][]byte) error {
	return fmt.Errorf("%w: FLOAT64 dictionary as BYTES", ErrConversion)
}

// DecimalDictionary maps dictionary ids to decimal values.
type DecimalDictionary struct {
	values []decimal.Decimal
}

func NewDecimalDictionary(values []decimal.Decimal) *DecimalDictionary {
	return &DecimalDictionary{values: values}
}

func (d *DecimalDictionary) Length() int        { return len(d.values) }
func (d *DecimalDictionary) DataType() DataType { return DECIMAL }

func (d *DecimalDictionary) ReadInt32Values(dictIds []int, length int, out []int32) error {
	for i := 0; i < length; i++ {
		out[i] = Int32FromDecimal(d.values[dictIds[i]])
	}
	return nil
}

func (d *DecimalDictionary) ReadInt64Values(dictIds []int, length int, out []int64) error {
	for i := 0; i < length; i++ {
		out[i] = Int64FromDecimal(d.values[dictIds[i]])
	}
	return nil
}

func (d *DecimalDictionary) ReadFloat32Values(dictIds []int, length int, out []float32) error {
	for i := 0; i < length; i++ {
		out[i] = Float32FromDecimal(d.values[dictIds[i]])
	}
	return nil
}

func (d *DecimalDictionary) ReadFloat64Values(dictIds []int, length int, out []float64) error {
	for i := 0; i < length; i++ {
		out[i] = Float64FromDecimal(d.values[dictIds[i]])
	}
	return nil
}

func (d *DecimalDictionary) ReadDecimalValues(dictIds []int, length int, out []decimal.Decimal) error {
	for i := 0; i < length; i++ {
		out[i] = d.values[dictIds[i]]
	}
	return nil
}

func (d *DecimalDictionary) ReadStringValues(dictIds []int, length int, out []string) error {
	for i := 0; i < length; i++ {
		out[i] = StringFromDecimal(d.values[dictIds[i]])
	}
	return nil
}

func (d *DecimalDictionary) ReadBytesValues(dictIds []int, length int, out [][]byte) error {
	for i := 0; i < length; i++ {
		out[i] = SerializeDecimal(d.values[dictIds[i]])
	}
	return nil
}

// StringDictionary maps dictionary ids to string values.
type StringDictionary struct {
	values []string
}

func NewStringDictionary(values []string) *StringDictionary {
	return &StringDictionary{values: values}
}

func (d *StringDictionary) Length() int        { return len(d.values) }
func (d *StringDictionary) DataType() DataType { return STRING }

func (d *StringDictionary) ReadInt32Values(dictIds []int, length int, out []int32) error {
	for i := 0; i < length; i++ {
		v, err := Int32FromString(d.values[dictIds[i]])
		if err != nil {
			return err
		}
		out[i] = v
	}
	return nil
}

func (d *StringDictionary) ReadInt64Values(dictIds []int, length int, out []int64) error {
	for i := 0; i < length; i++ {
		v, err := Int64FromString(d.values[dictIds[i]])
		if err != nil {
			return err
		}
		out[i] = v
	}
	return nil
}

func (d *StringDictionary) ReadFloat32Values(dictIds []int, length int, out []float32) error {
	for i := 0; i < length; i++ {
		v, err := Float32FromString(d.values[dictIds[i]])
		if err != nil {
			return err
		}
		out[i] = v
	}
	return nil
}

func (d *StringDictionary) ReadFloat64Values(dictIds []int, length int, out []float64) error {
	for i := 0; i < length; i++ {
		v, err := Float64FromString(d.values[dictIds[i]])
		if err != nil {
			return err
		}
		out[i] = v
	}
	return nil
}

func (d *StringDictionary) ReadDecimalValues(dictIds []int, length int, out []decimal.Decimal) error {
	for i := 0; i < length; i++ {
		v, err := DecimalFromString(d.values[dictIds[i]])
		if err != nil {
			return err
		}
		out[i] = v
	}
	return nil
}

func (d *StringDictionary) ReadStringValues(dictIds []int, length int, out []string) error {
	for i := 0; i < length; i++ {
		out[i] = d.values[dictIds[i]]
	}
	return nil
}

func (d *StringDictionary) ReadBytesValues(dictIds []int, length int, out [][]byte) error {
	for i := 0; i < length; i++ {
		v, err := BytesFromString(d.values[dictIds[i]])
		if err != nil {
			return err
		}
		out[i] = v
	}
	return nil
}

// BytesDictionary maps dictionary ids to byte-slice values.
type BytesDictionary struct {
	values [][]byte
}

func NewBytesDictionary(values [][]byte) *BytesDictionary {
	return &BytesDictionary{values: values}
}

func (d *BytesDictionary) Length() int        { return len(d.values) }
func (d *BytesDictionary) DataType() DataType { return BYTES }

func (d *BytesDictionary) ReadInt32Values(dictIds []int, length int, out []int32) error {
	return fmt.Errorf("%w: BYTES dictionary as INT32", ErrConversion)
}

func (d *BytesDictionary) ReadInt64Values(dictIds []int, length int, out []int64) error {
	return fmt.Errorf("%w: BYTES dictionary as INT64", ErrConversion)
}

func (d *BytesDictionary) ReadFloat32Values(dictIds []int, length int, out []float32) error {
	return fmt.Errorf("%w: BYTES dictionary as FLOAT32", ErrConversion)
}

func (d *BytesDictionary) ReadFloat64Values(dictIds []int, length int, out []float64) error {
	return fmt.Errorf("%w: BYTES dictionary as FLOAT64", ErrConversion)
}

func (d *BytesDictionary) ReadDecimalValues(dictIds []int, length int, out []decimal.Decimal) error {
	for i := 0; i < length; i++ {
		v, err := DeserializeDecimal(d.values[dictIds[i]])
		if err != nil {
			return err
		}
		out[i] = v
	}
	return nil
}

func (d *BytesDictionary) ReadStringValues(dictIds []int, length int, out []string) error {
	for i := 0; i < length; i++ {
		out[i] = StringFromBytes(d.values[dictIds[i]])
	}
	return nil
}

func (d *BytesDictionary) ReadBytesValues(dictIds []int, length int, out [][]byte) error {
	for i := 0; i < length; i++ {
		out[i] = d.values[dictIds[i]]
	}
	return nil
}

// Dictionary page serialization. The on-disk form is a one byte
// compression type followed by the (possibly compressed) payload:
// uint32 value count, then per value a uint32 length and the raw bytes.
var dictByteOrder = binary.LittleEndian

// SerializeStringDictionary writes a string dictionary to its page form.
func SerializeStringDictionary(d *StringDictionary, opts *CompressionOptions) ([]byte, error) {
	if opts == nil {
		opts = NewCompressionOptions()
	}

	var payload bytes.Buffer
	binary.Write(&payload, dictByteOrder, uint32(len(d.values)))
	for _, v := range d.values {
		binary.Write(&payload, dictByteOrder, uint32(len(v)))
		payload.WriteString(v)
	}

	compressionType := opts.PageCompression
	if payload.Len() < opts.MinPageSizeToCompress {
		compressionType = CompressionNone
	}

	compressor, err := NewCompressor(compressionType, opts.CompressionLevel)
	if err != nil {
		return nil, err
	}

	compressed, err := compressor.Compress(payload.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress dictionary page: %w", err)
	}

	out := make([]byte, 0, 1+len(compressed))
	out = append(out, byte(compressionType))
	out = append(out, compressed...)
	return out, nil
}

// DeserializeStringDictionary reads the page form produced by
// SerializeStringDictionary.
func DeserializeStringDictionary(data []byte) (*StringDictionary, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("dictionary page too short: %d bytes", len(data))
	}

	compressor, err := NewCompressor(CompressionType(data[0]), CompressionLevelDefault)
	if err != nil {
		return nil, err
	}

	payload, err := compressor.Decompress(data[1:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress dictionary page: %w", err)
	}

	reader := bytes.NewReader(payload)
	var count uint32
	if err := binary.Read(reader, dictByteOrder, &count); err != nil {
		return nil, fmt.Errorf("failed to read dictionary header: %w", err)
	}

	// The count is untrusted wire data; cap the preallocation by what
	// the payload could actually hold (4 length bytes per value) so a
	// corrupted header cannot demand a huge allocation up front.
	maxValues := uint32(len(payload) / 4)
	prealloc := count
	if prealloc > maxValues {
		prealloc = maxValues
	}
	values := make([]string, 0, prealloc)
	for i := uint32(0); i < count; i++ {
		var n uint32
		if err := binary.Read(reader, dictByteOrder, &n); err != nil {
			return nil, fmt.Errorf("failed to read value length: %w", err)
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(reader, buf); err != nil {
			return nil, fmt.Errorf("failed to read value bytes: %w", err)
		}
		values = append(values, string(buf))
	}

	return NewStringDictionary(values), nil
}
