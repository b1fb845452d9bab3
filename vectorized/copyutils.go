package vectorized

import (
	"github.com/VenkatDatta/pinot/columnar"
	"github.com/shopspring/decimal"
)

// Element-wise conversions between stored-type arrays. Each CopyXToY
// converts src[0:length] into dst[0:length]; the MV variants apply the
// same conversion to every row's sequence, preserving per-row lengths
// and allocating fresh inner slices. Narrowing follows two's-complement
// truncation; parse failures abort the batch with a conversion error.

// INT32 targets

func CopyInt64ToInt32(src []int64, dst []int32, length int) {
	for i := 0; i < length; i++ {
		dst[i] = columnar.Int32FromInt64(src[i])
	}
}

func CopyFloat32ToInt32(src []float32, dst []int32, length int) {
	for i := 0; i < length; i++ {
		dst[i] = columnar.Int32FromFloat32(src[i])
	}
}

func CopyFloat64ToInt32(src []float64, dst []int32, length int) {
	for i := 0; i < length; i++ {
		dst[i] = columnar.Int32FromFloat64(src[i])
	}
}

func CopyDecimalToInt32(src []decimal.Decimal, dst []int32, length int) {
	for i := 0; i < length; i++ {
		dst[i] = columnar.Int32FromDecimal(src[i])
	}
}

func CopyStringToInt32(src []string, dst []int32, length int) error {
	for i := 0; i < length; i++ {
		v, err := columnar.Int32FromString(src[i])
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// INT64 targets

func CopyInt32ToInt64(src []int32, dst []int64, length int) {
	for i := 0; i < length; i++ {
		dst[i] = int64(src[i])
	}
}

func CopyFloat32ToInt64(src []float32, dst []int64, length int) {
	for i := 0; i < length; i++ {
		dst[i] = columnar.Int64FromFloat32(src[i])
	}
}

func CopyFloat64ToInt64(src []float64, dst []int64, length int) {
	for i := 0; i < length; i++ {
		dst[i] = columnar.Int64FromFloat64(src[i])
	}
}

func CopyDecimalToInt64(src []decimal.Decimal, dst []int64, length int) {
	for i := 0; i < length; i++ {
		dst[i] = columnar.Int64FromDecimal(src[i])
	}
}

func CopyStringToInt64(src []string, dst []int64, length int) error {
	for i := 0; i < length; i++ {
		v, err := columnar.Int64FromString(src[i])
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// FLOAT32 targets

func CopyInt32ToFloat32(src []int32, dst []float32, length int) {
	for i := 0; i < length; i++ {
		dst[i] = float32(src[i])
	}
}

func CopyInt64ToFloat32(src []int64, dst []float32, length int) {
	for i := 0; i < length; i++ {
		dst[i] = float32(src[i])
	}
}

func CopyFloat64ToFloat32(src []float64, dst []float32, length int) {
	for i := 0; i < length; i++ {
		dst[i] = float32(src[i])
	}
}

func CopyDecimalToFloat32(src []decimal.Decimal, dst []float32, length int) {
	for i := 0; i < length; i++ {
		dst[i] = columnar.Float32FromDecimal(src[i])
	}
}

func CopyStringToFloat32(src []string, dst []float32, length int) error {
	for i := 0; i < length; i++ {
		v, err := columnar.Float32FromString(src[i])
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// FLOAT64 targets

func CopyInt32ToFloat64(src []int32, dst []float64, length int) {
	for i := 0; i < length; i++ {
		dst[i] = float64(src[i])
	}
}

func CopyInt64ToFloat64(src []int64, dst []float64, length int) {
	for i := 0; i < length; i++ {
		dst[i] = float64(src[i])
	}
}

func CopyFloat32ToFloat64(src []float32, dst []float64, length int) {
	for i := 0; i < length; i++ {
		dst[i] = float64(src[i])
	}
}

func CopyDecimalToFloat64(src []decimal.Decimal, dst []float64, length int) {
	for i := 0; i < length; i++ {
		dst[i] = columnar.Float64FromDecimal(src[i])
	}
}

func CopyStringToFloat64(src []string, dst []float64, length int) error {
	for i := 0; i < length; i++ {
		v, err := columnar.Float64FromString(src[i])
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// DECIMAL targets

func CopyInt32ToDecimal(src []int32, dst []decimal.Decimal, length int) {
	for i := 0; i < length; i++ {
		dst[i] = decimal.NewFromInt32(src[i])
	}
}

func CopyInt64ToDecimal(src []int64, dst []decimal.Decimal, length int) {
	for i := 0; i < length; i++ {
		dst[i] = decimal.NewFromInt(src[i])
	}
}

func CopyFloat32ToDecimal(src []float32, dst []decimal.Decimal, length int) {
	for i := 0; i < length; i++ {
		dst[i] = columnar.DecimalFromFloat32(src[i])
	}
}

func CopyFloat64ToDecimal(src []float64, dst []decimal.Decimal, length int) {
	for i := 0; i < length; i++ {
		dst[i] = columnar.DecimalFromFloat64(src[i])
	}
}

func CopyStringToDecimal(src []string, dst []decimal.Decimal, length int) error {
	for i := 0; i < length; i++ {
		v, err := columnar.DecimalFromString(src[i])
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

func CopyBytesToDecimal(src [][]byte, dst []decimal.Decimal, length int) error {
	for i := 0; i < length; i++ {
		v, err := columnar.DeserializeDecimal(src[i])
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// STRING targets

func CopyInt32ToString(src []int32, dst []string, length int) {
	for i := 0; i < length; i++ {
		dst[i] = columnar.StringFromInt32(src[i])
	}
}

func CopyInt64ToString(src []int64, dst []string, length int) {
	for i := 0; i < length; i++ {
		dst[i] = columnar.StringFromInt64(src[i])
	}
}

func CopyFloat32ToString(src []float32, dst []string, length int) {
	for i := 0; i < length; i++ {
		dst[i] = columnar.StringFromFloat32(src[i])
	}
}

func CopyFloat64ToString(src []float64, dst []string, length int) {
	for i := 0; i < length; i++ {
		dst[i] = columnar.StringFromFloat64(src[i])
	}
}

func CopyDecimalToString(src []decimal.Decimal, dst []string, length int) {
	for i := 0; i < length; i++ {
		dst[i] = columnar.StringFromDecimal(src[i])
	}
}

func CopyBytesToString(src [][]byte, dst []string, length int) {
	for i := 0; i < length; i++ {
		dst[i] = columnar.StringFromBytes(src[i])
	}
}

// BYTES targets

func CopyDecimalToBytes(src []decimal.Decimal, dst [][]byte, length int) {
	for i := 0; i < length; i++ {
		dst[i] = columnar.SerializeDecimal(src[i])
	}
}

func CopyStringToBytes(src []string, dst [][]byte, length int) error {
	for i := 0; i < length; i++ {
		v, err := columnar.BytesFromString(src[i])
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// Multi-valued variants: convert each row's sequence independently.

func copyMV[S, D any](src [][]S, dst [][]D, length int, copySV func([]S, []D, int)) {
	for i := 0; i < length; i++ {
		row := src[i]
		out := make([]D, len(row))
		copySV(row, out, len(row))
		dst[i] = out
	}
}

func copyMVErr[S, D any](src [][]S, dst [][]D, length int, copySV func([]S, []D, int) error) error {
	for i := 0; i < length; i++ {
		row := src[i]
		out := make([]D, len(row))
		if err := copySV(row, out, len(row)); err != nil {
			return err
		}
		dst[i] = out
	}
	return nil
}

func CopyInt64ToInt32MV(src [][]int64, dst [][]int32, length int) {
	copyMV(src, dst, length, CopyInt64ToInt32)
}

func CopyFloat32ToInt32MV(src [][]float32, dst [][]int32, length int) {
	copyMV(src, dst, length, CopyFloat32ToInt32)
}

func CopyFloat64ToInt32MV(src [][]float64, dst [][]int32, length int) {
	copyMV(src, dst, length, CopyFloat64ToInt32)
}

func CopyDecimalToInt32MV(src [][]decimal.Decimal, dst [][]int32, length int) {
	copyMV(src, dst, length, CopyDecimalToInt32)
}

func CopyStringToInt32MV(src [][]string, dst [][]int32, length int) error {
	return copyMVErr(src, dst, length, CopyStringToInt32)
}

func CopyInt32ToInt64MV(src [][]int32, dst [][]int64, length int) {
	copyMV(src, dst, length, CopyInt32ToInt64)
}

func CopyFloat32ToInt64MV(src [][]float32, dst [][]int64, length int) {
	copyMV(src, dst, length, CopyFloat32ToInt64)
}

func CopyFloat64ToInt64MV(src [][]float64, dst [][]int64, length int) {
	copyMV(src, dst, length, CopyFloat64ToInt64)
}

func CopyDecimalToInt64MV(src [][]decimal.Decimal, dst [][]int64, length int) {
	copyMV(src, dst, length, CopyDecimalToInt64)
}

func CopyStringToInt64MV(src [][]string, dst [][]int64, length int) error {
	return copyMVErr(src, dst, length, CopyStringToInt64)
}

func CopyInt32ToFloat32MV(src [][]int32, dst [][]float32, length int) {
	copyMV(src, dst, length, CopyInt32ToFloat32)
}

func CopyInt64ToFloat32MV(src [][]int64, dst [][]float32, length int) {
	copyMV(src, dst, length, CopyInt64ToFloat32)
}

func CopyFloat64ToFloat32MV(src [][]float64, dst [][]float32, length int) {
	copyMV(src, dst, length, CopyFloat64ToFloat32)
}

func CopyDecimalToFloat32MV(src [][]decimal.Decimal, dst [][]float32, length int) {
	copyMV(src, dst, length, CopyDecimalToFloat32)
}

func CopyStringToFloat32MV(src [][]string, dst [][]float32, length int) error {
	return copyMVErr(src, dst, length, CopyStringToFloat32)
}

func CopyInt32ToFloat64MV(src [][]int32, dst [][]float64, length int) {
	copyMV(src, dst, length, CopyInt32ToFloat64)
}

func CopyInt64ToFloat64MV(src [][]int64, dst [][]float64, length int) {
	copyMV(src, dst, length, CopyInt64ToFloat64)
}

func CopyFloat32ToFloat64MV(src [][]float32, dst [][]float64, length int) {
	copyMV(src, dst, length, CopyFloat32ToFloat64)
}

func CopyDecimalToFloat64MV(src [][]decimal.Decimal, dst [][]float64, length int) {
	copyMV(src, dst, length, CopyDecimalToFloat64)
}

func CopyStringToFloat64MV(src [][]string, dst [][]float64, length int) error {
	return copyMVErr(src, dst, length, CopyStringToFloat64)
}

func CopyInt32ToDecimalMV(src [][]int32, dst [][]decimal.Decimal, length int) {
	copyMV(src, dst, length, CopyInt32ToDecimal)
}

func CopyInt64ToDecimalMV(src [][]int64, dst [][]decimal.Decimal, length int) {
	copyMV(src, dst, length, CopyInt64ToDecimal)
}

func CopyFloat32ToDecimalMV(src [][]float32, dst [][]decimal.Decimal, length int) {
	copyMV(src, dst, length, CopyFloat32ToDecimal)
}

func CopyFloat64ToDecimalMV(src [][]float64, dst [][]decimal.Decimal, length int) {
	copyMV(src, dst, length, CopyFloat64ToDecimal)
}

func CopyStringToDecimalMV(src [][]string, dst [][]decimal.Decimal, length int) error {
	return copyMVErr(src, dst, length, CopyStringToDecimal)
}

func CopyBytesToDecimalMV(src [][][]byte, dst [][]decimal.Decimal, length int) error {
	return copyMVErr(src, dst, length, CopyBytesToDecimal)
}

func CopyInt32ToStringMV(src [][]int32, dst [][]string, length int) {
	copyMV(src, dst, length, CopyInt32ToString)
}

func CopyInt64ToStringMV(src [][]int64, dst [][]string, length int) {
	copyMV(src, dst, length, CopyInt64ToString)
}

func CopyFloat32ToStringMV(src [][]float32, dst [][]string, length int) {
	copyMV(src, dst, length, CopyFloat32ToString)
}

func CopyFloat64ToStringMV(src [][]float64, dst [][]string, length int) {
	copyMV(src, dst, length, CopyFloat64ToString)
}

func CopyDecimalToStringMV(src [][]decimal.Decimal, dst [][]string, length int) {
	copyMV(src, dst, length, CopyDecimalToString)
}

func CopyBytesToStringMV(src [][][]byte, dst [][]string, length int) {
	copyMV(src, dst, length, CopyBytesToString)
}

func CopyDecimalToBytesMV(src [][]decimal.Decimal, dst [][][]byte, length int) {
	copyMV(src, dst, length, CopyDecimalToBytes)
}

func CopyStringToBytesMV(src [][]string, dst [][][]byte, length int) error {
	return copyMVErr(src, dst, length, CopyStringToBytes)
}
