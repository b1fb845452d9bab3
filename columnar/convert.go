package columnar

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// ErrConversion is the value-level conversion failure, e.g. unparsable
// text while deriving a numeric column from a STRING column. It aborts
// the whole batch; there is no best-effort fallback.
var ErrConversion = errors.New("columnar: conversion failed")

// Scalar conversions between stored types. Integer narrowing is
// two's-complement truncation, never saturation; fractional values are
// truncated toward zero before narrowing.

// Int32FromInt64 narrows an int64 to an int32, keeping the low 32 bits.
func Int32FromInt64(v int64) int32 {
	return int32(v)
}

// Int32FromFloat32 truncates a float32 toward zero and narrows it.
func Int32FromFloat32(v float32) int32 {
	return int32(Int64FromFloat64(float64(v)))
}

// Int32FromFloat64 truncates a float64 toward zero and narrows it.
func Int32FromFloat64(v float64) int32 {
	return int32(Int64FromFloat64(v))
}

// Int32FromDecimal truncates a decimal toward zero and narrows it.
func Int32FromDecimal(v decimal.Decimal) int32 {
	return int32(v.IntPart())
}

// Int64FromFloat64 truncates a float64 toward zero. Values beyond the
// int64 range are clamped first so the result is deterministic across
// platforms; narrower targets then wrap in two's complement as usual.
func Int64FromFloat64(v float64) int64 {
	v = math.Trunc(v)
	if v >= math.MaxInt64 {
		return math.MaxInt64
	}
	if v <= math.MinInt64 {
		return math.MinInt64
	}
	if math.IsNaN(v) {
		return 0
	}
	return int64(v)
}

// Int64FromFloat32 truncates a float32 toward zero.
func Int64FromFloat32(v float32) int64 {
	return Int64FromFloat64(float64(v))
}

// Int64FromDecimal truncates a decimal toward zero.
func Int64FromDecimal(v decimal.Decimal) int64 {
	return v.IntPart()
}

// Float32FromDecimal converts a decimal to the nearest float32.
func Float32FromDecimal(v decimal.Decimal) float32 {
	return float32(v.InexactFloat64())
}

// Float64FromDecimal converts a decimal to the nearest float64.
func Float64FromDecimal(v decimal.Decimal) float64 {
	return v.InexactFloat64()
}

// DecimalFromFloat32 widens a float32 to an exact decimal.
func DecimalFromFloat32(v float32) decimal.Decimal {
	return decimal.NewFromFloat32(v)
}

// DecimalFromFloat64 widens a float64 to an exact decimal.
func DecimalFromFloat64(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// String parsing. Failures surface as ErrConversion; out-of-range text
// counts as unparsable for the requested width.

// Int32FromString parses decimal text as an int32.
func Int32FromString(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q as INT32", ErrConversion, s)
	}
	return int32(v), nil
}

// Int64FromString parses decimal text as an int64.
func Int64FromString(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q as INT64", ErrConversion, s)
	}
	return v, nil
}

// Float32FromString parses decimal text as a float32.
func Float32FromString(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q as FLOAT32", ErrConversion, s)
	}
	return float32(v), nil
}

// Float64FromString parses decimal text as a float64.
func Float64FromString(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q as FLOAT64", ErrConversion, s)
	}
	return v, nil
}

// DecimalFromString parses decimal text as an arbitrary-precision decimal.
func DecimalFromString(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q as DECIMAL", ErrConversion, s)
	}
	return v, nil
}

// Canonical text formatting used when a STRING column is derived from a
// numeric or binary column.

// StringFromInt32 formats an int32 as decimal text.
func StringFromInt32(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// StringFromInt64 formats an int64 as decimal text.
func StringFromInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}

// StringFromFloat32 formats a float32 using the shortest round-trip form.
func StringFromFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// StringFromFloat64 formats a float64 using the shortest round-trip form.
func StringFromFloat64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// StringFromDecimal formats a decimal as plain decimal text.
func StringFromDecimal(v decimal.Decimal) string {
	return v.String()
}

// StringFromBytes formats a byte slice as lowercase hex text.
func StringFromBytes(v []byte) string {
	return hex.EncodeToString(v)
}

// BytesFromString decodes hex text into a byte slice.
func BytesFromString(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q as BYTES", ErrConversion, s)
	}
	return b, nil
}
