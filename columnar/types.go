package columnar

import (
	"math"

	"github.com/shopspring/decimal"
)

// DataType represents the logical data types supported by the engine.
type DataType int

const (
	INT32 DataType = iota
	INT64
	FLOAT32
	FLOAT64
	DECIMAL
	BOOLEAN
	TIMESTAMP
	STRING
	JSON
	BYTES
	// UNKNOWN marks a column whose type could not be determined, e.g. an
	// all-null literal. It has no stored representation of its own.
	UNKNOWN
)

// StoredType returns the physical representation used for conversion
// dispatch. BOOLEAN is stored as INT32, TIMESTAMP as INT64 and JSON as
// STRING; every other logical type is its own stored type.
func (dt DataType) StoredType() DataType {
	switch dt {
	case BOOLEAN:
		return INT32
	case TIMESTAMP:
		return INT64
	case JSON:
		return STRING
	default:
		return dt
	}
}

// String returns the string representation of a data type
func (dt DataType) String() string {
	switch dt {
	case INT32:
		return "INT32"
	case INT64:
		return "INT64"
	case FLOAT32:
		return "FLOAT32"
	case FLOAT64:
		return "FLOAT64"
	case DECIMAL:
		return "DECIMAL"
	case BOOLEAN:
		return "BOOLEAN"
	case TIMESTAMP:
		return "TIMESTAMP"
	case STRING:
		return "STRING"
	case JSON:
		return "JSON"
	case BYTES:
		return "BYTES"
	default:
		return "UNKNOWN"
	}
}

// IsNumeric returns true if the stored type is numeric
func (dt DataType) IsNumeric() bool {
	switch dt.StoredType() {
	case INT32, INT64, FLOAT32, FLOAT64, DECIMAL:
		return true
	default:
		return false
	}
}

// Null placeholders: the sentinel written into a raw value array at a
// position whose value is unknown, when the caller does not ask for the
// null mask.
const (
	NullInt32  int32 = math.MinInt32
	NullInt64  int64 = math.MinInt64
	NullString       = "null"
)

var (
	NullFloat32 = float32(math.Inf(-1))
	NullFloat64 = math.Inf(-1)
	// NullDecimal is decimal zero, matching the engine's numeric default.
	NullDecimal = decimal.Decimal{}
)

// NullBytes returns the placeholder for an unknown BYTES value. A fresh
// slice is returned so callers cannot alias a shared sentinel.
func NullBytes() []byte {
	return []byte{}
}
