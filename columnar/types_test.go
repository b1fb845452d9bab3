package columnar

import (
	"math"
	"testing"
)

func TestStoredType(t *testing.T) {
	cases := []struct {
		name     string
		dataType DataType
		stored   DataType
	}{
		{"INT32", INT32, INT32},
		{"INT64", INT64, INT64},
		{"FLOAT32", FLOAT32, FLOAT32},
		{"FLOAT64", FLOAT64, FLOAT64},
		{"DECIMAL", DECIMAL, DECIMAL},
		{"STRING", STRING, STRING},
		{"BYTES", BYTES, BYTES},
		{"BOOLEAN stored as INT32", BOOLEAN, INT32},
		{"TIMESTAMP stored as INT64", TIMESTAMP, INT64},
		{"JSON stored as STRING", JSON, STRING},
		{"UNKNOWN", UNKNOWN, UNKNOWN},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.dataType.StoredType(); got != tc.stored {
				t.Errorf("StoredType(%s) = %s, want %s", tc.dataType, got, tc.stored)
			}
		})
	}
}

func TestNullPlaceholders(t *testing.T) {
	if NullInt32 != math.MinInt32 {
		t.Errorf("NullInt32 = %d, want MinInt32", NullInt32)
	}
	if NullInt64 != math.MinInt64 {
		t.Errorf("NullInt64 = %d, want MinInt64", NullInt64)
	}
	if !math.IsInf(float64(NullFloat32), -1) {
		t.Errorf("NullFloat32 = %v, want -Inf", NullFloat32)
	}
	if !math.IsInf(NullFloat64, -1) {
		t.Errorf("NullFloat64 = %v, want -Inf", NullFloat64)
	}
	if NullString != "null" {
		t.Errorf("NullString = %q, want \"null\"", NullString)
	}
	if !NullDecimal.IsZero() {
		t.Errorf("NullDecimal = %v, want zero", NullDecimal)
	}
	if b := NullBytes(); b == nil || len(b) != 0 {
		t.Errorf("NullBytes() = %v, want empty non-nil slice", b)
	}
}

func TestIsNumeric(t *testing.T) {
	numeric := []DataType{INT32, INT64, FLOAT32, FLOAT64, DECIMAL}
	for _, dt := range numeric {
		if !dt.IsNumeric() {
			t.Errorf("IsNumeric(%s) = false, want true", dt)
		}
	}
	nonNumeric := []DataType{STRING, BYTES, UNKNOWN}
	for _, dt := range nonNumeric {
		if dt.IsNumeric() {
			t.Errorf("IsNumeric(%s) = true, want false", dt)
		}
	}
}
