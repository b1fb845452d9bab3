package columnar

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestIntegerNarrowingWraps(t *testing.T) {
	cases := []struct {
		name string
		in   int64
		want int32
	}{
		{"in range", 42, 42},
		{"negative in range", -42, -42},
		{"2^32 wraps to zero", 1 << 32, 0},
		{"2^31 wraps negative", 1 << 31, math.MinInt32},
		{"max int32", math.MaxInt32, math.MaxInt32},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Int32FromInt64(tc.in); got != tc.want {
				t.Errorf("Int32FromInt64(%d) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestFloatToIntTruncation(t *testing.T) {
	t.Run("truncates toward zero", func(t *testing.T) {
		if got := Int64FromFloat64(3.9); got != 3 {
			t.Errorf("Int64FromFloat64(3.9) = %d, want 3", got)
		}
		if got := Int64FromFloat64(-3.9); got != -3 {
			t.Errorf("Int64FromFloat64(-3.9) = %d, want -3", got)
		}
	})

	t.Run("clamps infinities", func(t *testing.T) {
		if got := Int64FromFloat64(math.Inf(1)); got != math.MaxInt64 {
			t.Errorf("Int64FromFloat64(+Inf) = %d, want MaxInt64", got)
		}
		if got := Int64FromFloat64(math.Inf(-1)); got != math.MinInt64 {
			t.Errorf("Int64FromFloat64(-Inf) = %d, want MinInt64", got)
		}
	})

	t.Run("NaN maps to zero", func(t *testing.T) {
		if got := Int64FromFloat64(math.NaN()); got != 0 {
			t.Errorf("Int64FromFloat64(NaN) = %d, want 0", got)
		}
	})

	t.Run("large float narrows deterministically", func(t *testing.T) {
		// 2^32 truncates to 2^32, which wraps to 0 in int32.
		if got := Int32FromFloat64(float64(1 << 32)); got != 0 {
			t.Errorf("Int32FromFloat64(2^32) = %d, want 0", got)
		}
	})
}

func TestStringParsing(t *testing.T) {
	t.Run("valid numbers", func(t *testing.T) {
		if v, err := Int32FromString("-17"); err != nil || v != -17 {
			t.Errorf("Int32FromString(-17) = %d, %v", v, err)
		}
		if v, err := Float64FromString("2.5"); err != nil || v != 2.5 {
			t.Errorf("Float64FromString(2.5) = %v, %v", v, err)
		}
		if v, err := DecimalFromString("10.01"); err != nil || !v.Equal(decimal.RequireFromString("10.01")) {
			t.Errorf("DecimalFromString(10.01) = %v, %v", v, err)
		}
	})

	t.Run("unparsable text", func(t *testing.T) {
		if _, err := Int32FromString("abc"); !errors.Is(err, ErrConversion) {
			t.Errorf("Int32FromString(abc) error = %v, want ErrConversion", err)
		}
		if _, err := Float32FromString(""); !errors.Is(err, ErrConversion) {
			t.Errorf("Float32FromString(\"\") error = %v, want ErrConversion", err)
		}
	})

	t.Run("out of range counts as unparsable", func(t *testing.T) {
		if _, err := Int32FromString("2147483648"); !errors.Is(err, ErrConversion) {
			t.Errorf("Int32FromString(2^31) error = %v, want ErrConversion", err)
		}
	})
}

func TestHexBytesRoundTrip(t *testing.T) {
	raw := []byte{0xde, 0xad, 0xbe, 0xef}
	text := StringFromBytes(raw)
	if text != "deadbeef" {
		t.Errorf("StringFromBytes = %q, want deadbeef", text)
	}
	back, err := BytesFromString(text)
	if err != nil {
		t.Fatalf("BytesFromString: %v", err)
	}
	if string(back) != string(raw) {
		t.Errorf("round trip gave %x", back)
	}

	if _, err := BytesFromString("not hex"); !errors.Is(err, ErrConversion) {
		t.Errorf("BytesFromString(not hex) error = %v, want ErrConversion", err)
	}
}

func TestFloatFormatting(t *testing.T) {
	if got := StringFromFloat32(1.5); got != "1.5" {
		t.Errorf("StringFromFloat32(1.5) = %q", got)
	}
	if got := StringFromFloat64(math.Inf(-1)); got != "-Inf" {
		t.Errorf("StringFromFloat64(-Inf) = %q", got)
	}
}
