package columnar

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDecimalSerializeRoundTrip(t *testing.T) {
	cases := []string{
		"0",
		"1",
		"-1",
		"1.5",
		"-1.5",
		"123456789.000000001",
		"-0.00042",
		"99999999999999999999999999999999.99",
	}

	for _, text := range cases {
		t.Run(text, func(t *testing.T) {
			v, err := decimal.NewFromString(text)
			if err != nil {
				t.Fatalf("parse %q: %v", text, err)
			}
			encoded := SerializeDecimal(v)
			decoded, err := DeserializeDecimal(encoded)
			if err != nil {
				t.Fatalf("deserialize: %v", err)
			}
			if !decoded.Equal(v) {
				t.Errorf("round trip of %s gave %s", v, decoded)
			}
		})
	}
}

func TestDecimalWireFormat(t *testing.T) {
	t.Run("positive with scale", func(t *testing.T) {
		v := decimal.RequireFromString("1.5")
		// scale 1 big-endian, then unscaled 15.
		want := []byte{0x00, 0x01, 0x0f}
		if got := SerializeDecimal(v); !bytes.Equal(got, want) {
			t.Errorf("SerializeDecimal(1.5) = %x, want %x", got, want)
		}
	})

	t.Run("negative two's complement", func(t *testing.T) {
		v := decimal.RequireFromString("-1.5")
		// unscaled -15 is 0xf1 in one two's-complement byte.
		want := []byte{0x00, 0x01, 0xf1}
		if got := SerializeDecimal(v); !bytes.Equal(got, want) {
			t.Errorf("SerializeDecimal(-1.5) = %x, want %x", got, want)
		}
	})

	t.Run("integer has zero scale", func(t *testing.T) {
		v := decimal.NewFromInt(7)
		want := []byte{0x00, 0x00, 0x07}
		if got := SerializeDecimal(v); !bytes.Equal(got, want) {
			t.Errorf("SerializeDecimal(7) = %x, want %x", got, want)
		}
	})

	t.Run("negative exponent folds into coefficient", func(t *testing.T) {
		// 3e2 has exponent +2; the wire form carries scale 0, unscaled 300.
		v := decimal.New(3, 2)
		decoded, err := DeserializeDecimal(SerializeDecimal(v))
		if err != nil {
			t.Fatalf("deserialize: %v", err)
		}
		if !decoded.Equal(decimal.NewFromInt(300)) {
			t.Errorf("got %s, want 300", decoded)
		}
	})
}

func TestDeserializeDecimalTooShort(t *testing.T) {
	for _, data := range [][]byte{nil, {}, {0x00}, {0x00, 0x01}} {
		if _, err := DeserializeDecimal(data); !errors.Is(err, ErrConversion) {
			t.Errorf("DeserializeDecimal(%x) error = %v, want ErrConversion", data, err)
		}
	}
}
