package columnar

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestInt64DictionaryCrossTypeReads(t *testing.T) {
	dict := NewInt64Dictionary([]int64{10, 1 << 32, -7})
	dictIds := []int{1, 0, 2}

	t.Run("as INT64", func(t *testing.T) {
		out := make([]int64, 3)
		if err := dict.ReadInt64Values(dictIds, 3, out); err != nil {
			t.Fatal(err)
		}
		if out[0] != 1<<32 || out[1] != 10 || out[2] != -7 {
			t.Errorf("got %v", out)
		}
	})

	t.Run("as INT32 wraps", func(t *testing.T) {
		out := make([]int32, 3)
		if err := dict.ReadInt32Values(dictIds, 3, out); err != nil {
			t.Fatal(err)
		}
		if out[0] != 0 {
			t.Errorf("2^32 narrowed to %d, want 0", out[0])
		}
	})

	t.Run("as STRING", func(t *testing.T) {
		out := make([]string, 3)
		if err := dict.ReadStringValues(dictIds, 3, out); err != nil {
			t.Fatal(err)
		}
		if out[2] != "-7" {
			t.Errorf("got %q, want -7", out[2])
		}
	})

	t.Run("as BYTES fails", func(t *testing.T) {
		if err := dict.ReadBytesValues(dictIds, 3, make([][]byte, 3)); !errors.Is(err, ErrConversion) {
			t.Errorf("error = %v, want ErrConversion", err)
		}
	})

	t.Run("ids beyond length untouched", func(t *testing.T) {
		out := []int64{99, 99, 99}
		if err := dict.ReadInt64Values(dictIds, 2, out); err != nil {
			t.Fatal(err)
		}
		if out[2] != 99 {
			t.Errorf("out[2] = %d, want untouched 99", out[2])
		}
	})
}

func TestStringDictionaryNumericDecode(t *testing.T) {
	t.Run("numeric strings", func(t *testing.T) {
		dict := NewStringDictionary([]string{"1", "-2", "30"})
		out := make([]int32, 3)
		if err := dict.ReadInt32Values([]int{2, 1, 0}, 3, out); err != nil {
			t.Fatal(err)
		}
		if out[0] != 30 || out[1] != -2 || out[2] != 1 {
			t.Errorf("got %v", out)
		}
	})

	t.Run("non-numeric strings fail", func(t *testing.T) {
		dict := NewStringDictionary([]string{"hello"})
		if err := dict.ReadInt32Values([]int{0}, 1, make([]int32, 1)); !errors.Is(err, ErrConversion) {
			t.Errorf("error = %v, want ErrConversion", err)
		}
	})

	t.Run("hex strings as bytes", func(t *testing.T) {
		dict := NewStringDictionary([]string{"cafe"})
		out := make([][]byte, 1)
		if err := dict.ReadBytesValues([]int{0}, 1, out); err != nil {
			t.Fatal(err)
		}
		if len(out[0]) != 2 || out[0][0] != 0xca || out[0][1] != 0xfe {
			t.Errorf("got %x", out[0])
		}
	})
}

func TestDecimalDictionaryAsBytes(t *testing.T) {
	values := []decimal.Decimal{
		decimal.RequireFromString("1.5"),
		decimal.RequireFromString("-20"),
	}
	dict := NewDecimalDictionary(values)
	out := make([][]byte, 2)
	if err := dict.ReadBytesValues([]int{0, 1}, 2, out); err != nil {
		t.Fatal(err)
	}
	for i, raw := range out {
		decoded, err := DeserializeDecimal(raw)
		if err != nil {
			t.Fatalf("deserialize value %d: %v", i, err)
		}
		if !decoded.Equal(values[i]) {
			t.Errorf("value %d round trip gave %s, want %s", i, decoded, values[i])
		}
	}
}

func TestBytesDictionaryReads(t *testing.T) {
	dict := NewBytesDictionary([][]byte{{0xab, 0xcd}})

	t.Run("as STRING is hex", func(t *testing.T) {
		out := make([]string, 1)
		if err := dict.ReadStringValues([]int{0}, 1, out); err != nil {
			t.Fatal(err)
		}
		if out[0] != "abcd" {
			t.Errorf("got %q", out[0])
		}
	})

	t.Run("numeric reads fail", func(t *testing.T) {
		if err := dict.ReadInt64Values([]int{0}, 1, make([]int64, 1)); !errors.Is(err, ErrConversion) {
			t.Errorf("error = %v, want ErrConversion", err)
		}
	})
}

func TestStringDictionarySerialization(t *testing.T) {
	// Large enough that the page crosses the compression threshold.
	values := make([]string, 200)
	for i := range values {
		values[i] = fmt.Sprintf("value-%04d-%s", i, strings.Repeat("x", 10))
	}
	dict := NewStringDictionary(values)

	compressions := []struct {
		name string
		opts *CompressionOptions
	}{
		{"none", NewCompressionOptions()},
		{"gzip", NewCompressionOptions().WithPageCompression(CompressionGzip, CompressionLevelDefault)},
		{"snappy", NewCompressionOptions().WithPageCompression(CompressionSnappy, CompressionLevelDefault)},
		{"zstd", NewCompressionOptions().WithPageCompression(CompressionZstd, CompressionLevelBetter)},
	}

	for _, tc := range compressions {
		t.Run(tc.name, func(t *testing.T) {
			page, err := SerializeStringDictionary(dict, tc.opts)
			if err != nil {
				t.Fatalf("serialize: %v", err)
			}
			if got := CompressionType(page[0]); got != tc.opts.PageCompression {
				t.Errorf("page header compression = %d, want %d", got, tc.opts.PageCompression)
			}
			decoded, err := DeserializeStringDictionary(page)
			if err != nil {
				t.Fatalf("deserialize: %v", err)
			}
			if decoded.Length() != len(values) {
				t.Fatalf("decoded %d values, want %d", decoded.Length(), len(values))
			}
			out := make([]string, 1)
			if err := decoded.ReadStringValues([]int{137}, 1, out); err != nil {
				t.Fatal(err)
			}
			if out[0] != values[137] {
				t.Errorf("value 137 = %q, want %q", out[0], values[137])
			}
		})
	}

	t.Run("corrupted count fails without huge allocation", func(t *testing.T) {
		// An uncompressed page claiming 2^32-1 values with no payload
		// behind the header must error out, not allocate for the claim.
		page := []byte{byte(CompressionNone), 0xff, 0xff, 0xff, 0xff}
		if _, err := DeserializeStringDictionary(page); err == nil {
			t.Fatal("expected error for corrupted value count")
		}
	})

	t.Run("small pages skip compression", func(t *testing.T) {
		small := NewStringDictionary([]string{"a", "b"})
		opts := NewCompressionOptions().WithPageCompression(CompressionZstd, CompressionLevelBest)
		page, err := SerializeStringDictionary(small, opts)
		if err != nil {
			t.Fatalf("serialize: %v", err)
		}
		if CompressionType(page[0]) != CompressionNone {
			t.Errorf("small page compressed with %d, want none", page[0])
		}
	})
}
