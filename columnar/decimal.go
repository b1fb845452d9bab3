package columnar

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Binary encoding of DECIMAL values: a big-endian uint16 scale followed
// by the unscaled value as a big-endian two's-complement integer. The
// unscaled part may carry redundant sign bytes on the wire; decoding
// accepts them.

// SerializeDecimal encodes a decimal into its binary form.
func SerializeDecimal(v decimal.Decimal) []byte {
	scale := -v.Exponent()
	unscaled := new(big.Int).Set(v.Coefficient())
	if scale < 0 {
		// Positive exponent: fold it into the unscaled value so the
		// encoded scale is never negative.
		exp := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-scale)), nil)
		unscaled.Mul(unscaled, exp)
		scale = 0
	}
	payload := twosComplementBytes(unscaled)
	out := make([]byte, 2+len(payload))
	binary.BigEndian.PutUint16(out[:2], uint16(scale))
	copy(out[2:], payload)
	return out
}

// DeserializeDecimal decodes the binary form produced by SerializeDecimal.
func DeserializeDecimal(b []byte) (decimal.Decimal, error) {
	if len(b) < 3 {
		return decimal.Decimal{}, fmt.Errorf("%w: decimal payload too short (%d bytes)", ErrConversion, len(b))
	}
	scale := binary.BigEndian.Uint16(b[:2])
	unscaled := twosComplementToBigInt(b[2:])
	return decimal.NewFromBigInt(unscaled, -int32(scale)), nil
}

// twosComplementBytes encodes a big integer as minimal big-endian
// two's-complement bytes, always at least one byte long.
func twosComplementBytes(x *big.Int) []byte {
	if x.Sign() >= 0 {
		b := x.Bytes()
		if len(b) == 0 {
			return []byte{0}
		}
		if b[0]&0x80 != 0 {
			return append([]byte{0}, b...)
		}
		return b
	}
	n := (x.BitLen() + 8) / 8
	if n == 0 {
		n = 1
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
	v := new(big.Int).Add(x, mod)
	b := v.Bytes()
	out := make([]byte, n)
	copy(out[n-len(b):], b)
	// Strip redundant sign-extension bytes.
	for len(out) > 1 && out[0] == 0xff && out[1]&0x80 != 0 {
		out = out[1:]
	}
	return out
}

// twosComplementToBigInt decodes big-endian two's-complement bytes.
func twosComplementToBigInt(b []byte) *big.Int {
	if len(b) == 0 {
		return new(big.Int)
	}
	x := new(big.Int).SetBytes(b)
	if b[0]&0x80 != 0 {
		x.Sub(x, new(big.Int).Lsh(big.NewInt(1), uint(8*len(b))))
	}
	return x
}
