package vectorized

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// NullMask marks which row positions of a batch are semantically null.
// A nil *NullMask means "provably no nulls", which is distinct from a
// present-but-empty mask: the nil form is the zero-cost guarantee used
// on the hot path, and empty masks are normalized back to nil before
// they are returned upward. All row-taking methods are nil-safe.
type NullMask struct {
	bitmap *roaring.Bitmap
}

// NewNullMask creates an empty present mask.
func NewNullMask() *NullMask {
	return &NullMask{bitmap: roaring.New()}
}

// NullMaskOf creates a mask marking the given rows null.
func NullMaskOf(rows ...int) *NullMask {
	m := NewNullMask()
	for _, row := range rows {
		m.bitmap.Add(uint32(row))
	}
	return m
}

// NullMaskOfRange creates a mask marking rows [0, numRows) null. This is
// the mask every target receives for an UNKNOWN-typed column.
func NullMaskOfRange(numRows int) *NullMask {
	m := NewNullMask()
	m.bitmap.AddRange(0, uint64(numRows))
	return m
}

// Add marks a row null.
func (m *NullMask) Add(row int) {
	m.bitmap.Add(uint32(row))
}

// Contains reports whether the row is marked null.
func (m *NullMask) Contains(row int) bool {
	if m == nil {
		return false
	}
	return m.bitmap.Contains(uint32(row))
}

// IsEmpty reports whether no row is marked null.
func (m *NullMask) IsEmpty() bool {
	if m == nil {
		return true
	}
	return m.bitmap.IsEmpty()
}

// Cardinality returns the number of rows marked null.
func (m *NullMask) Cardinality() int {
	if m == nil {
		return 0
	}
	return int(m.bitmap.GetCardinality())
}

// Or folds another mask into this one.
func (m *NullMask) Or(other *NullMask) {
	if other == nil {
		return
	}
	m.bitmap.Or(other.bitmap)
}

// Normalize collapses a present-but-empty mask to the nil sentinel.
func (m *NullMask) Normalize() *NullMask {
	if m == nil || m.bitmap.IsEmpty() {
		return nil
	}
	return m
}

// Clone returns an independent copy of the mask.
func (m *NullMask) Clone() *NullMask {
	if m == nil {
		return nil
	}
	return &NullMask{bitmap: m.bitmap.Clone()}
}

// Rows returns the null rows in increasing order.
func (m *NullMask) Rows() []int {
	if m == nil {
		return nil
	}
	values := m.bitmap.ToArray()
	rows := make([]int, len(values))
	for i, v := range values {
		rows[i] = int(v)
	}
	return rows
}
