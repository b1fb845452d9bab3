package vectorized

import (
	"github.com/VenkatDatta/pinot/columnar"
)

// ResultMetadata describes what a transform produces: the logical data
// type, whether each row holds a single value or a variable-length
// sequence, and whether the values are dictionary-encoded. It is an
// immutable value, built once per transform instance.
type ResultMetadata struct {
	dataType      columnar.DataType
	singleValue   bool
	hasDictionary bool
}

// NewResultMetadata builds result metadata for a transform.
func NewResultMetadata(dataType columnar.DataType, singleValue, hasDictionary bool) ResultMetadata {
	return ResultMetadata{
		dataType:      dataType,
		singleValue:   singleValue,
		hasDictionary: hasDictionary,
	}
}

// MetadataFor is the common non-dictionary case.
func MetadataFor(dataType columnar.DataType, singleValue bool) ResultMetadata {
	return NewResultMetadata(dataType, singleValue, false)
}

// DataType returns the logical result type.
func (m ResultMetadata) DataType() columnar.DataType {
	return m.dataType
}

// IsSingleValue reports whether each row carries exactly one value.
func (m ResultMetadata) IsSingleValue() bool {
	return m.singleValue
}

// HasDictionary reports whether values are dictionary-encoded.
func (m ResultMetadata) HasDictionary() bool {
	return m.hasDictionary
}
