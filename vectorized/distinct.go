package vectorized

import (
	"sort"
)

// DistinctExecutor accumulates distinct values of one expression up to a
// bounded limit across a stream of blocks. Process returns true once the
// bound is reached, which tells the driver no further block can change
// the result. A materialization failure is fatal for the batch: the
// error surfaces to the driver and the set keeps only prior blocks.
type DistinctExecutor interface {
	Process(block *ValueBlock) (bool, error)
}

// RawDistinctOnlyExecutor is the bounded distinct-value accumulator for
// one column expression, generic over the materialized value type. The
// set never holds more than limit entries.
//
// With null handling enabled, null rows fold into a single logical null
// that occupies one slot of the limit; the placeholder values those rows
// materialized to are never added to the set. Multi-valued input treats
// every element of every row as a candidate and ignores null masks
// entirely, matching single-null-aware engines that define MV nulls away.
type RawDistinctOnlyExecutor[T comparable] struct {
	expression          TransformFunction
	limit               int
	nullHandlingEnabled bool

	valueSet map[T]struct{}
	hasNull  bool

	svValues func(TransformFunction, *ValueBlock) ([]T, error)
	mvValues func(TransformFunction, *ValueBlock) ([][]T, error)
}

// Process folds one block into the accumulator and reports whether the
// distinct bound has been reached. Blocks after a true return are
// no-ops for correctness but wasted work; drivers stop on true. A
// materialization error aborts the block without touching the set.
func (e *RawDistinctOnlyExecutor[T]) Process(block *ValueBlock) (bool, error) {
	if e.expression.GetResultMetadata().IsSingleValue() {
		if e.nullHandlingEnabled {
			return e.processSVWithNull(block)
		}
		return e.processSV(block)
	}
	return e.processMV(block)
}

func (e *RawDistinctOnlyExecutor[T]) processSV(block *ValueBlock) (bool, error) {
	values, err := e.svValues(e.expression, block)
	if err != nil {
		return false, err
	}
	for i := 0; i < block.RowCount(); i++ {
		e.valueSet[values[i]] = struct{}{}
		if len(e.valueSet) >= e.limit {
			return true, nil
		}
	}
	return false, nil
}

func (e *RawDistinctOnlyExecutor[T]) processSVWithNull(block *ValueBlock) (bool, error) {
	values, err := e.svValues(e.expression, block)
	if err != nil {
		return false, err
	}
	mask := e.expression.GetNullMask(block)
	for i := 0; i < block.RowCount(); i++ {
		if mask.Contains(i) {
			e.hasNull = true
			continue
		}
		e.valueSet[values[i]] = struct{}{}
		limit := e.limit
		if e.hasNull {
			limit--
		}
		if len(e.valueSet) >= limit {
			return true, nil
		}
	}
	return false, nil
}

func (e *RawDistinctOnlyExecutor[T]) processMV(block *ValueBlock) (bool, error) {
	rows, err := e.mvValues(e.expression, block)
	if err != nil {
		return false, err
	}
	for i := 0; i < block.RowCount(); i++ {
		for _, value := range rows[i] {
			e.valueSet[value] = struct{}{}
			if len(e.valueSet) >= e.limit {
				return true, nil
			}
		}
	}
	return false, nil
}

// ValueCount returns the number of distinct non-null values seen.
func (e *RawDistinctOnlyExecutor[T]) ValueCount() int {
	return len(e.valueSet)
}

// HasNull reports whether a null row was seen under null handling.
func (e *RawDistinctOnlyExecutor[T]) HasNull() bool {
	return e.hasNull
}

// Values returns the accumulated distinct values in unspecified order.
func (e *RawDistinctOnlyExecutor[T]) Values() []T {
	values := make([]T, 0, len(e.valueSet))
	for v := range e.valueSet {
		values = append(values, v)
	}
	return values
}

func newRawDistinctOnlyExecutor[T comparable](
	expression TransformFunction,
	limit int,
	nullHandlingEnabled bool,
	svValues func(TransformFunction, *ValueBlock) ([]T, error),
	mvValues func(TransformFunction, *ValueBlock) ([][]T, error),
) *RawDistinctOnlyExecutor[T] {
	return &RawDistinctOnlyExecutor[T]{
		expression:          expression,
		limit:               limit,
		nullHandlingEnabled: nullHandlingEnabled,
		valueSet:            make(map[T]struct{}),
		svValues:            svValues,
		mvValues:            mvValues,
	}
}

// NewInt32DistinctOnlyExecutor accumulates distinct int32 values.
func NewInt32DistinctOnlyExecutor(expression TransformFunction, limit int, nullHandlingEnabled bool) *RawDistinctOnlyExecutor[int32] {
	return newRawDistinctOnlyExecutor(expression, limit, nullHandlingEnabled,
		TransformFunction.TransformToInt32ValuesSV,
		TransformFunction.TransformToInt32ValuesMV)
}

// NewInt64DistinctOnlyExecutor accumulates distinct int64 values.
func NewInt64DistinctOnlyExecutor(expression TransformFunction, limit int, nullHandlingEnabled bool) *RawDistinctOnlyExecutor[int64] {
	return newRawDistinctOnlyExecutor(expression, limit, nullHandlingEnabled,
		TransformFunction.TransformToInt64ValuesSV,
		TransformFunction.TransformToInt64ValuesMV)
}

// NewFloat32DistinctOnlyExecutor accumulates distinct float32 values.
func NewFloat32DistinctOnlyExecutor(expression TransformFunction, limit int, nullHandlingEnabled bool) *RawDistinctOnlyExecutor[float32] {
	return newRawDistinctOnlyExecutor(expression, limit, nullHandlingEnabled,
		TransformFunction.TransformToFloat32ValuesSV,
		TransformFunction.TransformToFloat32ValuesMV)
}

// NewFloat64DistinctOnlyExecutor accumulates distinct float64 values.
func NewFloat64DistinctOnlyExecutor(expression TransformFunction, limit int, nullHandlingEnabled bool) *RawDistinctOnlyExecutor[float64] {
	return newRawDistinctOnlyExecutor(expression, limit, nullHandlingEnabled,
		TransformFunction.TransformToFloat64ValuesSV,
		TransformFunction.TransformToFloat64ValuesMV)
}

// NewStringDistinctOnlyExecutor accumulates distinct string values.
func NewStringDistinctOnlyExecutor(expression TransformFunction, limit int, nullHandlingEnabled bool) *RawDistinctOnlyExecutor[string] {
	return newRawDistinctOnlyExecutor(expression, limit, nullHandlingEnabled,
		TransformFunction.TransformToStringValuesSV,
		TransformFunction.TransformToStringValuesMV)
}

// SortedStrings returns a string executor's values in lexical order, for
// stable result serialization.
func SortedStrings(e *RawDistinctOnlyExecutor[string]) []string {
	values := e.Values()
	sort.Strings(values)
	return values
}
