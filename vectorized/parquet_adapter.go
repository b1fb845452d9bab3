package vectorized

import (
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/VenkatDatta/pinot/columnar"
	"github.com/VenkatDatta/pinot/logutil"
	"github.com/parquet-go/parquet-go"
	"go.uber.org/zap"
	"howett.net/ranger"
)

// ParquetBatchSource streams the leaf columns of a parquet file as
// ValueBlocks of at most batchSize rows. Columns are materialized fully
// at open time; blocks are served as windows over the column slices so
// transforms see the same in-memory layout as any other column. Only
// non-repeated leaf columns are supported; repeated fields are skipped.
type ParquetBatchSource struct {
	columns   []*parquetColumn
	closer    io.Closer
	batchSize int
	totalRows int
	offset    int
}

type parquetColumn struct {
	name     string
	dataType columnar.DataType

	int32Values   []int32
	int64Values   []int64
	float32Values []float32
	float64Values []float64
	stringValues  []string
	bytesValues   [][]byte

	nullRows []int
}

// OpenParquetFile opens a parquet file on local disk.
func OpenParquetFile(path string, batchSize int) (*ParquetBatchSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat parquet file: %w", err)
	}
	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open parquet file %s: %w", path, err)
	}
	source, err := newParquetBatchSource(pf, f, batchSize)
	if err != nil {
		f.Close()
		return nil, err
	}
	logutil.Info("opened parquet file",
		zap.String("path", path),
		zap.Int("rows", source.totalRows),
		zap.Int("columns", len(source.columns)))
	return source, nil
}

// OpenParquetURL opens a parquet file over HTTP using range requests,
// so only the pages actually read are transferred.
func OpenParquetURL(rawURL string, batchSize int) (*ParquetBatchSource, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse parquet url: %w", err)
	}
	reader, err := ranger.NewReader(&ranger.HTTPRanger{URL: parsed})
	if err != nil {
		return nil, fmt.Errorf("open parquet url %s: %w", rawURL, err)
	}
	length, err := reader.Length()
	if err != nil {
		return nil, fmt.Errorf("read parquet length for %s: %w", rawURL, err)
	}
	pf, err := parquet.OpenFile(reader, length)
	if err != nil {
		return nil, fmt.Errorf("open parquet url %s: %w", rawURL, err)
	}
	source, err := newParquetBatchSource(pf, nil, batchSize)
	if err != nil {
		return nil, err
	}
	logutil.Info("opened remote parquet file",
		zap.String("url", rawURL),
		zap.Int64("bytes", length),
		zap.Int("rows", source.totalRows))
	return source, nil
}

func newParquetBatchSource(pf *parquet.File, closer io.Closer, batchSize int) (*ParquetBatchSource, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if batchSize > MaxBatchSize {
		batchSize = MaxBatchSize
	}

	schema := pf.Schema()
	var columns []*parquetColumn
	// Column chunks are indexed by leaf column, so skipped fields still
	// advance the index by the number of leaves they contain.
	leafIndex := 0
	for _, field := range schema.Fields() {
		if !field.Leaf() {
			logutil.Warn("skipping non-leaf parquet field", zap.String("field", field.Name()))
			leafIndex += countLeafColumns(field)
			continue
		}
		if field.Repeated() {
			logutil.Warn("skipping repeated parquet field", zap.String("field", field.Name()))
			leafIndex++
			continue
		}
		dataType, ok := dataTypeForKind(field.Type().Kind())
		if !ok {
			logutil.Warn("skipping parquet field of unsupported kind",
				zap.String("field", field.Name()),
				zap.Stringer("kind", field.Type().Kind()))
			leafIndex++
			continue
		}
		column := &parquetColumn{name: field.Name(), dataType: dataType}
		if err := column.read(pf, leafIndex); err != nil {
			return nil, fmt.Errorf("read parquet column %s: %w", field.Name(), err)
		}
		leafIndex++
		columns = append(columns, column)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("parquet file has no readable columns")
	}

	return &ParquetBatchSource{
		columns:   columns,
		closer:    closer,
		batchSize: batchSize,
		totalRows: int(pf.NumRows()),
	}, nil
}

func countLeafColumns(node parquet.Node) int {
	if node.Leaf() {
		return 1
	}
	total := 0
	for _, child := range node.Fields() {
		total += countLeafColumns(child)
	}
	return total
}

func dataTypeForKind(kind parquet.Kind) (columnar.DataType, bool) {
	switch kind {
	case parquet.Boolean:
		return columnar.BOOLEAN, true
	case parquet.Int32:
		return columnar.INT32, true
	case parquet.Int64:
		return columnar.INT64, true
	case parquet.Float:
		return columnar.FLOAT32, true
	case parquet.Double:
		return columnar.FLOAT64, true
	case parquet.ByteArray:
		return columnar.STRING, true
	case parquet.FixedLenByteArray:
		return columnar.BYTES, true
	default:
		return columnar.UNKNOWN, false
	}
}

func (c *parquetColumn) read(pf *parquet.File, columnIndex int) error {
	buf := make([]parquet.Value, 512)
	row := 0
	for _, rowGroup := range pf.RowGroups() {
		reader := parquet.NewColumnChunkValueReader(rowGroup.ColumnChunks()[columnIndex])
		for {
			n, err := reader.ReadValues(buf)
			for _, value := range buf[:n] {
				c.append(value, row)
				row++
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *parquetColumn) append(value parquet.Value, row int) {
	if value.IsNull() {
		c.nullRows = append(c.nullRows, row)
		c.appendPlaceholder()
		return
	}
	switch c.dataType.StoredType() {
	case columnar.INT32:
		if c.dataType == columnar.BOOLEAN {
			b := int32(0)
			if value.Boolean() {
				b = 1
			}
			c.int32Values = append(c.int32Values, b)
		} else {
			c.int32Values = append(c.int32Values, value.Int32())
		}
	case columnar.INT64:
		c.int64Values = append(c.int64Values, value.Int64())
	case columnar.FLOAT32:
		c.float32Values = append(c.float32Values, value.Float())
	case columnar.FLOAT64:
		c.float64Values = append(c.float64Values, value.Double())
	case columnar.STRING:
		c.stringValues = append(c.stringValues, string(value.ByteArray()))
	case columnar.BYTES:
		raw := value.ByteArray()
		copied := make([]byte, len(raw))
		copy(copied, raw)
		c.bytesValues = append(c.bytesValues, copied)
	}
}

func (c *parquetColumn) appendPlaceholder() {
	switch c.dataType.StoredType() {
	case columnar.INT32:
		c.int32Values = append(c.int32Values, columnar.NullInt32)
	case columnar.INT64:
		c.int64Values = append(c.int64Values, columnar.NullInt64)
	case columnar.FLOAT32:
		c.float32Values = append(c.float32Values, columnar.NullFloat32)
	case columnar.FLOAT64:
		c.float64Values = append(c.float64Values, columnar.NullFloat64)
	case columnar.STRING:
		c.stringValues = append(c.stringValues, columnar.NullString)
	case columnar.BYTES:
		c.bytesValues = append(c.bytesValues, columnar.NullBytes())
	}
}

// maskWindow rebases the column's null rows into [offset, offset+n) as a
// block-local mask, nil when the window has no nulls.
func (c *parquetColumn) maskWindow(offset, n int) *NullMask {
	var mask *NullMask
	for _, row := range c.nullRows {
		if row < offset {
			continue
		}
		if row >= offset+n {
			break
		}
		if mask == nil {
			mask = NewNullMask()
		}
		mask.Add(row - offset)
	}
	return mask
}

func (c *parquetColumn) window(offset, n int) BlockValueSet {
	mask := c.maskWindow(offset, n)
	switch c.dataType.StoredType() {
	case columnar.INT32:
		return NewInt32ColumnSV(c.int32Values[offset:offset+n], mask)
	case columnar.INT64:
		return NewInt64ColumnSV(c.int64Values[offset:offset+n], mask)
	case columnar.FLOAT32:
		return NewFloat32ColumnSV(c.float32Values[offset:offset+n], mask)
	case columnar.FLOAT64:
		return NewFloat64ColumnSV(c.float64Values[offset:offset+n], mask)
	case columnar.STRING:
		return NewStringColumnSV(c.stringValues[offset:offset+n], mask)
	default:
		return NewBytesColumnSV(c.bytesValues[offset:offset+n], mask)
	}
}

// Columns returns the readable column names in file order.
func (s *ParquetBatchSource) Columns() []string {
	names := make([]string, len(s.columns))
	for i, c := range s.columns {
		names[i] = c.name
	}
	return names
}

// ColumnType returns a column's logical type, UNKNOWN if absent.
func (s *ParquetBatchSource) ColumnType(name string) columnar.DataType {
	for _, c := range s.columns {
		if c.name == name {
			return c.dataType
		}
	}
	return columnar.UNKNOWN
}

// RowCount returns the total number of rows in the file.
func (s *ParquetBatchSource) RowCount() int {
	return s.totalRows
}

// HasNext reports whether another block remains.
func (s *ParquetBatchSource) HasNext() bool {
	return s.offset < s.totalRows
}

// NextBlock returns the next window of rows, io.EOF after the last one.
func (s *ParquetBatchSource) NextBlock() (*ValueBlock, error) {
	if s.offset >= s.totalRows {
		return nil, io.EOF
	}
	n := s.totalRows - s.offset
	if n > s.batchSize {
		n = s.batchSize
	}
	block := NewValueBlock(n)
	for _, column := range s.columns {
		block.AddColumn(column.name, column.window(s.offset, n))
	}
	s.offset += n
	return block, nil
}

// Reset rewinds the source to the first block.
func (s *ParquetBatchSource) Reset() {
	s.offset = 0
}

// Close releases the underlying file handle, if any.
func (s *ParquetBatchSource) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
