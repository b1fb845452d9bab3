package vectorized

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/VenkatDatta/pinot/columnar"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"
)

type sampleRow struct {
	ID    int64    `parquet:"id"`
	Name  string   `parquet:"name"`
	Score *float64 `parquet:"score,optional"`
}

func writeSampleParquet(t *testing.T, rows []sampleRow) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.parquet")
	f, err := os.Create(path)
	require.NoError(t, err)
	writer := parquet.NewGenericWriter[sampleRow](f)
	_, err = writer.Write(rows)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	require.NoError(t, f.Close())
	return path
}

func TestParquetBatchSource(t *testing.T) {
	score := func(v float64) *float64 { return &v }
	rows := []sampleRow{
		{ID: 1, Name: "a", Score: score(0.5)},
		{ID: 2, Name: "b", Score: score(1.5)},
		{ID: 3, Name: "c", Score: nil},
		{ID: 4, Name: "d", Score: score(2.5)},
		{ID: 5, Name: "e", Score: score(3.5)},
	}
	path := writeSampleParquet(t, rows)

	source, err := OpenParquetFile(path, 2)
	require.NoError(t, err)
	defer source.Close()

	require.Equal(t, 5, source.RowCount())
	require.Equal(t, []string{"id", "name", "score"}, source.Columns())
	require.Equal(t, columnar.INT64, source.ColumnType("id"))
	require.Equal(t, columnar.STRING, source.ColumnType("name"))
	require.Equal(t, columnar.FLOAT64, source.ColumnType("score"))
	require.Equal(t, columnar.UNKNOWN, source.ColumnType("missing"))

	t.Run("blocks window the file", func(t *testing.T) {
		first, err := source.NextBlock()
		require.NoError(t, err)
		require.Equal(t, 2, first.RowCount())
		require.Equal(t, []int64{1, 2}, first.GetValueSet("id").GetInt64ValuesSV())
		require.Equal(t, []string{"a", "b"}, first.GetValueSet("name").GetStringValuesSV())
		require.Nil(t, first.GetValueSet("score").GetNullMask())

		second, err := source.NextBlock()
		require.NoError(t, err)
		require.Equal(t, 2, second.RowCount())
		// Row 2 of the file is row 0 of this block; its null position
		// rebases with the window.
		mask := second.GetValueSet("score").GetNullMask()
		require.Equal(t, []int{0}, mask.Rows())
		require.Equal(t, columnar.NullFloat64, second.GetValueSet("score").GetFloat64ValuesSV()[0])

		third, err := source.NextBlock()
		require.NoError(t, err)
		require.Equal(t, 1, third.RowCount())
		require.Equal(t, []int64{5}, third.GetValueSet("id").GetInt64ValuesSV())

		require.False(t, source.HasNext())
		_, err = source.NextBlock()
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("reset rewinds", func(t *testing.T) {
		source.Reset()
		require.True(t, source.HasNext())
		first, err := source.NextBlock()
		require.NoError(t, err)
		require.Equal(t, []int64{1, 2}, first.GetValueSet("id").GetInt64ValuesSV())
	})
}

func TestParquetBlocksFeedTransforms(t *testing.T) {
	rows := []sampleRow{
		{ID: 1 << 32, Name: "x"},
		{ID: 7, Name: "y"},
	}
	source, err := OpenParquetFile(writeSampleParquet(t, rows), DefaultBatchSize)
	require.NoError(t, err)
	defer source.Close()

	expr, err := NewIdentifierTransform("id", columnar.INT64, true)
	require.NoError(t, err)

	block, err := source.NextBlock()
	require.NoError(t, err)
	values, err := expr.TransformToInt32ValuesSV(block)
	require.NoError(t, err)
	require.Equal(t, []int32{0, 7}, values)
}

func TestParquetGroupFieldsDoNotShiftColumns(t *testing.T) {
	// A group field ahead of the scalar columns occupies two leaf
	// columns; the fields after it must still read their own chunks.
	type taggedRow struct {
		Tags struct {
			Env  string `parquet:"env"`
			Zone string `parquet:"zone"`
		} `parquet:"tags"`
		ID   int64  `parquet:"id"`
		Name string `parquet:"name"`
	}

	path := filepath.Join(t.TempDir(), "tagged.parquet")
	f, err := os.Create(path)
	require.NoError(t, err)
	writer := parquet.NewGenericWriter[taggedRow](f)
	rows := make([]taggedRow, 2)
	rows[0].Tags.Env, rows[0].Tags.Zone, rows[0].ID, rows[0].Name = "prod", "us", 10, "a"
	rows[1].Tags.Env, rows[1].Tags.Zone, rows[1].ID, rows[1].Name = "dev", "eu", 20, "b"
	_, err = writer.Write(rows)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	require.NoError(t, f.Close())

	source, err := OpenParquetFile(path, DefaultBatchSize)
	require.NoError(t, err)
	defer source.Close()

	// The group itself is skipped, its leaves are not surfaced.
	require.Equal(t, []string{"id", "name"}, source.Columns())

	block, err := source.NextBlock()
	require.NoError(t, err)
	require.Equal(t, []int64{10, 20}, block.GetValueSet("id").GetInt64ValuesSV())
	require.Equal(t, []string{"a", "b"}, block.GetValueSet("name").GetStringValuesSV())
}

func TestOpenParquetFileErrors(t *testing.T) {
	_, err := OpenParquetFile(filepath.Join(t.TempDir(), "absent.parquet"), 2)
	require.Error(t, err)
}
