package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/VenkatDatta/pinot/columnar"
	"github.com/VenkatDatta/pinot/logutil"
	"github.com/VenkatDatta/pinot/vectorized"
	"go.uber.org/zap"
)

// Runs a bounded DISTINCT over one column of a parquet file, stopping as
// soon as the limit is provably reached.
//
// Usage:
//
//	distinct_runner -file data.parquet -column city -limit 100
//	distinct_runner -url https://host/data.parquet -column user_id -limit 1000 -nulls
func main() {
	var (
		file      = flag.String("file", "", "path to a local parquet file")
		url       = flag.String("url", "", "URL of a parquet file served over HTTP")
		column    = flag.String("column", "", "column to collect distinct values from")
		limit     = flag.Int("limit", 1000, "maximum number of distinct values")
		nulls     = flag.Bool("nulls", false, "treat null rows as one distinct value")
		batchSize = flag.Int("batch", vectorized.DefaultBatchSize, "rows per processing block")
		verbose   = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *column == "" || (*file == "" && *url == "") {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		logger, err := logutil.NewDevelopmentLogger()
		if err != nil {
			fmt.Fprintln(os.Stderr, "logger:", err)
			os.Exit(1)
		}
		logutil.Init(logger)
		defer logger.Sync()
	}

	if err := run(*file, *url, *column, *limit, *nulls, *batchSize); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(file, url, column string, limit int, nulls bool, batchSize int) error {
	var (
		source *vectorized.ParquetBatchSource
		err    error
	)
	if file != "" {
		source, err = vectorized.OpenParquetFile(file, batchSize)
	} else {
		source, err = vectorized.OpenParquetURL(url, batchSize)
	}
	if err != nil {
		return err
	}
	defer source.Close()

	dataType := source.ColumnType(column)
	if dataType == columnar.UNKNOWN {
		return fmt.Errorf("column %q not found; file has: %s", column, strings.Join(source.Columns(), ", "))
	}

	expr, err := vectorized.NewIdentifierTransform(column, dataType, true)
	if err != nil {
		return err
	}

	collect, err := newCollector(expr, dataType, limit, nulls)
	if err != nil {
		return err
	}

	blocks := 0
	for source.HasNext() {
		block, err := source.NextBlock()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		blocks++
		done, err := collect.process(block)
		if err != nil {
			return fmt.Errorf("block %d: %w", blocks, err)
		}
		if done {
			logutil.Info("distinct limit reached early",
				zap.Int("limit", limit),
				zap.Int("blocks", blocks),
				zap.Int("totalBlocks", (source.RowCount()+batchSize-1)/batchSize))
			break
		}
	}

	collect.print(os.Stdout)
	return nil
}

// collector pairs a typed executor with uniform reporting.
type collector struct {
	process func(*vectorized.ValueBlock) (bool, error)
	print   func(io.Writer)
}

func newCollector(expr vectorized.TransformFunction, dataType columnar.DataType, limit int, nulls bool) (*collector, error) {
	switch dataType.StoredType() {
	case columnar.INT32:
		exec := vectorized.NewInt32DistinctOnlyExecutor(expr, limit, nulls)
		return &collector{
			process: exec.Process,
			print:   func(w io.Writer) { printValues(w, exec.Values(), exec.HasNull()) },
		}, nil
	case columnar.INT64:
		exec := vectorized.NewInt64DistinctOnlyExecutor(expr, limit, nulls)
		return &collector{
			process: exec.Process,
			print:   func(w io.Writer) { printValues(w, exec.Values(), exec.HasNull()) },
		}, nil
	case columnar.FLOAT32:
		exec := vectorized.NewFloat32DistinctOnlyExecutor(expr, limit, nulls)
		return &collector{
			process: exec.Process,
			print:   func(w io.Writer) { printValues(w, exec.Values(), exec.HasNull()) },
		}, nil
	case columnar.FLOAT64:
		exec := vectorized.NewFloat64DistinctOnlyExecutor(expr, limit, nulls)
		return &collector{
			process: exec.Process,
			print:   func(w io.Writer) { printValues(w, exec.Values(), exec.HasNull()) },
		}, nil
	case columnar.STRING:
		exec := vectorized.NewStringDistinctOnlyExecutor(expr, limit, nulls)
		return &collector{
			process: exec.Process,
			print:   func(w io.Writer) { printValues(w, vectorized.SortedStrings(exec), exec.HasNull()) },
		}, nil
	default:
		return nil, fmt.Errorf("distinct over %s columns is not supported", dataType)
	}
}

func printValues[T any](w io.Writer, values []T, hasNull bool) {
	for _, v := range values {
		fmt.Fprintln(w, v)
	}
	if hasNull {
		fmt.Fprintln(w, "<null>")
	}
	fmt.Fprintf(w, "-- %d distinct value(s)", len(values))
	if hasNull {
		fmt.Fprint(w, " plus null")
	}
	fmt.Fprintln(w)
}
