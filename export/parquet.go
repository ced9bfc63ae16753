package export

import (
	"fmt"
	"io"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/apache/arrow/go/v18/parquet"
	"github.com/apache/arrow/go/v18/parquet/compress"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"

	"github.com/paynearme/ach"
)

// parquetChunkSize is the row group size used when writing.
const parquetChunkSize = 1024

// Parquet writes the file's entries as a Parquet file with string-typed
// columns.
func Parquet(w io.Writer, f *ach.File) error {
	t := FromFile(f)

	fields := make([]arrow.Field, len(t.Headers))
	for i, header := range t.Headers {
		fields[i] = arrow.Field{Name: header, Type: arrow.BinaryTypes.String}
	}
	schema := arrow.NewSchema(fields, nil)

	builder := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer builder.Release()
	for _, record := range t.Records {
		for i, value := range record {
			builder.Field(i).(*array.StringBuilder).Append(value)
		}
	}

	record := builder.NewRecord()
	defer record.Release()

	table := array.NewTableFromRecords(schema, []arrow.Record{record})
	defer table.Release()

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	if err := pqarrow.WriteTable(table, w, parquetChunkSize, props, pqarrow.DefaultWriterProps()); err != nil {
		return fmt.Errorf("failed to write parquet: %w", err)
	}
	return nil
}
