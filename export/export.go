// Package export flattens parsed ACH files into tabular form and writes
// XLSX workbooks and Parquet files for downstream analysis.
//
// # Security Note
//
// Exported tables expose sensitive banking information including account
// numbers, routing numbers, names, and transaction amounts. Avoid logging
// or exporting table contents verbatim in production environments.
package export

import (
	"strconv"

	"github.com/paynearme/ach"
)

// Table holds a flat, stringly-typed view of a file's entry details, one
// row per entry.
type Table struct {
	// Headers contains the column names in order.
	Headers []string
	// Records contains the data rows. Each record is a slice of string
	// values aligned with Headers.
	Records [][]string
}

// entryHeaders lists the exported columns in order.
var entryHeaders = []string{
	"batch_number",
	"standard_entry_class_code",
	"company_name",
	"transaction_code",
	"routing_number",
	"account_number",
	"amount",
	"individual_id_number",
	"individual_name",
	"trace_number",
	"addenda_count",
}

// FromFile flattens the file's entries into a Table. The file is
// serialized first so batch numbers and control totals are resolved.
func FromFile(f *ach.File) *Table {
	_ = f.String()

	records := make([][]string, 0)
	for _, b := range f.Batches {
		for _, e := range b.Entries {
			records = append(records, []string{
				strconv.Itoa(b.Header.BatchNumber),
				b.Header.StandardEntryClassCode(),
				b.Header.CompanyName,
				e.TransactionCode,
				e.RoutingNumber,
				e.AccountNumber,
				strconv.Itoa(e.Amount),
				e.IndividualIDNumber,
				e.IndividualName,
				strconv.Itoa(e.TraceNumber),
				strconv.Itoa(len(e.Addenda)),
			})
		}
	}
	return &Table{Headers: entryHeaders, Records: records}
}
