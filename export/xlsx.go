package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/paynearme/ach"
)

// XLSX writes the file's entries as an Excel workbook with a header row.
func XLSX(w io.Writer, f *ach.File) (err error) {
	t := FromFile(f)

	wb := excelize.NewFile()
	defer func() {
		if closeErr := wb.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", closeErr)
		}
	}()

	sheet := wb.GetSheetName(0)
	for col, header := range t.Headers {
		cell, cellErr := excelize.CoordinatesToCellName(col+1, 1)
		if cellErr != nil {
			return fmt.Errorf("failed to resolve cell: %w", cellErr)
		}
		if err := wb.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to set header cell: %w", err)
		}
	}

	for row, record := range t.Records {
		for col, value := range record {
			cell, cellErr := excelize.CoordinatesToCellName(col+1, row+2)
			if cellErr != nil {
				return fmt.Errorf("failed to resolve cell: %w", cellErr)
			}
			if err := wb.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to set cell: %w", err)
			}
		}
	}

	if err := wb.Write(w); err != nil {
		return fmt.Errorf("failed to write XLSX: %w", err)
	}
	return nil
}
