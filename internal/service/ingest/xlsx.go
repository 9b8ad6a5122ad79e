package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"kpi-mantenimiento/internal/storage"
)

// ImportProductionXLSX reads the first sheet of a workbook with the same columns as the
// CSV export. Cells are read raw so dates arrive as serial numbers and decimals use '.'.
func ImportProductionXLSX(r io.Reader, opts Options) ([]storage.ProductionRecord, error) {
	const op = "service.ingest.ImportProductionXLSX"

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrUnreadable, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyFile)
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrUnreadable, err)
	}

	var table [][]string
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		table = append(table, row)
	}

	records, err := productionFromTable(table, opts, sheetCells)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}
