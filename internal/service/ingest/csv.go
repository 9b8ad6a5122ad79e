package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"kpi-mantenimiento/internal/storage"
)

// DetectDelimiter picks ';' when the header line contains one, ',' otherwise.
func DetectDelimiter(headerLine string) rune {
	if strings.Contains(headerLine, ";") {
		return ';'
	}
	return ','
}

// ImportProductionCSV parses a production CSV export. The whole import fails on missing
// headers; individual rows without a usable date are dropped. Each line is parsed on its
// own, so a stray quote can only garble the row it appears in.
func ImportProductionCSV(r io.Reader, opts Options) ([]storage.ProductionRecord, error) {
	const op = "service.ingest.ImportProductionCSV"

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrUnreadable, err)
	}

	text := strings.TrimPrefix(string(raw), "\ufeff")

	var (
		table [][]string
		comma rune
	)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if comma == 0 {
			comma = DetectDelimiter(line)
		}

		row, err := splitLine(line, comma)
		if err != nil {
			if len(table) == 0 {
				return nil, fmt.Errorf("%s: %w: header: %w", op, ErrUnreadable, err)
			}
			continue
		}
		if isBlankRow(row) {
			continue
		}
		table = append(table, row)
	}

	records, err := productionFromTable(table, opts, textCells)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return records, nil
}

// splitLine reads the fields of one CSV line, honouring quotes that close on the same line.
func splitLine(line string, comma rune) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	return reader.Read()
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
