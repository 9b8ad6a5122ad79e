package ingest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImportProductionXLSX(t *testing.T) {
	header := []any{}
	for _, h := range strings.Split(fullHeader, ",") {
		header = append(header, h)
	}

	buf := workbook(t, [][]any{
		header,
		{45356, "Tarde", "CHOCOLATE", 100, "CV1000-1", 90.5, 5, 2, 15, "ALLOI"},
		{"05/03/2024", "N", "TURRON", "1.000", "NAMUR", 800, 0, 0, 0, "BOERIS"},
		{"", "M", "TURRON", 1, "NAMUR", 1, 0, 0, 0, "BOERIS"},
	})

	records, err := ImportProductionXLSX(buf, testOptions())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "2024-03-05", records[0].Date)
	assert.Equal(t, "T", records[0].Shift)
	assert.InDelta(t, 90.5, records[0].KgProd, 1e-9)

	assert.Equal(t, "2024-03-05", records[1].Date)
	assert.Equal(t, "TURRON", records[1].Sector)
	assert.Equal(t, "BOERIS", records[1].Supervisor)
}

func TestImportProductionXLSX_MissingHeaders(t *testing.T) {
	buf := workbook(t, [][]any{
		{"FECHA", "TURNO"},
		{"2024-03-05", "T"},
	})

	_, err := ImportProductionXLSX(buf, testOptions())
	assert.ErrorIs(t, err, ErrMissingHeaders)
}

func TestImportProductionXLSX_NotAWorkbook(t *testing.T) {
	_, err := ImportProductionXLSX(strings.NewReader("not a zip"), testOptions())
	assert.ErrorIs(t, err, ErrUnreadable)
}
