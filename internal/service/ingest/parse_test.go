package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"kpi-mantenimiento/internal/constants"
	"kpi-mantenimiento/internal/storage"
)

func testCatalog() storage.Catalog {
	return storage.Catalog{
		Sectors:        constants.Sectors,
		LinesBySector:  constants.LinesBySector,
		Supervisors:    constants.Supervisors,
		Shifts:         constants.Shifts,
		FallbackSector: constants.FallbackSector,
	}
}

func TestParseNumber(t *testing.T) {
	cases := map[string]float64{
		"1.234,5":   1234.5,
		"abc":       0,
		"":          0,
		"  42 ":     42,
		"0,75":      0.75,
		"1.000.000": 1000000,
		"-3,5":      -3.5,
		"12kg":      0,
	}

	for in, want := range cases {
		assert.InDelta(t, want, ParseNumber(in), 1e-9, "input %q", in)
	}
}

func TestParseRawNumber(t *testing.T) {
	assert.InDelta(t, 90.5, ParseRawNumber("90.5"), 1e-9)
	assert.InDelta(t, 1234.5, ParseRawNumber("1.234,5"), 1e-9)
	assert.Equal(t, 0.0, ParseRawNumber("n/a"))
}

func TestParseNumber_OutOfRangeIsZero(t *testing.T) {
	huge := "1" + strings.Repeat("0", 400)

	for _, in := range []string{"1e400", "-1e400", huge} {
		assert.Equal(t, 0.0, ParseNumber(in), "input %q", in)
		assert.Equal(t, 0.0, ParseRawNumber(in), "input %q", in)
	}
}

func TestParseDate(t *testing.T) {
	ok := map[string]string{
		"2024-03-05":           "2024-03-05",
		"2024-03-05T10:30":     "2024-03-05",
		"05/03/2024":           "2024-03-05",
		"5/3/2024":             "2024-03-05",
		"2024/03/05":           "2024-03-05",
		"05.03.2024":           "2024-03-05",
		"5 Mar 2024":           "2024-03-05",
		"March 5, 2024":        "2024-03-05",
		"2024-03-05T10:30:00Z": "2024-03-05",
		"2024-03":              "2024-03-01",
		"2024":                 "2024-01-01",
	}
	for in, want := range ok {
		got, parsed := ParseDate(in)
		assert.True(t, parsed, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	for _, in := range []string{"", "mañana", "2024-13-40", "31/02/2024", "45356"} {
		_, parsed := ParseDate(in)
		assert.False(t, parsed, "input %q", in)
	}
}

func TestParseSpreadsheetDate(t *testing.T) {
	got, ok := ParseSpreadsheetDate("45356")
	assert.True(t, ok)
	assert.Equal(t, "2024-03-05", got)

	got, ok = ParseSpreadsheetDate("2024")
	assert.True(t, ok)
	assert.Equal(t, "2024-01-01", got, "a bare year is a year, not a serial day")

	got, ok = ParseSpreadsheetDate("2024-03-05")
	assert.True(t, ok)
	assert.Equal(t, "2024-03-05", got)

	_, ok = ParseSpreadsheetDate("0")
	assert.False(t, ok)
}

func TestParseShift(t *testing.T) {
	shifts := constants.Shifts

	assert.Equal(t, constants.ShiftAfternoon, ParseShift("Tarde", shifts))
	assert.Equal(t, constants.ShiftAfternoon, ParseShift("t", shifts))
	assert.Equal(t, constants.ShiftNight, ParseShift("NOCHE", shifts))
	assert.Equal(t, constants.ShiftMorning, ParseShift("Mañana", shifts))
	assert.Equal(t, constants.ShiftMorning, ParseShift("", shifts))
	assert.Equal(t, constants.ShiftMorning, ParseShift("xyz", shifts))
}

func TestParseSector(t *testing.T) {
	cat := testCatalog()

	assert.Equal(t, "CHOCOLATE", ParseSector("chocolate", cat))
	assert.Equal(t, "TURRON", ParseSector(" Turrón ", cat))
	assert.Equal(t, "OTROS", ParseSector("galletitas", cat))

	cat.FallbackSector = ""
	assert.Equal(t, "GALLETITAS", ParseSector("galletitas", cat))
}

func TestParseSupervisor(t *testing.T) {
	sups := constants.Supervisors

	assert.Equal(t, "AVILA", ParseSupervisor("Ávila", sups))
	assert.Equal(t, "BOERIS", ParseSupervisor("boeris", sups))
	assert.Equal(t, "ALLOI", ParseSupervisor("desconocido", sups))
	assert.Equal(t, "PEREZ", ParseSupervisor("perez", nil))
}

func TestParseShift_EmptyCatalogUsesDefaults(t *testing.T) {
	assert.Equal(t, constants.ShiftAfternoon, ParseShift("Tarde", nil))
}
