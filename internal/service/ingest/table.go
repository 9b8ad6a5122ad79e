package ingest

import (
	"strings"

	"github.com/google/uuid"

	"kpi-mantenimiento/internal/storage"
)

const (
	colDate        = "FECHA"
	colShift       = "TURNO"
	colSector      = "SECTOR"
	colKgPlan      = "KG PLAN"
	colLine        = "LINEA"
	colKgProd      = "KG PRODUCIDOS"
	colKgRework    = "KG REPROCESO"
	colKgScrap     = "KG DECOMISO"
	colStoppageMin = "TIEMPO PARADA POR AVERIAS"
	colSupervisor  = "SUPERVISOR"

	colNotes          = "NOVEDADES"
	colPlanCompliance = "CUMP PLAN %"
)

var (
	RequiredHeaders = []string{
		colDate, colShift, colSector, colKgPlan, colLine, colKgProd,
		colKgRework, colKgScrap, colStoppageMin, colSupervisor,
	}
	OptionalHeaders = []string{colNotes, colPlanCompliance}
)

// Options carries the catalogs and policies the normalization depends on.
type Options struct {
	Catalog                 storage.Catalog
	RecomputePlanCompliance bool
	NewID                   func() string
}

func (o Options) newID() string {
	if o.NewID != nil {
		return o.NewID()
	}
	return uuid.NewString()
}

type headerIndex map[string]int

func indexHeaders(header []string) headerIndex {
	idx := make(headerIndex, len(header))
	for i, h := range header {
		name := Fold(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	return idx
}

func (h headerIndex) missing(names []string) []string {
	var out []string
	for _, n := range names {
		if _, ok := h[n]; !ok {
			out = append(out, n)
		}
	}
	return out
}

// cellParsers differ by source: CSV text is locale formatted, spreadsheet cells are raw.
type cellParsers struct {
	number func(string) float64
	date   func(string) (string, bool)
}

var (
	textCells  = cellParsers{number: ParseNumber, date: ParseDate}
	sheetCells = cellParsers{number: ParseRawNumber, date: ParseSpreadsheetDate}
)

// productionFromTable turns a header row plus data rows into production records. Rows
// without a parseable date are skipped.
func productionFromTable(table [][]string, opts Options, cells cellParsers) ([]storage.ProductionRecord, error) {
	if len(table) < 2 {
		return nil, ErrEmptyFile
	}

	idx := indexHeaders(table[0])
	if missing := idx.missing(RequiredHeaders); len(missing) > 0 {
		return nil, &MissingHeadersError{
			Missing:  missing,
			Required: RequiredHeaders,
			Optional: OptionalHeaders,
		}
	}

	var records []storage.ProductionRecord

	for _, row := range table[1:] {
		if len(row) == 0 {
			continue
		}

		val := func(name string) string {
			i, ok := idx[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		date, ok := cells.date(val(colDate))
		if !ok {
			continue
		}

		rec := storage.ProductionRecord{
			ID:          opts.newID(),
			Date:        date,
			Shift:       ParseShift(val(colShift), opts.Catalog.Shifts),
			Sector:      ParseSector(val(colSector), opts.Catalog),
			Line:        val(colLine),
			KgPlan:      cells.number(val(colKgPlan)),
			KgProd:      cells.number(val(colKgProd)),
			KgRework:    cells.number(val(colKgRework)),
			KgScrap:     cells.number(val(colKgScrap)),
			StoppageMin: cells.number(val(colStoppageMin)),
			Supervisor:  ParseSupervisor(val(colSupervisor), opts.Catalog.Supervisors),
			Notes:       val(colNotes),
		}

		if _, ok := idx[colPlanCompliance]; ok {
			rec.PlanCompliance = cells.number(val(colPlanCompliance))
		} else if opts.RecomputePlanCompliance && rec.KgPlan > 0 {
			rec.PlanCompliance = rec.KgProd / rec.KgPlan * 100
		}

		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrNoValidRows
	}

	return records, nil
}
