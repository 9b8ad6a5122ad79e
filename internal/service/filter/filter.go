package filter

import (
	"strings"
	"time"

	"kpi-mantenimiento/internal/constants"
	"kpi-mantenimiento/internal/storage"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

var recordTimeLayouts = []string{
	dateLayout,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// IsAll reports whether a facet value means "no restriction".
func IsAll(v string) bool {
	switch strings.TrimSpace(v) {
	case "", constants.AllFacet, constants.AllLines, "All":
		return true
	}
	return false
}

// ParseRecordTime reads a record date with an optional time of day.
func ParseRecordTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range recordTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Window is an inclusive period: From at 00:00 through To at 23:59:59. A zero bound is
// open.
type Window struct {
	From time.Time
	To   time.Time
}

// NewWindow builds a window from YYYY-MM-DD bounds; empty or invalid bounds stay open.
func NewWindow(from, to string) Window {
	var w Window
	if t, err := time.Parse(dateLayout, strings.TrimSpace(from)); err == nil {
		w.From = t
	}
	if t, err := time.Parse(dateLayout, strings.TrimSpace(to)); err == nil {
		w.To = t.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	}
	return w
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if !w.From.IsZero() && t.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && t.After(w.To) {
		return false
	}
	return true
}

// InPeriod reports whether a record date string falls inside the window. Unparseable
// dates are outside every window.
func (w Window) InPeriod(date string) bool {
	t, ok := ParseRecordTime(date)
	if !ok {
		return false
	}
	return w.Contains(t)
}

// OverlapsMonth reports whether the YYYY-MM month intersects the window.
func (w Window) OverlapsMonth(period string) bool {
	start, err := time.Parse(monthLayout, strings.TrimSpace(period))
	if err != nil {
		return false
	}
	end := start.AddDate(0, 1, 0).Add(-time.Second)

	if !w.To.IsZero() && start.After(w.To) {
		return false
	}
	if !w.From.IsZero() && end.Before(w.From) {
		return false
	}
	return true
}

func matches(facet, value string) bool {
	return IsAll(facet) || value == facet
}

func matchesAny(facet string, values ...string) bool {
	if IsAll(facet) {
		return true
	}
	for _, v := range values {
		if v == facet {
			return true
		}
	}
	return false
}

// Stoppages keeps the stoppages inside the period that pass every active facet. The
// supervisor facet also accepts the responsible person.
func Stoppages(records []storage.StoppageEvent, f storage.FilterState) []storage.StoppageEvent {
	w := NewWindow(f.PeriodFrom, f.PeriodTo)

	out := make([]storage.StoppageEvent, 0, len(records))
	for _, r := range records {
		if !w.InPeriod(r.Date) {
			continue
		}
		if matches(f.Line, r.Line) &&
			matches(f.Shift, r.Shift) &&
			matches(f.Sector, r.Sector) &&
			matchesAny(f.Supervisor, r.Supervisor, r.Responsible) {
			out = append(out, r)
		}
	}
	return out
}

// WorkOrders keeps the work orders inside the period that pass every active facet. Orders
// without a sector always pass the sector facet.
func WorkOrders(records []storage.WorkOrder, f storage.FilterState) []storage.WorkOrder {
	w := NewWindow(f.PeriodFrom, f.PeriodTo)

	out := make([]storage.WorkOrder, 0, len(records))
	for _, r := range records {
		if !w.InPeriod(r.Date) {
			continue
		}
		bySector := r.Sector == "" || matches(f.Sector, r.Sector)
		if bySector &&
			matches(f.Line, r.Line) &&
			matches(f.Shift, r.Shift) &&
			matchesAny(f.Supervisor, r.Responsible, r.Supervisor) {
			out = append(out, r)
		}
	}
	return out
}

// Production keeps the production records inside the period that pass every active facet.
func Production(records []storage.ProductionRecord, f storage.FilterState) []storage.ProductionRecord {
	w := NewWindow(f.PeriodFrom, f.PeriodTo)

	out := make([]storage.ProductionRecord, 0, len(records))
	for _, r := range records {
		if !w.InPeriod(r.Date) {
			continue
		}
		if matches(f.Line, r.Line) &&
			matches(f.Shift, r.Shift) &&
			matches(f.Sector, r.Sector) &&
			matches(f.Supervisor, r.Supervisor) {
			out = append(out, r)
		}
	}
	return out
}

// Economics keeps the economic records whose month overlaps the period and whose sector
// passes the sector facet. Line, shift and supervisor do not apply to monthly spend.
func Economics(records []storage.EconomicRecord, f storage.FilterState) []storage.EconomicRecord {
	w := NewWindow(f.PeriodFrom, f.PeriodTo)

	out := make([]storage.EconomicRecord, 0, len(records))
	for _, r := range records {
		if w.OverlapsMonth(r.Period) && matches(f.Sector, r.Sector) {
			out = append(out, r)
		}
	}
	return out
}

// LineOptions derives the line selector: the sentinel followed by the sector's lines, or
// by every line when no sector is selected.
func LineOptions(catalog storage.Catalog, sector string) []string {
	var lines []string
	if IsAll(sector) {
		lines = catalog.AllLines()
	} else {
		lines = catalog.LinesFor(sector)
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, constants.AllLines)
	return append(out, lines...)
}
