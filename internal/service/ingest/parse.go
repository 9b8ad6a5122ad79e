package ingest

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"kpi-mantenimiento/internal/constants"
	"kpi-mantenimiento/internal/storage"
)

const dateLayout = "2006-01-02"

var (
	isoDatePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	dmyDatePrefix = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})`)

	// excel stores dates as days since 1899-12-30
	excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
)

// last-resort layouts tried in order after the ISO and DD/MM/YYYY forms
var fallbackDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006/01/02",
	"2006/1/2",
	"02-01-2006",
	"02.01.2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"Mon Jan 2 2006",
	time.RFC1123,
	"2006-01",
	"2006",
}

// ParseNumber reads a locale-formatted number: dots are thousands separators and the first
// comma is the decimal mark. Anything unparseable is 0.
func ParseNumber(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0
	}

	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}

	return finiteOrZero(d.InexactFloat64())
}

// ParseRawNumber reads a machine-formatted number such as a raw spreadsheet cell and falls
// back to ParseNumber for text cells.
func ParseRawNumber(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return ParseNumber(cleaned)
	}

	return finiteOrZero(d.InexactFloat64())
}

// finiteOrZero maps values outside the float64 range (and NaN) to 0.
func finiteOrZero(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// ParseDate normalizes a date to YYYY-MM-DD. The second result is false when no form
// matched.
func ParseDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	if isoDatePrefix.MatchString(raw) {
		return validDate(raw[:10])
	}

	if m := dmyDatePrefix.FindStringSubmatch(raw); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return validDate(fmt.Sprintf("%s-%02d-%02d", m[3], month, day))
	}

	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(dateLayout), true
		}
	}

	return "", false
}

// ParseSpreadsheetDate is ParseDate plus Excel serial day numbers, which only spreadsheet
// cells carry.
func ParseSpreadsheetDate(raw string) (string, bool) {
	if date, ok := ParseDate(raw); ok {
		return date, true
	}
	return excelSerialDate(strings.TrimSpace(raw))
}

func validDate(s string) (string, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", false
	}
	return t.Format(dateLayout), true
}

func excelSerialDate(raw string) (string, bool) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return "", false
	}

	days := d.IntPart()
	if days < 1 || days > 2958465 {
		return "", false
	}

	return excelEpoch.AddDate(0, 0, int(days)).Format(dateLayout), true
}

// casers keep state, so one is built per call
func toUpper(s string) string {
	return cases.Upper(language.Spanish).String(s)
}

// Fold uppercases s and strips diacritics so "Turrón" and "TURRON" compare equal.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		folded = strings.TrimSpace(s)
	}
	return toUpper(folded)
}

// ParseShift maps a value to the shift whose code shares its first letter, defaulting to
// the first shift of the catalog.
func ParseShift(raw string, shifts []string) string {
	if len(shifts) == 0 {
		shifts = constants.Shifts
	}

	folded := Fold(raw)
	if folded == "" {
		return shifts[0]
	}

	first, _ := firstRune(folded)
	for _, code := range shifts {
		if r, ok := firstRune(Fold(code)); ok && r == first {
			return code
		}
	}

	return shifts[0]
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

// ParseSector returns the catalog sector matching raw. Unknown values become the fallback
// sector when the catalog defines one, otherwise they pass through uppercased.
func ParseSector(raw string, catalog storage.Catalog) string {
	folded := Fold(raw)
	for _, s := range catalog.Sectors {
		if Fold(s) == folded {
			return s
		}
	}

	if catalog.FallbackSector != "" {
		return catalog.FallbackSector
	}

	return toUpper(strings.TrimSpace(raw))
}

// ParseSupervisor returns the catalog supervisor matching raw or the first catalog entry.
func ParseSupervisor(raw string, supervisors []string) string {
	folded := Fold(raw)
	for _, s := range supervisors {
		if Fold(s) == folded {
			return s
		}
	}

	if len(supervisors) == 0 {
		return toUpper(strings.TrimSpace(raw))
	}

	return supervisors[0]
}
