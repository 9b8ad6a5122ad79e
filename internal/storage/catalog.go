package storage

import "sort"

// Catalog groups the runtime-editable enumerations: sectors and their lines, supervisors
// and shift codes.
type Catalog struct {
	Sectors        []string            `yaml:"sectors" json:"sectors"`
	LinesBySector  map[string][]string `yaml:"lines_by_sector" json:"lines_by_sector"`
	Supervisors    []string            `yaml:"supervisors" json:"supervisors"`
	Shifts         []string            `yaml:"shifts" json:"shifts"`
	FallbackSector string              `yaml:"fallback_sector" json:"fallback_sector"`
}

// HasSector reports whether sector is listed in the catalog.
func (c Catalog) HasSector(sector string) bool {
	for _, s := range c.Sectors {
		if s == sector {
			return true
		}
	}
	return false
}

// LinesFor returns the line catalog of a sector, nil when the sector is unknown.
func (c Catalog) LinesFor(sector string) []string {
	return c.LinesBySector[sector]
}

// AllLines returns every line once, walking sectors in catalog order.
func (c Catalog) AllLines() []string {
	seen := make(map[string]bool)
	var lines []string

	appendLines := func(ls []string) {
		for _, l := range ls {
			if !seen[l] {
				seen[l] = true
				lines = append(lines, l)
			}
		}
	}

	for _, s := range c.Sectors {
		appendLines(c.LinesBySector[s])
	}
	// sectors present only in the map still contribute
	var extra []string
	for s := range c.LinesBySector {
		if !c.HasSector(s) {
			extra = append(extra, s)
		}
	}
	sort.Strings(extra)
	for _, s := range extra {
		appendLines(c.LinesBySector[s])
	}

	return lines
}
