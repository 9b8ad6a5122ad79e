package storage

import "kpi-mantenimiento/internal/constants"

// FilterState is the period window plus facet selection. Empty or sentinel facets are
// inactive.
type FilterState struct {
	PeriodFrom string `json:"periodoDesde" validate:"omitempty,datetime=2006-01-02"`
	PeriodTo   string `json:"periodoHasta" validate:"omitempty,datetime=2006-01-02"`
	Sector     string `json:"filtroSector"`
	Line       string `json:"filtroLinea"`
	Shift      string `json:"filtroTurno"`
	Supervisor string `json:"filtroSupervisor"`
}

// WithSector selects a sector and resets the dependent line facet.
func (f FilterState) WithSector(sector string) FilterState {
	f.Sector = sector
	f.Line = constants.AllLines
	return f
}

// Settings are the user-editable scalars used as metric denominators.
type Settings struct {
	PlannedHours       float64 `json:"horasPlanificadas" validate:"gte=0"`
	WeeklyCapacityHH   float64 `json:"capacidadHHsemana" validate:"gte=0"`
	SalesARS           float64 `json:"ventasARS" validate:"gte=0"`
	MaintenanceCostARS float64 `json:"costoMantenimientoARS" validate:"gte=0"`
}

// State is the complete snapshot persisted as one unit.
type State struct {
	FilterState
	Settings

	Stoppages  []StoppageEvent    `json:"paradas"`
	WorkOrders []WorkOrder        `json:"ots"`
	Production []ProductionRecord `json:"produccion"`
	Economics  []EconomicRecord   `json:"economia"`

	// Notes is the free-text notes pad. It survives a reset.
	Notes string `json:"notas"`
}

// Clone copies the collections so the result can be mutated without touching s.
func (s State) Clone() State {
	c := s
	c.Stoppages = append([]StoppageEvent{}, s.Stoppages...)
	c.WorkOrders = append([]WorkOrder{}, s.WorkOrders...)
	c.Production = append([]ProductionRecord{}, s.Production...)
	c.Economics = append([]EconomicRecord{}, s.Economics...)
	return c
}
