package metrics

import (
	"kpi-mantenimiento/internal/constants"
	"kpi-mantenimiento/internal/service/filter"
	"kpi-mantenimiento/internal/storage"
)

// Dashboard is everything the UI displays for one state and filter selection.
type Dashboard struct {
	Filters     storage.FilterState `json:"filters"`
	LineOptions []string            `json:"line_options"`

	Maintenance MaintenanceKPIs  `json:"maintenance"`
	Production  ProductionKPIs   `json:"production"`
	Supervisors []SupervisorKPIs `json:"supervisors"`
	Economics   []EconomicRow    `json:"economics"`

	Counts Counts `json:"counts"`
}

// Counts are the sizes of the filtered collections.
type Counts struct {
	Stoppages  int `json:"stoppages"`
	WorkOrders int `json:"work_orders"`
	Production int `json:"production"`
	Economics  int `json:"economics"`
}

// Compute filters every collection of state and derives all indicators. Supervisor
// rollups ignore the supervisor facet; the economic join reads the whole production
// collection because it matches by month, not by the period window.
func Compute(state storage.State, catalog storage.Catalog, minutesPerShift float64) Dashboard {
	f := state.FilterState

	stoppages := filter.Stoppages(state.Stoppages, f)
	orders := filter.WorkOrders(state.WorkOrders, f)
	production := filter.Production(state.Production, f)
	economics := filter.Economics(state.Economics, f)

	unsupervised := f
	unsupervised.Supervisor = constants.AllFacet
	rollupBase := filter.Production(state.Production, unsupervised)

	return Dashboard{
		Filters:     f,
		LineOptions: filter.LineOptions(catalog, f.Sector),
		Maintenance: Maintenance(stoppages, orders, state.Settings),
		Production:  Production(production, minutesPerShift),
		Supervisors: BySupervisor(rollupBase, catalog.Supervisors, minutesPerShift),
		Economics:   Economics(economics, state.Production),
		Counts: Counts{
			Stoppages:  len(stoppages),
			WorkOrders: len(orders),
			Production: len(production),
			Economics:  len(economics),
		},
	}
}
