package storage

// StoppageEvent is a single equipment stoppage (parada). Date may carry a time of day.
type StoppageEvent struct {
	ID          string  `json:"id"`
	Date        string  `json:"fecha" validate:"omitempty,recorddate"`
	Line        string  `json:"linea"`
	Shift       string  `json:"turno"`
	Sector      string  `json:"sector"`
	Area        string  `json:"area"`
	Equipment   string  `json:"equipo"`
	Type        string  `json:"tipo" validate:"omitempty,oneof='No planificada' Planificada 'Falta de insumos'"`
	RootCause   string  `json:"causaRaiz"`
	Criticality string  `json:"criticidad" validate:"omitempty,oneof=A B C"`
	DowntimeMin float64 `json:"downtimeMin" validate:"gte=0"`
	CostARS     float64 `json:"costoARS" validate:"gte=0"`
	Supervisor  string  `json:"supervisor,omitempty"`
	Responsible string  `json:"responsable,omitempty"`
}

// WorkOrder is a maintenance order (OT). Sector is optional; orders without one pass the
// sector facet.
type WorkOrder struct {
	ID            string  `json:"id"`
	Date          string  `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	ExecutionDate string  `json:"fechaEjec,omitempty"`
	Line          string  `json:"linea"`
	Shift         string  `json:"turno"`
	Sector        string  `json:"sector,omitempty"`
	Equipment     string  `json:"equipo"`
	Kind          string  `json:"tipo" validate:"omitempty,oneof=Correctivo Preventivo"`
	Status        string  `json:"estado" validate:"omitempty,oneof=Planificada 'En curso' Completada Cancelada"`
	Criticality   string  `json:"criticidad" validate:"omitempty,oneof=A B C"`
	SAPCode       string  `json:"codigoSAP"`
	Responsible   string  `json:"responsable"`
	Vendor        string  `json:"proveedor"`
	Parts         string  `json:"repuestos"`
	CostARS       float64 `json:"costoARS" validate:"gte=0"`
	LaborHours    float64 `json:"hh" validate:"gte=0"`
	Supervisor    string  `json:"supervisor,omitempty"`
}

// ProductionRecord is one shift of production on a line.
type ProductionRecord struct {
	ID             string  `json:"id"`
	Date           string  `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	Shift          string  `json:"turno"`
	Sector         string  `json:"sector"`
	Line           string  `json:"linea"`
	KgPlan         float64 `json:"kgPlan" validate:"gte=0"`
	KgProd         float64 `json:"kgProd" validate:"gte=0"`
	PlanCompliance float64 `json:"cumpPlan"`
	KgRework       float64 `json:"kgReproceso" validate:"gte=0"`
	KgScrap        float64 `json:"kgDecomiso" validate:"gte=0"`
	StoppageMin    float64 `json:"tiempoParadaMin" validate:"gte=0"`
	Supervisor     string  `json:"supervisor"`
	Notes          string  `json:"novedades"`
}

// EconomicRecord holds monthly spend for a sector. It is joined to production tonnage by
// period and sector at read time.
type EconomicRecord struct {
	ID               string  `json:"id"`
	Period           string  `json:"periodo" validate:"omitempty,datetime=2006-01"`
	Sector           string  `json:"sector"`
	MaintenanceSpend float64 `json:"gastoMantenimientoUSD" validate:"gte=0"`
	EnergySpend      float64 `json:"costoEnergiaUSD" validate:"gte=0"`
}
