package constants

// Facet sentinels. The UI sends "Todos" for sector/shift/supervisor and "Todas" for line.
const (
	AllFacet = "Todos"
	AllLines = "Todas"
)

// Work order kinds and statuses as stored in snapshots.
const (
	KindCorrective = "Correctivo"
	KindPreventive = "Preventivo"

	StatusPlanned    = "Planificada"
	StatusInProgress = "En curso"
	StatusCompleted  = "Completada"
	StatusCancelled  = "Cancelada"
)

// Shift codes: Mañana, Tarde, Noche.
const (
	ShiftMorning   = "M"
	ShiftAfternoon = "T"
	ShiftNight     = "N"
)

const (
	DefaultPlannedHours     = 720
	DefaultWeeklyCapacityHH = 160
	DefaultMinutesPerShift  = 480

	DefaultSlotKey = "kpi-mantenimiento-georgalos-v2"
)

var (
	Supervisors = []string{"ALLOI", "AVILA", "BOERIS"}

	Sectors = []string{
		"CHOCOLATE",
		"ALFAJOR",
		"HUEVO DE PASCUA",
		"BARRA DE MANI",
		"TURRON",
		"BARRA DE CEREALES",
		"CARAMELO BLANDO",
		"CARAMELO DURO",
		"ARTESANAL",
		"CUBANITO",
		"CONFITE",
		"OTROS",
	}

	FallbackSector = "OTROS"

	LinesBySector = map[string][]string{
		"CHOCOLATE":         {"CV1000-1", "CV1000-2", "CV1000-3", "DELVER", "CHISPAS", "MANGA"},
		"TURRON":            {"NAMUR", "TURRON FIESTA", "CROCANTE", "ESTUCHADO TURRON", "ARTESANAL"},
		"CARAMELO BLANDO":   {"FLYNN", "FLYNNIES", "XXL", "EMZO", "ENVAMEC"},
		"CARAMELO DURO":     {"EMZO", "ENVAMEC"},
		"CONFITE":           {"PACK PLUS", "ESTUCHADORA", "CONFITE"},
		"ALFAJOR":           {"ALFAJOR"},
		"HUEVO DE PASCUA":   {"HUEVO DE PASCUA"},
		"BARRA DE MANI":     {"BARRA DE MANI", "LINGOTE"},
		"BARRA DE CEREALES": {"BARRA DE CEREALES"},
		"CUBANITO":          {"CUBANITO"},
		"ARTESANAL":         {},
		"OTROS":             {},
	}

	Shifts = []string{ShiftMorning, ShiftAfternoon, ShiftNight}

	Areas = []string{"Estuchadora", "Balanza", "Mesas de refrigeración", "Cocción", "Empaque", "Servicios"}

	StoppageTypes = []string{"No planificada", "Planificada", "Falta de insumos"}

	Criticality = []string{"A", "B", "C"}
)

// Collection names as they appear in snapshot files and API paths.
const (
	CollectionStoppages  = "paradas"
	CollectionWorkOrders = "ots"
	CollectionProduction = "produccion"
	CollectionEconomics  = "economia"
)
