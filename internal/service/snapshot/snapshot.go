package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"kpi-mantenimiento/internal/constants"
	"kpi-mantenimiento/internal/service/ingest"
	"kpi-mantenimiento/internal/storage"
)

var ErrInvalidFile = errors.New("invalid snapshot file")

// Default is the state of a fresh dashboard: the current calendar month, every facet
// inactive and no records.
func Default(settings storage.Settings, now time.Time) storage.State {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)

	return storage.State{
		FilterState: storage.FilterState{
			PeriodFrom: first.Format("2006-01-02"),
			PeriodTo:   last.Format("2006-01-02"),
			Sector:     constants.AllFacet,
			Line:       constants.AllLines,
			Shift:      constants.AllFacet,
			Supervisor: constants.AllFacet,
		},
		Settings:   settings,
		Stoppages:  []storage.StoppageEvent{},
		WorkOrders: []storage.WorkOrder{},
		Production: []storage.ProductionRecord{},
		Economics:  []storage.EconomicRecord{},
	}
}

// Normalize decodes a persisted or imported snapshot into a fully typed state. Missing or
// malformed collections become empty; missing or malformed scalars keep the value from
// base, so a partial import augments the current configuration. Records without an id get
// one from newID (uuid when nil).
func Normalize(raw []byte, base storage.State, newID func() string) (storage.State, error) {
	const op = "service.snapshot.Normalize"

	if newID == nil {
		newID = uuid.NewString
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return storage.State{}, fmt.Errorf("%s: %w: %w", op, ErrInvalidFile, err)
	}
	if doc == nil {
		return storage.State{}, fmt.Errorf("%s: %w: not an object", op, ErrInvalidFile)
	}

	out := storage.State{
		FilterState: storage.FilterState{
			PeriodFrom: stringScalar(doc, "periodoDesde", base.PeriodFrom),
			PeriodTo:   stringScalar(doc, "periodoHasta", base.PeriodTo),
			Sector:     stringScalar(doc, "filtroSector", base.Sector),
			Line:       stringScalar(doc, "filtroLinea", base.Line),
			Shift:      stringScalar(doc, "filtroTurno", base.Shift),
			Supervisor: stringScalar(doc, "filtroSupervisor", base.Supervisor),
		},
		Settings: storage.Settings{
			PlannedHours:       numberScalar(doc, "horasPlanificadas", base.PlannedHours),
			WeeklyCapacityHH:   numberScalar(doc, "capacidadHHsemana", base.WeeklyCapacityHH),
			SalesARS:           numberScalar(doc, "ventasARS", base.SalesARS),
			MaintenanceCostARS: numberScalar(doc, "costoMantenimientoARS", base.MaintenanceCostARS),
		},
		Notes: stringScalar(doc, "notas", base.Notes),
	}

	out.Stoppages = decodeList(doc["paradas"], func(f fields) storage.StoppageEvent {
		return storage.StoppageEvent{
			ID:          f.id(newID),
			Date:        f.str("fecha"),
			Line:        f.str("linea"),
			Shift:       f.str("turno"),
			Sector:      f.str("sector"),
			Area:        f.str("area"),
			Equipment:   f.str("equipo"),
			Type:        f.str("tipo"),
			RootCause:   f.str("causaRaiz"),
			Criticality: f.str("criticidad"),
			DowntimeMin: f.num("downtimeMin"),
			CostARS:     f.num("costoARS"),
			Supervisor:  f.str("supervisor"),
			Responsible: f.str("responsable"),
		}
	})

	out.WorkOrders = decodeList(doc["ots"], func(f fields) storage.WorkOrder {
		return storage.WorkOrder{
			ID:            f.id(newID),
			Date:          f.str("fecha"),
			ExecutionDate: f.str("fechaEjec"),
			Line:          f.str("linea"),
			Shift:         f.str("turno"),
			Sector:        f.str("sector"),
			Equipment:     f.str("equipo"),
			Kind:          f.str("tipo"),
			Status:        f.str("estado"),
			Criticality:   f.str("criticidad"),
			SAPCode:       f.str("codigoSAP"),
			Responsible:   f.str("responsable"),
			Vendor:        f.str("proveedor"),
			Parts:         f.str("repuestos"),
			CostARS:       f.num("costoARS"),
			LaborHours:    f.num("hh"),
			Supervisor:    f.str("supervisor"),
		}
	})

	out.Production = decodeList(doc["produccion"], func(f fields) storage.ProductionRecord {
		return storage.ProductionRecord{
			ID:             f.id(newID),
			Date:           f.str("fecha"),
			Shift:          f.str("turno"),
			Sector:         f.str("sector"),
			Line:           f.str("linea"),
			KgPlan:         f.num("kgPlan"),
			KgProd:         f.num("kgProd"),
			PlanCompliance: f.num("cumpPlan"),
			KgRework:       f.num("kgReproceso"),
			KgScrap:        f.num("kgDecomiso"),
			StoppageMin:    f.num("tiempoParadaMin"),
			Supervisor:     f.str("supervisor"),
			Notes:          f.str("novedades"),
		}
	})

	out.Economics = decodeList(doc["economia"], func(f fields) storage.EconomicRecord {
		return storage.EconomicRecord{
			ID:               f.id(newID),
			Period:           f.str("periodo"),
			Sector:           f.str("sector"),
			MaintenanceSpend: f.num("gastoMantenimientoUSD"),
			EnergySpend:      f.num("costoEnergiaUSD"),
		}
	})

	return out, nil
}

// Serialize writes the complete state. Collections are never null.
func Serialize(state storage.State) ([]byte, error) {
	const op = "service.snapshot.Serialize"

	if state.Stoppages == nil {
		state.Stoppages = []storage.StoppageEvent{}
	}
	if state.WorkOrders == nil {
		state.WorkOrders = []storage.WorkOrder{}
	}
	if state.Production == nil {
		state.Production = []storage.ProductionRecord{}
	}
	if state.Economics == nil {
		state.Economics = []storage.EconomicRecord{}
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return data, nil
}

func decodeList[T any](raw json.RawMessage, build func(fields) T) []T {
	out := []T{}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return out
	}

	for _, item := range items {
		dec := json.NewDecoder(bytes.NewReader(item))
		dec.UseNumber()

		var f fields
		if err := dec.Decode(&f); err != nil || f == nil {
			continue
		}
		out = append(out, build(f))
	}

	return out
}

// fields is one decoded record with the default-substitution rules: strings default to
// "", numbers to 0. Number literals stay json.Number so out-of-range values only zero
// their own field.
type fields map[string]any

func (f fields) str(key string) string {
	switch v := f[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

func (f fields) num(key string) float64 {
	switch v := f[key].(type) {
	case json.Number:
		return ingest.ParseRawNumber(v.String())
	case string:
		return ingest.ParseRawNumber(v)
	case bool:
		if v {
			return 1
		}
	}
	return 0
}

func (f fields) id(newID func() string) string {
	if id := strings.TrimSpace(f.str("id")); id != "" {
		return id
	}
	return newID()
}

func present(doc map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := doc[key]
	if !ok || strings.TrimSpace(string(raw)) == "null" {
		return nil, false
	}
	return raw, true
}

func stringScalar(doc map[string]json.RawMessage, key, fallback string) string {
	raw, ok := present(doc, key)
	if !ok {
		return fallback
	}

	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback
	}
	return v
}

func numberScalar(doc map[string]json.RawMessage, key string, fallback float64) float64 {
	raw, ok := present(doc, key)
	if !ok {
		return fallback
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return fallback
	}

	switch v := v.(type) {
	case json.Number:
		return ingest.ParseRawNumber(v.String())
	case string:
		s := strings.TrimSpace(v)
		if _, err := decimal.NewFromString(s); err == nil {
			return ingest.ParseRawNumber(s)
		}
	}

	return fallback
}
