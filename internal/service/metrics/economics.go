package metrics

import (
	"github.com/shopspring/decimal"

	"kpi-mantenimiento/internal/storage"
)

// EconomicRow is an economic record joined to the tonnage its sector produced that month.
type EconomicRow struct {
	storage.EconomicRecord
	Tonnes                   float64 `json:"tonnes"`
	MaintenanceSpendPerTonne float64 `json:"maintenance_spend_per_tonne"`
	EnergySpendPerTonne      float64 `json:"energy_spend_per_tonne"`
	TotalSpendPerTonne       float64 `json:"total_spend_per_tonne"`
}

var kgPerTonne = decimal.NewFromInt(1000)

// Economics joins each economic record to the production records sharing its year-month
// and sector. The join is recomputed on every call; nothing is stored.
func Economics(economics []storage.EconomicRecord, production []storage.ProductionRecord) []EconomicRow {
	kgByKey := make(map[string]decimal.Decimal)
	for _, p := range production {
		if len(p.Date) < 7 {
			continue
		}
		key := joinKey(p.Date[:7], p.Sector)
		kgByKey[key] = kgByKey[key].Add(decimal.NewFromFloat(finite(p.KgProd)))
	}

	out := make([]EconomicRow, 0, len(economics))
	for _, e := range economics {
		tonnes := kgByKey[joinKey(e.Period, e.Sector)].Div(kgPerTonne)

		maintenance := decimal.NewFromFloat(finite(e.MaintenanceSpend))
		energy := decimal.NewFromFloat(finite(e.EnergySpend))

		out = append(out, EconomicRow{
			EconomicRecord:           e,
			Tonnes:                   tonnes.Round(6).InexactFloat64(),
			MaintenanceSpendPerTonne: perTonne(maintenance, tonnes),
			EnergySpendPerTonne:      perTonne(energy, tonnes),
			TotalSpendPerTonne:       perTonne(maintenance.Add(energy), tonnes),
		})
	}
	return out
}

func perTonne(spend, tonnes decimal.Decimal) float64 {
	if !tonnes.IsPositive() {
		return 0
	}
	return spend.Div(tonnes).Round(4).InexactFloat64()
}

func joinKey(period, sector string) string {
	return period + "|" + sector
}
