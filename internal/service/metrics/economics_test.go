package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kpi-mantenimiento/internal/storage"
)

func TestEconomics_JoinsBySectorAndMonth(t *testing.T) {
	economics := []storage.EconomicRecord{
		{ID: "e1", Period: "2024-03", Sector: "CHOCOLATE", MaintenanceSpend: 2500, EnergySpend: 800},
	}
	production := []storage.ProductionRecord{
		{Date: "2024-03-05", Sector: "CHOCOLATE", KgProd: 600},
		{Date: "2024-03-20", Sector: "CHOCOLATE", KgProd: 400},
		{Date: "2024-04-01", Sector: "CHOCOLATE", KgProd: 9999},
		{Date: "2024-03-05", Sector: "TURRON", KgProd: 9999},
	}

	rows := Economics(economics, production)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "e1", row.ID)
	assert.Equal(t, 1.0, row.Tonnes)
	assert.Equal(t, 2500.0, row.MaintenanceSpendPerTonne)
	assert.Equal(t, 800.0, row.EnergySpendPerTonne)
	assert.Equal(t, 3300.0, row.TotalSpendPerTonne)
}

func TestEconomics_NoTonnageMeansZeroPerTonne(t *testing.T) {
	economics := []storage.EconomicRecord{
		{Period: "2024-03", Sector: "ALFAJOR", MaintenanceSpend: 100, EnergySpend: 100},
		{Period: "", Sector: "", MaintenanceSpend: 100},
	}

	rows := Economics(economics, []storage.ProductionRecord{{Date: "", KgProd: 10}})
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, 0.0, row.Tonnes)
		assert.Equal(t, 0.0, row.MaintenanceSpendPerTonne)
		assert.Equal(t, 0.0, row.EnergySpendPerTonne)
	}
}

func TestEconomics_FractionalTonnes(t *testing.T) {
	rows := Economics(
		[]storage.EconomicRecord{{Period: "2024-03", Sector: "CONFITE", MaintenanceSpend: 1000}},
		[]storage.ProductionRecord{{Date: "2024-03-01", Sector: "CONFITE", KgProd: 250}},
	)

	require.Len(t, rows, 1)
	assert.Equal(t, 0.25, rows[0].Tonnes)
	assert.Equal(t, 4000.0, rows[0].MaintenanceSpendPerTonne)
}
