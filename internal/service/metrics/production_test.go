package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kpi-mantenimiento/internal/storage"
)

func TestProduction_EmptySetIsAllZero(t *testing.T) {
	k := Production(nil, 480)

	assert.Equal(t, 0.0, k.Availability)
	assert.Equal(t, 0.0, k.Performance)
	assert.Equal(t, 0.0, k.Quality)
	assert.Equal(t, 0.0, k.OEE)
	assert.Equal(t, 0.0, k.AvgPlanCompliance)
}

func TestProduction_OEEFactors(t *testing.T) {
	records := []storage.ProductionRecord{
		{KgPlan: 100, KgProd: 90, KgRework: 5, KgScrap: 2, StoppageMin: 15, PlanCompliance: 90},
		{KgPlan: 100, KgProd: 110, KgRework: 0, KgScrap: 3, StoppageMin: 33, PlanCompliance: 110},
	}

	k := Production(records, 480)

	assert.Equal(t, 2, k.ShiftCount)
	assert.Equal(t, 960.0, k.PlannedMinutes)
	assert.Equal(t, 48.0, k.StoppageMinutes)
	assert.Equal(t, 912.0, k.UptimeMinutes)
	assert.InDelta(t, 0.95, k.Availability, 1e-9)
	assert.InDelta(t, 1.0, k.Performance, 1e-9)
	assert.InDelta(t, 0.95, k.Quality, 1e-9)
	assert.Equal(t, k.Availability*k.Performance*k.Quality, k.OEE)
	assert.Equal(t, 100.0, k.AvgPlanCompliance)
}

func TestProduction_OEEInvariantHoldsForDegenerateInputs(t *testing.T) {
	sets := [][]storage.ProductionRecord{
		nil,
		{{KgPlan: 0, KgProd: 50}},
		{{KgPlan: 50, KgProd: 0}},
		{{KgPlan: 10, KgProd: 10, StoppageMin: 10000}},
	}

	for _, records := range sets {
		for _, minutes := range []float64{0, 480} {
			k := Production(records, minutes)
			assert.Equal(t, k.Availability*k.Performance*k.Quality, k.OEE)
		}
	}
}

func TestBySupervisor_IndependentRollups(t *testing.T) {
	records := []storage.ProductionRecord{
		{Supervisor: "ALLOI", KgPlan: 100, KgProd: 100},
		{Supervisor: "AVILA", KgPlan: 100, KgProd: 50, StoppageMin: 240},
		{Supervisor: "DESCONOCIDO", KgPlan: 100, KgProd: 100},
	}

	rollups := BySupervisor(records, []string{"ALLOI", "AVILA", "BOERIS"}, 480)
	require.Len(t, rollups, 3)

	assert.Equal(t, "ALLOI", rollups[0].Supervisor)
	assert.Equal(t, 1.0, rollups[0].OEE)

	assert.Equal(t, "AVILA", rollups[1].Supervisor)
	assert.InDelta(t, 0.25, rollups[1].OEE, 1e-9)

	assert.Equal(t, "BOERIS", rollups[2].Supervisor)
	assert.Equal(t, 0, rollups[2].ShiftCount)
	assert.Equal(t, 0.0, rollups[2].OEE)
}
