package generate_excel

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"kpi-mantenimiento/internal/service/metrics"
	"kpi-mantenimiento/internal/storage"
)

type MockReportSource struct {
	mock.Mock
}

func (m *MockReportSource) ReportData(ctx context.Context) (metrics.Dashboard, []storage.ProductionRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).(metrics.Dashboard), args.Get(1).([]storage.ProductionRecord), args.Error(2)
}

func TestGenerateExcel(t *testing.T) {
	ctx := context.Background()
	source := new(MockReportSource)

	dash := metrics.Dashboard{
		Filters:     storage.FilterState{PeriodFrom: "2024-03-01", PeriodTo: "2024-03-31", Sector: "TURRON"},
		Maintenance: metrics.MaintenanceKPIs{MTTRHours: 1.5, FailureCount: 2},
		Production:  metrics.ProductionKPIs{OEE: 0.75},
		Supervisors: []metrics.SupervisorKPIs{{Supervisor: "ALLOI"}, {Supervisor: "AVILA"}},
		Economics: []metrics.EconomicRow{{
			EconomicRecord: storage.EconomicRecord{Period: "2024-03", Sector: "TURRON", MaintenanceSpend: 500},
			Tonnes:         2,
		}},
	}
	production := []storage.ProductionRecord{{Date: "2024-03-04", Shift: "M", Sector: "TURRON", Line: "NAMUR", KgProd: 900}}
	source.On("ReportData", ctx).Return(dash, production, nil)

	svc := NewGenerateService(source)
	data, err := svc.GenerateExcel(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetKPIs, sheetSupervisors, sheetEconomics, sheetProduction}, f.GetSheetList())

	rows, err := f.GetRows(sheetKPIs)
	require.NoError(t, err)
	assert.Equal(t, []string{"Indicador", "Valor"}, rows[0])
	assert.Equal(t, []string{"Sector", "TURRON"}, rows[3])

	rows, err = f.GetRows(sheetSupervisors)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, "AVILA", rows[2][0])

	rows, err = f.GetRows(sheetProduction)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "NAMUR", rows[1][3])
	assert.Equal(t, "900", rows[1][5])

	source.AssertExpectations(t)
}

func TestGenerateExcel_SourceError(t *testing.T) {
	ctx := context.Background()
	source := new(MockReportSource)
	source.On("ReportData", ctx).Return(metrics.Dashboard{}, []storage.ProductionRecord(nil), errors.New("boom"))

	_, err := NewGenerateService(source).GenerateExcel(ctx)
	assert.ErrorContains(t, err, "boom")
}
