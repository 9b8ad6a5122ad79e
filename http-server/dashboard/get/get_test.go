package get

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kpi-mantenimiento/internal/service/metrics"
)

type MockDashboardProvider struct {
	mock.Mock
}

func (m *MockDashboardProvider) Dashboard() metrics.Dashboard {
	return m.Called().Get(0).(metrics.Dashboard)
}

func TestGetDashboard(t *testing.T) {
	provider := new(MockDashboardProvider)
	provider.On("Dashboard").Return(metrics.Dashboard{
		LineOptions: []string{"Todas", "NAMUR"},
		Maintenance: metrics.MaintenanceKPIs{MTTRHours: 1.5, FailureCount: 2},
		Counts:      metrics.Counts{Stoppages: 2},
	})

	rr := httptest.NewRecorder()
	GetDashboard(slog.Default(), provider).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	maintenance := resp["maintenance"].(map[string]any)
	assert.Equal(t, 1.5, maintenance["mttr_hours"])
	assert.Equal(t, []any{"Todas", "NAMUR"}, resp["line_options"])
	provider.AssertExpectations(t)
}
