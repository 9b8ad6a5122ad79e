package remove

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kpi-mantenimiento/internal/service/dashboard"
)

type MockRecordDeleter struct {
	mock.Mock
}

func (m *MockRecordDeleter) DeleteStoppage(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRecordDeleter) DeleteWorkOrder(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRecordDeleter) DeleteProduction(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRecordDeleter) DeleteEconomic(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestDeleteRecord(t *testing.T) {
	deleter := new(MockRecordDeleter)
	deleter.On("DeleteProduction", mock.Anything, "p-1").Return(nil)
	deleter.On("DeleteProduction", mock.Anything, "p-2").Return(fmt.Errorf("op: %w", dashboard.ErrNotFound))

	r := chi.NewRouter()
	r.Delete("/api/{collection}/{id}", DeleteRecord(slog.Default(), deleter))

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{name: "deleted", path: "/api/produccion/p-1", status: http.StatusNoContent},
		{name: "missing", path: "/api/produccion/p-2", status: http.StatusNotFound},
		{name: "unknown collection", path: "/api/otros/p-1", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, tt.path, nil))
			assert.Equal(t, tt.status, rr.Code)
		})
	}

	deleter.AssertExpectations(t)
}
