package save

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kpi-mantenimiento/internal/service/snapshot"
	"kpi-mantenimiento/internal/storage"
)

type MockSnapshotImporter struct {
	mock.Mock
}

func (m *MockSnapshotImporter) ImportSnapshot(ctx context.Context, raw []byte) (storage.State, error) {
	args := m.Called(ctx, string(raw))
	return args.Get(0).(storage.State), args.Error(1)
}

func TestImportSnapshot_Success(t *testing.T) {
	importer := new(MockSnapshotImporter)
	importer.On("ImportSnapshot", mock.Anything, `{"paradas": []}`).
		Return(storage.State{Settings: storage.Settings{PlannedHours: 720}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/import/json", strings.NewReader(`{"paradas": []}`))
	rr := httptest.NewRecorder()

	ImportSnapshot(slog.Default(), importer).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"horasPlanificadas":720`)
	importer.AssertExpectations(t)
}

func TestImportSnapshot_InvalidFile(t *testing.T) {
	importer := new(MockSnapshotImporter)
	importer.On("ImportSnapshot", mock.Anything, "{oops").
		Return(storage.State{}, fmt.Errorf("op: %w", snapshot.ErrInvalidFile))

	req := httptest.NewRequest(http.MethodPost, "/api/import/json", strings.NewReader("{oops"))
	rr := httptest.NewRecorder()

	ImportSnapshot(slog.Default(), importer).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Archivo inválido")
}
