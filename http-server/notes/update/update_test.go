package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockNotesUpdater struct {
	mock.Mock
}

func (m *MockNotesUpdater) UpdateNotes(ctx context.Context, notes string) (string, error) {
	args := m.Called(ctx, notes)
	return args.String(0), args.Error(1)
}

func TestUpdateNotes(t *testing.T) {
	updater := new(MockNotesUpdater)
	updater.On("UpdateNotes", mock.Anything, "cambiar rodillo\nL3").Return("cambiar rodillo\nL3", nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/notes", strings.NewReader(`{"notas": "cambiar rodillo\nL3"}`))
	UpdateNotes(slog.Default(), updater).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"notas": "cambiar rodillo\nL3"}`, rr.Body.String())
	updater.AssertExpectations(t)
}

func TestUpdateNotes_BadJSON(t *testing.T) {
	updater := new(MockNotesUpdater)

	rr := httptest.NewRecorder()
	UpdateNotes(slog.Default(), updater).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/notes", strings.NewReader(`{"notas":`)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	updater.AssertNotCalled(t, "UpdateNotes", mock.Anything, mock.Anything)
}

func TestUpdateNotes_SaveFails(t *testing.T) {
	updater := new(MockNotesUpdater)
	updater.On("UpdateNotes", mock.Anything, "x").Return("", errors.New("disk full"))

	rr := httptest.NewRecorder()
	UpdateNotes(slog.Default(), updater).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/api/notes", strings.NewReader(`{"notas": "x"}`)))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
