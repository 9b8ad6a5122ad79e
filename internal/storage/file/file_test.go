package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kpi-mantenimiento/internal/storage"
)

func TestStorage_LoadEmptySlot(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "nested", "kpi.json"))
	require.NoError(t, err)

	_, err = s.Load(context.Background())
	assert.ErrorIs(t, err, storage.ErrSlotEmpty)
}

func TestStorage_SaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kpi.json")

	s, err := New(path)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Save(ctx, []byte(`{"paradas":[]}`)))
	require.NoError(t, s.Save(ctx, []byte(`{"ots":[]}`)))

	data, err := s.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ots":[]}`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestStorage_CanceledContext(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "kpi.json"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Save(ctx, []byte(`{}`)), context.Canceled)
	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
