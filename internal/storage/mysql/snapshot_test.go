package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kpi-mantenimiento/internal/storage"
)

func TestStorage_SnapshotRoundTrip(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()

	s := NewWithDB(db, "kpi-test-"+t.Name())
	require.NoError(t, s.EnsureSchema(ctx))
	t.Cleanup(func() { _ = s.Delete(context.Background()) })

	// 1. Empty slot
	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, storage.ErrSlotEmpty)

	// 2. Insert then overwrite
	require.NoError(t, s.Save(ctx, []byte(`{"paradas":[]}`)))
	require.NoError(t, s.Save(ctx, []byte(`{"ots":[{"id":"1"}]}`)))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ots":[{"id":"1"}]}`, string(got))

	// 3. Delete
	require.NoError(t, s.Delete(ctx))
	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, storage.ErrSlotEmpty)
}

func TestStorage_SlotsAreIsolated(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()

	a := NewWithDB(db, "kpi-test-a")
	b := NewWithDB(db, "kpi-test-b")
	require.NoError(t, a.EnsureSchema(ctx))
	t.Cleanup(func() {
		_ = a.Delete(context.Background())
		_ = b.Delete(context.Background())
	})

	require.NoError(t, a.Save(ctx, []byte(`{"a":1}`)))

	_, err := b.Load(ctx)
	assert.ErrorIs(t, err, storage.ErrSlotEmpty)
}
