package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kpi-mantenimiento/internal/constants"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "local.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, `
env: "dev"
http_server:
  address: "127.0.0.1:9000"
  timeout: 10s
storage:
  driver: "mysql"
  db_name: "kpi"
kpi:
  planned_hours: 600
catalog:
  sectors: ["TURRON", "OTROS"]
  lines_by_sector:
    TURRON: ["NAMUR"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "127.0.0.1:9000", cfg.Address)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "mysql", cfg.Storage.Driver)
	assert.Equal(t, 3306, cfg.Storage.DBPort)
	assert.Equal(t, 600.0, cfg.KPI.PlannedHours)
	assert.Equal(t, 160.0, cfg.KPI.WeeklyCapacityHH)
	assert.Equal(t, float64(constants.DefaultMinutesPerShift), cfg.KPI.MinutesPerShift)

	assert.Equal(t, []string{"TURRON", "OTROS"}, cfg.Catalog.Sectors)
	assert.Equal(t, []string{"NAMUR"}, cfg.Catalog.LinesFor("TURRON"))
	assert.Equal(t, constants.Supervisors, cfg.Catalog.Supervisors)
	assert.Equal(t, "OTROS", cfg.Catalog.FallbackSector)
	assert.Equal(t, constants.DefaultSlotKey, cfg.SlotKey())
}

func TestLoad_MissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "file")
	t.Setenv("STORAGE_PATH", "/tmp/kpi.json")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/kpi.json", cfg.Storage.Path)
	assert.Equal(t, "localhost:4001", cfg.Address)
	assert.Equal(t, constants.Sectors, cfg.Catalog.Sectors)
	assert.Equal(t, constants.FallbackSector, cfg.Catalog.FallbackSector)
}

func TestLoad_CatalogWithoutFallbackSector(t *testing.T) {
	path := writeConfig(t, `
catalog:
  sectors: ["CHOCOLATE"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Catalog.FallbackSector)
}
