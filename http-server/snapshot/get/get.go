package get

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type SnapshotExporter interface {
	ExportSnapshot() ([]byte, error)
}

// ExportSnapshot downloads the state in the format ImportSnapshot accepts.
func ExportSnapshot(log *slog.Logger, exporter SnapshotExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.snapshot.ExportSnapshot"

		data, err := exporter.ExportSnapshot()
		if err != nil {
			log.Error("failed to export snapshot", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("kpi-mantenimiento-%s.json", time.Now().Format("2006-01-02"))

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(data)
	}
}
