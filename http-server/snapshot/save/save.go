package save

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"kpi-mantenimiento/internal/service/snapshot"
	"kpi-mantenimiento/internal/storage"
)

const maxSnapshotBytes = 50 << 20

type SnapshotImporter interface {
	ImportSnapshot(ctx context.Context, raw []byte) (storage.State, error)
}

// ImportSnapshot loads an exported JSON file, replacing the record collections.
func ImportSnapshot(log *slog.Logger, importer SnapshotImporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.snapshot.ImportSnapshot"

		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSnapshotBytes))
		if err != nil {
			http.Error(w, "Archivo inválido", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		state, err := importer.ImportSnapshot(ctx, raw)
		if err != nil {
			if errors.Is(err, snapshot.ErrInvalidFile) {
				http.Error(w, "Archivo inválido", http.StatusBadRequest)
				return
			}
			log.Error("failed to import snapshot", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, state)
	}
}
