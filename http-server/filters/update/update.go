package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"kpi-mantenimiento/internal/service/dashboard"
	"kpi-mantenimiento/internal/storage"
)

type FilterUpdater interface {
	UpdateFilters(ctx context.Context, f storage.FilterState) (storage.FilterState, error)
}

func UpdateFilters(log *slog.Logger, updater FilterUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.filters.UpdateFilters"

		var req storage.FilterState
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			http.Error(w, "JSON inválido", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		applied, err := updater.UpdateFilters(ctx, req)
		if err != nil {
			if errors.Is(err, dashboard.ErrInvalidRecord) {
				http.Error(w, "Filtros inválidos: las fechas deben ser AAAA-MM-DD", http.StatusBadRequest)
				return
			}
			log.Error("failed to update filters", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, applied)
	}
}
