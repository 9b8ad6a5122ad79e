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

type SettingsUpdater interface {
	UpdateSettings(ctx context.Context, s storage.Settings) (storage.Settings, error)
}

func UpdateSettings(log *slog.Logger, updater SettingsUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.settings.UpdateSettings"

		var req storage.Settings
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			http.Error(w, "JSON inválido", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		applied, err := updater.UpdateSettings(ctx, req)
		if err != nil {
			if errors.Is(err, dashboard.ErrInvalidRecord) {
				http.Error(w, "Parámetros inválidos: los valores no pueden ser negativos", http.StatusBadRequest)
				return
			}
			log.Error("failed to update settings", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, applied)
	}
}
