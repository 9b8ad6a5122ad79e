package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"kpi-mantenimiento/internal/constants"
	"kpi-mantenimiento/internal/service/dashboard"
	"kpi-mantenimiento/internal/storage"
)

type RecordUpdater interface {
	UpdateStoppage(ctx context.Context, id string, rec storage.StoppageEvent) (storage.StoppageEvent, error)
	UpdateWorkOrder(ctx context.Context, id string, rec storage.WorkOrder) (storage.WorkOrder, error)
	UpdateProduction(ctx context.Context, id string, rec storage.ProductionRecord) (storage.ProductionRecord, error)
	UpdateEconomic(ctx context.Context, id string, rec storage.EconomicRecord) (storage.EconomicRecord, error)
}

// UpdateRecord replaces the record {id} of {collection}. The id in the path wins over the
// body.
func UpdateRecord(log *slog.Logger, updater RecordUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.records.UpdateRecord"

		collection := chi.URLParam(r, "collection")
		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var (
			updated any
			err     error
		)

		switch collection {
		case constants.CollectionStoppages:
			var req storage.StoppageEvent
			if err := render.DecodeJSON(r.Body, &req); err != nil {
				http.Error(w, "JSON inválido", http.StatusBadRequest)
				return
			}
			updated, err = updater.UpdateStoppage(ctx, id, req)
		case constants.CollectionWorkOrders:
			var req storage.WorkOrder
			if err := render.DecodeJSON(r.Body, &req); err != nil {
				http.Error(w, "JSON inválido", http.StatusBadRequest)
				return
			}
			updated, err = updater.UpdateWorkOrder(ctx, id, req)
		case constants.CollectionProduction:
			var req storage.ProductionRecord
			if err := render.DecodeJSON(r.Body, &req); err != nil {
				http.Error(w, "JSON inválido", http.StatusBadRequest)
				return
			}
			updated, err = updater.UpdateProduction(ctx, id, req)
		case constants.CollectionEconomics:
			var req storage.EconomicRecord
			if err := render.DecodeJSON(r.Body, &req); err != nil {
				http.Error(w, "JSON inválido", http.StatusBadRequest)
				return
			}
			updated, err = updater.UpdateEconomic(ctx, id, req)
		default:
			http.Error(w, "colección desconocida", http.StatusNotFound)
			return
		}

		if err != nil {
			switch {
			case errors.Is(err, dashboard.ErrNotFound):
				http.Error(w, "registro no encontrado", http.StatusNotFound)
			case errors.Is(err, dashboard.ErrInvalidRecord):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				log.Error("failed to update record",
					slog.String("op", op),
					slog.String("collection", collection),
					slog.String("id", id),
					slog.String("error", err.Error()),
				)
				http.Error(w, "Internal error", http.StatusInternalServerError)
			}
			return
		}

		render.JSON(w, r, updated)
	}
}
