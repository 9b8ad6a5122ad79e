package save

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

type RecordCreator interface {
	AddStoppage(ctx context.Context, rec storage.StoppageEvent) (storage.StoppageEvent, error)
	AddWorkOrder(ctx context.Context, rec storage.WorkOrder) (storage.WorkOrder, error)
	AddProduction(ctx context.Context, rec storage.ProductionRecord) (storage.ProductionRecord, error)
	AddEconomic(ctx context.Context, rec storage.EconomicRecord) (storage.EconomicRecord, error)
}

// SaveRecord appends a record to the collection named by {collection}. An empty body adds
// a blank record with the form defaults.
func SaveRecord(log *slog.Logger, creator RecordCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.records.SaveRecord"

		collection := chi.URLParam(r, "collection")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var (
			created any
			err     error
		)

		switch collection {
		case constants.CollectionStoppages:
			var req storage.StoppageEvent
			if !decode(w, r, &req) {
				return
			}
			created, err = creator.AddStoppage(ctx, req)
		case constants.CollectionWorkOrders:
			var req storage.WorkOrder
			if !decode(w, r, &req) {
				return
			}
			created, err = creator.AddWorkOrder(ctx, req)
		case constants.CollectionProduction:
			var req storage.ProductionRecord
			if !decode(w, r, &req) {
				return
			}
			created, err = creator.AddProduction(ctx, req)
		case constants.CollectionEconomics:
			var req storage.EconomicRecord
			if !decode(w, r, &req) {
				return
			}
			created, err = creator.AddEconomic(ctx, req)
		default:
			http.Error(w, "colección desconocida", http.StatusNotFound)
			return
		}

		if err != nil {
			if errors.Is(err, dashboard.ErrInvalidRecord) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Error("failed to save record",
				slog.String("op", op),
				slog.String("collection", collection),
				slog.String("error", err.Error()),
			)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, created)
	}
}

// decode accepts an empty body as the zero record.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.ContentLength == 0 {
		return true
	}
	if err := render.DecodeJSON(r.Body, v); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return false
	}
	return true
}
