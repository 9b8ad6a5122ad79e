package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"kpi-mantenimiento/internal/constants"
	"kpi-mantenimiento/internal/service/dashboard"
)

type RecordDeleter interface {
	DeleteStoppage(ctx context.Context, id string) error
	DeleteWorkOrder(ctx context.Context, id string) error
	DeleteProduction(ctx context.Context, id string) error
	DeleteEconomic(ctx context.Context, id string) error
}

func DeleteRecord(log *slog.Logger, deleter RecordDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.records.DeleteRecord"

		collection := chi.URLParam(r, "collection")
		id := chi.URLParam(r, "id")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var err error
		switch collection {
		case constants.CollectionStoppages:
			err = deleter.DeleteStoppage(ctx, id)
		case constants.CollectionWorkOrders:
			err = deleter.DeleteWorkOrder(ctx, id)
		case constants.CollectionProduction:
			err = deleter.DeleteProduction(ctx, id)
		case constants.CollectionEconomics:
			err = deleter.DeleteEconomic(ctx, id)
		default:
			http.Error(w, "colección desconocida", http.StatusNotFound)
			return
		}

		if err != nil {
			if errors.Is(err, dashboard.ErrNotFound) {
				http.Error(w, "registro no encontrado", http.StatusNotFound)
				return
			}
			log.Error("failed to delete record",
				slog.String("op", op),
				slog.String("collection", collection),
				slog.String("id", id),
				slog.String("error", err.Error()),
			)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
