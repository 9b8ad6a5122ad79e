package reset

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

type Resetter interface {
	Reset(ctx context.Context) error
}

// ResetState clears all records and restores the default filters.
func ResetState(log *slog.Logger, resetter Resetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.state.ResetState"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := resetter.Reset(ctx); err != nil {
			log.Error("failed to reset state", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		log.Info("state reset", slog.String("op", op))

		render.JSON(w, r, map[string]string{"status": "reset"})
	}
}
