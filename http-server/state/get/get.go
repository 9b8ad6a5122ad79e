package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"kpi-mantenimiento/internal/storage"
)

type StateProvider interface {
	State() storage.State
}

func GetState(log *slog.Logger, provider StateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, provider.State())
	}
}
