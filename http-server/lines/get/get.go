package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type LineProvider interface {
	LineOptions(sector string) []string
}

// GetLines returns the line selector options for ?sector=; no sector means every line.
func GetLines(log *slog.Logger, provider LineProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sector := r.URL.Query().Get("sector")

		render.JSON(w, r, provider.LineOptions(sector))
	}
}
