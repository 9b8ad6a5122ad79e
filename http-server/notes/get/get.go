package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type NotesProvider interface {
	Notes() string
}

type Response struct {
	Notes string `json:"notas"`
}

func GetNotes(log *slog.Logger, provider NotesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, Response{Notes: provider.Notes()})
	}
}
