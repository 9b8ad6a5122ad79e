package update

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

type NotesUpdater interface {
	UpdateNotes(ctx context.Context, notes string) (string, error)
}

type Request struct {
	Notes string `json:"notas"`
}

type Response struct {
	Notes string `json:"notas"`
}

// UpdateNotes replaces the notes pad with the request body.
func UpdateNotes(log *slog.Logger, updater NotesUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.notes.UpdateNotes"

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			http.Error(w, "JSON inválido", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		notes, err := updater.UpdateNotes(ctx, req.Notes)
		if err != nil {
			log.Error("failed to update notes", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Notes: notes})
	}
}
