package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"kpi-mantenimiento/internal/service/ingest"
)

const maxUploadBytes = 20 << 20

const (
	msgMissingHeaders = "El CSV no tiene todos los encabezados requeridos.\nRequeridos: %s. (%s es opcional)."
	msgEmptyFile      = "CSV sin datos"
	msgNoValidRows    = "No se encontraron filas válidas en el CSV."
	msgUnreadable     = "Error al leer el CSV de producción."
)

type ProductionImporter interface {
	ImportProductionCSV(ctx context.Context, r io.Reader) (int, error)
	ImportProductionXLSX(ctx context.Context, r io.Reader) (int, error)
}

type Response struct {
	Imported int    `json:"imported"`
	Message  string `json:"message"`
}

func UploadCSV(log *slog.Logger, importer ProductionImporter) http.HandlerFunc {
	return upload(log, "handler.import_production.UploadCSV", importer.ImportProductionCSV)
}

func UploadXLSX(log *slog.Logger, importer ProductionImporter) http.HandlerFunc {
	return upload(log, "handler.import_production.UploadXLSX", importer.ImportProductionXLSX)
}

func upload(log *slog.Logger, op string, importFn func(context.Context, io.Reader) (int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

		body, closeBody, err := fileFromRequest(r)
		if err != nil {
			log.Warn("upload without file", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, msgUnreadable, http.StatusBadRequest)
			return
		}
		defer closeBody()

		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		n, err := importFn(ctx, body)
		if err != nil {
			status, msg := importError(err)
			if status == http.StatusInternalServerError {
				log.Error("failed to import production", slog.String("op", op), slog.String("error", err.Error()))
			} else {
				log.Info("production file rejected", slog.String("op", op), slog.String("error", err.Error()))
			}
			http.Error(w, msg, status)
			return
		}

		render.JSON(w, r, Response{
			Imported: n,
			Message:  fmt.Sprintf("Se importaron %d filas de producción.", n),
		})
	}
}

// fileFromRequest reads the "file" part of a multipart form, or the raw body otherwise.
func fileFromRequest(r *http.Request) (io.Reader, func(), error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, nil, err
		}
		return file, func() { file.Close() }, nil
	}
	return r.Body, func() {}, nil
}

func importError(err error) (int, string) {
	var missing *ingest.MissingHeadersError
	switch {
	case errors.As(err, &missing):
		return http.StatusBadRequest, fmt.Sprintf(msgMissingHeaders,
			strings.Join(missing.Required, ", "), strings.Join(missing.Optional, ", "))
	case errors.Is(err, ingest.ErrEmptyFile):
		return http.StatusBadRequest, msgEmptyFile
	case errors.Is(err, ingest.ErrNoValidRows):
		return http.StatusBadRequest, msgNoValidRows
	case errors.Is(err, ingest.ErrUnreadable):
		return http.StatusBadRequest, msgUnreadable
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}
