package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getcatalog "kpi-mantenimiento/http-server/catalog/get"
	getdashboard "kpi-mantenimiento/http-server/dashboard/get"
	updatefilters "kpi-mantenimiento/http-server/filters/update"
	generate_excel "kpi-mantenimiento/http-server/generate-report/generate-excel"
	"kpi-mantenimiento/http-server/import-production/upload"
	getlines "kpi-mantenimiento/http-server/lines/get"
	getnotes "kpi-mantenimiento/http-server/notes/get"
	updatenotes "kpi-mantenimiento/http-server/notes/update"
	"kpi-mantenimiento/http-server/records/remove"
	saverecord "kpi-mantenimiento/http-server/records/save"
	updaterecord "kpi-mantenimiento/http-server/records/update"
	updatesettings "kpi-mantenimiento/http-server/settings/update"
	exportsnapshot "kpi-mantenimiento/http-server/snapshot/get"
	importsnapshot "kpi-mantenimiento/http-server/snapshot/save"
	getstate "kpi-mantenimiento/http-server/state/get"
	"kpi-mantenimiento/http-server/state/reset"
	"kpi-mantenimiento/internal/config"
	"kpi-mantenimiento/internal/service/dashboard"
	generate_excel2 "kpi-mantenimiento/internal/service/generate-excel"
)

func routes(cfg config.Config, log *slog.Logger, svc *dashboard.Service, genService *generate_excel2.GenerateExcelService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/api/dashboard", getdashboard.GetDashboard(log, svc))
	router.Get("/api/lines", getlines.GetLines(log, svc))
	router.Get("/api/catalog", getcatalog.GetCatalog(log, svc))

	router.Get("/api/state", getstate.GetState(log, svc))
	router.Delete("/api/state", reset.ResetState(log, svc))
	router.Put("/api/filters", updatefilters.UpdateFilters(log, svc))
	router.Put("/api/settings", updatesettings.UpdateSettings(log, svc))
	router.Get("/api/notes", getnotes.GetNotes(log, svc))
	router.Put("/api/notes", updatenotes.UpdateNotes(log, svc))

	router.Post("/api/import/produccion/csv", upload.UploadCSV(log, svc))
	router.Post("/api/import/produccion/xlsx", upload.UploadXLSX(log, svc))
	router.Post("/api/import/json", importsnapshot.ImportSnapshot(log, svc))
	router.Get("/api/export/json", exportsnapshot.ExportSnapshot(log, svc))

	router.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, genService))

	// Record collections: paradas, ots, produccion, economia.
	router.Post("/api/{collection}", saverecord.SaveRecord(log, svc))
	router.Put("/api/{collection}/{id}", updaterecord.UpdateRecord(log, svc))
	router.Delete("/api/{collection}/{id}", remove.DeleteRecord(log, svc))

	frontendDir := cfg.FrontendDir
	if frontendDir == "" {
		return router
	}
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("frontend build not found, serving API only", slog.String("path", frontendDir))
		return router
	}

	fileServer := http.FileServer(http.Dir(frontendDir))
	router.Handle("/assets/*", fileServer)

	// SPA fallback: existing files are served as is, anything else gets index.html.
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
