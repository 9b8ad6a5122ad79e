package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"kpi-mantenimiento/internal/service/metrics"
)

type DashboardProvider interface {
	Dashboard() metrics.Dashboard
}

// GetDashboard returns every indicator for the current filters.
func GetDashboard(log *slog.Logger, provider DashboardProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handler.dashboard.GetDashboard"

		dash := provider.Dashboard()

		log.Debug("dashboard computed",
			slog.String("op", op),
			slog.Int("paradas", dash.Counts.Stoppages),
			slog.Int("produccion", dash.Counts.Production),
		)

		render.JSON(w, r, dash)
	}
}
