package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"kpi-mantenimiento/internal/constants"
	"kpi-mantenimiento/internal/storage"
)

type CatalogProvider interface {
	Catalog() storage.Catalog
}

// Response is the configured catalog plus the fixed enumerations the record forms offer.
type Response struct {
	storage.Catalog

	Areas         []string `json:"areas"`
	StoppageTypes []string `json:"stoppage_types"`
	Criticality   []string `json:"criticality"`
	OrderKinds    []string `json:"order_kinds"`
	OrderStatuses []string `json:"order_statuses"`
}

func GetCatalog(log *slog.Logger, provider CatalogProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, Response{
			Catalog:       provider.Catalog(),
			Areas:         constants.Areas,
			StoppageTypes: constants.StoppageTypes,
			Criticality:   constants.Criticality,
			OrderKinds:    []string{constants.KindCorrective, constants.KindPreventive},
			OrderStatuses: []string{
				constants.StatusPlanned,
				constants.StatusInProgress,
				constants.StatusCompleted,
				constants.StatusCancelled,
			},
		})
	}
}
