package dashboard

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"kpi-mantenimiento/internal/service/ingest"
	"kpi-mantenimiento/internal/service/snapshot"
	"kpi-mantenimiento/internal/storage"
)

func (s *Service) ingestOptions() ingest.Options {
	return ingest.Options{
		Catalog:                 s.catalog,
		RecomputePlanCompliance: s.kpi.RecomputePlanCompliance,
		NewID:                   s.newID,
	}
}

// ImportProductionCSV appends the valid rows of a production CSV and returns how many
// were imported. On any error nothing is appended.
func (s *Service) ImportProductionCSV(ctx context.Context, r io.Reader) (int, error) {
	const op = "service.dashboard.ImportProductionCSV"

	records, err := ingest.ImportProductionCSV(r, s.ingestOptions())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return s.appendProduction(ctx, op, records)
}

func (s *Service) ImportProductionXLSX(ctx context.Context, r io.Reader) (int, error) {
	const op = "service.dashboard.ImportProductionXLSX"

	records, err := ingest.ImportProductionXLSX(r, s.ingestOptions())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return s.appendProduction(ctx, op, records)
}

func (s *Service) appendProduction(ctx context.Context, op string, records []storage.ProductionRecord) (int, error) {
	err := s.mutate(ctx, op, func(next *storage.State) error {
		next.Production = append(next.Production, records...)
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("production rows imported", slog.String("op", op), slog.Int("count", len(records)))

	return len(records), nil
}

// ImportSnapshot replaces the collections with those of an exported file. Scalars absent
// from the file keep their current values.
func (s *Service) ImportSnapshot(ctx context.Context, raw []byte) (storage.State, error) {
	const op = "service.dashboard.ImportSnapshot"

	var imported storage.State
	err := s.mutate(ctx, op, func(next *storage.State) error {
		st, err := snapshot.Normalize(raw, *next, s.newID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		*next = st
		imported = st.Clone()
		return nil
	})
	if err != nil {
		return storage.State{}, err
	}

	s.log.Info("snapshot imported",
		slog.Int("paradas", len(imported.Stoppages)),
		slog.Int("ots", len(imported.WorkOrders)),
		slog.Int("produccion", len(imported.Production)),
		slog.Int("economia", len(imported.Economics)),
	)

	return imported, nil
}
