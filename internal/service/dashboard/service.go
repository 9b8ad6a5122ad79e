package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"kpi-mantenimiento/internal/config"
	"kpi-mantenimiento/internal/service/filter"
	"kpi-mantenimiento/internal/service/metrics"
	"kpi-mantenimiento/internal/service/snapshot"
	"kpi-mantenimiento/internal/storage"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidRecord = errors.New("invalid record")
)

// Service owns the dashboard state. Reads share the lock; every mutation builds the next
// state, persists it, and only then makes it visible.
type Service struct {
	mu    sync.RWMutex
	state storage.State

	slot     storage.Slot
	catalog  storage.Catalog
	kpi      config.KPI
	log      *slog.Logger
	validate *validator.Validate

	now   func() time.Time
	newID func() string
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithIDs(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

func New(log *slog.Logger, slot storage.Slot, catalog storage.Catalog, kpi config.KPI, opts ...Option) *Service {
	s := &Service{
		slot:     slot,
		catalog:  catalog,
		kpi:      kpi,
		log:      log,
		validate: validator.New(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = s.defaultState()

	// stoppage dates may carry a time of day
	_ = s.validate.RegisterValidation("recorddate", func(fl validator.FieldLevel) bool {
		_, ok := filter.ParseRecordTime(fl.Field().String())
		return ok
	})

	return s
}

func (s *Service) defaultState() storage.State {
	return snapshot.Default(storage.Settings{
		PlannedHours:     s.kpi.PlannedHours,
		WeeklyCapacityHH: s.kpi.WeeklyCapacityHH,
	}, s.now())
}

// Load restores the persisted snapshot. An empty slot starts from the default state; a
// corrupt one is logged and replaced by the default on the next save.
func (s *Service) Load(ctx context.Context) error {
	const op = "service.dashboard.Load"

	raw, err := s.slot.Load(ctx)
	if err != nil && !errors.Is(err, storage.ErrSlotEmpty) {
		return fmt.Errorf("%s: %w", op, err)
	}

	state := s.defaultState()
	if err == nil {
		restored, nerr := snapshot.Normalize(raw, state, s.newID)
		if nerr != nil {
			s.log.Warn("stored snapshot is unreadable, starting empty",
				slog.String("op", op),
				slog.String("error", nerr.Error()),
			)
		} else {
			state = restored
		}
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	s.log.Info("dashboard state loaded",
		slog.Int("paradas", len(state.Stoppages)),
		slog.Int("ots", len(state.WorkOrders)),
		slog.Int("produccion", len(state.Production)),
		slog.Int("economia", len(state.Economics)),
	)

	return nil
}

// State returns a copy of the current state.
func (s *Service) State() storage.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *Service) Dashboard() metrics.Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return metrics.Compute(s.state, s.catalog, s.kpi.MinutesPerShift)
}

func (s *Service) LineOptions(sector string) []string {
	return filter.LineOptions(s.catalog, sector)
}

func (s *Service) Catalog() storage.Catalog {
	return s.catalog
}

// ReportData returns the dashboard and the filtered production rows behind it.
func (s *Service) ReportData(ctx context.Context) (metrics.Dashboard, []storage.ProductionRecord, error) {
	if err := ctx.Err(); err != nil {
		return metrics.Dashboard{}, nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	dash := metrics.Compute(s.state, s.catalog, s.kpi.MinutesPerShift)
	return dash, filter.Production(s.state.Production, s.state.FilterState), nil
}

// ExportSnapshot serializes the current state in the snapshot file format.
func (s *Service) ExportSnapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot.Serialize(s.state)
}

// mutate runs fn on a copy of the state, persists the copy and swaps it in. When fn or the
// save fails the current state is untouched.
func (s *Service) mutate(ctx context.Context, op string, fn func(next *storage.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(&next); err != nil {
		return err
	}

	payload, err := snapshot.Serialize(next)
	if err != nil {
		return fmt.Errorf("%s: serialize: %w", op, err)
	}

	if err := s.slot.Save(ctx, payload); err != nil {
		s.log.Error("failed to persist snapshot",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s: save: %w", op, err)
	}

	s.state = next
	return nil
}

func (s *Service) UpdateFilters(ctx context.Context, f storage.FilterState) (storage.FilterState, error) {
	const op = "service.dashboard.UpdateFilters"

	if err := s.validate.Struct(f); err != nil {
		return storage.FilterState{}, fmt.Errorf("%s: %w: %s", op, ErrInvalidRecord, err)
	}

	var applied storage.FilterState
	err := s.mutate(ctx, op, func(next *storage.State) error {
		// A new sector invalidates the previous line unless the caller picked one too.
		if f.Sector != next.Sector && f.Line == next.Line {
			f = f.WithSector(f.Sector)
		}
		next.FilterState = f
		applied = f
		return nil
	})

	return applied, err
}

func (s *Service) UpdateSettings(ctx context.Context, settings storage.Settings) (storage.Settings, error) {
	const op = "service.dashboard.UpdateSettings"

	if err := s.validate.Struct(settings); err != nil {
		return storage.Settings{}, fmt.Errorf("%s: %w: %s", op, ErrInvalidRecord, err)
	}

	err := s.mutate(ctx, op, func(next *storage.State) error {
		next.Settings = settings
		return nil
	})

	return settings, err
}

// Reset drops every record and restores default filters and settings. Notes are kept.
func (s *Service) Reset(ctx context.Context) error {
	const op = "service.dashboard.Reset"

	return s.mutate(ctx, op, func(next *storage.State) error {
		notes := next.Notes
		*next = s.defaultState()
		next.Notes = notes
		return nil
	})
}

func (s *Service) Notes() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Notes
}

// UpdateNotes replaces the notes pad.
func (s *Service) UpdateNotes(ctx context.Context, notes string) (string, error) {
	const op = "service.dashboard.UpdateNotes"

	err := s.mutate(ctx, op, func(next *storage.State) error {
		next.Notes = notes
		return nil
	})

	return notes, err
}
