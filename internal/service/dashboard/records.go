package dashboard

import (
	"context"
	"fmt"

	"kpi-mantenimiento/internal/constants"
	"kpi-mantenimiento/internal/storage"
)

func (s *Service) today() string {
	return s.now().Format("2006-01-02")
}

func (s *Service) check(op string, rec any) error {
	if err := s.validate.Struct(rec); err != nil {
		return fmt.Errorf("%s: %w: %s", op, ErrInvalidRecord, err)
	}
	return nil
}

func (s *Service) defaultSupervisor() string {
	if len(s.catalog.Supervisors) > 0 {
		return s.catalog.Supervisors[0]
	}
	return ""
}

func (s *Service) defaultSector() string {
	if len(s.catalog.Sectors) > 0 {
		return s.catalog.Sectors[0]
	}
	return ""
}

func (s *Service) withStoppageDefaults(r storage.StoppageEvent) storage.StoppageEvent {
	if r.ID == "" {
		r.ID = s.newID()
	}
	if r.Date == "" {
		r.Date = s.today()
	}
	if r.Shift == "" {
		r.Shift = constants.ShiftMorning
	}
	if r.Type == "" {
		r.Type = constants.StoppageTypes[0]
	}
	if r.Criticality == "" {
		r.Criticality = "B"
	}
	return r
}

// withOrderDefaults mirrors the blank order form: corrective orders open in progress,
// preventive ones start planned.
func (s *Service) withOrderDefaults(r storage.WorkOrder) storage.WorkOrder {
	if r.ID == "" {
		r.ID = s.newID()
	}
	if r.Date == "" {
		r.Date = s.today()
	}
	if r.Shift == "" {
		r.Shift = constants.ShiftMorning
	}
	if r.Kind == "" {
		r.Kind = constants.KindCorrective
	}
	if r.Status == "" {
		r.Status = constants.StatusInProgress
		if r.Kind == constants.KindPreventive {
			r.Status = constants.StatusPlanned
		}
	}
	if r.Criticality == "" {
		r.Criticality = "B"
	}
	return r
}

func (s *Service) withProductionDefaults(r storage.ProductionRecord) storage.ProductionRecord {
	if r.ID == "" {
		r.ID = s.newID()
	}
	if r.Date == "" {
		r.Date = s.today()
	}
	if r.Shift == "" {
		r.Shift = constants.ShiftMorning
	}
	if r.Sector == "" {
		r.Sector = s.defaultSector()
	}
	if r.Supervisor == "" {
		r.Supervisor = s.defaultSupervisor()
	}
	return r
}

func (s *Service) withEconomicDefaults(r storage.EconomicRecord) storage.EconomicRecord {
	if r.ID == "" {
		r.ID = s.newID()
	}
	if r.Period == "" {
		r.Period = s.now().Format("2006-01")
	}
	return r
}

func (s *Service) AddStoppage(ctx context.Context, rec storage.StoppageEvent) (storage.StoppageEvent, error) {
	const op = "service.dashboard.AddStoppage"

	rec = s.withStoppageDefaults(rec)
	if err := s.check(op, rec); err != nil {
		return storage.StoppageEvent{}, err
	}

	err := s.mutate(ctx, op, func(next *storage.State) error {
		next.Stoppages = append(next.Stoppages, rec)
		return nil
	})
	return rec, err
}

func (s *Service) UpdateStoppage(ctx context.Context, id string, rec storage.StoppageEvent) (storage.StoppageEvent, error) {
	const op = "service.dashboard.UpdateStoppage"

	rec.ID = id
	if err := s.check(op, rec); err != nil {
		return storage.StoppageEvent{}, err
	}

	err := s.mutate(ctx, op, func(next *storage.State) error {
		return replace(op, next.Stoppages, rec, func(r storage.StoppageEvent) string { return r.ID })
	})
	return rec, err
}

func (s *Service) DeleteStoppage(ctx context.Context, id string) error {
	const op = "service.dashboard.DeleteStoppage"

	return s.mutate(ctx, op, func(next *storage.State) error {
		list, err := remove(op, next.Stoppages, id, func(r storage.StoppageEvent) string { return r.ID })
		next.Stoppages = list
		return err
	})
}

func (s *Service) AddWorkOrder(ctx context.Context, rec storage.WorkOrder) (storage.WorkOrder, error) {
	const op = "service.dashboard.AddWorkOrder"

	rec = s.withOrderDefaults(rec)
	if err := s.check(op, rec); err != nil {
		return storage.WorkOrder{}, err
	}

	err := s.mutate(ctx, op, func(next *storage.State) error {
		next.WorkOrders = append(next.WorkOrders, rec)
		return nil
	})
	return rec, err
}

func (s *Service) UpdateWorkOrder(ctx context.Context, id string, rec storage.WorkOrder) (storage.WorkOrder, error) {
	const op = "service.dashboard.UpdateWorkOrder"

	rec.ID = id
	if err := s.check(op, rec); err != nil {
		return storage.WorkOrder{}, err
	}

	err := s.mutate(ctx, op, func(next *storage.State) error {
		return replace(op, next.WorkOrders, rec, func(r storage.WorkOrder) string { return r.ID })
	})
	return rec, err
}

func (s *Service) DeleteWorkOrder(ctx context.Context, id string) error {
	const op = "service.dashboard.DeleteWorkOrder"

	return s.mutate(ctx, op, func(next *storage.State) error {
		list, err := remove(op, next.WorkOrders, id, func(r storage.WorkOrder) string { return r.ID })
		next.WorkOrders = list
		return err
	})
}

func (s *Service) AddProduction(ctx context.Context, rec storage.ProductionRecord) (storage.ProductionRecord, error) {
	const op = "service.dashboard.AddProduction"

	rec = s.withProductionDefaults(rec)
	if err := s.check(op, rec); err != nil {
		return storage.ProductionRecord{}, err
	}

	err := s.mutate(ctx, op, func(next *storage.State) error {
		next.Production = append(next.Production, rec)
		return nil
	})
	return rec, err
}

func (s *Service) UpdateProduction(ctx context.Context, id string, rec storage.ProductionRecord) (storage.ProductionRecord, error) {
	const op = "service.dashboard.UpdateProduction"

	rec.ID = id
	if err := s.check(op, rec); err != nil {
		return storage.ProductionRecord{}, err
	}

	err := s.mutate(ctx, op, func(next *storage.State) error {
		return replace(op, next.Production, rec, func(r storage.ProductionRecord) string { return r.ID })
	})
	return rec, err
}

func (s *Service) DeleteProduction(ctx context.Context, id string) error {
	const op = "service.dashboard.DeleteProduction"

	return s.mutate(ctx, op, func(next *storage.State) error {
		list, err := remove(op, next.Production, id, func(r storage.ProductionRecord) string { return r.ID })
		next.Production = list
		return err
	})
}

func (s *Service) AddEconomic(ctx context.Context, rec storage.EconomicRecord) (storage.EconomicRecord, error) {
	const op = "service.dashboard.AddEconomic"

	rec = s.withEconomicDefaults(rec)
	if err := s.check(op, rec); err != nil {
		return storage.EconomicRecord{}, err
	}

	err := s.mutate(ctx, op, func(next *storage.State) error {
		next.Economics = append(next.Economics, rec)
		return nil
	})
	return rec, err
}

func (s *Service) UpdateEconomic(ctx context.Context, id string, rec storage.EconomicRecord) (storage.EconomicRecord, error) {
	const op = "service.dashboard.UpdateEconomic"

	rec.ID = id
	if err := s.check(op, rec); err != nil {
		return storage.EconomicRecord{}, err
	}

	err := s.mutate(ctx, op, func(next *storage.State) error {
		return replace(op, next.Economics, rec, func(r storage.EconomicRecord) string { return r.ID })
	})
	return rec, err
}

func (s *Service) DeleteEconomic(ctx context.Context, id string) error {
	const op = "service.dashboard.DeleteEconomic"

	return s.mutate(ctx, op, func(next *storage.State) error {
		list, err := remove(op, next.Economics, id, func(r storage.EconomicRecord) string { return r.ID })
		next.Economics = list
		return err
	})
}

// replace overwrites the element with rec's id in place. list is already a private copy.
func replace[T any](op string, list []T, rec T, idOf func(T) string) error {
	id := idOf(rec)
	for i := range list {
		if idOf(list[i]) == id {
			list[i] = rec
			return nil
		}
	}
	return fmt.Errorf("%s: %w: %s", op, ErrNotFound, id)
}

func remove[T any](op string, list []T, id string, idOf func(T) string) ([]T, error) {
	for i := range list {
		if idOf(list[i]) == id {
			return append(list[:i], list[i+1:]...), nil
		}
	}
	return list, fmt.Errorf("%s: %w: %s", op, ErrNotFound, id)
}
