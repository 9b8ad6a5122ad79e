package metrics

import (
	"math"

	"kpi-mantenimiento/internal/storage"
)

// ProductionKPIs are the OEE factors and totals over filtered production records.
type ProductionKPIs struct {
	ShiftCount      int     `json:"shift_count"`
	PlannedMinutes  float64 `json:"planned_minutes"`
	StoppageMinutes float64 `json:"stoppage_minutes"`
	UptimeMinutes   float64 `json:"uptime_minutes"`

	KgPlan   float64 `json:"kg_plan"`
	KgProd   float64 `json:"kg_prod"`
	KgRework float64 `json:"kg_rework"`
	KgScrap  float64 `json:"kg_scrap"`

	AvgPlanCompliance float64 `json:"avg_plan_compliance"`

	Availability float64 `json:"availability"`
	Performance  float64 `json:"performance"`
	Quality      float64 `json:"quality"`
	OEE          float64 `json:"oee"`
}

// SupervisorKPIs is the production rollup of one supervisor.
type SupervisorKPIs struct {
	Supervisor string `json:"supervisor"`
	ProductionKPIs
}

// Production computes ProductionKPIs with minutesPerShift as the planned time of each
// record.
func Production(records []storage.ProductionRecord, minutesPerShift float64) ProductionKPIs {
	var k ProductionKPIs
	var complianceSum float64

	for _, r := range records {
		k.StoppageMinutes += finite(r.StoppageMin)
		k.KgPlan += finite(r.KgPlan)
		k.KgProd += finite(r.KgProd)
		k.KgRework += finite(r.KgRework)
		k.KgScrap += finite(r.KgScrap)
		complianceSum += finite(r.PlanCompliance)
	}

	k.ShiftCount = len(records)
	k.PlannedMinutes = float64(k.ShiftCount) * math.Max(0, finite(minutesPerShift))
	k.UptimeMinutes = math.Max(0, k.PlannedMinutes-k.StoppageMinutes)

	if k.ShiftCount > 0 {
		k.AvgPlanCompliance = complianceSum / float64(k.ShiftCount)
	}

	k.Availability = ratio(k.UptimeMinutes, k.PlannedMinutes)
	k.Performance = ratio(k.KgProd, k.KgPlan)
	k.Quality = ratio(k.KgProd-k.KgRework-k.KgScrap, k.KgProd)
	k.OEE = k.Availability * k.Performance * k.Quality

	return k
}

// BySupervisor computes Production for every catalog supervisor, in catalog order, so
// supervisors can be compared side by side.
func BySupervisor(records []storage.ProductionRecord, supervisors []string, minutesPerShift float64) []SupervisorKPIs {
	grouped := make(map[string][]storage.ProductionRecord, len(supervisors))
	for _, r := range records {
		grouped[r.Supervisor] = append(grouped[r.Supervisor], r)
	}

	out := make([]SupervisorKPIs, 0, len(supervisors))
	for _, s := range supervisors {
		out = append(out, SupervisorKPIs{
			Supervisor:     s,
			ProductionKPIs: Production(grouped[s], minutesPerShift),
		})
	}
	return out
}
