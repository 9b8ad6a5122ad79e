package metrics

import (
	"math"

	"kpi-mantenimiento/internal/constants"
	"kpi-mantenimiento/internal/storage"
)

// MaintenanceKPIs are the reliability indicators over filtered stoppages and work orders.
// Hours are decimal hours; Availability is a fraction, every Pct field is 0..100.
type MaintenanceKPIs struct {
	DowntimeMinutes float64 `json:"downtime_minutes"`
	DowntimeHours   float64 `json:"downtime_hours"`
	FailureCount    int     `json:"failure_count"`
	UptimeHours     float64 `json:"uptime_hours"`
	MTTRHours       float64 `json:"mttr_hours"`
	MTBFHours       float64 `json:"mtbf_hours"`
	Availability    float64 `json:"availability"`
	StoppageCostARS float64 `json:"stoppage_cost_ars"`

	PreventivePlanned       int     `json:"preventive_planned"`
	PreventiveCompleted     int     `json:"preventive_completed"`
	PreventiveCompliancePct float64 `json:"preventive_compliance_pct"`

	PendingLaborHours float64 `json:"pending_labor_hours"`
	BacklogWeeks      float64 `json:"backlog_weeks"`

	TotalOrders      int     `json:"total_orders"`
	PreventiveOrders int     `json:"preventive_orders"`
	CorrectiveOrders int     `json:"corrective_orders"`
	PctPreventive    float64 `json:"pct_preventive"`
	PctCorrective    float64 `json:"pct_corrective"`
	OrderCostARS     float64 `json:"order_cost_ars"`

	MaintenanceCostOverSalesPct float64 `json:"maintenance_cost_over_sales_pct"`
}

// Maintenance computes MaintenanceKPIs. It never fails: every ratio with an empty
// denominator is 0.
func Maintenance(stoppages []storage.StoppageEvent, orders []storage.WorkOrder, settings storage.Settings) MaintenanceKPIs {
	var k MaintenanceKPIs

	for _, s := range stoppages {
		k.DowntimeMinutes += finite(s.DowntimeMin)
		k.StoppageCostARS += finite(s.CostARS)
	}
	k.FailureCount = len(stoppages)
	k.DowntimeHours = k.DowntimeMinutes / 60

	planned := finite(settings.PlannedHours)
	k.UptimeHours = math.Max(0, planned-k.DowntimeHours)

	if k.FailureCount > 0 {
		k.MTTRHours = k.DowntimeHours / float64(k.FailureCount)
		k.MTBFHours = k.UptimeHours / float64(k.FailureCount)
	}
	k.Availability = ratio(k.UptimeHours, planned)

	for _, o := range orders {
		switch o.Kind {
		case constants.KindPreventive:
			k.PreventiveOrders++
			switch o.Status {
			case constants.StatusPlanned:
				k.PreventivePlanned++
			case constants.StatusCompleted:
				k.PreventiveCompleted++
			}
		case constants.KindCorrective:
			k.CorrectiveOrders++
		}

		if o.Status != constants.StatusCompleted && o.Status != constants.StatusCancelled {
			k.PendingLaborHours += finite(o.LaborHours)
		}
		k.OrderCostARS += finite(o.CostARS)
	}
	k.TotalOrders = len(orders)

	k.PreventiveCompliancePct = float64(k.PreventiveCompleted) / atLeastOne(float64(k.PreventiveCompleted+k.PreventivePlanned)) * 100
	k.BacklogWeeks = k.PendingLaborHours / atLeastOne(finite(settings.WeeklyCapacityHH))
	k.PctPreventive = float64(k.PreventiveOrders) / atLeastOne(float64(k.TotalOrders)) * 100
	k.PctCorrective = float64(k.CorrectiveOrders) / atLeastOne(float64(k.TotalOrders)) * 100

	k.MaintenanceCostOverSalesPct = ratio(finite(settings.MaintenanceCostARS), finite(settings.SalesARS)) * 100

	return k
}
