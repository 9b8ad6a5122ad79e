package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"kpi-mantenimiento/internal/service/metrics"
	"kpi-mantenimiento/internal/storage"
)

const (
	sheetKPIs        = "KPIs"
	sheetSupervisors = "Supervisores"
	sheetEconomics   = "Economía"
	sheetProduction  = "Producción"
)

// ReportSource supplies the computed dashboard and the production rows behind it.
type ReportSource interface {
	ReportData(ctx context.Context) (metrics.Dashboard, []storage.ProductionRecord, error)
}

type GenerateExcelService struct {
	source ReportSource
}

func NewGenerateService(source ReportSource) *GenerateExcelService {
	return &GenerateExcelService{source: source}
}

func (g *GenerateExcelService) GenerateExcel(ctx context.Context) ([]byte, error) {
	const op = "service.generate_excel.GenerateExcel"

	dash, production, err := g.source.ReportData(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch data: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: header style: %w", op, err)
	}

	if err := f.SetSheetName("Sheet1", sheetKPIs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, name := range []string{sheetSupervisors, sheetEconomics, sheetProduction} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("%s: new sheet %s: %w", op, name, err)
		}
	}

	w := sheetWriter{f: f, header: headerStyle}
	w.table(sheetKPIs, []string{"Indicador", "Valor"}, kpiRows(dash))
	w.table(sheetSupervisors, supervisorHeaders, supervisorRows(dash.Supervisors))
	w.table(sheetEconomics, economicHeaders, economicRows(dash.Economics))
	w.table(sheetProduction, productionHeaders, productionRows(production))
	if w.err != nil {
		return nil, fmt.Errorf("%s: %w", op, w.err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: write: %w", op, err)
	}

	return buf.Bytes(), nil
}

// sheetWriter keeps the first error so the table layout reads top to bottom.
type sheetWriter struct {
	f      *excelize.File
	header int
	err    error
}

func (w *sheetWriter) table(sheet string, headers []string, rows [][]any) {
	if w.err != nil {
		return
	}

	for i, name := range headers {
		if w.err = w.f.SetCellValue(sheet, cellName(i+1, 1), name); w.err != nil {
			return
		}
	}
	if w.err = w.f.SetCellStyle(sheet, "A1", cellName(len(headers), 1), w.header); w.err != nil {
		return
	}

	for r, row := range rows {
		for c, v := range row {
			if w.err = w.f.SetCellValue(sheet, cellName(c+1, r+2), v); w.err != nil {
				return
			}
		}
	}

	if w.err = w.f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); w.err != nil {
		return
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	w.err = w.f.SetColWidth(sheet, "A", lastCol, 18)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func kpiRows(d metrics.Dashboard) [][]any {
	m, p := d.Maintenance, d.Production
	return [][]any{
		{"Período desde", d.Filters.PeriodFrom},
		{"Período hasta", d.Filters.PeriodTo},
		{"Sector", d.Filters.Sector},
		{"Línea", d.Filters.Line},
		{"Turno", d.Filters.Shift},
		{"Supervisor", d.Filters.Supervisor},
		{"Downtime (h)", m.DowntimeHours},
		{"Fallas", m.FailureCount},
		{"MTTR (h)", m.MTTRHours},
		{"MTBF (h)", m.MTBFHours},
		{"Disponibilidad", m.Availability},
		{"Costo paradas ARS", m.StoppageCostARS},
		{"Cumplimiento preventivo %", m.PreventiveCompliancePct},
		{"Backlog (semanas)", m.BacklogWeeks},
		{"OT preventivas %", m.PctPreventive},
		{"OT correctivas %", m.PctCorrective},
		{"Costo OT ARS", m.OrderCostARS},
		{"Costo mantenimiento / ventas %", m.MaintenanceCostOverSalesPct},
		{"Turnos", p.ShiftCount},
		{"Kg plan", p.KgPlan},
		{"Kg producidos", p.KgProd},
		{"Kg reproceso", p.KgRework},
		{"Kg decomiso", p.KgScrap},
		{"Cumplimiento plan promedio %", p.AvgPlanCompliance},
		{"Disponibilidad producción", p.Availability},
		{"Rendimiento", p.Performance},
		{"Calidad", p.Quality},
		{"OEE", p.OEE},
	}
}

var supervisorHeaders = []string{"Supervisor", "Turnos", "Kg plan", "Kg producidos", "Disponibilidad", "Rendimiento", "Calidad", "OEE"}

func supervisorRows(sups []metrics.SupervisorKPIs) [][]any {
	rows := make([][]any, 0, len(sups))
	for _, s := range sups {
		rows = append(rows, []any{s.Supervisor, s.ShiftCount, s.KgPlan, s.KgProd, s.Availability, s.Performance, s.Quality, s.OEE})
	}
	return rows
}

var economicHeaders = []string{"Período", "Sector", "Mantenimiento USD", "Energía USD", "Toneladas", "Mant. USD/t", "Energía USD/t", "Total USD/t"}

func economicRows(econ []metrics.EconomicRow) [][]any {
	rows := make([][]any, 0, len(econ))
	for _, e := range econ {
		rows = append(rows, []any{e.Period, e.Sector, e.MaintenanceSpend, e.EnergySpend, e.Tonnes,
			e.MaintenanceSpendPerTonne, e.EnergySpendPerTonne, e.TotalSpendPerTonne})
	}
	return rows
}

var productionHeaders = []string{"Fecha", "Turno", "Sector", "Línea", "Kg plan", "Kg producidos", "Cump. plan %",
	"Kg reproceso", "Kg decomiso", "Parada (min)", "Supervisor", "Novedades"}

func productionRows(records []storage.ProductionRecord) [][]any {
	rows := make([][]any, 0, len(records))
	for _, p := range records {
		rows = append(rows, []any{p.Date, p.Shift, p.Sector, p.Line, p.KgPlan, p.KgProd, p.PlanCompliance,
			p.KgRework, p.KgScrap, p.StoppageMin, p.Supervisor, p.Notes})
	}
	return rows
}
