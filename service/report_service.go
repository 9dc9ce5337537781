package service

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"dmhr-service/domain"
)

const (
	sheetInputs  = "Inputs"
	sheetResults = "Results"
	sheetCharts  = "Charts"
)

type ReportService struct {
	precision int
}

func NewReportService(precision int) *ReportService {
	if precision < 0 {
		precision = DefaultReportPrecision
	}
	return &ReportService{precision: precision}
}

// BuildReport shapes a computed batch into an export-ready report. Inputs are
// carried verbatim for the audit trail; result rows are rounded here, at the
// output boundary.
func (s *ReportService) BuildReport(
	projectName string,
	machines []domain.MachineInputs,
	results []domain.CostResult,
) domain.Report {

	rows := make([]domain.ReportRow, 0, len(results))
	for _, result := range results {
		rounded := result.Rounded(s.precision)
		rows = append(rows, domain.ReportRow{
			Machine:      rounded.Label,
			FixedCost:    rounded.FixedCost,
			VariableCost: rounded.VariableCost,
			TotalCost:    domain.Round(result.TotalCost(), s.precision),
			DMHR:         rounded.DMHR,
		})
	}

	return domain.Report{
		ProjectName: projectName,
		GeneratedAt: time.Now(),
		Inputs:      machines,
		Rows:        rows,
	}
}

// WriteWorkbook renders the report as an xlsx workbook: an Inputs sheet, a
// Results sheet and a Charts sheet with a cost bar chart and a rate line chart.
func (s *ReportService) WriteWorkbook(report domain.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetInputs); err != nil {
		return nil, err
	}
	if err := s.writeInputs(f, report.Inputs); err != nil {
		return nil, err
	}
	if err := s.writeResults(f, report.Rows); err != nil {
		return nil, err
	}
	if err := s.writeCharts(f, len(report.Rows)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ReportService) writeInputs(f *excelize.File, inputs []domain.MachineInputs) error {
	header := []interface{}{
		"Machine", "Purchase Cost", "Life Span (hrs)", "Inflation Rate",
		"Insurance Rate", "Area Occupied (m²)", "Total Factory Area (m²)",
		"Building Cost", "Hours Used", "Overhead Cost",
		"Tax & Environmental Cost", "Energy Use (kWh)", "Energy Rate (/kWh)",
		"Scheduled Maintenance", "Unscheduled Maintenance", "Labour Rate (/hr)",
	}
	if err := f.SetSheetRow(sheetInputs, "A1", &header); err != nil {
		return err
	}

	for i, m := range inputs {
		row := []interface{}{
			m.Label, m.PurchaseCost, m.LifeSpanHours, m.InflationRate,
			m.InsuranceRate, m.AreaOccupied, m.TotalFactoryArea,
			m.BuildingCost, m.HoursUsed, m.OverheadCost,
			m.TaxEnvironmentalCost, m.EnergyConsumptionKWh, m.EnergyRatePerKWh,
			m.ScheduledMaintenance, m.UnscheduledMaintenance, m.LabourRatePerHour,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetInputs, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (s *ReportService) writeResults(f *excelize.File, rows []domain.ReportRow) error {
	if _, err := f.NewSheet(sheetResults); err != nil {
		return err
	}

	header := []interface{}{"Machine", "Fixed Cost", "Variable Cost", "Total Cost", "DMHR (/hr)"}
	if err := f.SetSheetRow(sheetResults, "A1", &header); err != nil {
		return err
	}

	for i, row := range rows {
		values := []interface{}{row.Machine, row.FixedCost, row.VariableCost, row.TotalCost, row.DMHR}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheetResults, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

func (s *ReportService) writeCharts(f *excelize.File, machineCount int) error {
	if _, err := f.NewSheet(sheetCharts); err != nil {
		return err
	}
	if machineCount == 0 {
		return nil
	}
	if err := f.SetColWidth(sheetCharts, "B", "B", 30); err != nil {
		return err
	}

	lastRow := machineCount + 1
	categories := fmt.Sprintf("%s!$A$2:$A$%d", sheetResults, lastRow)

	costBars := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("%s!$B$1", sheetResults),
				Categories: categories,
				Values:     fmt.Sprintf("%s!$B$2:$B$%d", sheetResults, lastRow),
			},
			{
				Name:       fmt.Sprintf("%s!$C$1", sheetResults),
				Categories: categories,
				Values:     fmt.Sprintf("%s!$C$2:$C$%d", sheetResults, lastRow),
			},
		},
		Title: []excelize.RichTextRun{{Text: "Fixed and Variable Costs per Machine"}},
	}
	if err := f.AddChart(sheetCharts, "B2", costBars); err != nil {
		return err
	}

	rateLine := &excelize.Chart{
		Type: excelize.Line,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("%s!$E$1", sheetResults),
				Categories: categories,
				Values:     fmt.Sprintf("%s!$E$2:$E$%d", sheetResults, lastRow),
			},
		},
		Title: []excelize.RichTextRun{{Text: "DMHR per Machine"}},
	}
	return f.AddChart(sheetCharts, "B30", rateLine)
}
