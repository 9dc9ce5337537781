package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"dmhr-service/domain"
)

func buildTestReport(t *testing.T) domain.Report {
	t.Helper()

	repo := &MockCalculationRepository{}
	costService := NewCostService(repo)

	machines := []domain.MachineInputs{
		referenceMachine("Machine A"),
		halvedMachine("Machine B"),
	}

	results := make([]domain.CostResult, 0, len(machines))
	for _, m := range machines {
		result, err := costService.Calculate(m)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		results = append(results, result)
	}

	return NewReportService(2).BuildReport("Factory Audit", machines, results)
}

func TestBuildReport_RoundsRows(t *testing.T) {

	report := buildTestReport(t)

	if len(report.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(report.Rows))
	}

	row := report.Rows[0]
	if row.Machine != "Machine A" {
		t.Errorf("expected machine label, got %q", row.Machine)
	}
	if row.FixedCost != 210025.00 {
		t.Errorf("expected rounded fixed cost 210025.00, got %f", row.FixedCost)
	}
	if row.TotalCost != 1460025.00 {
		t.Errorf("expected total cost 1460025.00, got %f", row.TotalCost)
	}
	if row.DMHR != 1460.03 {
		t.Errorf("expected DMHR rounded to 1460.03, got %f", row.DMHR)
	}
}

func TestReportFilename(t *testing.T) {

	report := buildTestReport(t)

	name := report.Filename()
	if !strings.HasPrefix(name, "Factory_Audit_") {
		t.Errorf("expected project name with underscores, got %q", name)
	}
	if !strings.HasSuffix(name, ".xlsx") {
		t.Errorf("expected xlsx extension, got %q", name)
	}
}

func TestWriteWorkbook(t *testing.T) {

	report := buildTestReport(t)

	data, err := NewReportService(2).WriteWorkbook(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected workbook bytes")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook must be readable: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{"Inputs", "Results", "Charts"} {
		if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
			t.Errorf("expected sheet %q", sheet)
		}
	}

	label, err := f.GetCellValue("Results", "A2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != "Machine A" {
		t.Errorf("expected first result row for Machine A, got %q", label)
	}

	fixed, err := f.GetCellValue("Results", "B2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fixed != "210025" {
		t.Errorf("expected fixed cost cell 210025, got %q", fixed)
	}
}
