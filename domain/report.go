package domain

import (
	"fmt"
	"strings"
	"time"
)

// ReportRow is one machine's line on the results sheet, rounded for display.
type ReportRow struct {
	Machine      string
	FixedCost    float64
	VariableCost float64
	TotalCost    float64
	DMHR         float64
}

// Report is a fully shaped export: the original inputs for the audit trail
// plus the rounded result rows.
type Report struct {
	ProjectName string
	GeneratedAt time.Time
	Inputs      []MachineInputs
	Rows        []ReportRow
}

// Filename returns the suggested workbook filename, spaces replaced with
// underscores and the generation timestamp appended.
func (r Report) Filename() string {
	name := strings.ReplaceAll(strings.TrimSpace(r.ProjectName), " ", "_")
	if name == "" {
		name = "DMHR_Project"
	}
	return fmt.Sprintf("%s_%s.xlsx", name, r.GeneratedAt.Format("2006-01-02_15-04-05"))
}
