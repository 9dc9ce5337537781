package domain

import "math"

// MachineInputs holds the per-machine figures a calculation works from.
// Rates are fractions (0.05 = 5%), monetary fields are plain currency amounts.
type MachineInputs struct {
	Label                  string  `json:"label"`
	PurchaseCost           float64 `json:"purchase_cost"`
	LifeSpanHours          float64 `json:"life_span_hours"`
	InflationRate          float64 `json:"inflation_rate"`
	InsuranceRate          float64 `json:"insurance_rate"`
	AreaOccupied           float64 `json:"area_occupied"`
	TotalFactoryArea       float64 `json:"total_factory_area"`
	BuildingCost           float64 `json:"building_cost"`
	HoursUsed              float64 `json:"hours_used"`
	OverheadCost           float64 `json:"overhead_cost"`
	TaxEnvironmentalCost   float64 `json:"tax_environmental_cost"`
	EnergyConsumptionKWh   float64 `json:"energy_consumption_kwh"`
	EnergyRatePerKWh       float64 `json:"energy_rate_per_kwh"`
	ScheduledMaintenance   float64 `json:"scheduled_maintenance"`
	UnscheduledMaintenance float64 `json:"unscheduled_maintenance"`
	LabourRatePerHour      float64 `json:"labour_rate_per_hour"`
}

// CostResult carries the computed costs for one machine at full precision.
// Rounding happens only at the output boundary, via Rounded.
type CostResult struct {
	Label        string  `json:"label"`
	FixedCost    float64 `json:"fixed_cost"`
	VariableCost float64 `json:"variable_cost"`
	DMHR         float64 `json:"dmhr"`
}

// TotalCost returns fixed plus variable cost.
func (r CostResult) TotalCost() float64 {
	return r.FixedCost + r.VariableCost
}

// Rounded returns a copy with all figures rounded to the given number of
// decimal places.
func (r CostResult) Rounded(precision int) CostResult {
	return CostResult{
		Label:        r.Label,
		FixedCost:    Round(r.FixedCost, precision),
		VariableCost: Round(r.VariableCost, precision),
		DMHR:         Round(r.DMHR, precision),
	}
}

// Round rounds a value to the given number of decimal places.
func Round(value float64, precision int) float64 {
	factor := math.Pow(10, float64(precision))
	return math.Round(value*factor) / factor
}

// ComparisonInput is an ordered batch of machines evaluated side by side.
type ComparisonInput struct {
	ProjectName string          `json:"project_name,omitempty"`
	Machines    []MachineInputs `json:"machines"`
}

// ComparisonResult holds one CostResult per machine, in input order.
type ComparisonResult struct {
	Results []CostResult `json:"results"`
}
