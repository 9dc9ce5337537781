package service

import (
	"errors"
	"fmt"
	"log"

	"dmhr-service/domain"
	"dmhr-service/repository"
)

// Validation failure kinds. Wrapped errors can be checked with errors.Is.
var (
	// ErrInvalidInput marks a zero or negative divisor, a negative cost, or
	// a value past the sanity caps.
	ErrInvalidInput = errors.New("invalid input")
	// ErrOutOfRange marks a rate outside [0,1].
	ErrOutOfRange = errors.New("out of range")
)

// FixedCost computes the amortization, insurance, building-space and overhead
// share of one machine. Pure; only the divisor guards can fail.
func FixedCost(input domain.MachineInputs) (float64, error) {
	if input.LifeSpanHours <= 0 {
		return 0, fmt.Errorf("%w: life span hours must be greater than zero", ErrInvalidInput)
	}
	if input.TotalFactoryArea <= 0 {
		return 0, fmt.Errorf("%w: total factory area must be greater than zero", ErrInvalidInput)
	}

	amortized := input.PurchaseCost / input.LifeSpanHours
	inflationAdj := input.PurchaseCost * input.InflationRate
	insuranceCost := input.PurchaseCost * input.InsuranceRate
	buildingSpaceCost := (input.AreaOccupied / input.TotalFactoryArea) * input.BuildingCost
	overheadAllocated := (input.HoursUsed / input.LifeSpanHours) * input.OverheadCost

	return amortized + inflationAdj + insuranceCost + buildingSpaceCost +
		overheadAllocated + input.TaxEnvironmentalCost, nil
}

// VariableCost computes the usage-driven cost of one machine. Pure and total.
func VariableCost(input domain.MachineInputs) float64 {
	energyCost := input.EnergyConsumptionKWh * input.EnergyRatePerKWh
	maintenanceCost := input.ScheduledMaintenance + input.UnscheduledMaintenance
	labourCost := input.LabourRatePerHour * input.HoursUsed

	return energyCost + maintenanceCost + labourCost
}

// MachineHourRate computes the dynamic machine hour rate from the two cost
// totals and the hours the machine was used.
func MachineHourRate(fixedCost, variableCost, hoursUsed float64) (float64, error) {
	if hoursUsed <= 0 {
		return 0, fmt.Errorf("%w: hours used must be greater than zero", ErrInvalidInput)
	}
	return (fixedCost + variableCost) / hoursUsed, nil
}

// ValidateInputs checks one machine before any arithmetic runs. Divisors must
// be strictly positive, costs non-negative and under the caps, rates in [0,1].
func ValidateInputs(input domain.MachineInputs) error {
	if input.LifeSpanHours <= 0 {
		return fmt.Errorf("%w: life span hours must be greater than zero", ErrInvalidInput)
	}
	if input.TotalFactoryArea <= 0 {
		return fmt.Errorf("%w: total factory area must be greater than zero", ErrInvalidInput)
	}
	if input.HoursUsed <= 0 {
		return fmt.Errorf("%w: hours used must be greater than zero", ErrInvalidInput)
	}
	if input.LifeSpanHours > MaxHours {
		return fmt.Errorf("%w: life span hours exceeds the maximum of %.0f", ErrInvalidInput, MaxHours)
	}
	if input.HoursUsed > MaxHours {
		return fmt.Errorf("%w: hours used exceeds the maximum of %.0f", ErrInvalidInput, MaxHours)
	}

	costs := []struct {
		name  string
		value float64
	}{
		{"purchase cost", input.PurchaseCost},
		{"area occupied", input.AreaOccupied},
		{"building cost", input.BuildingCost},
		{"overhead cost", input.OverheadCost},
		{"tax and environmental cost", input.TaxEnvironmentalCost},
		{"energy consumption", input.EnergyConsumptionKWh},
		{"energy rate", input.EnergyRatePerKWh},
		{"scheduled maintenance", input.ScheduledMaintenance},
		{"unscheduled maintenance", input.UnscheduledMaintenance},
		{"labour rate", input.LabourRatePerHour},
	}
	for _, c := range costs {
		if c.value < 0 {
			return fmt.Errorf("%w: %s cannot be negative", ErrInvalidInput, c.name)
		}
		if c.value > MaxMoneyAmount {
			return fmt.Errorf("%w: %s exceeds the maximum of %.0f", ErrInvalidInput, c.name, MaxMoneyAmount)
		}
	}

	if input.InflationRate < 0 || input.InflationRate > 1 {
		return fmt.Errorf("%w: inflation rate must be between 0 and 1", ErrOutOfRange)
	}
	if input.InsuranceRate < 0 || input.InsuranceRate > 1 {
		return fmt.Errorf("%w: insurance rate must be between 0 and 1", ErrOutOfRange)
	}

	return nil
}

type CostService struct {
	repo repository.CalculationRepository
}

// NewCostService creates a new CostService with the given repository.
func NewCostService(repo repository.CalculationRepository) *CostService {
	return &CostService{repo: repo}
}

// Calculate validates one machine and computes its costs at full precision.
// Callers round for display via CostResult.Rounded.
func (s *CostService) Calculate(input domain.MachineInputs) (domain.CostResult, error) {
	if err := ValidateInputs(input); err != nil {
		return domain.CostResult{}, err
	}

	fixedCost, err := FixedCost(input)
	if err != nil {
		return domain.CostResult{}, err
	}
	variableCost := VariableCost(input)
	dmhr, err := MachineHourRate(fixedCost, variableCost, input.HoursUsed)
	if err != nil {
		return domain.CostResult{}, err
	}

	result := domain.CostResult{
		Label:        input.Label,
		FixedCost:    fixedCost,
		VariableCost: variableCost,
		DMHR:         dmhr,
	}

	// Guardar el resultado (no crítico si falla)
	if err := s.repo.Save(input, result); err != nil {
		log.Printf("Warning: failed to save cost calculation: %v", err)
	}

	return result, nil
}
