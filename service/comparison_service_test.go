package service

import (
	"errors"
	"strings"
	"testing"

	"dmhr-service/domain"
	"dmhr-service/repository"
)

func newTestComparisonService(repo *MockCalculationRepository, cache *repository.MockCache) *ComparisonService {
	return NewComparisonService(NewCostService(repo), cache)
}

// halvedMachine is the reference machine with every figure halved except
// hours used, so its hourly rate must come out strictly lower.
func halvedMachine(label string) domain.MachineInputs {
	m := referenceMachine(label)
	m.PurchaseCost /= 2
	m.LifeSpanHours /= 2
	m.InflationRate /= 2
	m.InsuranceRate /= 2
	m.AreaOccupied /= 2
	m.TotalFactoryArea /= 2
	m.BuildingCost /= 2
	m.OverheadCost /= 2
	m.TaxEnvironmentalCost /= 2
	m.EnergyConsumptionKWh /= 2
	m.EnergyRatePerKWh /= 2
	m.ScheduledMaintenance /= 2
	m.UnscheduledMaintenance /= 2
	m.LabourRatePerHour /= 2
	return m
}

func TestCompare_OrderAndLength(t *testing.T) {

	service := newTestComparisonService(&MockCalculationRepository{}, repository.NewMockCache())

	input := domain.ComparisonInput{
		Machines: []domain.MachineInputs{
			referenceMachine("Machine A"),
			halvedMachine("Machine B"),
		},
	}

	result, err := service.Compare(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(result.Results))
	}

	if result.Results[0].Label != "Machine A" || result.Results[1].Label != "Machine B" {
		t.Errorf("expected input order preserved, got [%s, %s]",
			result.Results[0].Label, result.Results[1].Label)
	}
}

func TestCompare_MonotonicUnderScaling(t *testing.T) {

	service := newTestComparisonService(&MockCalculationRepository{}, repository.NewMockCache())

	input := domain.ComparisonInput{
		Machines: []domain.MachineInputs{
			referenceMachine("Machine A"),
			halvedMachine("Machine B"),
		},
	}

	result, err := service.Compare(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Results[1].DMHR >= result.Results[0].DMHR {
		t.Errorf("expected halved machine to have a lower rate: A=%f B=%f",
			result.Results[0].DMHR, result.Results[1].DMHR)
	}
}

func TestCompare_FailFast(t *testing.T) {

	mockRepo := &MockCalculationRepository{}
	service := newTestComparisonService(mockRepo, repository.NewMockCache())

	bad := referenceMachine("Machine B")
	bad.HoursUsed = 0

	input := domain.ComparisonInput{
		Machines: []domain.MachineInputs{
			referenceMachine("Machine A"),
			bad,
			referenceMachine("Machine C"),
		},
	}

	_, err := service.Compare(input)

	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	if !strings.Contains(err.Error(), "machine 2") {
		t.Errorf("expected error to name the offending machine, got %q", err.Error())
	}

	if mockRepo.SaveCount != 0 {
		t.Errorf("no machine may be computed when one is invalid, got %d saves", mockRepo.SaveCount)
	}
}

func TestCompare_BatchLimits(t *testing.T) {

	service := newTestComparisonService(&MockCalculationRepository{}, repository.NewMockCache())

	single := domain.ComparisonInput{
		Machines: []domain.MachineInputs{referenceMachine("Machine A")},
	}
	if _, err := service.Compare(single); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for a single machine, got %v", err)
	}

	tooMany := domain.ComparisonInput{}
	for i := 0; i < MaxMachinesPerBatch+1; i++ {
		tooMany.Machines = append(tooMany.Machines, referenceMachine("Machine"))
	}
	if _, err := service.Compare(tooMany); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for an oversized batch, got %v", err)
	}
}

func TestCompare_DuplicateLabelsAllowed(t *testing.T) {

	service := newTestComparisonService(&MockCalculationRepository{}, repository.NewMockCache())

	input := domain.ComparisonInput{
		Machines: []domain.MachineInputs{
			referenceMachine("Lathe"),
			halvedMachine("Lathe"),
		},
	}

	result, err := service.Compare(input)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Results[0].Label != "Lathe" || result.Results[1].Label != "Lathe" {
		t.Errorf("duplicate labels must flow through verbatim")
	}
}

func TestCompare_SecondRunServedFromCache(t *testing.T) {

	mockRepo := &MockCalculationRepository{}
	cache := repository.NewMockCache()
	service := newTestComparisonService(mockRepo, cache)

	input := domain.ComparisonInput{
		Machines: []domain.MachineInputs{
			referenceMachine("Machine A"),
			halvedMachine("Machine B"),
		},
	}

	first, err := service.Compare(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cache.Len() != 1 {
		t.Fatalf("expected one cached entry, got %d", cache.Len())
	}

	second, err := service.Compare(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mockRepo.SaveCount != 2 {
		t.Errorf("second run must not recompute, got %d saves", mockRepo.SaveCount)
	}

	if len(second.Results) != len(first.Results) ||
		second.Results[0].DMHR != first.Results[0].DMHR {
		t.Errorf("cached result must match the computed one")
	}
}
