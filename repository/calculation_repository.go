package repository

import "dmhr-service/domain"

// CalculationRepository records every successful cost calculation for the
// audit trail. Persistence failures are never critical to the caller.
type CalculationRepository interface {
	Save(input domain.MachineInputs, result domain.CostResult) error
}
