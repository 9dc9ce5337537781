package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"dmhr-service/domain"
)

// CalculationRecord is one saved calculation, stamped with an ID and the
// moment it was computed.
type CalculationRecord struct {
	ID        string
	CreatedAt time.Time
	Input     domain.MachineInputs
	Result    domain.CostResult
}

// CalculationRepositoryMemory is an in-memory implementation of
// CalculationRepository.
type CalculationRepositoryMemory struct {
	mu   sync.Mutex
	data []CalculationRecord
}

// NewCalculationRepositoryMemory creates a new in-memory calculation repository.
func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		data: []CalculationRecord{},
	}
}

// Save stores the calculation in memory.
func (r *CalculationRepositoryMemory) Save(
	input domain.MachineInputs,
	result domain.CostResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, CalculationRecord{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Input:     input,
		Result:    result,
	})
	return nil
}

// All returns a copy of the stored history, oldest first.
func (r *CalculationRepositoryMemory) All() []CalculationRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := make([]CalculationRecord, len(r.data))
	copy(records, r.data)
	return records
}
