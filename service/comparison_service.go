package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"

	"dmhr-service/domain"
	"dmhr-service/repository"
)

type ComparisonService struct {
	costService *CostService
	cache       repository.CacheRepository
}

func NewComparisonService(costService *CostService, cache repository.CacheRepository) *ComparisonService {
	return &ComparisonService{
		costService: costService,
		cache:       cache,
	}
}

// Compare computes the costs of an ordered batch of machines. The whole batch
// is validated before anything is computed: one bad machine aborts the request
// without leaving partial results behind. Output preserves input order.
func (s *ComparisonService) Compare(input domain.ComparisonInput) (domain.ComparisonResult, error) {
	if len(input.Machines) < MinMachinesPerBatch {
		return domain.ComparisonResult{}, fmt.Errorf("%w: at least %d machines are required", ErrInvalidInput, MinMachinesPerBatch)
	}
	if len(input.Machines) > MaxMachinesPerBatch {
		return domain.ComparisonResult{}, fmt.Errorf("%w: at most %d machines can be compared", ErrInvalidInput, MaxMachinesPerBatch)
	}

	for i, machine := range input.Machines {
		if err := ValidateInputs(machine); err != nil {
			return domain.ComparisonResult{}, fmt.Errorf("machine %d (%s): %w", i+1, machine.Label, err)
		}
	}

	key, err := cacheKey(input.Machines)
	if err == nil {
		if cached, ok := s.lookup(key); ok {
			return cached, nil
		}
	}

	results := make([]domain.CostResult, 0, len(input.Machines))
	for _, machine := range input.Machines {
		result, err := s.costService.Calculate(machine)
		if err != nil {
			return domain.ComparisonResult{}, err
		}
		results = append(results, result)
	}

	out := domain.ComparisonResult{Results: results}
	if key != "" {
		s.store(key, out)
	}
	return out, nil
}

// cacheKey fingerprints a batch. The computation is pure, so identical inputs
// always produce identical results and can be served from cache.
func cacheKey(machines []domain.MachineInputs) (string, error) {
	data, err := json.Marshal(machines)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return "dmhr:compare:" + hex.EncodeToString(sum[:]), nil
}

func (s *ComparisonService) lookup(key string) (domain.ComparisonResult, bool) {
	raw, ok := s.cache.Get(key)
	if !ok {
		return domain.ComparisonResult{}, false
	}

	var result domain.ComparisonResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		log.Printf("Warning: failed to decode cached comparison: %v", err)
		return domain.ComparisonResult{}, false
	}
	return result, true
}

func (s *ComparisonService) store(key string, result domain.ComparisonResult) {
	data, err := json.Marshal(result)
	if err != nil {
		log.Printf("Warning: failed to encode comparison for cache: %v", err)
		return
	}
	if err := s.cache.Set(key, string(data)); err != nil {
		log.Printf("Warning: failed to cache comparison: %v", err)
	}
}
