package http

import (
	"encoding/json"
	"net/http"

	"dmhr-service/domain"
	"dmhr-service/service"
)

// costResponse is the output-boundary shape: rounded figures plus the derived
// total cost.
type costResponse struct {
	domain.CostResult
	TotalCost float64 `json:"total_cost"`
}

func newCostResponse(result domain.CostResult, precision int) costResponse {
	return costResponse{
		CostResult: result.Rounded(precision),
		TotalCost:  domain.Round(result.TotalCost(), precision),
	}
}

type CostHandler struct {
	service   *service.CostService
	precision int
}

func NewCostHandler(service *service.CostService, precision int) *CostHandler {
	return &CostHandler{service: service, precision: precision}
}

func (h *CostHandler) Calculate(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.MachineInputs
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(newCostResponse(result, h.precision))
}
