package http

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"dmhr-service/domain"
	"dmhr-service/service"
)

type comparisonResponse struct {
	Results []costResponse `json:"results"`
}

type ComparisonHandler struct {
	service   *service.ComparisonService
	precision int
}

func NewComparisonHandler(service *service.ComparisonService, precision int) *ComparisonHandler {
	return &ComparisonHandler{service: service, precision: precision}
}

func (h *ComparisonHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.ComparisonInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Compare(input)
	if err != nil {
		log.Printf("Error comparing machines: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response := comparisonResponse{
		Results: make([]costResponse, 0, len(result.Results)),
	}
	for _, machineResult := range result.Results {
		response.Results = append(response.Results, newCostResponse(machineResult, h.precision))
	}

	// Codificar JSON en buffer primero para evitar escribir header si falla
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(response); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
