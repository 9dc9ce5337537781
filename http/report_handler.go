package http

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"dmhr-service/domain"
	"dmhr-service/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	costService       *service.CostService
	comparisonService *service.ComparisonService
	reportService     *service.ReportService
}

func NewReportHandler(
	costService *service.CostService,
	comparisonService *service.ComparisonService,
	reportService *service.ReportService,
) *ReportHandler {
	return &ReportHandler{
		costService:       costService,
		comparisonService: comparisonService,
		reportService:     reportService,
	}
}

// Export computes the batch and streams it back as an xlsx workbook. A single
// machine produces the single-machine report; two or more go through the
// comparison path with its batch limits.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

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

	var results []domain.CostResult
	switch {
	case len(input.Machines) == 0:
		http.Error(w, "no machines provided", http.StatusBadRequest)
		return
	case len(input.Machines) == 1:
		result, err := h.costService.Calculate(input.Machines[0])
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		results = []domain.CostResult{result}
	default:
		out, err := h.comparisonService.Compare(input)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		results = out.Results
	}

	report := h.reportService.BuildReport(input.ProjectName, input.Machines, results)
	data, err := h.reportService.WriteWorkbook(report)
	if err != nil {
		log.Printf("Error building workbook: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename()))
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing workbook response: %v", err)
	}
}
