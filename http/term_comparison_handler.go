package http

import (
	"net/http"

	"dealer-finance/domain"
	"dealer-finance/service"
)

type TermComparisonHandler struct {
	service *service.TermComparisonService
}

func NewTermComparisonHandler(service *service.TermComparisonService) *TermComparisonHandler {
	return &TermComparisonHandler{service: service}
}

func (h *TermComparisonHandler) CompareTerms(w http.ResponseWriter, r *http.Request) {
	var input domain.TermComparisonRequest
	if !decodeAndValidate(w, r, &input) {
		return
	}

	result, err := h.service.CompareTerms(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
