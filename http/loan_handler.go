package http

import (
	"net/http"
	"strconv"

	"dealer-finance/domain"
	"dealer-finance/service"
)

type LoanHandler struct {
	service *service.LoanService
}

func NewLoanHandler(service *service.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

// CalculateQuote handles POST /finance/quote.
func (h *LoanHandler) CalculateQuote(w http.ResponseWriter, r *http.Request) {
	var input domain.QuoteRequest
	if !decodeAndValidate(w, r, &input) {
		return
	}

	result, err := h.service.Quote(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// CalculateSchedule handles POST /finance/schedule.
func (h *LoanHandler) CalculateSchedule(w http.ResponseWriter, r *http.Request) {
	var input domain.QuoteRequest
	if !decodeAndValidate(w, r, &input) {
		return
	}

	result, err := h.service.Schedule(r.Context(), input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetBounds handles GET /finance/bounds?price=. The price may be a plain
// number or a display label such as "40 Lakh".
func (h *LoanHandler) GetBounds(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("price")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "missing price query parameter")
		return
	}

	price, err := domain.ParsePrice(raw)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	bounds, err := h.service.Bounds(price)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, bounds)
}

// GetOptions handles GET /finance/options.
func (h *LoanHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.DefaultFinanceOptions())
}

// RecentQuotes handles GET /admin/quotes?limit=.
func (h *LoanHandler) RecentQuotes(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		limit = n
	}

	quotes, err := h.service.Recent(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, quotes)
}
