package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"dealer-finance/domain"
	"dealer-finance/service"
)

type InventoryHandler struct {
	service *service.InventoryService
}

func NewInventoryHandler(service *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// vehicleQuoteRequest is a QuoteRequest without the price, which always
// comes from the listing.
type vehicleQuoteRequest struct {
	DownPayment       *int64   `json:"down_payment,omitempty" validate:"omitempty,gte=0"`
	TermMonths        *int     `json:"term_months,omitempty" validate:"omitempty,oneof=36 48 60 72 84"`
	AnnualRatePercent *float64 `json:"annual_rate_percent,omitempty" validate:"omitempty,gte=7,lte=15"`
}

// SearchVehicles handles GET /vehicles with FiltersState query parameters.
func (h *InventoryHandler) SearchVehicles(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.Search(r.Context(), filters)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// GetVehicle handles GET /vehicles/{id}; id may also be the slug.
func (h *InventoryHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	v, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// QuoteVehicle handles POST /vehicles/{id}/quote. An empty body yields the
// default quote for the listing.
func (h *InventoryHandler) QuoteVehicle(w http.ResponseWriter, r *http.Request) {
	var input vehicleQuoteRequest
	if hasBody(r) && !decodeAndValidate(w, r, &input) {
		return
	}

	result, err := h.service.VehicleQuote(r.Context(), chi.URLParam(r, "id"), domain.QuoteRequest{
		DownPayment:       input.DownPayment,
		TermMonths:        input.TermMonths,
		AnnualRatePercent: input.AnnualRatePercent,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func parseFilters(q url.Values) (domain.FiltersState, error) {
	filters := domain.FiltersState{
		Query:         q.Get("q"),
		Makes:         listParam(q, "make"),
		BodyTypes:     listParam(q, "body_type"),
		FuelTypes:     listParam(q, "fuel_type"),
		Transmissions: listParam(q, "transmission"),
		Sort:          q.Get("sort"),
	}

	var err error
	if filters.MinPrice, err = int64Param(q, "min_price"); err != nil {
		return filters, err
	}
	if filters.MaxPrice, err = int64Param(q, "max_price"); err != nil {
		return filters, err
	}
	if filters.MinYear, err = intParam(q, "min_year"); err != nil {
		return filters, err
	}
	if filters.MaxYear, err = intParam(q, "max_year"); err != nil {
		return filters, err
	}
	if filters.MaxMileage, err = intParam(q, "max_mileage"); err != nil {
		return filters, err
	}
	return filters, nil
}

// listParam accepts both ?make=BMW&make=Audi and ?make=BMW,Audi.
func listParam(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func int64Param(q url.Values, key string) (int64, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter", key)
	}
	return n, nil
}

func intParam(q url.Values, key string) (int, error) {
	n, err := int64Param(q, key)
	return int(n), err
}
