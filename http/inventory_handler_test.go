package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealer-finance/domain"
)

func TestSearchVehiclesHandler(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name     string
		query    string
		status   int
		expected []string
	}{
		{"all", "", http.StatusOK, []string{"v1", "v2"}},
		{"make list", "?make=audi,Porsche", http.StatusOK, []string{"v2"}},
		{"repeated make", "?make=bmw&make=audi&sort=price_asc", http.StatusOK, []string{"v2", "v1"}},
		{"price cap", "?max_price=3500000", http.StatusOK, []string{"v2"}},
		{"text query", "?q=x5", http.StatusOK, []string{"v1"}},
		{"bad number", "?min_year=soon", http.StatusBadRequest, nil},
		{"bad sort", "?sort=random", http.StatusBadRequest, nil},
		{"inverted range", "?min_price=5&max_price=1", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodGet, "/api/v1/vehicles"+tt.query, "")
			require.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.expected == nil {
				return
			}

			var result domain.SearchResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
			got := make([]string, 0, len(result.Vehicles))
			for _, v := range result.Vehicles {
				got = append(got, v.ID)
			}
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, []string{"Audi", "BMW"}, result.Facets.Makes)
		})
	}
}

func TestGetVehicleHandler(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/vehicles/2021-bmw-x5", "")
	require.Equal(t, http.StatusOK, w.Code)

	var v domain.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	assert.Equal(t, "v1", v.ID)

	w = doJSON(router, http.MethodGet, "/api/v1/vehicles/"+url.PathEscape("does-not-exist"), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuoteVehicleHandler(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/vehicles/v1/quote", "")
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.VehicleQuoteResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, int64(800_000), result.Quote.Quote.DownPayment)
	assert.Equal(t, int64(65_653), result.Quote.Quote.MonthlyPayment)

	w = doJSON(router, http.MethodPost, "/api/v1/vehicles/v1/quote", `{"term_months": 84, "annual_rate_percent": 15}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 84, result.Quote.Quote.TermMonths)
	assert.Equal(t, 15.0, result.Quote.Quote.AnnualRatePercent)

	w = doJSON(router, http.MethodPost, "/api/v1/vehicles/v1/quote", `{"term_months": 12}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/vehicles/nope/quote", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuoteVehicleHandler_ChunkedBody(t *testing.T) {
	router := newTestRouter(t, nil)

	// empty chunked body without a Content-Type gets the default quote
	req := httptest.NewRequest(http.MethodPost, "/api/v1/vehicles/v1/quote", strings.NewReader(""))
	req.ContentLength = -1
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.VehicleQuoteResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 60, result.Quote.Quote.TermMonths)
	assert.Equal(t, int64(65_653), result.Quote.Quote.MonthlyPayment)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/vehicles/v1/quote", strings.NewReader(`{"term_months": 36}`))
	req.ContentLength = -1
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 36, result.Quote.Quote.TermMonths)

	// a non-empty body still has to be JSON
	req = httptest.NewRequest(http.MethodPost, "/api/v1/vehicles/v1/quote", strings.NewReader("term=36"))
	req.ContentLength = -1
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}
