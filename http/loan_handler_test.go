package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealer-finance/domain"
	"dealer-finance/repository"
	"dealer-finance/service"
)

func TestCalculateQuoteHandler_OK(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/finance/quote", `{"price": 4000000}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var result domain.QuoteResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, int64(3_200_000), result.Quote.LoanAmount)
	assert.Equal(t, int64(65_653), result.Quote.MonthlyPayment)
	assert.Equal(t, "USD 65,653", result.Formatted["monthly_payment"])
}

func TestCalculateQuoteHandler_Adjusted(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/finance/quote",
		`{"price": 1000000, "down_payment": 1000000, "term_months": 36, "annual_rate_percent": 12}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.QuoteResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, int64(500_000), result.Quote.DownPayment, "down payment clamps to 50%")
	assert.Equal(t, 36, result.Quote.TermMonths)
}

func TestCalculateQuoteHandler_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/finance/quote", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCalculateQuoteHandler_BadRequest(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/finance/quote", `{invalid-json}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculateQuoteHandler_UnsupportedMediaType(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/finance/quote", bytes.NewBufferString(`{"price": 1}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestCalculateQuoteHandler_ValidationErrors(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing price", `{}`, "price"},
		{"term not offered", `{"price": 1000000, "term_months": 24}`, "term_months"},
		{"rate too low", `{"price": 1000000, "annual_rate_percent": 5}`, "annual_rate_percent"},
		{"rate too high", `{"price": 1000000, "annual_rate_percent": 15.5}`, "annual_rate_percent"},
		{"negative down payment", `{"price": 1000000, "down_payment": -1}`, "down_payment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/v1/finance/quote", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp ValidationErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Contains(t, resp.Fields, tt.field)
		})
	}
}

func TestCalculateQuoteHandler_PriceTooHigh(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/finance/quote", `{"price": 99000000000}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid price")
}

func TestScheduleHandler(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/finance/schedule", `{"price": 4000000, "term_months": 36}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.ScheduleResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result.Rows, 36)
	assert.Equal(t, int64(0), result.Rows[35].Balance)
}

func TestCompareHandler(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(router, http.MethodPost, "/api/v1/finance/compare", `{"price": 4000000, "max_monthly_payment": 70000}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.TermComparisonResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 60, result.RecommendedTerm)
	assert.Len(t, result.Options, 5)

	w = doJSON(router, http.MethodPost, "/api/v1/finance/compare", `{"price": 4000000, "max_monthly_payment": 100}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestBoundsHandler(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/finance/bounds?price=4000000", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"min":400000,"max":2000000,"default":800000}`, w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/v1/finance/bounds?price=40+Lakh", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"min":400000,"max":2000000,"default":800000}`, w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/v1/finance/bounds", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/finance/bounds?price=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/finance/bounds?price=40L", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"min":400000,"max":2000000,"default":800000}`, w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/v1/finance/bounds?price=12+lakhz", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOptionsHandler(t *testing.T) {
	router := newTestRouter(t, nil)

	w := doJSON(router, http.MethodGet, "/api/v1/finance/options", "")
	require.Equal(t, http.StatusOK, w.Code)

	var opts domain.FinanceOptions
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &opts))
	assert.Equal(t, []int{36, 48, 60, 72, 84}, opts.Terms)
	assert.Equal(t, 8.5, opts.DefaultAnnualRate)
}

func TestRecentQuotesHandler(t *testing.T) {
	router := newTestRouter(t, nil)

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, doJSON(router, http.MethodPost, "/api/v1/finance/quote", `{"price": 2000000}`).Code)
	}

	getQuotes := func(path, key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if key != "" {
			req.Header.Set(HeaderAPIKey, key)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := getQuotes("/api/v1/admin/quotes?limit=2", testAdminKey)
	require.Equal(t, http.StatusOK, w.Code)

	var quotes []domain.QuoteResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quotes))
	assert.Len(t, quotes, 2)

	w = getQuotes("/api/v1/admin/quotes?limit=x", testAdminKey)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// history is never public
	assert.Equal(t, http.StatusUnauthorized, getQuotes("/api/v1/admin/quotes", "").Code)
	assert.Equal(t, http.StatusUnauthorized, getQuotes("/api/v1/admin/quotes", "wrong").Code)
	assert.Equal(t, http.StatusNotFound, getQuotes("/api/v1/finance/quotes", testAdminKey).Code)
}

func TestAdminRoutesDisabledWithoutKey(t *testing.T) {
	loans := service.NewLoanService(
		repository.NewLoanRepositoryMemory(10),
		repository.NewLRUCache(10, time.Minute),
		service.NewMoneyFormatter("en-US"),
	)
	router := NewRouter(RouterDeps{
		Loans:     NewLoanHandler(loans),
		Terms:     NewTermComparisonHandler(service.NewTermComparisonService(loans)),
		Inventory: NewInventoryHandler(service.NewInventoryService(repository.NewVehicleRepositoryMemory(nil), loans)),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/quotes", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
