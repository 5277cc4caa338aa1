package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dealer-finance/domain"
	"dealer-finance/repository"
	"dealer-finance/service"
)

const testAdminKey = "test-admin-key"

func newTestRouter(t *testing.T, limiter *RateLimiter) http.Handler {
	t.Helper()

	loans := service.NewLoanService(
		repository.NewLoanRepositoryMemory(100),
		repository.NewLRUCache(100, time.Minute),
		service.NewMoneyFormatter("en-US"),
	)
	vehicles := repository.NewVehicleRepositoryMemory([]domain.Vehicle{
		{ID: "v1", Slug: "2021-bmw-x5", Make: "BMW", Model: "X5", Year: 2021, Price: 4_000_000, Mileage: 30_000, FuelType: "Petrol", Transmission: "Automatic", BodyType: "SUV"},
		{ID: "v2", Slug: "2019-audi-a6", Make: "Audi", Model: "A6", Year: 2019, Price: 3_000_000, Mileage: 50_000, FuelType: "Diesel", Transmission: "Automatic", BodyType: "Sedan"},
	})

	return NewRouter(RouterDeps{
		Loans:       NewLoanHandler(loans),
		Terms:       NewTermComparisonHandler(service.NewTermComparisonService(loans)),
		Inventory:   NewInventoryHandler(service.NewInventoryService(vehicles, loans)),
		RateLimiter: limiter,
		AdminAPIKey: testAdminKey,
	})
}

func doJSON(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
