package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "fleetrental-backend/internal/api/http"
	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/service"
)

func newTestRouter(availability *MockAvailabilityService, pricing *MockPricingService, lifecycle *MockLifecycleService) http.Handler {
	fleet := httpapi.NewFleetHandler(availability)
	rentals := httpapi.NewRentalHandler(pricing, lifecycle)
	return httpapi.NewRouter(fleet, rentals)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("error encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRentalHandler_HandleQuote(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		pricing := new(MockPricingService)
		lifecycle := new(MockLifecycleService)
		router := newTestRouter(new(MockAvailabilityService), pricing, lifecycle)

		start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
		pricing.On("CalculateRentalPrice", mock.Anything, int32(1), start, end, []service.SelectedOption(nil)).
			Return(&service.Quote{GroupID: 1, Days: 4, TotalPriceCents: 20000}, nil)

		rec := doJSON(t, router, http.MethodPost, "/api/v1/quotes", map[string]interface{}{
			"group_id":   1,
			"start_date": "2024-06-01",
			"end_date":   "2024-06-05",
		})
		assert.Equal(t, http.StatusOK, rec.Code)

		var quote service.Quote
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&quote))
		assert.Equal(t, int64(20000), quote.TotalPriceCents)
	})

	t.Run("NoRateAvailable", func(t *testing.T) {
		pricing := new(MockPricingService)
		lifecycle := new(MockLifecycleService)
		router := newTestRouter(new(MockAvailabilityService), pricing, lifecycle)

		pricing.On("CalculateRentalPrice", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("quote: %w", domain.ErrNoRateAvailable))

		rec := doJSON(t, router, http.MethodPost, "/api/v1/quotes", map[string]interface{}{
			"group_id":   9,
			"start_date": "2024-06-01",
			"end_date":   "2024-06-05",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("BadDate", func(t *testing.T) {
		pricing := new(MockPricingService)
		lifecycle := new(MockLifecycleService)
		router := newTestRouter(new(MockAvailabilityService), pricing, lifecycle)

		rec := doJSON(t, router, http.MethodPost, "/api/v1/quotes", map[string]interface{}{
			"group_id":   1,
			"start_date": "June 1st",
			"end_date":   "2024-06-05",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		pricing.AssertNotCalled(t, "CalculateRentalPrice")
	})
}

func TestRentalHandler_HandleCreate(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		pricing := new(MockPricingService)
		lifecycle := new(MockLifecycleService)
		router := newTestRouter(new(MockAvailabilityService), pricing, lifecycle)

		lifecycle.On("CreateRental", mock.Anything, mock.MatchedBy(func(in service.CreateRentalInput) bool {
			return in.CustomerID == 100 && in.VehicleID == 1 && in.TotalAmountCents == 20000
		})).Return(&domain.Rental{ID: 9, Reference: "ref-1", Status: domain.RentalStatusReserved}, nil)

		rec := doJSON(t, router, http.MethodPost, "/api/v1/rentals", map[string]interface{}{
			"customer_id":        100,
			"vehicle_id":         1,
			"start_date":         "2024-06-01",
			"end_date":           "2024-06-05",
			"pickup_location_id": 5,
			"return_location_id": 5,
			"total_amount_cents": 20000,
		})
		assert.Equal(t, http.StatusCreated, rec.Code)

		var rental domain.Rental
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&rental))
		assert.Equal(t, "ref-1", rental.Reference)
	})

	t.Run("VehicleUnavailable", func(t *testing.T) {
		pricing := new(MockPricingService)
		lifecycle := new(MockLifecycleService)
		router := newTestRouter(new(MockAvailabilityService), pricing, lifecycle)

		lifecycle.On("CreateRental", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("booking: %w", domain.ErrVehicleUnavailable))

		rec := doJSON(t, router, http.MethodPost, "/api/v1/rentals", map[string]interface{}{
			"customer_id": 100,
			"vehicle_id":  1,
			"start_date":  "2024-06-01",
			"end_date":    "2024-06-05",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestRentalHandler_Lifecycle(t *testing.T) {
	t.Run("StartSuccess", func(t *testing.T) {
		pricing := new(MockPricingService)
		lifecycle := new(MockLifecycleService)
		router := newTestRouter(new(MockAvailabilityService), pricing, lifecycle)

		lifecycle.On("StartRental", mock.Anything, int32(9), int32(42100), 0.95, "keys handed over").
			Return(&domain.Rental{ID: 9, Status: domain.RentalStatusActive}, nil)

		rec := doJSON(t, router, http.MethodPost, "/api/v1/rentals/9/start", map[string]interface{}{
			"mileage_out":    42100,
			"fuel_level_out": 0.95,
			"notes":          "keys handed over",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("StartInvalidTransition", func(t *testing.T) {
		pricing := new(MockPricingService)
		lifecycle := new(MockLifecycleService)
		router := newTestRouter(new(MockAvailabilityService), pricing, lifecycle)

		lifecycle.On("StartRental", mock.Anything, int32(9), mock.Anything, mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("rental 9: %w", domain.ErrInvalidTransition))

		rec := doJSON(t, router, http.MethodPost, "/api/v1/rentals/9/start", map[string]interface{}{
			"mileage_out": 42100,
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("GetByReference", func(t *testing.T) {
		pricing := new(MockPricingService)
		lifecycle := new(MockLifecycleService)
		router := newTestRouter(new(MockAvailabilityService), pricing, lifecycle)

		lifecycle.On("GetRentalByReference", mock.Anything, "ref-1").
			Return(&domain.Rental{ID: 9, Reference: "ref-1"}, nil)

		rec := doJSON(t, router, http.MethodGet, "/api/v1/rentals/reference/ref-1", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var rental domain.Rental
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&rental))
		assert.Equal(t, int32(9), rental.ID)
	})

	t.Run("ListByVehicle", func(t *testing.T) {
		pricing := new(MockPricingService)
		lifecycle := new(MockLifecycleService)
		router := newTestRouter(new(MockAvailabilityService), pricing, lifecycle)

		lifecycle.On("ListVehicleRentals", mock.Anything, int32(1), domain.RentalStatusCompleted).
			Return([]domain.Rental{{ID: 9}, {ID: 4}}, nil)

		rec := doJSON(t, router, http.MethodGet, "/api/v1/vehicles/1/rentals?status=COMPLETED", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Rentals []domain.Rental `json:"rentals"`
		}
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Len(t, body.Rentals, 2)
	})

	t.Run("GetNotFound", func(t *testing.T) {
		pricing := new(MockPricingService)
		lifecycle := new(MockLifecycleService)
		router := newTestRouter(new(MockAvailabilityService), pricing, lifecycle)

		lifecycle.On("GetRental", mock.Anything, int32(404)).
			Return(nil, fmt.Errorf("rental 404: %w", domain.ErrNotFound))

		rec := doJSON(t, router, http.MethodGet, "/api/v1/rentals/404", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("ExtendSuccess", func(t *testing.T) {
		pricing := new(MockPricingService)
		lifecycle := new(MockLifecycleService)
		router := newTestRouter(new(MockAvailabilityService), pricing, lifecycle)

		newEnd := time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)
		lifecycle.On("ExtendRental", mock.Anything, int32(9), newEnd, int64(15000), "").
			Return(&domain.Rental{ID: 9, Status: domain.RentalStatusExtended, EndDate: newEnd}, nil)

		rec := doJSON(t, router, http.MethodPost, "/api/v1/rentals/9/extend", map[string]interface{}{
			"new_end_date":            "2024-06-08",
			"additional_amount_cents": 15000,
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("CancelSuccess", func(t *testing.T) {
		pricing := new(MockPricingService)
		lifecycle := new(MockLifecycleService)
		router := newTestRouter(new(MockAvailabilityService), pricing, lifecycle)

		lifecycle.On("CancelRental", mock.Anything, int32(9), "no-show").
			Return(&domain.Rental{ID: 9, Status: domain.RentalStatusCancelled}, nil)

		rec := doJSON(t, router, http.MethodPost, "/api/v1/rentals/9/cancel", map[string]interface{}{
			"notes": "no-show",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestFleetHandler_HandleCheckVehicle(t *testing.T) {
	t.Run("Available", func(t *testing.T) {
		availability := new(MockAvailabilityService)
		router := newTestRouter(availability, new(MockPricingService), new(MockLifecycleService))

		start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
		availability.On("IsAvailable", mock.Anything, int32(1), start, end).Return(true, nil)

		rec := doJSON(t, router, http.MethodGet, "/api/v1/vehicles/1/availability?start=2024-06-01&end=2024-06-05", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, true, body["available"])
	})

	t.Run("MissingDates", func(t *testing.T) {
		availability := new(MockAvailabilityService)
		router := newTestRouter(availability, new(MockPricingService), new(MockLifecycleService))

		rec := doJSON(t, router, http.MethodGet, "/api/v1/vehicles/1/availability", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		availability.AssertNotCalled(t, "IsAvailable")
	})
}

func TestFleetHandler_HandleSearchAvailable(t *testing.T) {
	availability := new(MockAvailabilityService)
	router := newTestRouter(availability, new(MockPricingService), new(MockLifecycleService))

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	availability.On("GetAvailableVehicles", mock.Anything, start, end, mock.MatchedBy(func(f service.FleetFilters) bool {
		return f.LocationID != nil && *f.LocationID == 5 && f.GroupID == nil
	})).Return([]domain.Vehicle{{ID: 1}, {ID: 3}}, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/fleet/available?start=2024-06-01&end=2024-06-05&location_id=5", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Vehicles []domain.Vehicle `json:"vehicles"`
	}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body.Vehicles, 2)
}
