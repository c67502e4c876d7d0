package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/service"
)

// RentalHandler serves price quotes and rental lifecycle operations
type RentalHandler struct {
	pricing   service.PricingService
	lifecycle service.RentalLifecycleService
}

func NewRentalHandler(pricing service.PricingService, lifecycle service.RentalLifecycleService) *RentalHandler {
	return &RentalHandler{pricing: pricing, lifecycle: lifecycle}
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: malformed request body", domain.ErrInvalidArgument)
	}
	return nil
}

type quoteRequest struct {
	GroupID   int32                    `json:"group_id"`
	StartDate string                   `json:"start_date"`
	EndDate   string                   `json:"end_date"`
	Options   []service.SelectedOption `json:"options"`
}

// HandleQuote handles POST /quotes
func (h *RentalHandler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := decodeBody(r, &req); err != nil {
		writeDomainError(w, err)
		return
	}
	start, err := parseDateParam(req.StartDate)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	end, err := parseDateParam(req.EndDate)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	quote, err := h.pricing.CalculateRentalPrice(r.Context(), req.GroupID, start, end, req.Options)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

type createRentalRequest struct {
	CustomerID       int32                    `json:"customer_id"`
	VehicleID        int32                    `json:"vehicle_id"`
	StartDate        string                   `json:"start_date"`
	EndDate          string                   `json:"end_date"`
	PickupLocationID int32                    `json:"pickup_location_id"`
	ReturnLocationID int32                    `json:"return_location_id"`
	TotalAmountCents int64                    `json:"total_amount_cents"`
	Options          []service.SelectedOption `json:"options"`
	Notes            string                   `json:"notes"`
	StaffID          *int32                   `json:"staff_id"`
}

// HandleCreate handles POST /rentals
func (h *RentalHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeBody(r, &req); err != nil {
		writeDomainError(w, err)
		return
	}
	start, err := parseDateParam(req.StartDate)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	end, err := parseDateParam(req.EndDate)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	rental, err := h.lifecycle.CreateRental(r.Context(), service.CreateRentalInput{
		CustomerID:       req.CustomerID,
		VehicleID:        req.VehicleID,
		StartDate:        start,
		EndDate:          end,
		PickupLocationID: req.PickupLocationID,
		ReturnLocationID: req.ReturnLocationID,
		TotalAmountCents: req.TotalAmountCents,
		Options:          req.Options,
		Notes:            req.Notes,
		StaffID:          req.StaffID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

// HandleGet handles GET /rentals/{id}
func (h *RentalHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	rentalID, err := parseInt32Param(pathVar(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	rental, err := h.lifecycle.GetRental(r.Context(), rentalID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// HandleGetByReference handles GET /rentals/reference/{reference}
func (h *RentalHandler) HandleGetByReference(w http.ResponseWriter, r *http.Request) {
	rental, err := h.lifecycle.GetRentalByReference(r.Context(), pathVar(r, "reference"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// HandleListByVehicle handles GET /vehicles/{id}/rentals
func (h *RentalHandler) HandleListByVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := parseInt32Param(pathVar(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	status := domain.RentalStatus(r.URL.Query().Get("status"))

	rentals, err := h.lifecycle.ListVehicleRentals(r.Context(), vehicleID, status)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"rentals": rentals})
}

type startRentalRequest struct {
	MileageOut   int32   `json:"mileage_out"`
	FuelLevelOut float64 `json:"fuel_level_out"`
	Notes        string  `json:"notes"`
}

// HandleStart handles POST /rentals/{id}/start
func (h *RentalHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	rentalID, err := parseInt32Param(pathVar(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	var req startRentalRequest
	if err := decodeBody(r, &req); err != nil {
		writeDomainError(w, err)
		return
	}

	rental, err := h.lifecycle.StartRental(r.Context(), rentalID, req.MileageOut, req.FuelLevelOut, req.Notes)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

type completeRentalRequest struct {
	MileageIn     int32                 `json:"mileage_in"`
	FuelLevelIn   float64               `json:"fuel_level_in"`
	Notes         string                `json:"notes"`
	PaymentStatus *domain.PaymentStatus `json:"payment_status"`
}

// HandleComplete handles POST /rentals/{id}/complete
func (h *RentalHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	rentalID, err := parseInt32Param(pathVar(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	var req completeRentalRequest
	if err := decodeBody(r, &req); err != nil {
		writeDomainError(w, err)
		return
	}

	rental, err := h.lifecycle.CompleteRental(r.Context(), rentalID, req.MileageIn, req.FuelLevelIn, req.Notes, req.PaymentStatus)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

type cancelRentalRequest struct {
	Notes string `json:"notes"`
}

// HandleCancel handles POST /rentals/{id}/cancel
func (h *RentalHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	rentalID, err := parseInt32Param(pathVar(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	var req cancelRentalRequest
	if err := decodeBody(r, &req); err != nil {
		writeDomainError(w, err)
		return
	}

	rental, err := h.lifecycle.CancelRental(r.Context(), rentalID, req.Notes)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

type extendRentalRequest struct {
	NewEndDate            string `json:"new_end_date"`
	AdditionalAmountCents int64  `json:"additional_amount_cents"`
	Notes                 string `json:"notes"`
}

// HandleExtend handles POST /rentals/{id}/extend
func (h *RentalHandler) HandleExtend(w http.ResponseWriter, r *http.Request) {
	rentalID, err := parseInt32Param(pathVar(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	var req extendRentalRequest
	if err := decodeBody(r, &req); err != nil {
		writeDomainError(w, err)
		return
	}
	newEnd, err := parseDateParam(req.NewEndDate)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	rental, err := h.lifecycle.ExtendRental(r.Context(), rentalID, newEnd, req.AdditionalAmountCents, req.Notes)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}
