package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/service"
)

// FleetHandler serves fleet-wide availability queries
type FleetHandler struct {
	availability service.AvailabilityService
}

func NewFleetHandler(availability service.AvailabilityService) *FleetHandler {
	return &FleetHandler{availability: availability}
}

// dateParamLayout accepts date-only values; timestamps use RFC 3339.
const dateParamLayout = "2006-01-02"

func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse(dateParamLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q, expected yyyy-mm-dd or RFC 3339", domain.ErrInvalidArgument, value)
}

func parseInt32Param(value string) (int32, error) {
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", domain.ErrInvalidArgument, value)
	}
	return int32(n), nil
}

// HandleSearchAvailable handles GET /fleet/available
func (h *FleetHandler) HandleSearchAvailable(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	start, err := parseDateParam(q.Get("start"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	end, err := parseDateParam(q.Get("end"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	var filters service.FleetFilters
	if v := q.Get("location_id"); v != "" {
		id, err := parseInt32Param(v)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		filters.LocationID = &id
	}
	if v := q.Get("group_id"); v != "" {
		id, err := parseInt32Param(v)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		filters.GroupID = &id
	}

	vehicles, err := h.availability.GetAvailableVehicles(r.Context(), start, end, filters)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"vehicles": vehicles})
}

// HandleCheckVehicle handles GET /vehicles/{id}/availability
func (h *FleetHandler) HandleCheckVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID, err := parseInt32Param(pathVar(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	q := r.URL.Query()
	start, err := parseDateParam(q.Get("start"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	end, err := parseDateParam(q.Get("end"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	available, err := h.availability.IsAvailable(r.Context(), vehicleID, start, end)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"vehicle_id": vehicleID,
		"available":  available,
	})
}
