package domain

import "time"

type MovementType string

const (
	MovementTypeMaintenance MovementType = "MAINTENANCE"
	MovementTypeInspection  MovementType = "INSPECTION"
	MovementTypeTransfer    MovementType = "TRANSFER"
	MovementTypeCleaning    MovementType = "CLEANING"
	MovementTypeOther       MovementType = "OTHER"
)

// Movement is a non-revenue, out-of-service window: the vehicle is
// held back from rental for operational reasons. It does not drive the
// vehicle's primary status through the rental lifecycle; the
// availability checker treats it as an independent busy-interval
// source.
type Movement struct {
	ID             int32        `json:"id"`
	VehicleID      int32        `json:"vehicle_id"`
	Type           MovementType `json:"type"`
	StartDate      time.Time    `json:"start_date"`
	EndDate        time.Time    `json:"end_date"`
	FromLocationID *int32       `json:"from_location_id,omitempty"`
	ToLocationID   *int32       `json:"to_location_id,omitempty"`
	Notes          string       `json:"notes"`
	CreatedOn      time.Time    `json:"created_on"`
}
