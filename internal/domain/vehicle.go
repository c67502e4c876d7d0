package domain

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable    VehicleStatus = "AVAILABLE"
	VehicleStatusRented       VehicleStatus = "RENTED"
	VehicleStatusReserved     VehicleStatus = "RESERVED"
	VehicleStatusMaintenance  VehicleStatus = "MAINTENANCE"
	VehicleStatusCleaning     VehicleStatus = "CLEANING"
	VehicleStatusTransfer     VehicleStatus = "TRANSFER"
	VehicleStatusOutOfService VehicleStatus = "OUT_OF_SERVICE"
)

// Rentable reports whether a vehicle in this status may appear in
// fleet availability results. Maintenance and out-of-service veto
// every requested interval regardless of reservation data.
func (s VehicleStatus) Rentable() bool {
	return s != VehicleStatusMaintenance && s != VehicleStatusOutOfService
}

type Vehicle struct {
	ID          int32         `json:"id"`
	PlateNumber string        `json:"plate_number"`
	Make        string        `json:"make"`
	Model       string        `json:"model"`
	Year        int32         `json:"year"`
	GroupID     int32         `json:"group_id"`
	LocationID  int32         `json:"location_id"`
	Status      VehicleStatus `json:"status"`
	Mileage     int32         `json:"mileage"`
	FuelLevel   float64       `json:"fuel_level"` // fraction 0..1
	IsActive    bool          `json:"is_active"`
	CreatedOn   time.Time     `json:"created_on"`
	UpdatedOn   time.Time     `json:"updated_on"`
}

// VehicleGroup is a pricing/capability class (Economy, Luxury, ...).
// Rate definitions attach to groups, not to individual vehicles.
type VehicleGroup struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
