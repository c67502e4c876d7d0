package domain

import "time"

type RentalStatus string

const (
	RentalStatusReserved  RentalStatus = "RESERVED"
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusExtended  RentalStatus = "EXTENDED"
	RentalStatusCompleted RentalStatus = "COMPLETED"
	RentalStatusCancelled RentalStatus = "CANCELLED"
	// OVERDUE is never produced by a lifecycle transition; the nightly
	// sweep assigns it to active rentals past their end date.
	RentalStatusOverdue RentalStatus = "OVERDUE"
)

// HoldingStatuses are the statuses in which a rental blocks its
// vehicle for overlapping intervals; the standard filter for overlap
// queries.
var HoldingStatuses = []RentalStatus{
	RentalStatusReserved,
	RentalStatusActive,
	RentalStatusExtended,
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusPartial  PaymentStatus = "PARTIAL"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// Rental is the central transactional entity. Terminal rentals are
// retained for audit, never deleted.
type Rental struct {
	ID               int32          `json:"id"`
	Reference        string         `json:"reference"`
	CustomerID       int32          `json:"customer_id"`
	VehicleID        int32          `json:"vehicle_id"`
	StartDate        time.Time      `json:"start_date"`
	EndDate          time.Time      `json:"end_date"`
	PickupLocationID int32          `json:"pickup_location_id"`
	ReturnLocationID int32          `json:"return_location_id"`
	Status           RentalStatus   `json:"status"`
	TotalAmountCents int64          `json:"total_amount_cents"`
	PaymentStatus    PaymentStatus  `json:"payment_status"`
	MileageOut       *int32         `json:"mileage_out,omitempty"`
	MileageIn        *int32         `json:"mileage_in,omitempty"`
	FuelLevelOut     *float64       `json:"fuel_level_out,omitempty"`
	FuelLevelIn      *float64       `json:"fuel_level_in,omitempty"`
	Notes            string         `json:"notes"`
	StaffID          *int32         `json:"staff_id,omitempty"`
	Options          []RentalOption `json:"options,omitempty"`
	CreatedOn        time.Time      `json:"created_on"`
	UpdatedOn        time.Time      `json:"updated_on"`
}

// RentalOption is an option line item with the per-day price locked in
// at creation time. Later price-list changes do not affect it.
type RentalOption struct {
	ID         int32 `json:"id"`
	RentalID   int32 `json:"rental_id"`
	OptionID   int32 `json:"option_id"`
	Quantity   int32 `json:"quantity"`
	PriceCents int64 `json:"price_cents"`
}

// AppendNote concatenates onto the rental's note log. Notes are
// append-only; existing text is never overwritten.
func (r *Rental) AppendNote(note string) {
	if note == "" {
		return
	}
	if r.Notes == "" {
		r.Notes = note
		return
	}
	r.Notes = r.Notes + "\n" + note
}
