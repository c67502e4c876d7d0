package service

import (
	"context"
	"time"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/utils"
)

// FleetFilters narrows a fleet-wide availability search. Nil fields
// are ignored.
type FleetFilters struct {
	LocationID *int32
	GroupID    *int32
}

// SelectedOption is a requested add-on with quantity.
type SelectedOption struct {
	OptionID int32 `json:"option_id"`
	Quantity int32 `json:"quantity"`
}

// QuoteOption is one priced option line in a quote.
type QuoteOption struct {
	OptionID   int32  `json:"option_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"` // per day
	Quantity   int32  `json:"quantity"`
	CostCents  int64  `json:"cost_cents"`
}

// Quote is a tiered price breakdown for a vehicle group and interval.
type Quote struct {
	GroupID           int32                `json:"group_id"`
	RateID            int32                `json:"rate_id"`
	Season            domain.SeasonType    `json:"season"`
	Days              int32                `json:"days"`
	Base              utils.PriceBreakdown `json:"base"`
	BasePriceCents    int64                `json:"base_price_cents"`
	OptionsPriceCents int64                `json:"options_price_cents"`
	TotalPriceCents   int64                `json:"total_price_cents"`
	Options           []QuoteOption        `json:"options,omitempty"`
}

type AvailabilityService interface {
	IsAvailable(ctx context.Context, vehicleID int32, start, end time.Time) (bool, error)
	GetAvailableVehicles(ctx context.Context, start, end time.Time, f FleetFilters) ([]domain.Vehicle, error)
}

type PricingService interface {
	CalculateRentalPrice(ctx context.Context, groupID int32, start, end time.Time, options []SelectedOption) (*Quote, error)
}

// CreateRentalInput carries everything needed to open a reservation.
// TotalAmountCents comes from the caller's quote; option prices are
// snapshotted from the active price list at creation time.
type CreateRentalInput struct {
	CustomerID       int32
	VehicleID        int32
	StartDate        time.Time
	EndDate          time.Time
	PickupLocationID int32
	ReturnLocationID int32
	TotalAmountCents int64
	Options          []SelectedOption
	Notes            string
	StaffID          *int32
}

type RentalLifecycleService interface {
	CreateRental(ctx context.Context, in CreateRentalInput) (*domain.Rental, error)
	StartRental(ctx context.Context, rentalID int32, mileageOut int32, fuelLevelOut float64, notes string) (*domain.Rental, error)
	CompleteRental(ctx context.Context, rentalID int32, mileageIn int32, fuelLevelIn float64, notes string, paymentStatus *domain.PaymentStatus) (*domain.Rental, error)
	CancelRental(ctx context.Context, rentalID int32, notes string) (*domain.Rental, error)
	ExtendRental(ctx context.Context, rentalID int32, newEndDate time.Time, additionalAmountCents int64, notes string) (*domain.Rental, error)
	GetRental(ctx context.Context, rentalID int32) (*domain.Rental, error)
	GetRentalByReference(ctx context.Context, reference string) (*domain.Rental, error)
	// ListVehicleRentals returns a vehicle's rental history, newest
	// first, optionally narrowed to one status. Empty status means all.
	ListVehicleRentals(ctx context.Context, vehicleID int32, status domain.RentalStatus) ([]domain.Rental, error)
}
