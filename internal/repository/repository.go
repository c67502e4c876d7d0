package repository

import (
	"context"
	"time"

	"fleetrental-backend/internal/domain"
)

// VehicleFilters narrows fleet listings. Nil pointer fields are
// ignored; Statuses empty means any status.
type VehicleFilters struct {
	LocationID *int32
	GroupID    *int32
	Statuses   []domain.VehicleStatus
	ActiveOnly bool
}

type VehicleRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	// GetByIDForUpdate locks the vehicle row for the duration of the
	// surrounding transaction. Lifecycle writes take this lock before
	// any overlap check so concurrent bookings serialize per vehicle.
	GetByIDForUpdate(ctx context.Context, id int32) (*domain.Vehicle, error)
	UpdateState(ctx context.Context, id int32, status domain.VehicleStatus, mileage int32, fuelLevel float64) error
	List(ctx context.Context, f VehicleFilters) ([]domain.Vehicle, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	GetByReference(ctx context.Context, reference string) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	// ListOverlapping returns rentals on the vehicle whose status is in
	// statuses and whose [start_date, end_date] overlaps [start, end]
	// under inclusive-bound semantics.
	ListOverlapping(ctx context.Context, vehicleID int32, statuses []domain.RentalStatus, start, end time.Time) ([]domain.Rental, error)
	ListByVehicle(ctx context.Context, vehicleID int32, status domain.RentalStatus) ([]domain.Rental, error)
	GetOptions(ctx context.Context, rentalID int32) ([]domain.RentalOption, error)
}

type RateRepository interface {
	GetGroup(ctx context.Context, id int32) (*domain.VehicleGroup, error)
	ListActiveByGroup(ctx context.Context, groupID int32) ([]domain.RateDefinition, error)
}

type OptionRepository interface {
	// ListActiveByIDs resolves the given option ids among active
	// options. Ids that do not resolve are simply absent from the
	// result; callers skip them.
	ListActiveByIDs(ctx context.Context, ids []int32) ([]domain.AdditionalOption, error)
}

type MovementRepository interface {
	// ListOverlapping returns out-of-service windows for the vehicle
	// overlapping [start, end] inclusively.
	ListOverlapping(ctx context.Context, vehicleID int32, start, end time.Time) ([]domain.Movement, error)
}

// Repositories bundles every repository over one database handle,
// either the shared pool or a single transaction.
type Repositories struct {
	Vehicles  VehicleRepository
	Rentals   RentalRepository
	Rates     RateRepository
	Options   OptionRepository
	Movements MovementRepository
}

// Transactor runs a unit of work atomically. Lifecycle transitions
// pair a rental write with a vehicle write; both commit or neither
// does.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(r Repositories) error) error
}
