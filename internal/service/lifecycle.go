package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/repository"
)

type lifecycleService struct {
	tx         repository.Transactor
	rentalRepo repository.RentalRepository
}

// NewRentalLifecycleService builds the lifecycle manager. Every
// transition runs inside one transaction with the vehicle row locked,
// so the rental write and the vehicle write land together or not at
// all, and concurrent bookings on the same vehicle serialize.
func NewRentalLifecycleService(tx repository.Transactor, rentalRepo repository.RentalRepository) RentalLifecycleService {
	return &lifecycleService{tx: tx, rentalRepo: rentalRepo}
}

// CreateRental opens a reservation: the rental row in RESERVED, option
// line items with their per-day price locked in, and the vehicle moved
// to RESERVED. The interval conflict check runs inside the same
// transaction, under the vehicle lock, so two concurrent bookings
// cannot both claim the vehicle.
func (s *lifecycleService) CreateRental(ctx context.Context, in CreateRentalInput) (*domain.Rental, error) {
	if !in.StartDate.Before(in.EndDate) {
		return nil, fmt.Errorf("%w: start date must be before end date", domain.ErrInvalidArgument)
	}
	if in.TotalAmountCents < 0 {
		return nil, fmt.Errorf("%w: total amount must not be negative", domain.ErrInvalidArgument)
	}
	for _, sel := range in.Options {
		if sel.Quantity < 0 {
			return nil, fmt.Errorf("%w: option %d has negative quantity %d", domain.ErrInvalidArgument, sel.OptionID, sel.Quantity)
		}
	}

	var rental *domain.Rental
	err := s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		vehicle, err := r.Vehicles.GetByIDForUpdate(ctx, in.VehicleID)
		if err != nil {
			return err
		}
		if !vehicle.IsActive || !vehicle.Status.Rentable() {
			return fmt.Errorf("%w: vehicle %d is not rentable", domain.ErrVehicleUnavailable, vehicle.ID)
		}

		conflicts, err := r.Rentals.ListOverlapping(ctx, vehicle.ID, domain.HoldingStatuses, in.StartDate, in.EndDate)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return fmt.Errorf("%w: vehicle %d already booked over the requested interval", domain.ErrVehicleUnavailable, vehicle.ID)
		}
		outages, err := r.Movements.ListOverlapping(ctx, vehicle.ID, in.StartDate, in.EndDate)
		if err != nil {
			return err
		}
		if len(outages) > 0 {
			return fmt.Errorf("%w: vehicle %d is out of service over the requested interval", domain.ErrVehicleUnavailable, vehicle.ID)
		}

		lines, err := snapshotOptions(ctx, r.Options, in.Options)
		if err != nil {
			return err
		}

		rental = &domain.Rental{
			Reference:        uuid.NewString(),
			CustomerID:       in.CustomerID,
			VehicleID:        in.VehicleID,
			StartDate:        in.StartDate,
			EndDate:          in.EndDate,
			PickupLocationID: in.PickupLocationID,
			ReturnLocationID: in.ReturnLocationID,
			Status:           domain.RentalStatusReserved,
			TotalAmountCents: in.TotalAmountCents,
			PaymentStatus:    domain.PaymentStatusPending,
			StaffID:          in.StaffID,
			Options:          lines,
		}
		rental.AppendNote(in.Notes)

		if err := r.Rentals.Create(ctx, rental); err != nil {
			return err
		}
		return r.Vehicles.UpdateState(ctx, vehicle.ID, domain.VehicleStatusReserved, vehicle.Mileage, vehicle.FuelLevel)
	})
	if err != nil {
		return nil, err
	}
	return rental, nil
}

// StartRental hands the vehicle over: RESERVED → ACTIVE, outbound
// mileage and fuel recorded on both the rental and the vehicle.
func (s *lifecycleService) StartRental(ctx context.Context, rentalID int32, mileageOut int32, fuelLevelOut float64, notes string) (*domain.Rental, error) {
	var rental *domain.Rental
	err := s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		rt, err := r.Rentals.GetByID(ctx, rentalID)
		if err != nil {
			return err
		}
		if rt.Status != domain.RentalStatusReserved {
			return fmt.Errorf("%w: rental %d is %s, only RESERVED rentals can be started", domain.ErrInvalidTransition, rt.ID, rt.Status)
		}

		if _, err := r.Vehicles.GetByIDForUpdate(ctx, rt.VehicleID); err != nil {
			return err
		}

		rt.Status = domain.RentalStatusActive
		rt.MileageOut = &mileageOut
		rt.FuelLevelOut = &fuelLevelOut
		rt.AppendNote(notes)
		if err := r.Rentals.Update(ctx, rt); err != nil {
			return err
		}
		if err := r.Vehicles.UpdateState(ctx, rt.VehicleID, domain.VehicleStatusRented, mileageOut, fuelLevelOut); err != nil {
			return err
		}
		rental = rt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rental, nil
}

// CompleteRental closes out a rental on return: ACTIVE, EXTENDED or
// OVERDUE → COMPLETED, inbound mileage and fuel recorded, vehicle back
// to AVAILABLE. Payment status is updated only when provided.
func (s *lifecycleService) CompleteRental(ctx context.Context, rentalID int32, mileageIn int32, fuelLevelIn float64, notes string, paymentStatus *domain.PaymentStatus) (*domain.Rental, error) {
	var rental *domain.Rental
	err := s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		rt, err := r.Rentals.GetByID(ctx, rentalID)
		if err != nil {
			return err
		}
		switch rt.Status {
		case domain.RentalStatusActive, domain.RentalStatusExtended, domain.RentalStatusOverdue:
		default:
			return fmt.Errorf("%w: rental %d is %s, only active rentals can be completed", domain.ErrInvalidTransition, rt.ID, rt.Status)
		}

		if _, err := r.Vehicles.GetByIDForUpdate(ctx, rt.VehicleID); err != nil {
			return err
		}

		rt.Status = domain.RentalStatusCompleted
		rt.MileageIn = &mileageIn
		rt.FuelLevelIn = &fuelLevelIn
		if paymentStatus != nil {
			rt.PaymentStatus = *paymentStatus
		}
		rt.AppendNote(notes)
		if err := r.Rentals.Update(ctx, rt); err != nil {
			return err
		}
		if err := r.Vehicles.UpdateState(ctx, rt.VehicleID, domain.VehicleStatusAvailable, mileageIn, fuelLevelIn); err != nil {
			return err
		}
		rental = rt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rental, nil
}

// CancelRental withdraws a reservation. Only RESERVED rentals cancel;
// an active rental has the car out and must come back through
// CompleteRental.
func (s *lifecycleService) CancelRental(ctx context.Context, rentalID int32, notes string) (*domain.Rental, error) {
	var rental *domain.Rental
	err := s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		rt, err := r.Rentals.GetByID(ctx, rentalID)
		if err != nil {
			return err
		}
		if rt.Status != domain.RentalStatusReserved {
			return fmt.Errorf("%w: rental %d is %s, only RESERVED rentals can be cancelled", domain.ErrInvalidTransition, rt.ID, rt.Status)
		}

		vehicle, err := r.Vehicles.GetByIDForUpdate(ctx, rt.VehicleID)
		if err != nil {
			return err
		}

		rt.Status = domain.RentalStatusCancelled
		rt.AppendNote(notes)
		if err := r.Rentals.Update(ctx, rt); err != nil {
			return err
		}
		if err := r.Vehicles.UpdateState(ctx, vehicle.ID, domain.VehicleStatusAvailable, vehicle.Mileage, vehicle.FuelLevel); err != nil {
			return err
		}
		rental = rt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rental, nil
}

// ExtendRental pushes an ACTIVE rental's end date out after checking,
// under the vehicle lock, that no other holding rental overlaps the
// added window. The vehicle stays RENTED throughout.
func (s *lifecycleService) ExtendRental(ctx context.Context, rentalID int32, newEndDate time.Time, additionalAmountCents int64, notes string) (*domain.Rental, error) {
	if additionalAmountCents < 0 {
		return nil, fmt.Errorf("%w: additional amount must not be negative", domain.ErrInvalidArgument)
	}

	var rental *domain.Rental
	err := s.tx.WithinTx(ctx, func(r repository.Repositories) error {
		rt, err := r.Rentals.GetByID(ctx, rentalID)
		if err != nil {
			return err
		}
		if rt.Status != domain.RentalStatusActive {
			return fmt.Errorf("%w: rental %d is %s, only ACTIVE rentals can be extended", domain.ErrInvalidTransition, rt.ID, rt.Status)
		}
		if !newEndDate.After(rt.EndDate) {
			return fmt.Errorf("%w: new end date must be after the current end date", domain.ErrInvalidArgument)
		}

		if _, err := r.Vehicles.GetByIDForUpdate(ctx, rt.VehicleID); err != nil {
			return err
		}

		conflicts, err := r.Rentals.ListOverlapping(ctx, rt.VehicleID, domain.HoldingStatuses, rt.EndDate, newEndDate)
		if err != nil {
			return err
		}
		for _, c := range conflicts {
			if c.ID != rt.ID {
				return fmt.Errorf("%w: vehicle %d has rental %d over the extension window", domain.ErrVehicleUnavailable, rt.VehicleID, c.ID)
			}
		}

		rt.Status = domain.RentalStatusExtended
		rt.EndDate = newEndDate
		rt.TotalAmountCents += additionalAmountCents
		note := "Extended: new end date " + newEndDate.Format("2006-01-02")
		if notes != "" {
			note += " - " + notes
		}
		rt.AppendNote(note)
		if err := r.Rentals.Update(ctx, rt); err != nil {
			return err
		}
		rental = rt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *lifecycleService) GetRental(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	opts, err := s.rentalRepo.GetOptions(ctx, rt.ID)
	if err != nil {
		return nil, err
	}
	rt.Options = opts
	return rt, nil
}

func (s *lifecycleService) ListVehicleRentals(ctx context.Context, vehicleID int32, status domain.RentalStatus) ([]domain.Rental, error) {
	switch status {
	case "", domain.RentalStatusReserved, domain.RentalStatusActive, domain.RentalStatusExtended,
		domain.RentalStatusCompleted, domain.RentalStatusCancelled, domain.RentalStatusOverdue:
	default:
		return nil, fmt.Errorf("%w: unknown rental status %q", domain.ErrInvalidArgument, status)
	}
	return s.rentalRepo.ListByVehicle(ctx, vehicleID, status)
}

func (s *lifecycleService) GetRentalByReference(ctx context.Context, reference string) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	opts, err := s.rentalRepo.GetOptions(ctx, rt.ID)
	if err != nil {
		return nil, err
	}
	rt.Options = opts
	return rt, nil
}

// snapshotOptions resolves selected options against the active price
// list and locks in their current per-day price. Unresolvable ids are
// skipped, matching quote behavior.
func snapshotOptions(ctx context.Context, repo repository.OptionRepository, selected []SelectedOption) ([]domain.RentalOption, error) {
	if len(selected) == 0 {
		return nil, nil
	}
	ids := make([]int32, 0, len(selected))
	for _, sel := range selected {
		ids = append(ids, sel.OptionID)
	}
	active, err := repo.ListActiveByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int32]domain.AdditionalOption, len(active))
	for _, opt := range active {
		byID[opt.ID] = opt
	}

	var lines []domain.RentalOption
	for _, sel := range selected {
		opt, ok := byID[sel.OptionID]
		if !ok {
			continue
		}
		lines = append(lines, domain.RentalOption{
			OptionID:   opt.ID,
			Quantity:   sel.Quantity,
			PriceCents: opt.PriceCents,
		})
	}
	return lines, nil
}
