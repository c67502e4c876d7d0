package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/repository"
)

// fleetCheckConcurrency caps parallel per-vehicle availability checks
// in a fleet-wide search.
const fleetCheckConcurrency = 8

type availabilityService struct {
	vehicleRepo  repository.VehicleRepository
	rentalRepo   repository.RentalRepository
	movementRepo repository.MovementRepository
}

func NewAvailabilityService(
	vehicleRepo repository.VehicleRepository,
	rentalRepo repository.RentalRepository,
	movementRepo repository.MovementRepository,
) AvailabilityService {
	return &availabilityService{
		vehicleRepo:  vehicleRepo,
		rentalRepo:   rentalRepo,
		movementRepo: movementRepo,
	}
}

// IsAvailable reports whether the vehicle is free over [start, end].
// A missing or deactivated vehicle is simply not available; that is
// not an error. Maintenance and out-of-service status veto every
// interval before any temporal check runs.
func (s *availabilityService) IsAvailable(ctx context.Context, vehicleID int32, start, end time.Time) (bool, error) {
	if !start.Before(end) {
		return false, fmt.Errorf("%w: start date must be before end date", domain.ErrInvalidArgument)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if !vehicle.IsActive {
		return false, nil
	}
	if !vehicle.Status.Rentable() {
		return false, nil
	}

	conflicts, err := s.rentalRepo.ListOverlapping(ctx, vehicleID, domain.HoldingStatuses, start, end)
	if err != nil {
		return false, err
	}
	if len(conflicts) > 0 {
		return false, nil
	}

	outages, err := s.movementRepo.ListOverlapping(ctx, vehicleID, start, end)
	if err != nil {
		return false, err
	}
	return len(outages) == 0, nil
}

// GetAvailableVehicles lists active, rentable vehicles matching the
// filters that pass the availability check for [start, end]. The
// per-vehicle checks are pure reads with no shared state, so they run
// concurrently.
func (s *availabilityService) GetAvailableVehicles(ctx context.Context, start, end time.Time, f FleetFilters) ([]domain.Vehicle, error) {
	if !start.Before(end) {
		return nil, fmt.Errorf("%w: start date must be before end date", domain.ErrInvalidArgument)
	}

	candidates, err := s.vehicleRepo.List(ctx, repository.VehicleFilters{
		LocationID: f.LocationID,
		GroupID:    f.GroupID,
		ActiveOnly: true,
		Statuses: []domain.VehicleStatus{
			domain.VehicleStatusAvailable,
			domain.VehicleStatusRented,
			domain.VehicleStatusReserved,
			domain.VehicleStatusCleaning,
			domain.VehicleStatusTransfer,
		},
	})
	if err != nil {
		return nil, err
	}

	// Each goroutine writes only its own slot; no shared mutable state.
	free := make([]bool, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fleetCheckConcurrency)
	for i := range candidates {
		i := i
		g.Go(func() error {
			ok, err := s.IsAvailable(gctx, candidates[i].ID, start, end)
			if err != nil {
				return err
			}
			free[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	available := make([]domain.Vehicle, 0, len(candidates))
	for i, v := range candidates {
		if free[i] {
			available = append(available, v)
		}
	}
	return available, nil
}
