package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/repository"
)

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) UpdateState(ctx context.Context, id int32, status domain.VehicleStatus, mileage int32, fuelLevel float64) error {
	args := m.Called(ctx, id, status, mileage, fuelLevel)
	return args.Error(0)
}
func (m *MockVehicleRepo) List(ctx context.Context, f repository.VehicleFilters) ([]domain.Vehicle, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) GetByReference(ctx context.Context, reference string) (*domain.Rental, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) ListOverlapping(ctx context.Context, vehicleID int32, statuses []domain.RentalStatus, start, end time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, vehicleID, statuses, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListByVehicle(ctx context.Context, vehicleID int32, status domain.RentalStatus) ([]domain.Rental, error) {
	args := m.Called(ctx, vehicleID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) GetOptions(ctx context.Context, rentalID int32) ([]domain.RentalOption, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalOption), args.Error(1)
}

// MockRateRepo
type MockRateRepo struct {
	mock.Mock
}

func (m *MockRateRepo) GetGroup(ctx context.Context, id int32) (*domain.VehicleGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleGroup), args.Error(1)
}
func (m *MockRateRepo) ListActiveByGroup(ctx context.Context, groupID int32) ([]domain.RateDefinition, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateDefinition), args.Error(1)
}

// MockOptionRepo
type MockOptionRepo struct {
	mock.Mock
}

func (m *MockOptionRepo) ListActiveByIDs(ctx context.Context, ids []int32) ([]domain.AdditionalOption, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdditionalOption), args.Error(1)
}

// MockMovementRepo
type MockMovementRepo struct {
	mock.Mock
}

func (m *MockMovementRepo) ListOverlapping(ctx context.Context, vehicleID int32, start, end time.Time) ([]domain.Movement, error) {
	args := m.Called(ctx, vehicleID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

// fakeTransactor runs the unit of work directly against the given
// repositories, with no real transaction underneath.
type fakeTransactor struct {
	repos repository.Repositories
}

func (f *fakeTransactor) WithinTx(_ context.Context, fn func(r repository.Repositories) error) error {
	return fn(f.repos)
}
