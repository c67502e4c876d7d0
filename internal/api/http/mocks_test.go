package http_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/service"
)

// MockAvailabilityService
type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) IsAvailable(ctx context.Context, vehicleID int32, start, end time.Time) (bool, error) {
	args := m.Called(ctx, vehicleID, start, end)
	return args.Bool(0), args.Error(1)
}
func (m *MockAvailabilityService) GetAvailableVehicles(ctx context.Context, start, end time.Time, f service.FleetFilters) ([]domain.Vehicle, error) {
	args := m.Called(ctx, start, end, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

// MockPricingService
type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) CalculateRentalPrice(ctx context.Context, groupID int32, start, end time.Time, options []service.SelectedOption) (*service.Quote, error) {
	args := m.Called(ctx, groupID, start, end, options)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Quote), args.Error(1)
}

// MockLifecycleService
type MockLifecycleService struct {
	mock.Mock
}

func (m *MockLifecycleService) CreateRental(ctx context.Context, in service.CreateRentalInput) (*domain.Rental, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockLifecycleService) StartRental(ctx context.Context, rentalID int32, mileageOut int32, fuelLevelOut float64, notes string) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID, mileageOut, fuelLevelOut, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockLifecycleService) CompleteRental(ctx context.Context, rentalID int32, mileageIn int32, fuelLevelIn float64, notes string, paymentStatus *domain.PaymentStatus) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID, mileageIn, fuelLevelIn, notes, paymentStatus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockLifecycleService) CancelRental(ctx context.Context, rentalID int32, notes string) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockLifecycleService) ExtendRental(ctx context.Context, rentalID int32, newEndDate time.Time, additionalAmountCents int64, notes string) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID, newEndDate, additionalAmountCents, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockLifecycleService) GetRental(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockLifecycleService) GetRentalByReference(ctx context.Context, reference string) (*domain.Rental, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockLifecycleService) ListVehicleRentals(ctx context.Context, vehicleID int32, status domain.RentalStatus) ([]domain.Rental, error) {
	args := m.Called(ctx, vehicleID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}
