package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/repository"

	"github.com/lib/pq"
)

type rentalRepository struct {
	db dbtx
}

func NewRentalRepository(db dbtx) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, reference, customer_id, vehicle_id, start_date, end_date, pickup_location_id, return_location_id, status, total_amount_cents, payment_status, mileage_out, mileage_in, fuel_level_out, fuel_level_in, notes, staff_id, created_on, updated_on`

func scanRental(row interface{ Scan(...interface{}) error }) (*domain.Rental, error) {
	rt := &domain.Rental{}
	err := row.Scan(&rt.ID, &rt.Reference, &rt.CustomerID, &rt.VehicleID, &rt.StartDate, &rt.EndDate,
		&rt.PickupLocationID, &rt.ReturnLocationID, &rt.Status, &rt.TotalAmountCents, &rt.PaymentStatus,
		&rt.MileageOut, &rt.MileageIn, &rt.FuelLevelOut, &rt.FuelLevelIn, &rt.Notes, &rt.StaffID,
		&rt.CreatedOn, &rt.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (reference, customer_id, vehicle_id, start_date, end_date, pickup_location_id, return_location_id, status, total_amount_cents, payment_status, notes, staff_id, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, rt.Reference, rt.CustomerID, rt.VehicleID, rt.StartDate, rt.EndDate,
		rt.PickupLocationID, rt.ReturnLocationID, rt.Status, rt.TotalAmountCents, rt.PaymentStatus,
		rt.Notes, rt.StaffID, now, now).Scan(&rt.ID)
	if err != nil {
		return err
	}

	for i := range rt.Options {
		opt := &rt.Options[i]
		opt.RentalID = rt.ID
		optQuery := `INSERT INTO rental_options (rental_id, option_id, quantity, price_cents) VALUES ($1, $2, $3, $4) RETURNING id`
		if err := r.db.QueryRowContext(ctx, optQuery, opt.RentalID, opt.OptionID, opt.Quantity, opt.PriceCents).Scan(&opt.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("rental %d: %w", id, domain.ErrNotFound)
	}
	return rt, err
}

func (r *rentalRepository) GetByReference(ctx context.Context, reference string) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE reference = $1`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, reference))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("rental %s: %w", reference, domain.ErrNotFound)
	}
	return rt, err
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET status=$1, end_date=$2, total_amount_cents=$3, payment_status=$4, mileage_out=$5, mileage_in=$6, fuel_level_out=$7, fuel_level_in=$8, notes=$9, updated_on=$10 WHERE id=$11`
	_, err := r.db.ExecContext(ctx, query, rt.Status, rt.EndDate, rt.TotalAmountCents, rt.PaymentStatus,
		rt.MileageOut, rt.MileageIn, rt.FuelLevelOut, rt.FuelLevelIn, rt.Notes, time.Now(), rt.ID)
	return err
}

func (r *rentalRepository) ListOverlapping(ctx context.Context, vehicleID int32, statuses []domain.RentalStatus, start, end time.Time) ([]domain.Rental, error) {
	// Inclusive overlap: existing.start <= requested.end AND
	// existing.end >= requested.start.
	query := `SELECT ` + rentalColumns + ` FROM rentals
	          WHERE vehicle_id = $1 AND status = ANY($2) AND start_date <= $3 AND end_date >= $4
	          ORDER BY start_date`
	ss := make([]string, len(statuses))
	for i, s := range statuses {
		ss[i] = string(s)
	}
	rows, err := r.db.QueryContext(ctx, query, vehicleID, pq.Array(ss), end, start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) ListByVehicle(ctx context.Context, vehicleID int32, status domain.RentalStatus) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE vehicle_id = $1`
	args := []interface{}{vehicleID}
	if status != "" {
		query += " AND status = $2"
		args = append(args, status)
	}
	query += " ORDER BY start_date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) GetOptions(ctx context.Context, rentalID int32) ([]domain.RentalOption, error) {
	query := `SELECT id, rental_id, option_id, quantity, price_cents FROM rental_options WHERE rental_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opts []domain.RentalOption
	for rows.Next() {
		var o domain.RentalOption
		if err := rows.Scan(&o.ID, &o.RentalID, &o.OptionID, &o.Quantity, &o.PriceCents); err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return opts, rows.Err()
}
