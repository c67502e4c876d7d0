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

type vehicleRepository struct {
	db dbtx
}

func NewVehicleRepository(db dbtx) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, plate_number, make, model, year, group_id, location_id, status, mileage, fuel_level, is_active, created_on, updated_on`

func scanVehicle(row interface{ Scan(...interface{}) error }) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	err := row.Scan(&v.ID, &v.PlateNumber, &v.Make, &v.Model, &v.Year, &v.GroupID, &v.LocationID, &v.Status, &v.Mileage, &v.FuelLevel, &v.IsActive, &v.CreatedOn, &v.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	v, err := scanVehicle(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("vehicle %d: %w", id, domain.ErrNotFound)
	}
	return v, err
}

func (r *vehicleRepository) GetByIDForUpdate(ctx context.Context, id int32) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1 FOR UPDATE`
	v, err := scanVehicle(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("vehicle %d: %w", id, domain.ErrNotFound)
	}
	return v, err
}

func (r *vehicleRepository) UpdateState(ctx context.Context, id int32, status domain.VehicleStatus, mileage int32, fuelLevel float64) error {
	query := `UPDATE vehicles SET status=$1, mileage=$2, fuel_level=$3, updated_on=$4 WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query, status, mileage, fuelLevel, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("vehicle %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *vehicleRepository) List(ctx context.Context, f repository.VehicleFilters) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if f.ActiveOnly {
		query += " AND is_active = true"
	}
	if f.LocationID != nil {
		query += fmt.Sprintf(" AND location_id = $%d", argIdx)
		args = append(args, *f.LocationID)
		argIdx++
	}
	if f.GroupID != nil {
		query += fmt.Sprintf(" AND group_id = $%d", argIdx)
		args = append(args, *f.GroupID)
		argIdx++
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		query += fmt.Sprintf(" AND status = ANY($%d)", argIdx)
		args = append(args, pq.Array(statuses))
		argIdx++
	}
	query += " ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, rows.Err()
}
