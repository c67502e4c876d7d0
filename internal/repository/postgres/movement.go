package postgres

import (
	"context"
	"time"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/repository"
)

type movementRepository struct {
	db dbtx
}

func NewMovementRepository(db dbtx) repository.MovementRepository {
	return &movementRepository{db: db}
}

func (r *movementRepository) ListOverlapping(ctx context.Context, vehicleID int32, start, end time.Time) ([]domain.Movement, error) {
	// Same inclusive overlap predicate as rentals.
	query := `SELECT id, vehicle_id, type, start_date, end_date, from_location_id, to_location_id, notes, created_on
	          FROM vehicle_movements WHERE vehicle_id = $1 AND start_date <= $2 AND end_date >= $3
	          ORDER BY start_date`
	rows, err := r.db.QueryContext(ctx, query, vehicleID, end, start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []domain.Movement
	for rows.Next() {
		var m domain.Movement
		if err := rows.Scan(&m.ID, &m.VehicleID, &m.Type, &m.StartDate, &m.EndDate,
			&m.FromLocationID, &m.ToLocationID, &m.Notes, &m.CreatedOn); err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}
