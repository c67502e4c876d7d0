package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/repository"
)

type rateRepository struct {
	db dbtx
}

func NewRateRepository(db dbtx) repository.RateRepository {
	return &rateRepository{db: db}
}

func (r *rateRepository) GetGroup(ctx context.Context, id int32) (*domain.VehicleGroup, error) {
	g := &domain.VehicleGroup{}
	query := `SELECT id, name, description FROM vehicle_groups WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Name, &g.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("vehicle group %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *rateRepository) ListActiveByGroup(ctx context.Context, groupID int32) ([]domain.RateDefinition, error) {
	query := `SELECT id, group_id, season, daily_rate_cents, weekly_rate_cents, monthly_rate_cents, weekend_rate_cents, valid_from, valid_to, is_active
	          FROM rate_definitions WHERE group_id = $1 AND is_active = true ORDER BY valid_from DESC NULLS LAST`
	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []domain.RateDefinition
	for rows.Next() {
		var rd domain.RateDefinition
		if err := rows.Scan(&rd.ID, &rd.GroupID, &rd.Season, &rd.DailyRateCents, &rd.WeeklyRateCents,
			&rd.MonthlyRateCents, &rd.WeekendRateCents, &rd.ValidFrom, &rd.ValidTo, &rd.IsActive); err != nil {
			return nil, err
		}
		rates = append(rates, rd)
	}
	return rates, rows.Err()
}
