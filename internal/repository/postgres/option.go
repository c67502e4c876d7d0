package postgres

import (
	"context"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/repository"

	"github.com/lib/pq"
)

type optionRepository struct {
	db dbtx
}

func NewOptionRepository(db dbtx) repository.OptionRepository {
	return &optionRepository{db: db}
}

func (r *optionRepository) ListActiveByIDs(ctx context.Context, ids []int32) ([]domain.AdditionalOption, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT id, name, type, price_cents, is_active FROM additional_options WHERE id = ANY($1) AND is_active = true`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opts []domain.AdditionalOption
	for rows.Next() {
		var o domain.AdditionalOption
		if err := rows.Scan(&o.ID, &o.Name, &o.Type, &o.PriceCents, &o.IsActive); err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return opts, rows.Err()
}
