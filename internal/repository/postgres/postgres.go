package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"fleetrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

// dbtx is the subset of database/sql shared by *sql.DB and *sql.Tx,
// so every repository works both on the pool and inside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type Store struct {
	db *sql.DB
	repository.VehicleRepository
	repository.RentalRepository
	repository.RateRepository
	repository.OptionRepository
	repository.MovementRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		VehicleRepository:  NewVehicleRepository(db),
		RentalRepository:   NewRentalRepository(db),
		RateRepository:     NewRateRepository(db),
		OptionRepository:   NewOptionRepository(db),
		MovementRepository: NewMovementRepository(db),
	}
}

// WithinTx runs fn with transaction-scoped repositories, committing on
// success and rolling back on error or panic.
func (s *Store) WithinTx(ctx context.Context, fn func(r repository.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	repos := repository.Repositories{
		Vehicles:  NewVehicleRepository(tx),
		Rentals:   NewRentalRepository(tx),
		Rates:     NewRateRepository(tx),
		Options:   NewOptionRepository(tx),
		Movements: NewMovementRepository(tx),
	}

	if err := fn(repos); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
