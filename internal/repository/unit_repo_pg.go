package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UnitRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Unit, error)
	List(ctx context.Context) ([]domain.Unit, error)
}

type PGUnitRepository struct {
	db *pgxpool.Pool
}

func NewUnitRepository(db *pgxpool.Pool) UnitRepository {
	return &PGUnitRepository{db: db}
}

const unitColumns = `id, type, name, base_occupancy, max_occupancy, nightly_rate_cents, currency, created_at, updated_at`

func (r *PGUnitRepository) GetByID(ctx context.Context, id int64) (*domain.Unit, error) {
	row := r.db.QueryRow(ctx, `SELECT `+unitColumns+` FROM units WHERE id=$1`, id)
	u, err := scanUnit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("unit %d: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return u, nil
}

func (r *PGUnitRepository) List(ctx context.Context) ([]domain.Unit, error) {
	rows, err := r.db.Query(ctx, `SELECT `+unitColumns+` FROM units ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	units := make([]domain.Unit, 0)
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, *u)
	}
	return units, rows.Err()
}

func scanUnit(row pgx.Row) (*domain.Unit, error) {
	var u domain.Unit
	if err := row.Scan(&u.ID, &u.Type, &u.Name, &u.BaseOccupancy, &u.MaxOccupancy, &u.NightlyRateCents, &u.Currency, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

var _ UnitRepository = (*PGUnitRepository)(nil)
