package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ConstraintRepository interface {
	Get(ctx context.Context, unitType string) (*domain.ConstraintSettings, error)
	Upsert(ctx context.Context, settings *domain.ConstraintSettings) error
}

type PGConstraintRepository struct {
	db *pgxpool.Pool
}

func NewConstraintRepository(db *pgxpool.Pool) ConstraintRepository {
	return &PGConstraintRepository{db: db}
}

func (r *PGConstraintRepository) Get(ctx context.Context, unitType string) (*domain.ConstraintSettings, error) {
	row := r.db.QueryRow(ctx, `SELECT unit_type, range_unit_enabled, range_type_enabled, updated_at FROM constraint_settings WHERE unit_type=$1`, unitType)
	var s domain.ConstraintSettings
	if err := row.Scan(&s.UnitType, &s.RangeUnitEnabled, &s.RangeTypeEnabled, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("constraint settings %q: %w", unitType, domain.ErrNotFound)
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGConstraintRepository) Upsert(ctx context.Context, settings *domain.ConstraintSettings) error {
	return r.db.QueryRow(ctx, `INSERT INTO constraint_settings (unit_type, range_unit_enabled, range_type_enabled)
		VALUES ($1, $2, $3)
		ON CONFLICT (unit_type) DO UPDATE
		SET range_unit_enabled = EXCLUDED.range_unit_enabled,
		    range_type_enabled = EXCLUDED.range_type_enabled,
		    updated_at = now()
		RETURNING updated_at`, settings.UnitType, settings.RangeUnitEnabled, settings.RangeTypeEnabled).
		Scan(&settings.UpdatedAt)
}

var _ ConstraintRepository = (*PGConstraintRepository)(nil)
