package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type QuoteRepository interface {
	Create(ctx context.Context, quote *domain.Quote) error
	GetByID(ctx context.Context, id string) (*domain.Quote, error)
	ExpireActiveBefore(ctx context.Context, deadline time.Time) ([]domain.Quote, error)
}

type PGQuoteRepository struct {
	db *pgxpool.Pool
}

func NewQuoteRepository(db *pgxpool.Pool) QuoteRepository {
	return &PGQuoteRepository{db: db}
}

const quoteColumns = `id, unit_id, start_date, end_date, nights, group_size, children, children_ages,
	base_price_cents, final_price_cents, currency, adjustments, status, expires_at, created_at`

func (r *PGQuoteRepository) Create(ctx context.Context, q *domain.Quote) error {
	adjustments := q.Adjustments
	if adjustments == nil {
		adjustments = []domain.AppliedAdjustment{}
	}
	ages := q.Params.ChildrenAges
	if ages == nil {
		ages = []int{}
	}
	return r.db.QueryRow(ctx, `INSERT INTO quotes (id, unit_id, start_date, end_date, nights, group_size, children, children_ages,
			base_price_cents, final_price_cents, currency, adjustments, status, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at`,
		q.ID, q.UnitID, q.StartDate, q.EndDate, q.Nights, q.Params.GroupSize, q.Params.Children, ages,
		q.BasePriceCents, q.FinalPriceCents, q.Currency, adjustments, q.Status, q.ExpiresAt).
		Scan(&q.CreatedAt)
}

func (r *PGQuoteRepository) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	row := r.db.QueryRow(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id=$1`, id)
	q, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("quote %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return q, nil
}

func (r *PGQuoteRepository) ExpireActiveBefore(ctx context.Context, deadline time.Time) ([]domain.Quote, error) {
	rows, err := r.db.Query(ctx, `UPDATE quotes SET status=$1 WHERE status=$2 AND expires_at <= $3 RETURNING `+quoteColumns,
		domain.QuoteStatusExpired, domain.QuoteStatusActive, deadline)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expired []domain.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		expired = append(expired, *q)
	}
	return expired, rows.Err()
}

func scanQuote(row pgx.Row) (*domain.Quote, error) {
	var q domain.Quote
	if err := row.Scan(&q.ID, &q.UnitID, &q.StartDate, &q.EndDate, &q.Nights, &q.Params.GroupSize, &q.Params.Children, &q.Params.ChildrenAges,
		&q.BasePriceCents, &q.FinalPriceCents, &q.Currency, &q.Adjustments, &q.Status, &q.ExpiresAt, &q.CreatedAt); err != nil {
		return nil, err
	}
	return &q, nil
}

var _ QuoteRepository = (*PGQuoteRepository)(nil)
