package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kmagpayo/yieldtrack-backend/internal/models"
)

type yieldRatesRepo struct{ pool *pgxpool.Pool }

// bank_name is the primary key; concurrent upserts for the same bank are
// last-write-wins at the row level.
func (r *yieldRatesRepo) Upsert(ctx context.Context, bankName string, rate decimal.Decimal) (models.YieldRate, error) {
	var yr models.YieldRate
	err := r.pool.QueryRow(ctx,
		`INSERT INTO yield_rates(bank_name, rate, last_updated)
		 VALUES($1, $2, now())
		 ON CONFLICT (bank_name) DO UPDATE
		 SET rate = EXCLUDED.rate, last_updated = now()
		 RETURNING bank_name, rate, last_updated`,
		bankName, rate,
	).Scan(&yr.BankName, &yr.Rate, &yr.LastUpdated)
	return yr, mapErr(err)
}

func (r *yieldRatesRepo) GetByBank(ctx context.Context, bankName string) (models.YieldRate, error) {
	var yr models.YieldRate
	err := r.pool.QueryRow(ctx,
		`SELECT bank_name, rate, last_updated FROM yield_rates WHERE bank_name=$1`,
		bankName,
	).Scan(&yr.BankName, &yr.Rate, &yr.LastUpdated)
	return yr, mapErr(err)
}

func (r *yieldRatesRepo) List(ctx context.Context) ([]models.YieldRate, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT bank_name, rate, last_updated FROM yield_rates ORDER BY bank_name`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var out []models.YieldRate
	for rows.Next() {
		var yr models.YieldRate
		if err := rows.Scan(&yr.BankName, &yr.Rate, &yr.LastUpdated); err != nil {
			return nil, err
		}
		out = append(out, yr)
	}
	return out, rows.Err()
}
