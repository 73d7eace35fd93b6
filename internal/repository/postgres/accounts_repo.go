package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kmagpayo/yieldtrack-backend/internal/models"
)

type accountsRepo struct{ pool *pgxpool.Pool }

const accountCols = `id, owner_id, display_name, bank_name, balance, yield_rate, created_at, updated_at`

func (r *accountsRepo) Create(ctx context.Context, a models.BankAccount) (models.BankAccount, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO bank_accounts(id, owner_id, display_name, bank_name, balance, yield_rate)
		 VALUES($1,$2,$3,$4,$5,$6)
		 RETURNING `+accountCols,
		a.ID, a.OwnerID, a.DisplayName, a.BankName, a.Balance, a.YieldRate,
	).Scan(&a.ID, &a.OwnerID, &a.DisplayName, &a.BankName, &a.Balance, &a.YieldRate, &a.CreatedAt, &a.UpdatedAt)
	return a, mapErr(err)
}

func (r *accountsRepo) GetByID(ctx context.Context, id string) (models.BankAccount, error) {
	var a models.BankAccount
	err := r.pool.QueryRow(ctx,
		`SELECT `+accountCols+` FROM bank_accounts WHERE id=$1`, id,
	).Scan(&a.ID, &a.OwnerID, &a.DisplayName, &a.BankName, &a.Balance, &a.YieldRate, &a.CreatedAt, &a.UpdatedAt)
	return a, mapErr(err)
}

func (r *accountsRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.BankAccount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+accountCols+` FROM bank_accounts WHERE owner_id=$1 ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	return collectAccounts(rows)
}

func (r *accountsRepo) ListByBank(ctx context.Context, bankName string) ([]models.BankAccount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+accountCols+` FROM bank_accounts WHERE bank_name=$1`, bankName)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()
	return collectAccounts(rows)
}

// Update writes the owner-mutable columns plus the yield_rate the binder
// resolved for them. Propagation uses UpdateYieldRate instead.
func (r *accountsRepo) Update(ctx context.Context, a models.BankAccount) (models.BankAccount, error) {
	err := r.pool.QueryRow(ctx,
		`UPDATE bank_accounts
		    SET display_name=$2, bank_name=$3, balance=$4, yield_rate=$5, updated_at=now()
		  WHERE id=$1
		  RETURNING `+accountCols,
		a.ID, a.DisplayName, a.BankName, a.Balance, a.YieldRate,
	).Scan(&a.ID, &a.OwnerID, &a.DisplayName, &a.BankName, &a.Balance, &a.YieldRate, &a.CreatedAt, &a.UpdatedAt)
	return a, mapErr(err)
}

func (r *accountsRepo) UpdateYieldRate(ctx context.Context, id string, rate decimal.Decimal) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE bank_accounts SET yield_rate=$2, updated_at=now() WHERE id=$1`,
		id, rate,
	)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *accountsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bank_accounts WHERE id=$1`, id)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func collectAccounts(rows pgx.Rows) ([]models.BankAccount, error) {
	var out []models.BankAccount
	for rows.Next() {
		var a models.BankAccount
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.DisplayName, &a.BankName, &a.Balance, &a.YieldRate, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
