package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mfreitas/bancario/internal/domain"
	"github.com/shopspring/decimal"
)

// AccountRepository persists accounts. Balance mutations go through
// UpdateBalance, which holds a row lock for the duration of the
// transaction so concurrent operations on the same account serialize.
type AccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	err := r.db.QueryRow(ctx,
		"INSERT INTO accounts (number, balance, customer_id, branch_id) VALUES ($1, $2, $3, $4) RETURNING id",
		account.Number, account.Balance, account.CustomerID, account.BranchID,
	).Scan(&account.ID)
	if err != nil {
		if _, ok := pgError(err, codeUniqueViolation); ok {
			return nil, domain.Conflictf("account already registered with number %d", account.Number)
		}
		if pgErr, ok := pgError(err, codeForeignKeyViolation); ok {
			if pgErr.ConstraintName == "accounts_customer_id_fkey" {
				return nil, domain.NotFoundf("customer not found with id %d", account.CustomerID)
			}
			return nil, domain.NotFoundf("branch not found with id %d", account.BranchID)
		}
		return nil, err
	}
	return account, nil
}

func (r *AccountRepository) GetByNumber(ctx context.Context, number int) (*domain.Account, error) {
	var a domain.Account
	err := r.db.QueryRow(ctx,
		"SELECT id, number, balance, customer_id, branch_id FROM accounts WHERE number = $1", number,
	).Scan(&a.ID, &a.Number, &a.Balance, &a.CustomerID, &a.BranchID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundf("account not found with number %d", number)
		}
		return nil, err
	}
	return &a, nil
}

// UpdateBalance loads the account row under FOR UPDATE, applies the
// caller's balance function, and persists the result in the same
// transaction. If apply returns an error nothing is written.
func (r *AccountRepository) UpdateBalance(ctx context.Context, number int, apply func(balance decimal.Decimal) (decimal.Decimal, error)) (*domain.Account, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("tx begin failed: %w", err)
	}
	defer tx.Rollback(ctx)

	var a domain.Account
	err = tx.QueryRow(ctx,
		"SELECT id, number, balance, customer_id, branch_id FROM accounts WHERE number = $1 FOR UPDATE", number,
	).Scan(&a.ID, &a.Number, &a.Balance, &a.CustomerID, &a.BranchID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundf("account not found with number %d", number)
		}
		return nil, fmt.Errorf("lock acquisition failed: %w", err)
	}

	newBalance, err := apply(a.Balance)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx,
		"UPDATE accounts SET balance = $1 WHERE id = $2", newBalance, a.ID); err != nil {
		return nil, fmt.Errorf("balance update failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("tx commit failed: %w", err)
	}

	a.Balance = newBalance
	return &a, nil
}

func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM accounts WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundf("account not found with id %d", id)
	}
	return nil
}
