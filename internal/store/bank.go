package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mfreitas/bancario/internal/domain"
)

// BankRepository persists banks.
type BankRepository struct {
	db *pgxpool.Pool
}

func NewBankRepository(db *pgxpool.Pool) *BankRepository {
	return &BankRepository{db: db}
}

func (r *BankRepository) Create(ctx context.Context, bank *domain.Bank) (*domain.Bank, error) {
	err := r.db.QueryRow(ctx,
		"INSERT INTO banks (code, name, tax_id) VALUES ($1, $2, $3) RETURNING id",
		bank.Code, bank.Name, bank.TaxID,
	).Scan(&bank.ID)
	if err != nil {
		return nil, r.translateWriteErr(err, bank)
	}
	return bank, nil
}

func (r *BankRepository) GetByID(ctx context.Context, id int64) (*domain.Bank, error) {
	var b domain.Bank
	err := r.db.QueryRow(ctx,
		"SELECT id, code, name, tax_id FROM banks WHERE id = $1", id,
	).Scan(&b.ID, &b.Code, &b.Name, &b.TaxID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundf("bank not found with id %d", id)
		}
		return nil, err
	}
	return &b, nil
}

func (r *BankRepository) GetByCode(ctx context.Context, code int) (*domain.Bank, error) {
	var b domain.Bank
	err := r.db.QueryRow(ctx,
		"SELECT id, code, name, tax_id FROM banks WHERE code = $1", code,
	).Scan(&b.ID, &b.Code, &b.Name, &b.TaxID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundf("bank not found with code %d", code)
		}
		return nil, err
	}
	return &b, nil
}

func (r *BankRepository) SearchByName(ctx context.Context, name string) ([]domain.Bank, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, code, name, tax_id FROM banks WHERE name ILIKE '%' || $1 || '%' ORDER BY id", name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBanks(rows)
}

func (r *BankRepository) ListAll(ctx context.Context) ([]domain.Bank, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, code, name, tax_id FROM banks ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBanks(rows)
}

func (r *BankRepository) Update(ctx context.Context, bank *domain.Bank) (*domain.Bank, error) {
	tag, err := r.db.Exec(ctx,
		"UPDATE banks SET code = $1, name = $2, tax_id = $3 WHERE id = $4",
		bank.Code, bank.Name, bank.TaxID, bank.ID)
	if err != nil {
		return nil, r.translateWriteErr(err, bank)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.NotFoundf("bank not found with id %d", bank.ID)
	}
	return bank, nil
}

func (r *BankRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM banks WHERE id = $1", id)
	if err != nil {
		if _, ok := pgError(err, codeForeignKeyViolation); ok {
			return domain.Conflictf("bank %d is still referenced by branches", id)
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundf("bank not found with id %d", id)
	}
	return nil
}

func (r *BankRepository) translateWriteErr(err error, bank *domain.Bank) error {
	pgErr, ok := pgError(err, codeUniqueViolation)
	if !ok {
		return err
	}
	switch pgErr.ConstraintName {
	case "banks_tax_id_key":
		return domain.Conflictf("bank already registered with tax id %s", bank.TaxID)
	default:
		return domain.Conflictf("bank already registered with code %d", bank.Code)
	}
}

func scanBanks(rows pgx.Rows) ([]domain.Bank, error) {
	banks := []domain.Bank{}
	for rows.Next() {
		var b domain.Bank
		if err := rows.Scan(&b.ID, &b.Code, &b.Name, &b.TaxID); err != nil {
			return nil, err
		}
		banks = append(banks, b)
	}
	return banks, rows.Err()
}
