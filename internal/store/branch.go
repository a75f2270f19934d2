package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mfreitas/bancario/internal/domain"
)

// BranchRepository persists branches. The bank reference is validated
// by the service layer before any write lands here; the foreign key is
// a backstop, not the primary check.
type BranchRepository struct {
	db *pgxpool.Pool
}

func NewBranchRepository(db *pgxpool.Pool) *BranchRepository {
	return &BranchRepository{db: db}
}

func (r *BranchRepository) Create(ctx context.Context, branch *domain.Branch) (*domain.Branch, error) {
	err := r.db.QueryRow(ctx,
		"INSERT INTO branches (number, name, bank_id) VALUES ($1, $2, $3) RETURNING id",
		branch.Number, branch.Name, branch.BankID,
	).Scan(&branch.ID)
	if err != nil {
		return nil, translateBranchWriteErr(err, branch)
	}
	return branch, nil
}

func (r *BranchRepository) GetByID(ctx context.Context, id int64) (*domain.Branch, error) {
	var b domain.Branch
	err := r.db.QueryRow(ctx,
		"SELECT id, number, name, bank_id FROM branches WHERE id = $1", id,
	).Scan(&b.ID, &b.Number, &b.Name, &b.BankID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundf("branch not found with id %d", id)
		}
		return nil, err
	}
	return &b, nil
}

func (r *BranchRepository) GetByNumber(ctx context.Context, number int) (*domain.Branch, error) {
	var b domain.Branch
	err := r.db.QueryRow(ctx,
		"SELECT id, number, name, bank_id FROM branches WHERE number = $1", number,
	).Scan(&b.ID, &b.Number, &b.Name, &b.BankID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundf("branch not found with number %d", number)
		}
		return nil, err
	}
	return &b, nil
}

func (r *BranchRepository) ListByBank(ctx context.Context, bankID int64) ([]domain.Branch, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, number, name, bank_id FROM branches WHERE bank_id = $1 ORDER BY id", bankID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	branches := []domain.Branch{}
	for rows.Next() {
		var b domain.Branch
		if err := rows.Scan(&b.ID, &b.Number, &b.Name, &b.BankID); err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

func (r *BranchRepository) Update(ctx context.Context, branch *domain.Branch) (*domain.Branch, error) {
	tag, err := r.db.Exec(ctx,
		"UPDATE branches SET number = $1, name = $2, bank_id = $3 WHERE id = $4",
		branch.Number, branch.Name, branch.BankID, branch.ID)
	if err != nil {
		return nil, translateBranchWriteErr(err, branch)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.NotFoundf("branch not found with id %d", branch.ID)
	}
	return branch, nil
}

func (r *BranchRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM branches WHERE id = $1", id)
	if err != nil {
		if _, ok := pgError(err, codeForeignKeyViolation); ok {
			return domain.Conflictf("branch %d is still referenced by accounts", id)
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundf("branch not found with id %d", id)
	}
	return nil
}

func translateBranchWriteErr(err error, branch *domain.Branch) error {
	if _, ok := pgError(err, codeUniqueViolation); ok {
		return domain.Conflictf("branch already registered with number %d", branch.Number)
	}
	if _, ok := pgError(err, codeForeignKeyViolation); ok {
		return domain.NotFoundf("bank not found with id %d", branch.BankID)
	}
	return err
}
