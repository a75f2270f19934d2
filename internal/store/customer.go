package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mfreitas/bancario/internal/domain"
)

// CustomerRepository persists customers.
type CustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	err := r.db.QueryRow(ctx,
		"INSERT INTO customers (tax_id, name) VALUES ($1, $2) RETURNING id",
		customer.TaxID, customer.Name,
	).Scan(&customer.ID)
	if err != nil {
		if _, ok := pgError(err, codeUniqueViolation); ok {
			return nil, domain.Conflictf("customer already registered with tax id %s", customer.TaxID)
		}
		return nil, err
	}
	return customer, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.QueryRow(ctx,
		"SELECT id, tax_id, name FROM customers WHERE id = $1", id,
	).Scan(&c.ID, &c.TaxID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundf("customer not found with id %d", id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.QueryRow(ctx,
		"SELECT id, tax_id, name FROM customers WHERE tax_id = $1", taxID,
	).Scan(&c.ID, &c.TaxID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFoundf("customer not found with tax id %s", taxID)
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) SearchByName(ctx context.Context, name string) ([]domain.Customer, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, tax_id, name FROM customers WHERE name ILIKE '%' || $1 || '%' ORDER BY id", name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.TaxID, &c.Name); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	tag, err := r.db.Exec(ctx,
		"UPDATE customers SET tax_id = $1, name = $2 WHERE id = $3",
		customer.TaxID, customer.Name, customer.ID)
	if err != nil {
		if _, ok := pgError(err, codeUniqueViolation); ok {
			return nil, domain.Conflictf("customer already registered with tax id %s", customer.TaxID)
		}
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.NotFoundf("customer not found with id %d", customer.ID)
	}
	return customer, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		if _, ok := pgError(err, codeForeignKeyViolation); ok {
			return domain.Conflictf("customer %d is still referenced by accounts", id)
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundf("customer not found with id %d", id)
	}
	return nil
}
