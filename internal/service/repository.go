package service

import (
	"context"

	"github.com/mfreitas/bancario/internal/domain"
	"github.com/shopspring/decimal"
)

// Persistence contracts the services depend on. The Postgres
// implementations live in internal/store; tests substitute in-memory
// fakes. Repositories return domain errors for expected failures
// (NotFound on missing rows, Conflict on natural-key collisions).

type BankRepository interface {
	Create(ctx context.Context, bank *domain.Bank) (*domain.Bank, error)
	GetByID(ctx context.Context, id int64) (*domain.Bank, error)
	GetByCode(ctx context.Context, code int) (*domain.Bank, error)
	SearchByName(ctx context.Context, name string) ([]domain.Bank, error)
	ListAll(ctx context.Context) ([]domain.Bank, error)
	Update(ctx context.Context, bank *domain.Bank) (*domain.Bank, error)
	Delete(ctx context.Context, id int64) error
}

type BranchRepository interface {
	Create(ctx context.Context, branch *domain.Branch) (*domain.Branch, error)
	GetByID(ctx context.Context, id int64) (*domain.Branch, error)
	GetByNumber(ctx context.Context, number int) (*domain.Branch, error)
	ListByBank(ctx context.Context, bankID int64) ([]domain.Branch, error)
	Update(ctx context.Context, branch *domain.Branch) (*domain.Branch, error)
	Delete(ctx context.Context, id int64) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error)
	SearchByName(ctx context.Context, name string) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByNumber(ctx context.Context, number int) (*domain.Account, error)
	// UpdateBalance runs apply with the current balance while holding
	// the account's row lock; the returned balance is persisted in the
	// same transaction. An error from apply aborts without writing.
	UpdateBalance(ctx context.Context, number int, apply func(balance decimal.Decimal) (decimal.Decimal, error)) (*domain.Account, error)
	Delete(ctx context.Context, id int64) error
}

// Resolvers other services expose for foreign-reference checks.

type bankResolver interface {
	GetByID(ctx context.Context, id int64) (*domain.Bank, error)
}

type branchResolver interface {
	GetByID(ctx context.Context, id int64) (*domain.Branch, error)
}

type customerResolver interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}
