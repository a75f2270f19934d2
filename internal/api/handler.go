package api

import (
	"context"
	"log/slog"

	"github.com/mfreitas/bancario/internal/domain"
	"github.com/shopspring/decimal"
)

// Service contracts the handlers call into. Declared here so handler
// tests can substitute mocks without touching the service package.

type BankService interface {
	Create(ctx context.Context, code int, name, taxID string) (*domain.Bank, error)
	GetByID(ctx context.Context, id int64) (*domain.Bank, error)
	GetByCode(ctx context.Context, code int) (*domain.Bank, error)
	SearchByName(ctx context.Context, name string) ([]domain.Bank, error)
	ListAll(ctx context.Context) ([]domain.Bank, error)
	Update(ctx context.Context, id int64, code int, name, taxID string) (*domain.Bank, error)
	Delete(ctx context.Context, id int64) error
}

type BranchService interface {
	Create(ctx context.Context, number int, name string, bankID int64) (*domain.Branch, error)
	GetByID(ctx context.Context, id int64) (*domain.Branch, error)
	GetByNumber(ctx context.Context, number int) (*domain.Branch, error)
	ListByBank(ctx context.Context, bankID int64) ([]domain.Branch, error)
	Update(ctx context.Context, id int64, number int, name string, bankID int64) (*domain.Branch, error)
	Delete(ctx context.Context, id int64) error
}

type CustomerService interface {
	Create(ctx context.Context, taxID, name string) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error)
	SearchByName(ctx context.Context, name string) ([]domain.Customer, error)
	Update(ctx context.Context, id int64, taxID, name string) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type AccountService interface {
	Open(ctx context.Context, number int, initialBalance decimal.Decimal, customerID, branchID int64) (*domain.Account, error)
	GetByNumber(ctx context.Context, number int) (*domain.Account, error)
	Deposit(ctx context.Context, number int, amount decimal.Decimal) (*domain.Account, error)
	Withdraw(ctx context.Context, number int, amount decimal.Decimal) (*domain.Account, error)
	Delete(ctx context.Context, id int64) error
}

// Handler binds the HTTP surface to the four services.
type Handler struct {
	banks     BankService
	branches  BranchService
	customers CustomerService
	accounts  AccountService
	logger    *slog.Logger
}

func NewHandler(banks BankService, branches BranchService, customers CustomerService, accounts AccountService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		banks:     banks,
		branches:  branches,
		customers: customers,
		accounts:  accounts,
		logger:    logger,
	}
}
