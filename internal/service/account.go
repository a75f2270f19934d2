package service

import (
	"context"

	"github.com/mfreitas/bancario/internal/domain"
	"github.com/shopspring/decimal"
)

// AccountService is the ledger: it owns account records and the two
// balance-mutating operations. Deposits and withdrawals address the
// account by its number (the natural key); deletion uses the surrogate
// id, mirroring the rest of the registries.
type AccountService struct {
	repo      AccountRepository
	customers customerResolver
	branches  branchResolver
}

func NewAccountService(repo AccountRepository, customers customerResolver, branches branchResolver) *AccountService {
	return &AccountService{repo: repo, customers: customers, branches: branches}
}

// Open creates an account after resolving both foreign references.
// Validation failures are detected before any write is attempted.
func (s *AccountService) Open(ctx context.Context, number int, initialBalance decimal.Decimal, customerID, branchID int64) (*domain.Account, error) {
	if initialBalance.IsNegative() {
		return nil, domain.Validationf("initial balance cannot be negative")
	}
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	if _, err := s.branches.GetByID(ctx, branchID); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &domain.Account{
		Number:     number,
		Balance:    initialBalance,
		CustomerID: customerID,
		BranchID:   branchID,
	})
}

func (s *AccountService) GetByNumber(ctx context.Context, number int) (*domain.Account, error) {
	return s.repo.GetByNumber(ctx, number)
}

// Deposit credits the account. The read-modify-write runs under the
// account's row lock, so concurrent deposits never lose an update.
func (s *AccountService) Deposit(ctx context.Context, number int, amount decimal.Decimal) (*domain.Account, error) {
	if amount.Sign() <= 0 {
		return nil, domain.InvalidOperationf("deposit amount must be positive")
	}
	return s.repo.UpdateBalance(ctx, number, func(balance decimal.Decimal) (decimal.Decimal, error) {
		return balance.Add(amount), nil
	})
}

// Withdraw debits the account. A withdrawal that would drive the
// balance negative is rejected in full; the balance is untouched.
func (s *AccountService) Withdraw(ctx context.Context, number int, amount decimal.Decimal) (*domain.Account, error) {
	if amount.Sign() <= 0 {
		return nil, domain.InvalidOperationf("withdrawal amount must be positive")
	}
	return s.repo.UpdateBalance(ctx, number, func(balance decimal.Decimal) (decimal.Decimal, error) {
		newBalance := balance.Sub(amount)
		if newBalance.IsNegative() {
			return decimal.Decimal{}, domain.InvalidOperationf("insufficient funds for withdrawal")
		}
		return newBalance, nil
	})
}

// Delete removes the account row unconditionally; a nonzero balance
// does not block deletion.
func (s *AccountService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
