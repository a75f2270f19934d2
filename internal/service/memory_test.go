package service

import (
	"context"
	"strings"
	"sync"

	"github.com/mfreitas/bancario/internal/domain"
	"github.com/shopspring/decimal"
)

// In-memory repositories used by the service tests. They enforce the
// same natural-key and referential behavior the Postgres layer does,
// and the account fake serializes UpdateBalance under a mutex, matching
// the row-lock guarantee.

type memBankRepo struct {
	mu     sync.Mutex
	nextID int64
	banks  map[int64]domain.Bank
}

func newMemBankRepo() *memBankRepo {
	return &memBankRepo{banks: map[int64]domain.Bank{}}
}

func (r *memBankRepo) Create(_ context.Context, bank *domain.Bank) (*domain.Bank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.banks {
		if b.Code == bank.Code {
			return nil, domain.Conflictf("bank already registered with code %d", bank.Code)
		}
		if b.TaxID == bank.TaxID {
			return nil, domain.Conflictf("bank already registered with tax id %s", bank.TaxID)
		}
	}
	r.nextID++
	bank.ID = r.nextID
	r.banks[bank.ID] = *bank
	return bank, nil
}

func (r *memBankRepo) GetByID(_ context.Context, id int64) (*domain.Bank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.banks[id]
	if !ok {
		return nil, domain.NotFoundf("bank not found with id %d", id)
	}
	return &b, nil
}

func (r *memBankRepo) GetByCode(_ context.Context, code int) (*domain.Bank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.banks {
		if b.Code == code {
			bank := b
			return &bank, nil
		}
	}
	return nil, domain.NotFoundf("bank not found with code %d", code)
}

func (r *memBankRepo) SearchByName(_ context.Context, name string) ([]domain.Bank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Bank{}
	for _, b := range r.banks {
		if strings.Contains(strings.ToLower(b.Name), strings.ToLower(name)) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBankRepo) ListAll(_ context.Context) ([]domain.Bank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Bank{}
	for _, b := range r.banks {
		out = append(out, b)
	}
	return out, nil
}

func (r *memBankRepo) Update(_ context.Context, bank *domain.Bank) (*domain.Bank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.banks[bank.ID]; !ok {
		return nil, domain.NotFoundf("bank not found with id %d", bank.ID)
	}
	for id, b := range r.banks {
		if id == bank.ID {
			continue
		}
		if b.Code == bank.Code {
			return nil, domain.Conflictf("bank already registered with code %d", bank.Code)
		}
		if b.TaxID == bank.TaxID {
			return nil, domain.Conflictf("bank already registered with tax id %s", bank.TaxID)
		}
	}
	r.banks[bank.ID] = *bank
	return bank, nil
}

func (r *memBankRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.banks[id]; !ok {
		return domain.NotFoundf("bank not found with id %d", id)
	}
	delete(r.banks, id)
	return nil
}

type memBranchRepo struct {
	mu       sync.Mutex
	nextID   int64
	branches map[int64]domain.Branch
}

func newMemBranchRepo() *memBranchRepo {
	return &memBranchRepo{branches: map[int64]domain.Branch{}}
}

func (r *memBranchRepo) Create(_ context.Context, branch *domain.Branch) (*domain.Branch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.branches {
		if b.Number == branch.Number {
			return nil, domain.Conflictf("branch already registered with number %d", branch.Number)
		}
	}
	r.nextID++
	branch.ID = r.nextID
	r.branches[branch.ID] = *branch
	return branch, nil
}

func (r *memBranchRepo) GetByID(_ context.Context, id int64) (*domain.Branch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.branches[id]
	if !ok {
		return nil, domain.NotFoundf("branch not found with id %d", id)
	}
	return &b, nil
}

func (r *memBranchRepo) GetByNumber(_ context.Context, number int) (*domain.Branch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.branches {
		if b.Number == number {
			branch := b
			return &branch, nil
		}
	}
	return nil, domain.NotFoundf("branch not found with number %d", number)
}

func (r *memBranchRepo) ListByBank(_ context.Context, bankID int64) ([]domain.Branch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Branch{}
	for _, b := range r.branches {
		if b.BankID == bankID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBranchRepo) Update(_ context.Context, branch *domain.Branch) (*domain.Branch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.branches[branch.ID]; !ok {
		return nil, domain.NotFoundf("branch not found with id %d", branch.ID)
	}
	for id, b := range r.branches {
		if id != branch.ID && b.Number == branch.Number {
			return nil, domain.Conflictf("branch already registered with number %d", branch.Number)
		}
	}
	r.branches[branch.ID] = *branch
	return branch, nil
}

func (r *memBranchRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.branches[id]; !ok {
		return domain.NotFoundf("branch not found with id %d", id)
	}
	delete(r.branches, id)
	return nil
}

type memCustomerRepo struct {
	mu        sync.Mutex
	nextID    int64
	customers map[int64]domain.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: map[int64]domain.Customer{}}
}

func (r *memCustomerRepo) Create(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if c.TaxID == customer.TaxID {
			return nil, domain.Conflictf("customer already registered with tax id %s", customer.TaxID)
		}
	}
	r.nextID++
	customer.ID = r.nextID
	r.customers[customer.ID] = *customer
	return customer, nil
}

func (r *memCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.NotFoundf("customer not found with id %d", id)
	}
	return &c, nil
}

func (r *memCustomerRepo) GetByTaxID(_ context.Context, taxID string) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.customers {
		if c.TaxID == taxID {
			customer := c
			return &customer, nil
		}
	}
	return nil, domain.NotFoundf("customer not found with tax id %s", taxID)
}

func (r *memCustomerRepo) SearchByName(_ context.Context, name string) ([]domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Customer{}
	for _, c := range r.customers {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(name)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCustomerRepo) Update(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[customer.ID]; !ok {
		return nil, domain.NotFoundf("customer not found with id %d", customer.ID)
	}
	for id, c := range r.customers {
		if id != customer.ID && c.TaxID == customer.TaxID {
			return nil, domain.Conflictf("customer already registered with tax id %s", customer.TaxID)
		}
	}
	r.customers[customer.ID] = *customer
	return customer, nil
}

func (r *memCustomerRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[id]; !ok {
		return domain.NotFoundf("customer not found with id %d", id)
	}
	delete(r.customers, id)
	return nil
}

type memAccountRepo struct {
	mu       sync.Mutex
	nextID   int64
	accounts map[int64]domain.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: map[int64]domain.Account{}}
}

func (r *memAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Number == account.Number {
			return nil, domain.Conflictf("account already registered with number %d", account.Number)
		}
	}
	r.nextID++
	account.ID = r.nextID
	r.accounts[account.ID] = *account
	return account, nil
}

func (r *memAccountRepo) GetByNumber(_ context.Context, number int) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Number == number {
			account := a
			return &account, nil
		}
	}
	return nil, domain.NotFoundf("account not found with number %d", number)
}

func (r *memAccountRepo) UpdateBalance(_ context.Context, number int, apply func(decimal.Decimal) (decimal.Decimal, error)) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, a := range r.accounts {
		if a.Number != number {
			continue
		}
		newBalance, err := apply(a.Balance)
		if err != nil {
			return nil, err
		}
		a.Balance = newBalance
		r.accounts[id] = a
		return &a, nil
	}
	return nil, domain.NotFoundf("account not found with number %d", number)
}

func (r *memAccountRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[id]; !ok {
		return domain.NotFoundf("account not found with id %d", id)
	}
	delete(r.accounts, id)
	return nil
}
