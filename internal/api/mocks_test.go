package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mfreitas/bancario/internal/domain"
	"github.com/shopspring/decimal"
)

// Function-field mocks for the service interfaces. Unconfigured calls
// fail loudly instead of returning zero values.

var errNotConfigured = errors.New("mock not configured")

type mockBankService struct {
	createFn    func(ctx context.Context, code int, name, taxID string) (*domain.Bank, error)
	getByIDFn   func(ctx context.Context, id int64) (*domain.Bank, error)
	getByCodeFn func(ctx context.Context, code int) (*domain.Bank, error)
	searchFn    func(ctx context.Context, name string) ([]domain.Bank, error)
	listAllFn   func(ctx context.Context) ([]domain.Bank, error)
	updateFn    func(ctx context.Context, id int64, code int, name, taxID string) (*domain.Bank, error)
	deleteFn    func(ctx context.Context, id int64) error
}

func (m *mockBankService) Create(ctx context.Context, code int, name, taxID string) (*domain.Bank, error) {
	if m.createFn != nil {
		return m.createFn(ctx, code, name, taxID)
	}
	return nil, errNotConfigured
}
func (m *mockBankService) GetByID(ctx context.Context, id int64) (*domain.Bank, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, errNotConfigured
}
func (m *mockBankService) GetByCode(ctx context.Context, code int) (*domain.Bank, error) {
	if m.getByCodeFn != nil {
		return m.getByCodeFn(ctx, code)
	}
	return nil, errNotConfigured
}
func (m *mockBankService) SearchByName(ctx context.Context, name string) ([]domain.Bank, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, name)
	}
	return nil, errNotConfigured
}
func (m *mockBankService) ListAll(ctx context.Context) ([]domain.Bank, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return nil, errNotConfigured
}
func (m *mockBankService) Update(ctx context.Context, id int64, code int, name, taxID string) (*domain.Bank, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, code, name, taxID)
	}
	return nil, errNotConfigured
}
func (m *mockBankService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return errNotConfigured
}

type mockBranchService struct {
	createFn      func(ctx context.Context, number int, name string, bankID int64) (*domain.Branch, error)
	getByIDFn     func(ctx context.Context, id int64) (*domain.Branch, error)
	getByNumberFn func(ctx context.Context, number int) (*domain.Branch, error)
	listByBankFn  func(ctx context.Context, bankID int64) ([]domain.Branch, error)
	updateFn      func(ctx context.Context, id int64, number int, name string, bankID int64) (*domain.Branch, error)
	deleteFn      func(ctx context.Context, id int64) error
}

func (m *mockBranchService) Create(ctx context.Context, number int, name string, bankID int64) (*domain.Branch, error) {
	if m.createFn != nil {
		return m.createFn(ctx, number, name, bankID)
	}
	return nil, errNotConfigured
}
func (m *mockBranchService) GetByID(ctx context.Context, id int64) (*domain.Branch, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, errNotConfigured
}
func (m *mockBranchService) GetByNumber(ctx context.Context, number int) (*domain.Branch, error) {
	if m.getByNumberFn != nil {
		return m.getByNumberFn(ctx, number)
	}
	return nil, errNotConfigured
}
func (m *mockBranchService) ListByBank(ctx context.Context, bankID int64) ([]domain.Branch, error) {
	if m.listByBankFn != nil {
		return m.listByBankFn(ctx, bankID)
	}
	return nil, errNotConfigured
}
func (m *mockBranchService) Update(ctx context.Context, id int64, number int, name string, bankID int64) (*domain.Branch, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, number, name, bankID)
	}
	return nil, errNotConfigured
}
func (m *mockBranchService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return errNotConfigured
}

type mockCustomerService struct {
	createFn     func(ctx context.Context, taxID, name string) (*domain.Customer, error)
	getByIDFn    func(ctx context.Context, id int64) (*domain.Customer, error)
	getByTaxIDFn func(ctx context.Context, taxID string) (*domain.Customer, error)
	searchFn     func(ctx context.Context, name string) ([]domain.Customer, error)
	updateFn     func(ctx context.Context, id int64, taxID, name string) (*domain.Customer, error)
	deleteFn     func(ctx context.Context, id int64) error
}

func (m *mockCustomerService) Create(ctx context.Context, taxID, name string) (*domain.Customer, error) {
	if m.createFn != nil {
		return m.createFn(ctx, taxID, name)
	}
	return nil, errNotConfigured
}
func (m *mockCustomerService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, errNotConfigured
}
func (m *mockCustomerService) GetByTaxID(ctx context.Context, taxID string) (*domain.Customer, error) {
	if m.getByTaxIDFn != nil {
		return m.getByTaxIDFn(ctx, taxID)
	}
	return nil, errNotConfigured
}
func (m *mockCustomerService) SearchByName(ctx context.Context, name string) ([]domain.Customer, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, name)
	}
	return nil, errNotConfigured
}
func (m *mockCustomerService) Update(ctx context.Context, id int64, taxID, name string) (*domain.Customer, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, taxID, name)
	}
	return nil, errNotConfigured
}
func (m *mockCustomerService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return errNotConfigured
}

type mockAccountService struct {
	openFn        func(ctx context.Context, number int, initialBalance decimal.Decimal, customerID, branchID int64) (*domain.Account, error)
	getByNumberFn func(ctx context.Context, number int) (*domain.Account, error)
	depositFn     func(ctx context.Context, number int, amount decimal.Decimal) (*domain.Account, error)
	withdrawFn    func(ctx context.Context, number int, amount decimal.Decimal) (*domain.Account, error)
	deleteFn      func(ctx context.Context, id int64) error
}

func (m *mockAccountService) Open(ctx context.Context, number int, initialBalance decimal.Decimal, customerID, branchID int64) (*domain.Account, error) {
	if m.openFn != nil {
		return m.openFn(ctx, number, initialBalance, customerID, branchID)
	}
	return nil, errNotConfigured
}
func (m *mockAccountService) GetByNumber(ctx context.Context, number int) (*domain.Account, error) {
	if m.getByNumberFn != nil {
		return m.getByNumberFn(ctx, number)
	}
	return nil, errNotConfigured
}
func (m *mockAccountService) Deposit(ctx context.Context, number int, amount decimal.Decimal) (*domain.Account, error) {
	if m.depositFn != nil {
		return m.depositFn(ctx, number, amount)
	}
	return nil, errNotConfigured
}
func (m *mockAccountService) Withdraw(ctx context.Context, number int, amount decimal.Decimal) (*domain.Account, error) {
	if m.withdrawFn != nil {
		return m.withdrawFn(ctx, number, amount)
	}
	return nil, errNotConfigured
}
func (m *mockAccountService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return errNotConfigured
}

// ---- helpers ----

type mocks struct {
	banks     *mockBankService
	branches  *mockBranchService
	customers *mockCustomerService
	accounts  *mockAccountService
}

func newTestRouter() (*mocks, http.Handler) {
	m := &mocks{
		banks:     &mockBankService{},
		branches:  &mockBranchService{},
		customers: &mockCustomerService{},
		accounts:  &mockAccountService{},
	}
	h := NewHandler(m.banks, m.branches, m.customers, m.accounts, nil)
	return m, NewRouter(h)
}

func doRequest(t *testing.T, router http.Handler, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var body errorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body
}
