package domain

import "github.com/shopspring/decimal"

// Bank is a financial institution identified by its clearing code.
type Bank struct {
	ID    int64  `json:"id"`
	Code  int    `json:"code"`
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
}

// Branch belongs to exactly one bank. Many branches per bank.
type Branch struct {
	ID     int64  `json:"id"`
	Number int    `json:"number"`
	Name   string `json:"name"`
	BankID int64  `json:"bank_id"`
}

// Customer is an individual identified by CPF.
type Customer struct {
	ID    int64  `json:"id"`
	TaxID string `json:"tax_id"`
	Name  string `json:"name"`
}

// Account holds a customer's balance at a branch.
// Balance is never negative after a successful operation.
type Account struct {
	ID         int64           `json:"id"`
	Number     int             `json:"number"`
	Balance    decimal.Decimal `json:"balance"`
	CustomerID int64           `json:"customer_id"`
	BranchID   int64           `json:"branch_id"`
}
