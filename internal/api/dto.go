package api

import "github.com/shopspring/decimal"

// Request payloads. Required fields that would otherwise decode to a
// useful zero value are pointers so "missing" and "zero" stay distinct.

type bankRequest struct {
	Code  *int   `json:"code" validate:"required"`
	Name  string `json:"name" validate:"required"`
	TaxID string `json:"tax_id" validate:"required,cnpj"`
}

type branchRequest struct {
	Number *int   `json:"number" validate:"required"`
	Name   string `json:"name" validate:"required"`
	BankID *int64 `json:"bank_id" validate:"required"`
}

type customerRequest struct {
	TaxID string `json:"tax_id" validate:"required,cpf"`
	Name  string `json:"name" validate:"required"`
}

type openAccountRequest struct {
	Number         *int             `json:"number" validate:"required"`
	InitialBalance *decimal.Decimal `json:"initial_balance"`
	CustomerID     *int64           `json:"customer_id" validate:"required"`
	BranchID       *int64           `json:"branch_id" validate:"required"`
}

// operationRequest is shared by deposit and withdraw. The amount's
// positivity is a business rule checked by the ledger, not a field
// format rule, so it carries no validate tag.
type operationRequest struct {
	AccountNumber *int            `json:"account_number" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
}

// errorResponse is the body for every non-2xx reply.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
