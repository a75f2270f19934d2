package api

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

func (h *Handler) OpenAccount(w http.ResponseWriter, r *http.Request) {
	var req openAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	initialBalance := decimal.Zero
	if req.InitialBalance != nil {
		initialBalance = *req.InitialBalance
	}

	account, err := h.accounts.Open(r.Context(), *req.Number, initialBalance, *req.CustomerID, *req.BranchID)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/accounts/%d", account.Number))
	respondWithJSON(w, http.StatusCreated, account)
}

func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	number, err := pathInt(r, "number")
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	account, err := h.accounts.GetByNumber(r.Context(), number)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, account)
}

// Deposit and Withdraw reply 204: they are commands with no meaningful
// response body.

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req operationRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	if _, err := h.accounts.Deposit(r.Context(), *req.AccountNumber, req.Amount); err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req operationRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	if _, err := h.accounts.Withdraw(r.Context(), *req.AccountNumber, req.Amount); err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	if err := h.accounts.Delete(r.Context(), id); err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
