package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every endpoint. Literal segments (search, code/...)
// are registered before the {id} patterns so they are matched first.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()

	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.Use(instrument)

	v1.HandleFunc("/banks", h.CreateBank).Methods(http.MethodPost)
	v1.HandleFunc("/banks", h.ListBanks).Methods(http.MethodGet)
	v1.HandleFunc("/banks/search", h.SearchBanks).Methods(http.MethodGet)
	v1.HandleFunc("/banks/code/{code}", h.GetBankByCode).Methods(http.MethodGet)
	v1.HandleFunc("/banks/{id}", h.GetBank).Methods(http.MethodGet)
	v1.HandleFunc("/banks/{id}", h.UpdateBank).Methods(http.MethodPut)
	v1.HandleFunc("/banks/{id}", h.DeleteBank).Methods(http.MethodDelete)

	v1.HandleFunc("/branches", h.CreateBranch).Methods(http.MethodPost)
	v1.HandleFunc("/branches/number/{number}", h.GetBranchByNumber).Methods(http.MethodGet)
	v1.HandleFunc("/branches/bank/{bankId}", h.ListBranchesByBank).Methods(http.MethodGet)
	v1.HandleFunc("/branches/{id}", h.GetBranch).Methods(http.MethodGet)
	v1.HandleFunc("/branches/{id}", h.UpdateBranch).Methods(http.MethodPut)
	v1.HandleFunc("/branches/{id}", h.DeleteBranch).Methods(http.MethodDelete)

	v1.HandleFunc("/customers", h.CreateCustomer).Methods(http.MethodPost)
	v1.HandleFunc("/customers/search", h.SearchCustomers).Methods(http.MethodGet)
	v1.HandleFunc("/customers/tax-id/{taxId}", h.GetCustomerByTaxID).Methods(http.MethodGet)
	v1.HandleFunc("/customers/{id}", h.GetCustomer).Methods(http.MethodGet)
	v1.HandleFunc("/customers/{id}", h.UpdateCustomer).Methods(http.MethodPut)
	v1.HandleFunc("/customers/{id}", h.DeleteCustomer).Methods(http.MethodDelete)

	v1.HandleFunc("/accounts", h.OpenAccount).Methods(http.MethodPost)
	v1.HandleFunc("/accounts/deposit", h.Deposit).Methods(http.MethodPost)
	v1.HandleFunc("/accounts/withdraw", h.Withdraw).Methods(http.MethodPost)
	v1.HandleFunc("/accounts/{number}", h.GetAccount).Methods(http.MethodGet)
	v1.HandleFunc("/accounts/{id}", h.DeleteAccount).Methods(http.MethodDelete)

	return r
}
