package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	customer, err := h.customers.Create(r.Context(), req.TaxID, req.Name)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/customers/%d", customer.ID))
	respondWithJSON(w, http.StatusCreated, customer)
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	customer, err := h.customers.GetByID(r.Context(), id)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, customer)
}

func (h *Handler) GetCustomerByTaxID(w http.ResponseWriter, r *http.Request) {
	customer, err := h.customers.GetByTaxID(r.Context(), mux.Vars(r)["taxId"])
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, customer)
}

func (h *Handler) SearchCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.SearchByName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, customers)
}

func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	var req customerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	customer, err := h.customers.Update(r.Context(), id, req.TaxID, req.Name)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, customer)
}

func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	if err := h.customers.Delete(r.Context(), id); err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
