package api

import (
	"fmt"
	"net/http"
)

func (h *Handler) CreateBank(w http.ResponseWriter, r *http.Request) {
	var req bankRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	bank, err := h.banks.Create(r.Context(), *req.Code, req.Name, req.TaxID)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/banks/%d", bank.ID))
	respondWithJSON(w, http.StatusCreated, bank)
}

func (h *Handler) GetBank(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	bank, err := h.banks.GetByID(r.Context(), id)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, bank)
}

func (h *Handler) GetBankByCode(w http.ResponseWriter, r *http.Request) {
	code, err := pathInt(r, "code")
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	bank, err := h.banks.GetByCode(r.Context(), code)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, bank)
}

func (h *Handler) ListBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.banks.ListAll(r.Context())
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, banks)
}

func (h *Handler) SearchBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.banks.SearchByName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, banks)
}

func (h *Handler) UpdateBank(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	var req bankRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	bank, err := h.banks.Update(r.Context(), id, *req.Code, req.Name, req.TaxID)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, bank)
}

func (h *Handler) DeleteBank(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	if err := h.banks.Delete(r.Context(), id); err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
