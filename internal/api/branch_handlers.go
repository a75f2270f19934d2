package api

import (
	"fmt"
	"net/http"
)

func (h *Handler) CreateBranch(w http.ResponseWriter, r *http.Request) {
	var req branchRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	branch, err := h.branches.Create(r.Context(), *req.Number, req.Name, *req.BankID)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/branches/%d", branch.ID))
	respondWithJSON(w, http.StatusCreated, branch)
}

func (h *Handler) GetBranch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	branch, err := h.branches.GetByID(r.Context(), id)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, branch)
}

func (h *Handler) GetBranchByNumber(w http.ResponseWriter, r *http.Request) {
	number, err := pathInt(r, "number")
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	branch, err := h.branches.GetByNumber(r.Context(), number)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, branch)
}

func (h *Handler) ListBranchesByBank(w http.ResponseWriter, r *http.Request) {
	bankID, err := pathID(r, "bankId")
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	branches, err := h.branches.ListByBank(r.Context(), bankID)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, branches)
}

func (h *Handler) UpdateBranch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	var req branchRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	branch, err := h.branches.Update(r.Context(), id, *req.Number, req.Name, *req.BankID)
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, branch)
}

func (h *Handler) DeleteBranch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.respondDomainError(w, r, err)
		return
	}

	if err := h.branches.Delete(r.Context(), id); err != nil {
		h.respondDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
