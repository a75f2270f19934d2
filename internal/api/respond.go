package api

import (
	"encoding/json"
	"net/http"

	"github.com/mfreitas/bancario/internal/domain"
)

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, errorResponse{Code: code, Message: message})
}

// respondDomainError maps the error's kind to a status code. Anything
// unclassified is a 500 with a generic body; the real error is logged,
// never leaked.
func (h *Handler) respondDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		respondWithError(w, http.StatusNotFound, err.Error())
	case domain.KindConflict, domain.KindValidation, domain.KindInvalidOperation:
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("unhandled error",
			"method", r.Method, "path", r.URL.Path, "err", err)
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
