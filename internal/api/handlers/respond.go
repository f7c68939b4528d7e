package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/apetrov/my-blog-be/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// respondServiceError maps a service failure onto the HTTP taxonomy.
// notFound is the resource-specific 404 message. Anything outside the known
// classes is a storage or internal failure: the cause is logged and the
// client gets a generic 500 body.
func respondServiceError(w http.ResponseWriter, err error, notFound string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Reason)
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, services.ErrUserExists):
		writeError(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, services.ErrForbidden):
		writeError(w, http.StatusForbidden, "Insufficient rights")
	default:
		log.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
