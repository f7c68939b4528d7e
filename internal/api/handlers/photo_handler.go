package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/apetrov/my-blog-be/internal/services"
)

// PhotoHandler handles HTTP requests for photos.
type PhotoHandler struct {
	service services.PhotoServiceProvider
}

// NewPhotoHandler creates a new PhotoHandler.
func NewPhotoHandler(service services.PhotoServiceProvider) *PhotoHandler {
	return &PhotoHandler{service: service}
}

// List returns all photos.
func (h *PhotoHandler) List(w http.ResponseWriter, r *http.Request) {
	photos, err := h.service.List()
	if err != nil {
		respondServiceError(w, err, "Photo not found")
		return
	}
	writeJSON(w, http.StatusOK, photos)
}

// Create handles photo creation for the authenticated user.
func (h *PhotoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.PhotoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	photo, err := h.service.Create(input, actorFrom(r))
	if err != nil {
		respondServiceError(w, err, "Photo not found")
		return
	}
	writeJSON(w, http.StatusCreated, photo)
}

// Delete handles photo deletion. The route is admin-gated; the service
// repeats the owner-or-admin check.
func (h *PhotoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid photo id")
		return
	}

	if err := h.service.Delete(id, actorFrom(r)); err != nil {
		respondServiceError(w, err, "Photo not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
