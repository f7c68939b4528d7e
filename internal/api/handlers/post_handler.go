package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/apetrov/my-blog-be/internal/auth"
	"github.com/apetrov/my-blog-be/internal/services"
)

// PostHandler handles HTTP requests for posts.
type PostHandler struct {
	service services.PostServiceProvider
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service services.PostServiceProvider) *PostHandler {
	return &PostHandler{service: service}
}

// List handles the paginated post listing.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	result, err := h.service.List(page, limit)
	if err != nil {
		respondServiceError(w, err, "Post not found")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Search handles the paginated post search.
func (h *PostHandler) Search(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	result, err := h.service.Search(r.URL.Query().Get("term"), page, limit)
	if err != nil {
		respondServiceError(w, err, "Post not found")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Get handles the request for a single post.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	post, err := h.service.GetByID(id)
	if err != nil {
		respondServiceError(w, err, "Post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// Create handles post creation for the authenticated user.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.service.Create(input, actorFrom(r))
	if err != nil {
		respondServiceError(w, err, "Post not found")
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// Update handles post edits, owner-or-admin only.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	var input services.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.service.Update(id, input, actorFrom(r))
	if err != nil {
		respondServiceError(w, err, "Post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// Delete handles post deletion, owner-or-admin only.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	if err := h.service.Delete(id, actorFrom(r)); err != nil {
		respondServiceError(w, err, "Post not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// actorFrom builds the acting identity from the claims the auth middleware
// attached. Handlers using it are always mounted behind that middleware.
func actorFrom(r *http.Request) services.Actor {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		return services.Actor{}
	}
	return services.Actor{UserID: claims.UserID, IsAdmin: claims.IsAdmin}
}

func pageParams(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit
}
