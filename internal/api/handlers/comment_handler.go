package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/apetrov/my-blog-be/internal/services"
)

// CommentHandler handles HTTP requests for post comments.
type CommentHandler struct {
	service services.CommentServiceProvider
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(service services.CommentServiceProvider) *CommentHandler {
	return &CommentHandler{service: service}
}

// ListForPost returns all comments for a post.
func (h *CommentHandler) ListForPost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	comments, err := h.service.ListForPost(postID)
	if err != nil {
		respondServiceError(w, err, "Comment not found")
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

// Create handles comment creation for the authenticated user.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	var input services.CommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.service.Create(postID, input, actorFrom(r))
	if err != nil {
		respondServiceError(w, err, "Comment not found")
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

// Delete handles comment deletion, owner-or-admin only.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "commentId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid comment id")
		return
	}

	if err := h.service.Delete(id, actorFrom(r)); err != nil {
		respondServiceError(w, err, "Comment not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
