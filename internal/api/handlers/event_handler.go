package handlers

import (
	"net/http"
	"strconv"

	"github.com/apetrov/my-blog-be/internal/services"
)

// EventHandler exposes the activity log to admins.
type EventHandler struct {
	service services.EventServiceProvider
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(service services.EventServiceProvider) *EventHandler {
	return &EventHandler{service: service}
}

// Recent returns the most recent activity events, newest first.
func (h *EventHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = 50
	}

	events, err := h.service.Recent(limit)
	if err != nil {
		respondServiceError(w, err, "Event not found")
		return
	}
	writeJSON(w, http.StatusOK, events)
}
