package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apetrov/my-blog-be/internal/models"
)

func TestEvents_AdminOnly(t *testing.T) {
	srv := newTestServer(t)
	user := srv.register(t, "alice", "pw1", false)
	admin := srv.register(t, "root", "pw2", true)

	rec := srv.do(t, http.MethodGet, "/api/events", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/events", nil, user)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/events", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)

	var events []models.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	// Both registrations were recorded.
	types := make([]string, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	assert.Contains(t, types, "user.register")
}
