package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/apetrov/my-blog-be/internal/api"
	"github.com/apetrov/my-blog-be/internal/auth"
	"github.com/apetrov/my-blog-be/internal/config"
	"github.com/apetrov/my-blog-be/internal/services"
	"github.com/apetrov/my-blog-be/internal/storage/jsonfile"
	"github.com/apetrov/my-blog-be/internal/util"
	"github.com/apetrov/my-blog-be/internal/websocket"
)

type testServer struct {
	router *chi.Mux
	clock  *util.StubClock
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := jsonfile.New(t.TempDir())
	require.NoError(t, err)

	clock := util.NewStubClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	tokens := auth.NewTokenManager("test-secret", clock)

	hub := websocket.NewHub()
	go hub.Run()

	eventSvc := services.NewEventService(store, clock, hub)
	userSvc := services.NewUserService(store, eventSvc)
	postSvc := services.NewPostService(store, eventSvc)
	commentSvc := services.NewCommentService(store, eventSvc, clock)
	photoSvc := services.NewPhotoService(store, eventSvc)

	cfg := &config.Config{
		AppEnv:         "development",
		AllowedOrigins: []string{"http://localhost:5173"},
	}

	router := api.NewRouter(cfg, tokens, hub, userSvc, postSvc, commentSvc, photoSvc, eventSvc)
	return &testServer{router: router, clock: clock}
}

// do performs a request against the router. Cookies carry the session.
func (s *testServer) do(t *testing.T, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// register creates an account and returns its session cookies.
func (s *testServer) register(t *testing.T, username, password string, isAdmin bool) []*http.Cookie {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/auth/register", map[string]any{
		"username": username,
		"password": password,
		"isAdmin":  isAdmin,
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
