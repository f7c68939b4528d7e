package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/apetrov/my-blog-be/internal/auth"
	"github.com/apetrov/my-blog-be/internal/models"
	"github.com/apetrov/my-blog-be/internal/services"
)

// AuthHandler handles registration, login, logout and session introspection.
type AuthHandler struct {
	service      services.UserServiceProvider
	tokens       *auth.TokenManager
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler. secureCookie controls the
// cookie's Secure flag (on in production).
func NewAuthHandler(service services.UserServiceProvider, tokens *auth.TokenManager, secureCookie bool) *AuthHandler {
	return &AuthHandler{service: service, tokens: tokens, secureCookie: secureCookie}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles new user registration. The new session is established
// immediately: the token cookie is set alongside the 201 response.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Register(payload.Username, payload.Password, payload.IsAdmin)
	if err != nil {
		respondServiceError(w, err, "User not found")
		return
	}

	if !h.issueSession(w, user) {
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"user":    user.Public(),
	})
}

// Login handles credential verification and session issuance. Unknown
// usernames and wrong passwords produce the same response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Authenticate(payload.Username, payload.Password)
	if err != nil {
		respondServiceError(w, err, "User not found")
		return
	}

	if !h.issueSession(w, user) {
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Logged in successfully",
		"user":    user.Public(),
	})
}

// Logout clears the session cookie. The token itself stays valid until
// expiry; there is no server-side revocation.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w, h.secureCookie)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Me returns the identity the auth middleware resolved from the token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("could not retrieve user claims from context")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user": models.PublicUser{
			ID:       claims.UserID,
			Username: claims.Username,
			IsAdmin:  claims.IsAdmin,
		},
	})
}

func (h *AuthHandler) issueSession(w http.ResponseWriter, user models.User) bool {
	token, err := h.tokens.Issue(user)
	if err != nil {
		log.Error().Err(err).Int("user_id", user.ID).Msg("failed to issue token")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return false
	}
	auth.SetSessionCookie(w, token, h.secureCookie)
	return true
}
