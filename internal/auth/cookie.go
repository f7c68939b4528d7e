package auth

import "net/http"

// CookieName is the session transport cookie.
const CookieName = "token"

const cookieMaxAge = 24 * 60 * 60 // seconds, matches TokenTTL

// SetSessionCookie stores the token on the client. HttpOnly keeps it away
// from page scripts; SameSite=Strict keeps it off cross-site requests.
func SetSessionCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})
}

// ClearSessionCookie removes the client-held token. The token itself stays
// valid until expiry if replayed; see TokenManager.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})
}
