package models

// User represents a registered account.
//
// IDs are small monotonic integers: the next id is max(existing)+1, or 1 for
// an empty store. Users are never deleted, so ids are stable.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password"` // bcrypt hash, stored under the legacy "password" key
	IsAdmin      bool   `json:"isAdmin"`
}

// PublicUser is the client-facing view of a User. The password hash never
// leaves the server.
type PublicUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Public strips the credential fields from a User.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, IsAdmin: u.IsAdmin}
}
