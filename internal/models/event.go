package models

import "time"

// Event is an entry in the activity log: registrations, logins and resource
// mutations. UserID is the acting user, zero when unknown.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	UserID    int       `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
