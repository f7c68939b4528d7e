package models

// Post is a blog entry. UserID is stamped from the creating session and
// drives the owner-or-admin mutation check.
type Post struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	URL    string `json:"url"`
	Rate   int    `json:"rate"`
	UserID int    `json:"userId"`
}
