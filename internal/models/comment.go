package models

// Comment belongs to a post. Ids come from the millisecond clock rather
// than a max+1 scan, so they are int64.
type Comment struct {
	ID     int64  `json:"id"`
	PostID int    `json:"postId"`
	Title  string `json:"title"`
	Rate   int    `json:"rate"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}
