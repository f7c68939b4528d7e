package models

// Photo is an image reference grouped into albums.
type Photo struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	AlbumID int    `json:"albumId"`
	UserID  int    `json:"userId"`
}
