package services

// PageRef points at an adjacent page in a paginated listing.
type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Page is the envelope returned by paginated listings. Next and Previous are
// present only when those pages exist.
type Page[T any] struct {
	Next     *PageRef `json:"next,omitempty"`
	Previous *PageRef `json:"previous,omitempty"`
	Data     []T      `json:"data"`
}

// Actor is the identity performing an operation, resolved from the session.
type Actor struct {
	UserID  int
	IsAdmin bool
}

func paginate[T any](items []T, page, limit int) Page[T] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	start := (page - 1) * limit
	end := page * limit

	result := Page[T]{Data: []T{}}
	if end < len(items) {
		result.Next = &PageRef{Page: page + 1, Limit: limit}
	}
	if start > 0 {
		result.Previous = &PageRef{Page: page - 1, Limit: limit}
	}
	if start < len(items) {
		if end > len(items) {
			end = len(items)
		}
		result.Data = items[start:end]
	}
	return result
}

// canMutate is the owner-or-admin rule every owned resource shares.
func canMutate(resourceUserID int, actor Actor) bool {
	return resourceUserID == actor.UserID || actor.IsAdmin
}
