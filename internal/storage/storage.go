package storage

// Collection names used across the services.
const (
	Users    = "users"
	Posts    = "posts"
	Comments = "comments"
	Photos   = "photos"
	Events   = "events"
)

// Store is the narrow persistence interface the services are written
// against: load a whole collection, replace a whole collection. There is
// deliberately no locking or versioning around the read-modify-write cycle;
// the deployment target is a single low-concurrency instance, and a
// transactional backend can be slotted in here without touching the
// services.
type Store interface {
	// Load reads the named collection into v (a pointer to a slice). A
	// collection that has never been written loads as empty.
	Load(name string, v any) error

	// Replace overwrites the named collection with v.
	Replace(name string, v any) error
}
