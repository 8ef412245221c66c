package store

import "encoding/json"

// Collection names used by the application.
const (
	Reservations = "reservations"
	Bills        = "bills"
	Clients      = "clients"
	Employees    = "employees"
)

// Store is a keyed-collection persistence facility with whole-collection
// replace-on-write semantics: callers read an entire collection, mutate it
// in memory and write the entire collection back. The application assumes
// a single writer at a time; there is no transactional isolation between
// a LoadAll and the following SaveAll.
type Store interface {
	LoadAll(collection string) ([]json.RawMessage, error)
	SaveAll(collection string, records []json.RawMessage) error
}
