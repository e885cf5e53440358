// Package records defines the three record kinds the client tracks locally:
// tenders, documents and reminders. The structs mirror the JSON shapes the
// remote API exchanges; the server copy is authoritative and the local copy
// is resynchronized wholesale from it.
package records

// Record is any entity that can live in a keyed store
type Record interface {
	// RecordID returns the unique identifier the store keys on
	RecordID() string
}
