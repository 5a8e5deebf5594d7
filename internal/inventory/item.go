package inventory

import (
	"time"

	"github.com/google/uuid"
)

// Item is one inventory line.
//
// ID and Category are fixed at creation; Quantity, Price and
// LastTransaction change only through Store operations. The Store owns
// every Item it holds - callers must not mutate fields directly, and must
// not retain references past removal.
type Item struct {
	// ID is an engine-assigned UUIDv7, used to address the item in
	// Store operations. It is not part of the persisted CSV format.
	ID string

	// Name is non-empty for interactively added items. Imported rows
	// may carry a blank name (trusted-file asymmetry).
	Name string

	// Quantity is always >= 0. An item reaching 0 via removal is
	// deleted rather than left at rest.
	Quantity int

	Category Category

	// Price is always >= 0.
	Price float64

	// LastTransaction is the time of the most recent quantity or price
	// change. Creation counts as the first transaction.
	LastTransaction time.Time
}

// newItemID mints a time-ordered unique identifier.
func newItemID() string {
	return uuid.Must(uuid.NewV7()).String()
}
