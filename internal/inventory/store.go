package inventory

import (
	"fmt"
	"strconv"
	"strings"
)

// Store is the authoritative ordered collection of Items.
//
// Insertion order is preserved; there is no sorting invariant. Adds
// always append a new record - repeated name+category pairs are not
// merged. Not safe for concurrent use.
type Store struct {
	clock Clock
	items []*Item
}

// RemovalOutcome describes the effect of RemovePartial.
type RemovalOutcome struct {
	// Deleted is true when the full quantity was removed and the item
	// no longer exists in the store.
	Deleted bool

	// NewQuantity is the remaining quantity after a partial removal.
	// Zero when Deleted.
	NewQuantity int
}

// NewStore creates an empty store. A nil clock defaults to the system
// wall clock.
func NewStore(clock Clock) *Store {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Store{clock: clock}
}

// Add validates the inputs, creates an Item stamped with the current
// time, appends it and returns it.
//
// Rejected inputs (store unchanged): blank name, quantity < 1,
// price < 0, category outside the enumeration.
func (s *Store) Add(name string, quantity int, category Category, price float64) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, newValidationError(ErrCodeEmptyName, "name cannot be empty", "name", name)
	}
	if quantity < 1 {
		return nil, newValidationError(ErrCodeInvalidQuantity, "quantity must be at least 1", "quantity", strconv.Itoa(quantity))
	}
	if price < 0 {
		return nil, newValidationError(ErrCodeNegativePrice, "price cannot be negative", "price", formatPrice(price))
	}
	if !category.Valid() {
		return nil, newValidationError(ErrCodeUnknownCategory, "unknown category", "category", string(category))
	}

	item := &Item{
		ID:              newItemID(),
		Name:            name,
		Quantity:        quantity,
		Category:        category,
		Price:           price,
		LastTransaction: s.clock.Now(),
	}
	s.items = append(s.items, item)
	return item, nil
}

// RemovePartial removes amount units from the addressed item.
//
// The amount must be in [1, quantity]. Removing the full quantity
// deletes the item from the store; anything less decrements the
// quantity and stamps a new lastTransaction.
func (s *Store) RemovePartial(id string, amount int) (RemovalOutcome, error) {
	idx, item, err := s.find(id)
	if err != nil {
		return RemovalOutcome{}, err
	}
	if amount < 1 || amount > item.Quantity {
		return RemovalOutcome{}, newValidationError(
			ErrCodeInvalidAmount,
			fmt.Sprintf("removal amount must be between 1 and %d", item.Quantity),
			"amount", strconv.Itoa(amount),
		)
	}

	if amount == item.Quantity {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
		return RemovalOutcome{Deleted: true}, nil
	}

	item.Quantity -= amount
	item.LastTransaction = s.clock.Now()
	return RemovalOutcome{NewQuantity: item.Quantity}, nil
}

// IncreaseQuantity adds amount units to the addressed item and returns
// the new quantity.
//
// Amounts below 1 are rejected, the same lower bound Add enforces, so
// an increase can never drive the quantity below zero.
func (s *Store) IncreaseQuantity(id string, amount int) (int, error) {
	_, item, err := s.find(id)
	if err != nil {
		return 0, err
	}
	if amount < 1 {
		return 0, newValidationError(ErrCodeInvalidQuantity, "increase amount must be at least 1", "amount", strconv.Itoa(amount))
	}

	item.Quantity += amount
	item.LastTransaction = s.clock.Now()
	return item.Quantity, nil
}

// SetPrice replaces the addressed item's price.
//
// Negative prices are rejected, matching the add-side check.
func (s *Store) SetPrice(id string, price float64) error {
	_, item, err := s.find(id)
	if err != nil {
		return err
	}
	if price < 0 {
		return newValidationError(ErrCodeNegativePrice, "price cannot be negative", "price", formatPrice(price))
	}

	item.Price = price
	item.LastTransaction = s.clock.Now()
	return nil
}

// All returns the items in insertion order.
//
// The slice is a copy but the Items are shared: callers must treat them
// as read-only and mutate only through Store operations.
func (s *Store) All() []*Item {
	out := make([]*Item, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the item with the given ID, or false if absent.
func (s *Store) Get(id string) (*Item, bool) {
	_, item, err := s.find(id)
	if err != nil {
		return nil, false
	}
	return item, true
}

// Len returns the number of items in the store.
func (s *Store) Len() int {
	return len(s.items)
}

// Append adds already-constructed items to the end of the store in the
// given order, minting IDs for items that lack one.
//
// This is the import path: field values, including historical
// lastTransaction timestamps and blank names, are taken as-is with no
// re-validation.
func (s *Store) Append(items []*Item) {
	for _, item := range items {
		if item.ID == "" {
			item.ID = newItemID()
		}
		s.items = append(s.items, item)
	}
}

// find locates an item by ID with a linear scan.
func (s *Store) find(id string) (int, *Item, error) {
	for i, item := range s.items {
		if item.ID == id {
			return i, item, nil
		}
	}
	return 0, nil, newValidationError(ErrCodeNotFound, "no such item", "id", id)
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
