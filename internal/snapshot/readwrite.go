package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/roach88/tally/internal/inventory"
)

// timeLayout matches the interchange format: ISO-8601 local date-time.
const timeLayout = "2006-01-02T15:04:05"

// Save replaces the entire snapshot with the given items, in order.
//
// The delete and all inserts run in one transaction, so a failed save
// leaves the previous snapshot intact (last full save wins).
func (s *Store) Save(ctx context.Context, items []*inventory.Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM items"); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO items (id, position, name, category, quantity, price, last_transaction)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	defer stmt.Close()

	for pos, item := range items {
		_, err := stmt.ExecContext(ctx,
			item.ID,
			pos,
			item.Name,
			item.Category.String(),
			item.Quantity,
			item.Price,
			item.LastTransaction.Format(timeLayout),
		)
		if err != nil {
			return fmt.Errorf("save snapshot: item %q: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load reads the full snapshot back in saved order.
func (s *Store) Load(ctx context.Context) ([]*inventory.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, category, quantity, price, last_transaction
		FROM items
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	defer rows.Close()

	var items []*inventory.Item
	for rows.Next() {
		var (
			item     inventory.Item
			category string
			stamp    string
		)
		if err := rows.Scan(&item.ID, &item.Name, &category, &item.Quantity, &item.Price, &stamp); err != nil {
			return nil, fmt.Errorf("load snapshot: %w", err)
		}

		c, ok := inventory.ParseCategory(category)
		if !ok {
			return nil, fmt.Errorf("load snapshot: item %q: unknown category %q", item.ID, category)
		}
		item.Category = c

		t, err := time.ParseInLocation(timeLayout, stamp, time.Local)
		if err != nil {
			return nil, fmt.Errorf("load snapshot: item %q: bad timestamp %q: %w", item.ID, stamp, err)
		}
		item.LastTransaction = t

		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return items, nil
}
