package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/roach88/tally/internal/inventory"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tally.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tally.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		s.Close()
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("final Open() failed: %v", err)
	}
	defer s.Close()

	var name string
	err = s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='items'",
	).Scan(&name)
	if err != nil {
		t.Errorf("items table not found after idempotent opens: %v", err)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "tally.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	items := []*inventory.Item{
		{
			ID:              "id-1",
			Name:            "Chili Dog",
			Quantity:        5,
			Category:        inventory.CategoryHotdog,
			Price:           3.25,
			LastTransaction: time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local),
		},
		{
			ID:              "id-2",
			Name:            "Cola",
			Quantity:        10,
			Category:        inventory.CategoryDrink,
			Price:           1.5,
			LastTransaction: time.Date(2024, 1, 1, 10, 5, 30, 0, time.Local),
		},
	}

	if err := s.Save(ctx, items); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(got) != len(items) {
		t.Fatalf("Load() returned %d items, want %d", len(got), len(items))
	}
	for i, want := range items {
		g := got[i]
		if g.ID != want.ID || g.Name != want.Name || g.Quantity != want.Quantity ||
			g.Category != want.Category || g.Price != want.Price ||
			!g.LastTransaction.Equal(want.LastTransaction) {
			t.Errorf("item %d = %+v, want %+v", i, g, want)
		}
	}
}

func TestSave_ReplacesPreviousSnapshot(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "tally.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	stamp := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)

	first := []*inventory.Item{
		{ID: "id-1", Name: "Cola", Quantity: 10, Category: inventory.CategoryDrink, Price: 1.5, LastTransaction: stamp},
	}
	if err := s.Save(ctx, first); err != nil {
		t.Fatalf("first Save() failed: %v", err)
	}

	second := []*inventory.Item{
		{ID: "id-2", Name: "Fries", Quantity: 20, Category: inventory.CategorySides, Price: 2, LastTransaction: stamp},
	}
	if err := s.Save(ctx, second); err != nil {
		t.Fatalf("second Save() failed: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "id-2" {
		t.Errorf("Load() after second Save = %+v, want only id-2", got)
	}
}

func TestLoad_EmptyDatabase(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "tally.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load() on fresh database returned %d items, want 0", len(got))
	}
}

func TestSaveLoad_PreservesInsertionOrder(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "tally.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	stamp := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)

	// IDs deliberately not in lexical order.
	items := []*inventory.Item{
		{ID: "zz", Name: "Fries", Quantity: 20, Category: inventory.CategorySides, Price: 2, LastTransaction: stamp},
		{ID: "aa", Name: "Cola", Quantity: 10, Category: inventory.CategoryDrink, Price: 1.5, LastTransaction: stamp},
		{ID: "mm", Name: "Chili Dog", Quantity: 5, Category: inventory.CategoryHotdog, Price: 3.25, LastTransaction: stamp},
	}
	if err := s.Save(ctx, items); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	for i, want := range []string{"zz", "aa", "mm"} {
		if got[i].ID != want {
			t.Errorf("position %d = %q, want %q", i, got[i].ID, want)
		}
	}
}
