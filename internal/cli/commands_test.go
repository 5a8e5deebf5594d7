package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemData struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// addItem adds an item through the CLI and returns its payload.
func addItem(t *testing.T, db, name, quantity, category, price string) itemData {
	t.Helper()
	out, err := runTally(t,
		"add", name, "-q", quantity, "-c", category, "-p", price,
		"--data", db, "--format", "json",
	)
	require.NoError(t, err, "output: %s", out)

	var item itemData
	decodeData(t, out, &item)
	require.NotEmpty(t, item.ID)
	return item
}

func TestAdd_PersistsAcrossInvocations(t *testing.T) {
	db := testDB(t)

	item := addItem(t, db, "Cola", "10", "DRINK", "1.50")
	assert.Equal(t, "Cola", item.Name)
	assert.Equal(t, "DRINK", item.Category)
	assert.Equal(t, 10, item.Quantity)
	assert.Equal(t, 1.5, item.Price)

	out, err := runTally(t, "list", "--data", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Cola")
	assert.Contains(t, out, "Drink", "list shows the display name")
}

func TestAdd_DisplayNameCategory(t *testing.T) {
	db := testDB(t)

	item := addItem(t, db, "Pup Cup", "3", "Mini Dog", "2.00")
	assert.Equal(t, "MINI_DOG", item.Category)
}

func TestAdd_ValidationFailureChangesNothing(t *testing.T) {
	db := testDB(t)

	out, err := runTally(t, "add", "Cola", "-q", "0", "-c", "DRINK", "-p", "1.50", "--data", db)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "INVALID_QUANTITY")

	out, err = runTally(t, "list", "--data", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No items.")
}

func TestRemove_PartialThenFull(t *testing.T) {
	db := testDB(t)
	item := addItem(t, db, "Cola", "10", "DRINK", "1.50")

	out, err := runTally(t, "remove", item.ID, "-n", "4", "--data", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 4 Cola - 6 left")

	// No --amount removes the remaining quantity and deletes the line.
	out, err = runTally(t, "remove", item.ID, "--data", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed Cola")

	out, err = runTally(t, "list", "--data", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No items.")
}

func TestRemove_InvalidAmount(t *testing.T) {
	db := testDB(t)
	item := addItem(t, db, "Cola", "10", "DRINK", "1.50")

	out, err := runTally(t, "remove", item.ID, "-n", "11", "--data", db)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "INVALID_AMOUNT")
}

func TestRemove_UnknownID(t *testing.T) {
	db := testDB(t)
	addItem(t, db, "Cola", "10", "DRINK", "1.50")

	out, err := runTally(t, "remove", "bogus", "--data", db)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "NOT_FOUND")
}

func TestIncreaseAndPrice(t *testing.T) {
	db := testDB(t)
	item := addItem(t, db, "Cola", "10", "DRINK", "1.50")

	var updated itemData
	out, err := runTally(t, "increase", item.ID, "-n", "5", "--data", db, "--format", "json")
	require.NoError(t, err)
	decodeData(t, out, &updated)
	assert.Equal(t, 15, updated.Quantity)

	out, err = runTally(t, "price", item.ID, "-p", "1.75", "--data", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Price for Cola changed to 1.75")
}

func TestList_FilterAndSearch(t *testing.T) {
	db := testDB(t)
	addItem(t, db, "Cola", "10", "DRINK", "1.50")
	addItem(t, db, "Diet Cola", "5", "DRINK", "1.50")
	addItem(t, db, "Chili Dog", "5", "HOTDOG", "3.25")

	var items []itemData
	out, err := runTally(t, "list", "--data", db, "--format", "json", "-c", "DRINK", "-s", "diet")
	require.NoError(t, err)
	decodeData(t, out, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "Diet Cola", items[0].Name)

	// Unfiltered list keeps insertion order.
	out, err = runTally(t, "list", "--data", db, "--format", "json")
	require.NoError(t, err)
	decodeData(t, out, &items)
	require.Len(t, items, 3)
	assert.Equal(t, "Cola", items[0].Name)
	assert.Equal(t, "Chili Dog", items[2].Name)
}

func TestImportExport_RoundTrip(t *testing.T) {
	db := testDB(t)
	dir := t.TempDir()

	in := filepath.Join(dir, "in.csv")
	csv := "Name,Category,Quantity,Price,LastTransaction\n" +
		"Chili Dog,HOTDOG,5,3.25,2024-01-01T10:00\n" +
		"Cola,DRINK,10,1.5,2024-01-01T10:05:30\n"
	require.NoError(t, os.WriteFile(in, []byte(csv), 0o644))

	out, err := runTally(t, "import", in, "--data", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 item(s)")

	exported := filepath.Join(dir, "out.csv")
	_, err = runTally(t, "export", exported, "--data", db)
	require.NoError(t, err)

	data, err := os.ReadFile(exported)
	require.NoError(t, err)
	want := "Name,Category,Quantity,Price,LastTransaction\n" +
		"Chili Dog,HOTDOG,5,3.25,2024-01-01T10:00:00\n" +
		"Cola,DRINK,10,1.5,2024-01-01T10:05:30\n"
	assert.Equal(t, want, string(data))
}

func TestImport_BadRowAbortsWholeImport(t *testing.T) {
	db := testDB(t)
	addItem(t, db, "Cola", "10", "DRINK", "1.50")

	in := filepath.Join(t.TempDir(), "bad.csv")
	csv := "Name,Category,Quantity,Price,LastTransaction\n" +
		"Fries,SIDES,20,2,2024-01-01T10:00:00\n" +
		"Burger,BURGER,3,4.5,2024-01-01T10:00:00\n"
	require.NoError(t, os.WriteFile(in, []byte(csv), 0o644))

	out, err := runTally(t, "import", in, "--data", db)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "UNKNOWN_CATEGORY")

	// Nothing from the bad file landed, the prior item is intact.
	var items []itemData
	out, err = runTally(t, "list", "--data", db, "--format", "json")
	require.NoError(t, err)
	decodeData(t, out, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "Cola", items[0].Name)
}

func TestImport_MissingFile(t *testing.T) {
	db := testDB(t)

	_, err := runTally(t, "import", filepath.Join(t.TempDir(), "nope.csv"), "--data", db)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestList_UnknownCategory(t *testing.T) {
	db := testDB(t)

	out, err := runTally(t, "list", "--data", db, "-c", "PIZZA")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "UNKNOWN_CATEGORY")
}
