package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/roach88/tally/internal/inventory"
	"github.com/roach88/tally/internal/snapshot"
)

// workspace is one command's view of the inventory: the snapshot file
// loaded into an engine store, saved back after a successful mutation.
type workspace struct {
	snap *snapshot.Store
	inv  *inventory.Store
}

// openWorkspace opens the snapshot database and loads it into a Store.
func openWorkspace(opts *RootOptions, f *OutputFormatter) (*workspace, error) {
	snap, err := snapshot.Open(opts.DataPath)
	if err != nil {
		f.Error("IO_FAILURE", fmt.Sprintf("cannot open inventory database %s", opts.DataPath), err.Error())
		return nil, WrapExitError(ExitCommandError, "cannot open inventory database", err)
	}

	items, err := snap.Load(context.Background())
	if err != nil {
		snap.Close()
		f.Error("IO_FAILURE", fmt.Sprintf("cannot load inventory from %s", opts.DataPath), err.Error())
		return nil, WrapExitError(ExitCommandError, "cannot load inventory", err)
	}

	inv := inventory.NewStore(nil)
	inv.Append(items)
	f.VerboseLog("Loaded %d item(s) from %s", inv.Len(), opts.DataPath)

	return &workspace{snap: snap, inv: inv}, nil
}

// saveAndClose writes the store back to the snapshot and closes it.
func (w *workspace) saveAndClose(f *OutputFormatter) error {
	defer w.snap.Close()
	if err := w.snap.Save(context.Background(), w.inv.All()); err != nil {
		f.Error("IO_FAILURE", "cannot save inventory", err.Error())
		return WrapExitError(ExitCommandError, "cannot save inventory", err)
	}
	return nil
}

// close releases the snapshot without saving. Used by read-only
// commands and on mutation failure.
func (w *workspace) close() {
	w.snap.Close()
}

// resolveCategory accepts a canonical name ("MINI_DOG") or a display
// label ("Mini Dog").
func resolveCategory(s string) (inventory.Category, bool) {
	if c, ok := inventory.ParseCategory(s); ok {
		return c, true
	}
	return inventory.ParseDisplayName(s)
}

// categoryHelp lists the accepted category names for error messages.
func categoryHelp() string {
	names := make([]string, len(inventory.Categories))
	for i, c := range inventory.Categories {
		names[i] = c.String()
	}
	return "valid categories: " + strings.Join(names, ", ")
}
