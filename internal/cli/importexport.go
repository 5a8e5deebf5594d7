package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/tally/internal/csvcodec"
)

// filePayload is the JSON result of an import or export.
type filePayload struct {
	File  string `json:"file"`
	Items int    `json:"items"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Append items from a CSV file",
		Long: `Parse a CSV inventory file and append its items to the inventory
in file order.

The first malformed line aborts the whole import; a failed import
changes nothing.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runImport(rootOpts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)

	data, err := os.ReadFile(path)
	if err != nil {
		formatter.Error("IO_FAILURE", fmt.Sprintf("cannot read %s", path), err.Error())
		return WrapExitError(ExitCommandError, "cannot read import file", err)
	}

	items, err := csvcodec.Unmarshal(data)
	if err != nil {
		return reportError(formatter, err)
	}

	ws, err := openWorkspace(rootOpts, formatter)
	if err != nil {
		return err
	}

	ws.inv.Append(items)
	if err := ws.saveAndClose(formatter); err != nil {
		return err
	}

	return formatter.successWith(
		fmt.Sprintf("Imported %d item(s) from %s", len(items), path),
		filePayload{File: path, Items: len(items)},
	)
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file.csv>",
		Short: "Write the inventory to a CSV file",
		Long: `Write the full inventory to a CSV file in store order, using the
canonical field order Name,Category,Quantity,Price,LastTransaction.

Names are written verbatim: a name containing a comma produces a file
that will not read back (the format has no quoting).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runExport(rootOpts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)

	ws, err := openWorkspace(rootOpts, formatter)
	if err != nil {
		return err
	}
	defer ws.close()

	items := ws.inv.All()
	if err := os.WriteFile(path, csvcodec.Marshal(items), 0o644); err != nil {
		formatter.Error("IO_FAILURE", fmt.Sprintf("cannot write %s", path), err.Error())
		return WrapExitError(ExitCommandError, "cannot write export file", err)
	}

	return formatter.successWith(
		fmt.Sprintf("Exported %d item(s) to %s", len(items), path),
		filePayload{File: path, Items: len(items)},
	)
}
