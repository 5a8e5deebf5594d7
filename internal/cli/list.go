package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/tally/internal/csvcodec"
	"github.com/roach88/tally/internal/inventory"
	"github.com/roach88/tally/internal/query"
)

type listOptions struct {
	category string
	search   string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the inventory, optionally filtered",
		Long: `Show the inventory in insertion order.

--category keeps only one category; --search keeps items whose name
contains the text, case-insensitively. Both filters are read-only
views - the stored inventory is untouched.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.category, "category", "c", "", "filter by category")
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "search by name")

	return cmd
}

func runList(rootOpts *RootOptions, opts *listOptions, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)

	var category inventory.Category
	if opts.category != "" {
		c, ok := resolveCategory(opts.category)
		if !ok {
			formatter.Error("UNKNOWN_CATEGORY", fmt.Sprintf("unknown category %q", opts.category), categoryHelp())
			return NewExitError(ExitFailure, "unknown category")
		}
		category = c
	}

	ws, err := openWorkspace(rootOpts, formatter)
	if err != nil {
		return err
	}
	defer ws.close()

	items := query.Filter(ws.inv.All(), category, opts.search)

	if formatter.Format == "json" {
		payload := make([]itemPayload, len(items))
		for i, item := range items {
			payload[i] = newItemPayload(item)
		}
		return formatter.Success(payload)
	}

	if opts.search != "" {
		fmt.Fprintf(formatter.Writer, "Results for: %s\n", opts.search)
	}
	if len(items) == 0 {
		fmt.Fprintln(formatter.Writer, "No items.")
		return nil
	}

	w := tabwriter.NewWriter(formatter.Writer, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tQTY\tCATEGORY\tPRICE\tLAST TRANSACTION")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%.2f\t%s\n",
			item.ID,
			item.Name,
			item.Quantity,
			item.Category.DisplayName(),
			item.Price,
			csvcodec.FormatTimestamp(item.LastTransaction),
		)
	}
	return w.Flush()
}
