package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type addOptions struct {
	quantity int
	category string
	price    float64
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new item to the inventory",
		Long: `Add a new inventory line with an initial quantity, category and price.

Every add creates a new line - repeated adds of the same name and
category are not merged.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.quantity, "quantity", "q", 0, "initial quantity")
	cmd.Flags().StringVarP(&opts.category, "category", "c", "", "item category")
	cmd.Flags().Float64VarP(&opts.price, "price", "p", 0, "unit price")
	_ = cmd.MarkFlagRequired("quantity")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func runAdd(rootOpts *RootOptions, opts *addOptions, name string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)

	category, ok := resolveCategory(opts.category)
	if !ok {
		formatter.Error("UNKNOWN_CATEGORY", fmt.Sprintf("unknown category %q", opts.category), categoryHelp())
		return NewExitError(ExitFailure, "unknown category")
	}

	ws, err := openWorkspace(rootOpts, formatter)
	if err != nil {
		return err
	}

	item, err := ws.inv.Add(name, opts.quantity, category, opts.price)
	if err != nil {
		ws.close()
		return reportError(formatter, err)
	}

	if err := ws.saveAndClose(formatter); err != nil {
		return err
	}

	return formatter.successWith(
		fmt.Sprintf("Added %s (id %s)", item.Name, item.ID),
		newItemPayload(item),
	)
}
