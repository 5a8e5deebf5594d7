package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type removeOptions struct {
	amount int
}

// removePayload is the JSON result of a removal.
type removePayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Removed     int    `json:"removed"`
	Deleted     bool   `json:"deleted"`
	NewQuantity int    `json:"new_quantity"`
}

// NewRemoveCommand creates the remove command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &removeOptions{}

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove stock from an item",
		Long: `Remove stock from an inventory line.

Without --amount the full quantity is removed and the line is deleted.
Removing less than the full quantity decrements it and stamps a new
last-transaction time.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.amount, "amount", "n", 0, "quantity to remove (default: all)")

	return cmd
}

func runRemove(rootOpts *RootOptions, opts *removeOptions, id string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)

	ws, err := openWorkspace(rootOpts, formatter)
	if err != nil {
		return err
	}

	item, ok := ws.inv.Get(id)
	if !ok {
		ws.close()
		formatter.Error("NOT_FOUND", fmt.Sprintf("no item with id %q", id), nil)
		return NewExitError(ExitFailure, "no such item")
	}
	name := item.Name

	amount := opts.amount
	if !cmd.Flags().Changed("amount") {
		amount = item.Quantity
	}

	outcome, err := ws.inv.RemovePartial(id, amount)
	if err != nil {
		ws.close()
		return reportError(formatter, err)
	}

	if err := ws.saveAndClose(formatter); err != nil {
		return err
	}

	message := fmt.Sprintf("Removed %d %s - %d left", amount, name, outcome.NewQuantity)
	if outcome.Deleted {
		message = fmt.Sprintf("Removed %s", name)
	}
	return formatter.successWith(message, removePayload{
		ID:          id,
		Name:        name,
		Removed:     amount,
		Deleted:     outcome.Deleted,
		NewQuantity: outcome.NewQuantity,
	})
}
