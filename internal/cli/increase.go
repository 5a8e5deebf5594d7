package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type increaseOptions struct {
	amount int
}

// NewIncreaseCommand creates the increase command.
func NewIncreaseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &increaseOptions{}

	cmd := &cobra.Command{
		Use:           "increase <id>",
		Short:         "Add stock to an existing item",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIncrease(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.amount, "amount", "n", 0, "quantity to add")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runIncrease(rootOpts *RootOptions, opts *increaseOptions, id string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)

	ws, err := openWorkspace(rootOpts, formatter)
	if err != nil {
		return err
	}

	newQuantity, err := ws.inv.IncreaseQuantity(id, opts.amount)
	if err != nil {
		ws.close()
		return reportError(formatter, err)
	}

	item, _ := ws.inv.Get(id)
	if err := ws.saveAndClose(formatter); err != nil {
		return err
	}

	return formatter.successWith(
		fmt.Sprintf("Increased quantity of %s by %d (now %d)", item.Name, opts.amount, newQuantity),
		newItemPayload(item),
	)
}
