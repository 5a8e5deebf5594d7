package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type priceOptions struct {
	price float64
}

// NewPriceCommand creates the price command.
func NewPriceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &priceOptions{}

	cmd := &cobra.Command{
		Use:           "price <id>",
		Short:         "Set the price of an item",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrice(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().Float64VarP(&opts.price, "price", "p", 0, "new unit price")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func runPrice(rootOpts *RootOptions, opts *priceOptions, id string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)

	ws, err := openWorkspace(rootOpts, formatter)
	if err != nil {
		return err
	}

	if err := ws.inv.SetPrice(id, opts.price); err != nil {
		ws.close()
		return reportError(formatter, err)
	}

	item, _ := ws.inv.Get(id)
	if err := ws.saveAndClose(formatter); err != nil {
		return err
	}

	return formatter.successWith(
		fmt.Sprintf("Price for %s changed to %.2f", item.Name, item.Price),
		newItemPayload(item),
	)
}
