package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "rebalancer",
		Short:         "Plan whole-share trades that move a portfolio toward target weights",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (defaults to config.json for the current REBALANCER_ENV)")

	root.AddCommand(
		newRebalanceCommand(opts),
		newPricesCommand(opts),
		newHoldingsCommand(opts),
		newBreakdownCommand(opts),
		newServeCommand(opts),
	)

	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
