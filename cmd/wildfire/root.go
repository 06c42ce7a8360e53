package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wildfire",
		Short: "Simulate a fire spreading through a randomly planted forest",
		Long: `wildfire plants trees on a grid with the given density, ignites every tree
in the leftmost column and shows the fire spreading to orthogonal neighbours
until nothing burns. It then reports the share of the forest that burned.

Running without a subcommand is the same as "wildfire run".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	bindRun(root)
	root.AddCommand(newRunCmd(), newSweepCmd(), newParamsCmd())
	return root
}
