package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wildfire/internal/core"
)

func newParamsCmd() *cobra.Command {
	var (
		name string
		set  map[string]string
	)
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print the parameters a fresh simulation starts with",
		Example: `  wildfire params
  wildfire params --set w=40,h=20,density=0.45,seed=3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			factory, err := core.Lookup(name)
			if err != nil {
				return fmt.Errorf("%w (available: %s)", err, strings.Join(core.Names(), ", "))
			}
			sim, err := factory(set)
			if err != nil {
				return err
			}
			p, ok := sim.(core.ParameterProvider)
			if !ok {
				return fmt.Errorf("%s does not describe its parameters", sim.Name())
			}
			_, err = p.Parameters().WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().StringVar(&name, "sim", "wildfire", "registered simulation to describe")
	cmd.Flags().StringToStringVar(&set, "set", nil, "settings as key=value pairs (w, h, density, seed, max_cycles)")
	return cmd
}
