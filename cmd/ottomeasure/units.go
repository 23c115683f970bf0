package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottomeasure/internal/display"
	"github.com/hammamikhairi/ottomeasure/internal/measure"
)

func newUnitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List known units and their conversion factors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			units := measure.Units()
			a.log.Debug("listing %d units", len(units))
			_, err := fmt.Fprint(cmd.OutOrStdout(), display.RenderUnits(units))
			return err
		},
	}
}
