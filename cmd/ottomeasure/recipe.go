package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottomeasure/internal/display"
)

func newRecipeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Browse the built-in sample recipes",
	}
	cmd.AddCommand(newRecipeListCmd(a), newRecipeShowCmd(a))
	return cmd
}

func newRecipeListCmd(a *app) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sample recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := a.catalog.List()
			if query != "" {
				list = a.catalog.Search(query)
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), display.RenderSummaries(list))
			return err
		},
	}

	cmd.Flags().StringVarP(&query, "search", "s", "", "only recipes matching this text")
	return cmd
}

func newRecipeShowCmd(a *app) *cobra.Command {
	var scale float64

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a recipe with canonical ingredient amounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.catalog.Get(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if scale != 1 {
				if r, err = r.Scale(scale); err != nil {
					return err
				}
				a.log.Info("scaled %s by %v", r.ID, scale)
			}

			totals, err := r.Totals()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), display.RenderRecipe(r, totals, a.settings.Plural))
			return err
		},
	}

	cmd.Flags().Float64Var(&scale, "scale", 1, "multiply every ingredient amount")
	return cmd
}
