package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottomeasure/internal/measure"
)

func newConvertCmd(a *app) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert <value> <unit>",
		Short: "Show a measurement in compact and canonical form",
		Long: `Convert a measurement to its canonical value (grams for dry units,
millilitres for wet units). With --to, convert into another unit of the
same dimension instead.

Run "ottomeasure units" for the list of unit names.`,
		Example: `  ottomeasure convert 2 teaspoon-dry
  ottomeasure convert 1 gallon --to quart`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := parseQuantity(args[0], args[1])
			if err != nil {
				return err
			}
			a.log.Debug("convert %s -> %s", q, q.Describe())

			out := cmd.OutOrStdout()
			if to == "" {
				fmt.Fprintln(out, q.Format(a.settings.Plural))
				fmt.Fprintln(out, q.Describe())
				return nil
			}

			u, err := measure.ParseUnit(to)
			if err != nil {
				return err
			}
			converted, err := q.To(u)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s = %s\n", q.Format(a.settings.Plural), converted.Format(a.settings.Plural))
			fmt.Fprintln(out, converted.Describe())
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "target unit of the same dimension")
	return cmd
}

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <value> <unit> <value> <unit>...",
		Short: "Add measurements of the same dimension",
		Long: `Add two or more measurements. The sum is expressed in the first
measurement's unit. Mixing dry and wet units is rejected.`,
		Example: `  ottomeasure add 2 teaspoon-dry 1 tablespoon-dry`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 4 || len(args)%2 != 0 {
				return fmt.Errorf("expected pairs of <value> <unit>, at least two, got %d args", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			qs := make([]measure.Quantity, 0, len(args)/2)
			for i := 0; i < len(args); i += 2 {
				q, err := parseQuantity(args[i], args[i+1])
				if err != nil {
					return err
				}
				qs = append(qs, q)
			}

			sum, err := measure.Sum(qs...)
			if err != nil {
				return err
			}
			a.log.Debug("added %d quantities", len(qs))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, sum.Format(a.settings.Plural))
			fmt.Fprintln(out, sum.Describe())
			return nil
		},
	}
}

func parseQuantity(value, unit string) (measure.Quantity, error) {
	raw, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return measure.Quantity{}, fmt.Errorf("%w: %q is not a number", measure.ErrInvalidMagnitude, value)
	}
	return measure.Parse(raw, unit)
}
