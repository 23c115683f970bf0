// OttoMeasure — cooking measurements with exact conversion factors.
//
// Usage:
//
//	ottomeasure [--config file] [command]
//
// Without a command it prints the sugar and honey demo conversions.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottomeasure/internal/config"
	"github.com/hammamikhairi/ottomeasure/internal/logger"
	"github.com/hammamikhairi/ottomeasure/internal/measure"
	"github.com/hammamikhairi/ottomeasure/internal/recipe"
)

// version is set at build time via ldflags.
var version = "dev"

// app holds dependencies wired once the config has been read.
type app struct {
	settings config.Settings
	log      *logger.Logger
	catalog  *recipe.Catalog
	closeLog func()
}

func newRootCmd() *cobra.Command {
	a := &app{closeLog: func() {}}

	root := &cobra.Command{
		Use:   "ottomeasure",
		Short: "Convert cooking measurements to grams and millilitres",
		Long: `ottomeasure converts dry and wet cooking measurements (teaspoons, cups,
pinches, dashes, ounces, pints, quarts, gallons) into canonical grams or
millilitres using exact rational factors.

Run without a command to print the demo conversions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			return a.init(cfgFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.log.Sync()
			a.closeLog()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeDemo(cmd.OutOrStdout(), a.settings.Plural)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default: ./ottomeasure.yaml or ~/.config/ottomeasure/ottomeasure.yaml)")

	root.AddCommand(
		newConvertCmd(a),
		newAddCmd(a),
		newUnitsCmd(a),
		newRecipeCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) init(cfgFile string) error {
	s, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	a.settings = s

	// Logs never share stdout with command output.
	var logOut io.Writer = os.Stderr
	if s.LogFile != "" && s.LogFile != "stderr" {
		if dir := filepath.Dir(s.LogFile); dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", s.LogFile, err)
		} else {
			logOut = f
			a.closeLog = func() { f.Close() }
		}
	}

	a.log = logger.New(s.LogLevel, logOut)
	if s.Source != "" {
		a.log.Debug("using config file %s", s.Source)
	}
	a.log.Debug("plural policy: %s", s.Plural)
	a.catalog = recipe.NewCatalog(a.log)
	return nil
}

// writeDemo prints sugar and honey in canonical and compact form.
func writeDemo(w io.Writer, policy measure.PluralPolicy) error {
	sugar := measure.MustNew(2, measure.DryTeaspoon)
	honey := measure.MustNew(6, measure.WetTeaspoon)

	_, err := fmt.Fprintf(w, "Required sugar (g) %s\n      or     (tsp) %s\nRequired honey (mL) %s\n      or      (tsp) %s\n",
		sugar.Describe(), sugar.Format(policy),
		honey.Describe(), honey.Format(policy))
	return err
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
