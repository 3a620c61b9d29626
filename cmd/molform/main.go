package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/earth-metabolome-initiative/molecular-formulas/formula"
)

var log = commonlog.GetLogger("molform")

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "molform",
		Short: "Parse, normalize and analyze molecular formulas",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newMassCmd())
	rootCmd.AddCommand(newChargeCmd())
	rootCmd.AddCommand(newHillCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput returns the single formula argument, or stdin when no argument
// was given.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func resolveDialect(name string) (formula.Dialect, error) {
	d, ok := formula.DialectFromName(name)
	if !ok {
		return 0, fmt.Errorf("unknown dialect: %s (expected chemical, inchi, mineral or markush)", name)
	}
	return d, nil
}
