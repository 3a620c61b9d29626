package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/earth-metabolome-initiative/molecular-formulas/formula"
)

func newFmtCmd() *cobra.Command {
	var dialectName string

	cmd := &cobra.Command{
		Use:   "fmt [formula...]",
		Short: "Rewrite formulas in canonical notation",
		Long: `Rewrite formulas in canonical notation.

Each argument is normalized and printed on its own line. Without
arguments, formulas are read from stdin one per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dialect, err := resolveDialect(dialectName)
			if err != nil {
				return err
			}

			normalize := func(input string) error {
				f, err := formula.Parse(input, dialect)
				if err != nil {
					return fmt.Errorf("%s: %w", input, err)
				}
				fmt.Println(f)
				return nil
			}

			if len(args) > 0 {
				for _, arg := range args {
					if err := normalize(arg); err != nil {
						return err
					}
				}
				return nil
			}

			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if err := normalize(line); err != nil {
					return err
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dialectName, "dialect", "d", "chemical", "formula dialect (chemical, inchi, mineral, markush)")

	return cmd
}
