package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/earth-metabolome-initiative/molecular-formulas/formula"
)

func newHillCmd() *cobra.Command {
	var dialectName string

	cmd := &cobra.Command{
		Use:   "hill [formula]",
		Short: "Check whether a formula is in Hill order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}
			dialect, err := resolveDialect(dialectName)
			if err != nil {
				return err
			}

			f, err := formula.Parse(input, dialect)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			if !f.IsHillOrdered() {
				return fmt.Errorf("%s is not in Hill order", f)
			}
			fmt.Println("ok")
			return nil
		},
	}

	cmd.Flags().StringVarP(&dialectName, "dialect", "d", "chemical", "formula dialect (chemical, inchi, mineral, markush)")

	return cmd
}
