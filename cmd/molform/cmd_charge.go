package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/earth-metabolome-initiative/molecular-formulas/formula"
)

func newChargeCmd() *cobra.Command {
	var dialectName string

	cmd := &cobra.Command{
		Use:   "charge [formula]",
		Short: "Compute the net charge",
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

			charge, err := f.TotalCharge()
			if err != nil {
				return fmt.Errorf("compute charge: %w", err)
			}
			fmt.Printf("%+d\n", charge)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dialectName, "dialect", "d", "chemical", "formula dialect (chemical, inchi, mineral, markush)")

	return cmd
}
