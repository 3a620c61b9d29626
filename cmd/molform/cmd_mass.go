package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/earth-metabolome-initiative/molecular-formulas/formula"
)

func newMassCmd() *cobra.Command {
	var dialectName string
	var breakdown bool

	cmd := &cobra.Command{
		Use:   "mass [formula]",
		Short: "Compute the molar mass in daltons",
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

			counts, err := f.Counts()
			if err != nil {
				return fmt.Errorf("count atoms: %w", err)
			}
			if counts.Residuals > 0 {
				log.Warningf("%d residual atoms contribute no mass", counts.Residuals)
			}

			mass, err := f.MolarMass()
			if err != nil {
				return fmt.Errorf("compute mass: %w", err)
			}

			if breakdown {
				for e, n := range counts.Elements {
					fmt.Printf("%-3s %6d × %10.4f\n", e.Symbol(), n, e.AtomicWeight())
				}
				for iso, n := range counts.Isotopes {
					fmt.Printf("%-3s %6d × %10.4f\n", iso, n, iso.Mass())
				}
			}
			fmt.Printf("%.4f\n", mass)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dialectName, "dialect", "d", "chemical", "formula dialect (chemical, inchi, mineral, markush)")
	cmd.Flags().BoolVar(&breakdown, "breakdown", false, "print per-atom contributions")

	return cmd
}
