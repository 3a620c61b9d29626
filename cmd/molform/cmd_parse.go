package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/earth-metabolome-initiative/molecular-formulas/format"
	"github.com/earth-metabolome-initiative/molecular-formulas/formula"
)

func newParseCmd() *cobra.Command {
	var dialectName string
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [formula]",
		Short: "Parse a formula and dump its tree",
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

			log.Debugf("parsing %q as %s", input, dialect)
			f, err := formula.Parse(input, dialect)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(f); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dialectName, "dialect", "d", "chemical", "formula dialect (chemical, inchi, mineral, markush)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, text)")

	return cmd
}
