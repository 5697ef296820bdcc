package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava12/pex/examples/calc/lib"
)

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <expression>",
		Short: "Evaluate an arithmetic expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			log.Infof("evaluating %q", input)

			res, e := lib.Compute(input)
			if e != nil {
				return e
			}

			fmt.Printf("%.12g\n", res)
			return nil
		},
	}
}
