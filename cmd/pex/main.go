package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("pex")

func main() {
	var verbose int

	rootCmd := &cobra.Command{
		Use:   "pex",
		Short: "Demo utility for the pex parser combinator library",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase logging verbosity")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCalcCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
