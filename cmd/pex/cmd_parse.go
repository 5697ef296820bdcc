package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava12/pex/examples/json/lib"
	"github.com/ava12/pex/source"
)

func newParseCmd() *cobra.Command {
	var dumpTree bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a JSON file (or stdin) and dump the result",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "stdin"
			input := os.Stdin
			if len(args) > 0 {
				name = args[0]
				f, e := os.Open(name)
				if e != nil {
					return e
				}
				defer f.Close()
				input = f
			}

			data, e := io.ReadAll(input)
			if e != nil {
				return e
			}

			src := source.New(name, string(data))
			log.Infof("parsing %s (%d scalars)", name, src.Len())

			if dumpTree {
				m, e := lib.MatchSource(src)
				if e != nil {
					return e
				}
				fmt.Println(m)
				return nil
			}

			res, e := lib.DecodeSource(src)
			if e != nil {
				return e
			}
			fmt.Printf("%#v\n", res)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&dumpTree, "tree", "t", false, "dump the match tree instead of the decoded value")

	return cmd
}
