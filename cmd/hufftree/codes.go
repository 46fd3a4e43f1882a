package main

import (
	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/hufftree"
)

func (a *app) codesCmd() *cobra.Command {
	var showTree bool

	cmd := &cobra.Command{
		Use:   "codes [file]",
		Short: "Print the Huffman codes for a file",
		Long:  "Count the byte frequencies of a file and print the code assigned to each byte value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			r, closeIn, err := a.openInput(args[0])
			if err != nil {
				return err
			}
			defer closeIn()

			h, err := hufftree.CountFrequencies(r)
			if err != nil {
				return err
			}

			var e hufftree.Encoder
			e.Init(&h)

			out := cmd.OutOrStdout()
			if showTree && e.Root() != nil {
				if _, err := e.Root().Dump(out); err != nil {
					return err
				}
			}
			_, err = e.Table().Dump(out)
			return err
		},
	}

	cmd.Flags().BoolVarP(&showTree, "tree", "t", false, "Also print the code tree")
	return cmd
}
