package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/hufftree"
)

func (a *app) decodeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Expand a compressed file",
		Long:  "Expand a file written by encode. Reads standard input when no file is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			var path string
			if len(args) > 0 {
				path = args[0]
			}

			r, closeIn, err := a.openInput(path)
			if err != nil {
				return err
			}
			defer closeIn()

			var d hufftree.Decoder
			if err := d.Init(r); err != nil {
				return err
			}

			w, closeOut, err := a.openOutput(output)
			if err != nil {
				return err
			}
			n, err := d.WriteTo(w)
			if err != nil {
				_ = closeOut()
				return errors.Wrap(err, "failed to decode")
			}
			if err := closeOut(); err != nil {
				return errors.Wrap(err, "failed to write output")
			}

			a.log.Debugf("decoded %d bytes", n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}
