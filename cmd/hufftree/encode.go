package main

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/hufftree"
)

func (a *app) encodeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Compress a file",
		Long:  "Compress a file and write the count, code tree and packed codes to the output.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			path := args[0]

			src, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "can't open %s for reading", path)
			}

			var h hufftree.Histogram
			h.Scan(src)

			var e hufftree.Encoder
			e.Init(&h)

			var buf bytes.Buffer
			if err := e.Write(&buf, src); err != nil {
				return errors.Wrapf(err, "failed to encode %s", path)
			}

			w, closeFn, err := a.openOutput(output)
			if err != nil {
				return err
			}
			if _, err := buf.WriteTo(w); err != nil {
				_ = closeFn()
				return errors.Wrap(err, "failed to write output")
			}
			if err := closeFn(); err != nil {
				return errors.Wrap(err, "failed to write output")
			}

			table := e.Table()
			a.log.Debugf("encoded %s: %d bytes -> %d bytes, %d distinct symbols, code sizes %d..%d bits",
				path, len(src), buf.Len(), table.Len(), table.MinSize(), table.MaxSize())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}
