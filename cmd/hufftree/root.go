package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/hufftree/internal/logger"
)

type app struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
	log     logger.Logger
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		log:    logger.New(stderr, false),
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hufftree",
		Short:         "Huffman tree file compressor",
		Long:          "hufftree compresses a file with a Huffman code built from its byte frequencies, and expands such files back to the original bytes.",
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = logger.New(a.stderr, a.verbose)
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log sizes and code statistics")

	root.AddCommand(a.encodeCmd())
	root.AddCommand(a.decodeCmd())
	root.AddCommand(a.codesCmd())
	root.AddCommand(a.versionCmd())
	return root
}

// openOutput returns the destination named by path, or stdout for "" and "-".
func (a *app) openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return a.stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "can't open %s for writing", path)
	}
	return f, f.Close, nil
}

// openInput returns the source named by path, or stdin for "" and "-".
func (a *app) openInput(path string) (io.Reader, func() error, error) {
	if path == "" || path == "-" {
		return a.stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "can't open %s for reading", path)
	}
	return f, f.Close, nil
}
