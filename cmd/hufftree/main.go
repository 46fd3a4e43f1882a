package main

import (
	"os"
)

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := a.rootCmd().Execute(); err != nil {
		a.log.Errorf("%v", err)
		os.Exit(1)
	}
}
