// Command typed builds and reduces Typed programs: it reads one or more
// source files (or stdin), runs them through package ast's Build/Beta
// pipeline, and prints the reduced display string or a diagnostic.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
