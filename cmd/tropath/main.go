// Command tropath answers shortest-path queries on small weighted digraphs
// using the min-plus distance table from package minplus.
package main

import (
	"os"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
