// Package main provides the topology CLI.
package main

import (
	"os"

	"github.com/born-ml/topology/internal/cli"
)

func main() {
	if err := cli.Execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
