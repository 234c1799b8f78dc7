package main

import (
	"os"

	"github.com/chronos-tachyon/treekit/internal/cli"
)

func main() {
	os.Exit(cli.Guard(os.Stderr, cli.Execute))
}
