package main

import (
	"os"

	"github.com/morphlab/morph/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
