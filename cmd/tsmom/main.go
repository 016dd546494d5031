package main

import (
	"os"

	"github.com/rustyeddy/tsmom/cmd/tsmom/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
