package main

import (
	"os"

	"github.com/rustyeddy/budgetsim/cmd/budgetsim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
