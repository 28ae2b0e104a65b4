package main

import (
	"os"

	"github.com/katalvlaran/arrkit/cmd/arrkit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
