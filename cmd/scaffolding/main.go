package main

import (
	"os"

	"scaffolding/cmd/scaffolding/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
